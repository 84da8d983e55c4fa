package spinor

import (
	"errors"
	"fmt"
	"sync/atomic"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3"
	"periph.io/x/host/v3/ftdi"
)

const (
	maxFTDITransfer = 65536 // MPSSE transaction limit [FTDI-AN_108]
	cmdBytes        = 4     // opcode + 24-bit address
)

// SPIHost implements Host on a periph.io SPI connection with a GPIO chip
// select. It drives plain single-line SPI: slow and fast read modes work,
// dual and quad modes are rejected since MPSSE has no extra data lines.
type SPIHost struct {
	conn spi.Conn
	cs   gpio.PinIO
	max  int
}

var _ Host = (*SPIHost)(nil)

// NewSPIHost wraps conn and cs as a Host. maxTransfer limits the data phase
// of a single transaction; 0 means the FTDI MPSSE limit of 64KiB minus the
// command and address bytes.
func NewSPIHost(conn spi.Conn, cs gpio.PinIO, maxTransfer int) *SPIHost {
	if maxTransfer == 0 {
		maxTransfer = maxFTDITransfer - cmdBytes
	}
	return &SPIHost{conn: conn, cs: cs, max: maxTransfer}
}

// tx wraps a full-duplex SPI transaction with CS assertion.
func (h *SPIHost) tx(buf []byte) (err error) {
	if err = h.cs.Out(gpio.Low); err != nil {
		return err
	}
	defer func() {
		if csErr := h.cs.Out(gpio.High); csErr != nil && err == nil {
			err = csErr
		}
	}()
	err = h.conn.Tx(buf, buf)
	return
}

// Command frames cmd as opcode + optional 24-bit address + data phases in a
// single CS-framed full-duplex transfer.
func (h *SPIHost) Command(cmd Command) error {
	n := 1
	if cmd.HasAddr {
		n = 4
	}
	buf := make([]byte, n+len(cmd.Tx)+len(cmd.Rx))
	buf[0] = cmd.Opcode
	if cmd.HasAddr {
		buf[1] = byte(cmd.Addr >> 16)
		buf[2] = byte(cmd.Addr >> 8)
		buf[3] = byte(cmd.Addr)
	}
	copy(buf[n:], cmd.Tx)

	if err := h.tx(buf); err != nil {
		return err
	}
	copy(cmd.Rx, buf[n+len(cmd.Tx):])
	return nil
}

func (h *SPIHost) ReadStatus(width int) (uint16, error) {
	buf := make([]byte, 1+width/8)
	buf[0] = flashCmdReadStatus
	if err := h.tx(buf); err != nil {
		return 0, err
	}
	v := uint16(buf[1])
	if width == 16 {
		v |= uint16(buf[2]) << 8
	}
	return v, nil
}

// Idle always reports true: MPSSE transactions complete synchronously, so
// there is no host state machine left running after Command returns.
func (h *SPIHost) Idle() bool { return true }

func (h *SPIHost) ConfigureReadMode(mode ReadMode) error {
	switch mode {
	case ReadModeSlow, ReadModeFast:
		return nil
	default:
		return fmt.Errorf("read mode %v: %w", mode, ErrUnsupportedHost)
	}
}

func (h *SPIHost) MaxTransfer() int { return h.max }

// Device is an FT2232H adapter with a flash chip behind it.
type Device struct {
	FTDI *ftdi.FT232H
	Chip *Chip

	cs    gpio.PinIO // ADBUS4 Chip Select
	clock physic.Frequency
	conn  spi.Conn
}

var hostInitialized atomic.Bool

// NewDevice finds an FT2232H, opens the MPSSE/SPI connection and assembles a
// generic-driver chip handle on it.
func NewDevice() (*Device, error) {
	if hostInitialized.CompareAndSwap(false, true) {
		if _, err := host.Init(); err != nil {
			return nil, fmt.Errorf("host initialization failed: %w", err)
		}
	}

	d := &Device{
		clock: 30 * physic.MegaHertz, // [FTDI-AN_135 3.2.1 Divisors]
	}
	if err := d.findFT2232H(); err != nil {
		return nil, err
	}

	d.cs = d.FTDI.D4

	if err := d.connectSPI(); err != nil {
		return nil, err
	}

	d.Chip = NewChip(NewSPIHost(d.conn, d.cs, 0), GenericDriver)

	return d, nil
}

func (d *Device) findFT2232H() error {
	const (
		vendorID  = 0x0403 // FTDI
		productID = 0x6010 // FT2232H
	)

	info := ftdi.Info{}
	for _, dev := range ftdi.All() {
		dev.Info(&info)
		if info.VenID != vendorID || info.DevID != productID {
			continue
		}
		if ft, ok := dev.(*ftdi.FT232H); ok {
			d.FTDI = ft
			return nil
		}
	}

	return errors.New("FT2232H device not found")
}

func (d *Device) connectSPI() (err error) {
	port, err := d.FTDI.SPI()
	if err != nil {
		return fmt.Errorf("failed to get SPI port: %w", err)
	}

	// [FTDI-AN_114|1.2] MPSSE supports mode 0 and mode 2 only; flash chips
	// support mode 0 and mode 3.
	d.conn, err = port.Connect(d.clock, spi.Mode0, 8)
	return err
}
