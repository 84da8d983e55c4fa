package spinor

import (
	"fmt"
	"strings"
)

// StatusRegister is the chip's primary (8-bit) status register.
//
//	Bits| [N25Q32|Table 9]                     | [W25Q128|7.1 Status Registers]
//	----+--------------------------------------+-------------------------------
//	7   | Status register write enable/disable | SRP: Status Register Protect
//	6   | Reserved                             | SEC: Sector protect
//	5   | Top/bottom                           | TB: Top/Bottom protect
//	4:2 | Block protect 2-0                    | BP2-0: Block Protect bit 2-0
//	1   | Write enable latch                   | WEL: Write Enable Latch
//	0   | Write in progress                    | BUSY: Erase/Write in progress
type StatusRegister byte

func (sr StatusRegister) Protected() bool    { return sr&(1<<7) != 0 }
func (sr StatusRegister) WriteEnabled() bool { return sr&(1<<1) != 0 }
func (sr StatusRegister) Busy() bool         { return sr&(1<<0) != 0 }

func (sr StatusRegister) String() string {
	s := []string{}
	if sr.Protected() {
		s = append(s, "SRP")
	}
	for i, name := range []string{"BP0", "BP1", "BP2"} {
		if sr&(1<<(i+2)) != 0 {
			s = append(s, name)
		}
	}
	if sr.WriteEnabled() {
		s = append(s, "WEL")
	}
	if sr.Busy() {
		s = append(s, "BUSY")
	}
	b := fmt.Sprintf("%08b", byte(sr))
	if len(s) == 0 {
		return b
	}
	return b + " " + strings.Join(s, ",")
}

// StatusRegisterLayout describes where a chip family keeps its quad-enable
// bit and which commands reach it. Families differ both in the command codes
// and in whether the bit lives in the primary register or an extended second
// byte, so EnableQuad takes the layout as a parameter instead of hardcoding
// one family's register map.
type StatusRegisterLayout struct {
	ReadCmd  byte   // status register read command
	WriteCmd byte   // status register write command
	Width    int    // register width in bits, 8 or 16
	QEMask   uint16 // mask of the quad-enable bit within Width
}

var (
	// QELayoutWRSR16 is the common Winbond-style layout: QE at S9, written
	// as a 16-bit WRSR covering both status bytes.
	QELayoutWRSR16 = StatusRegisterLayout{
		ReadCmd:  flashCmdReadStatus,
		WriteCmd: flashCmdWriteStatus,
		Width:    16,
		QEMask:   1 << 9,
	}

	// QELayoutSR1Bit6 covers families that keep QE in bit 6 of the primary
	// register (ISSI, Macronix).
	QELayoutSR1Bit6 = StatusRegisterLayout{
		ReadCmd:  flashCmdReadStatus,
		WriteCmd: flashCmdWriteStatus,
		Width:    8,
		QEMask:   1 << 6,
	}
)

// readRegister reads the register described by l, low byte first.
func (l StatusRegisterLayout) readRegister(c *Chip) (uint16, error) {
	buf := make([]byte, l.Width/8)
	if err := c.Host.Command(Command{Opcode: l.ReadCmd, Rx: buf}); err != nil {
		return 0, err
	}
	v := uint16(buf[0])
	if len(buf) == 2 {
		v |= uint16(buf[1]) << 8
	}
	return v, nil
}

// writeRegister writes v to the register described by l, low byte first.
// The caller must have set the write enable latch.
func (l StatusRegisterLayout) writeRegister(c *Chip, v uint16) error {
	buf := make([]byte, l.Width/8)
	buf[0] = byte(v)
	if len(buf) == 2 {
		buf[1] = byte(v >> 8)
	}
	return c.Host.Command(Command{Opcode: l.WriteCmd, Tx: buf})
}
