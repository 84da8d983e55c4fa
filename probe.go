package spinor

import (
	"fmt"
	"time"
)

// ReadID reads the 24-bit JEDEC id (manufacturer, memory type, capacity) and
// caches it on the handle, resolving per-chip timing parameters for known
// ids.
func ReadID(c *Chip) (uint32, error) {
	c, err := resolveChip(c)
	if err != nil {
		return 0, err
	}
	var buf [3]byte
	if err := c.Host.Command(Command{Opcode: flashCmdReadID, Rx: buf[:]}); err != nil {
		return 0, err
	}
	id := uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	c.id = id
	c.pr = paramsLookup(id)
	return id, nil
}

// Probe reads the chip id and succeeds whenever the transaction does. An id
// that differs from flashID is not an error here: it signals "not this chip"
// to the external driver selection, which does the comparing.
func (g *Generic) Probe(c *Chip, flashID uint32) error {
	_, err := ReadID(c)
	return err
}

// Reset issues the enable-reset/reset sequence and waits for the chip to
// come back.
func (g *Generic) Reset(c *Chip) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	if err := c.Host.Command(Command{Opcode: flashCmdResetEnable}); err != nil {
		return err
	}
	if err := c.Host.Command(Command{Opcode: flashCmdReset}); err != nil {
		return err
	}
	return c.drv.WaitIdle(c, c.idleTimeout())
}

// DetectSize reads the chip id and decodes the capacity as 2^n where n is
// the low 4 bits of the id, the de facto JEDEC convention. An id whose
// manufacturer byte is 00h or FFh cannot be trusted (bus glitch or truly
// unknown part) and fails with ErrUnsupportedChip.
func (g *Generic) DetectSize(c *Chip) (uint32, error) {
	c, err := resolveChip(c)
	if err != nil {
		return 0, err
	}
	id, err := ReadID(c)
	if err != nil {
		return 0, err
	}
	if mfr := byte(id >> 16); mfr == 0x00 || mfr == 0xFF {
		return 0, fmt.Errorf("id %06X: %w", id, ErrUnsupportedChip)
	}
	size := uint32(1) << (id & 0xF)
	c.Size = size
	return size, nil
}

// PowerUp releases the chip from deep power-down and waits the datasheet
// settle time.
func PowerUp(c *Chip) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	if err := c.Host.Command(Command{Opcode: flashCmdPowerUp}); err != nil {
		return err
	}
	time.Sleep(c.powerUpTime())
	return nil
}

// PowerDown puts the chip into deep power-down.
func PowerDown(c *Chip) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	if err := c.Host.Command(Command{Opcode: flashCmdPowerDown}); err != nil {
		return err
	}
	time.Sleep(c.powerDownTime())
	return nil
}
