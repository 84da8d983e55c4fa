package spinor

// Read fills buf from flash starting at addr using the read command of the
// chip's configured mode, or the plain 03h read when no mode was set. The
// host is assumed to service the whole length in one transaction; hosts with
// transfer limits chunk internally. Only a host transaction failure can fail
// this operation, and it propagates unchanged.
func (g *Generic) Read(c *Chip, buf []byte, addr uint32) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	return c.Host.Command(Command{
		Opcode:  c.ReadMode.opcode(),
		Addr:    addr,
		HasAddr: true,
		Rx:      buf,
	})
}

// ConfigHostReadMode applies the chip's configured read mode to the host's
// line and phase registers. The mode must have been set first.
func (g *Generic) ConfigHostReadMode(c *Chip) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	if c.ReadMode == readModeUnset {
		return ErrNotInitialized
	}
	return c.Host.ConfigureReadMode(c.ReadMode)
}

// SetReadMode prepares the chip for its configured read mode. For quad modes
// the host-side configuration alone is not sufficient: the chip's own
// quad-enable bit must be set too, or it will ignore quad commands.
func (g *Generic) SetReadMode(c *Chip) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	if c.ReadMode.Quad() {
		if err := EnableQuad(c, g.qeLayout()); err != nil {
			return err
		}
	}
	return c.drv.ConfigHostReadMode(c)
}

// EnableQuad sets the chip's quad-enable bit using the register layout of
// its family. If the bit is already set nothing is written, so repeated
// calls are no-ops. Otherwise the register is read-modify-written, changing
// only the QE bit, and the write is confirmed with a wait-idle.
func EnableQuad(c *Chip, layout StatusRegisterLayout) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	sr, err := layout.readRegister(c)
	if err != nil {
		return err
	}
	if sr&layout.QEMask != 0 {
		return nil
	}
	if err := c.drv.WriteEnable(c, false); err != nil {
		return err
	}
	if err := layout.writeRegister(c, sr|layout.QEMask); err != nil {
		return err
	}
	return c.drv.WaitIdle(c, c.idleTimeout())
}
