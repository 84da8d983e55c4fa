package spinor

import "fmt"

// WriteEnable sends WREN (or WRDI when protect is true) and verifies the
// write enable latch ended up in the requested state.
func (g *Generic) WriteEnable(c *Chip, protect bool) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	op := byte(flashCmdWriteEnable)
	if protect {
		op = flashCmdWriteDisable
	}
	if err := c.Host.Command(Command{Opcode: op}); err != nil {
		return err
	}
	sr, err := c.Host.ReadStatus(8)
	if err != nil {
		return err
	}
	if StatusRegister(sr).WriteEnabled() == protect {
		return fmt.Errorf("write enable latch stuck at WEL=%v after command %02Xh",
			StatusRegister(sr).WriteEnabled(), op)
	}
	return nil
}

// PageProgram programs data at addr as a single transaction. The caller must
// keep len(data) within the host's MaxTransfer and within the current page;
// the chip wraps writes at page boundaries instead of continuing, so a
// straddling program corrupts the start of the page. Write handles both
// limits automatically.
func (g *Generic) PageProgram(c *Chip, addr uint32, data []byte) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	if err := c.drv.WriteEnable(c, false); err != nil {
		return err
	}
	if err := c.Host.Command(Command{Opcode: flashCmdPageProgram, Addr: addr, HasAddr: true, Tx: data}); err != nil {
		return err
	}
	return c.drv.WaitIdle(c, c.pageProgramTimeout())
}

// Write programs data at addr, splitting it into chunks that stay inside one
// page and under the host's maximum transfer size, and driving each chunk
// through the operation table's PageProgram. The first failing chunk aborts
// the write; earlier chunks stay written, so a partial write is a normal
// outcome the caller must expect.
func (g *Generic) Write(c *Chip, addr uint32, data []byte) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	page := g.pageSize()
	maxTransfer := c.Host.MaxTransfer()

	for len(data) > 0 {
		n := int(page - addr&(page-1)) // room left in this page
		if n > maxTransfer {
			n = maxTransfer
		}
		if n > len(data) {
			n = len(data)
		}
		if err := c.drv.PageProgram(c, addr, data[:n]); err != nil {
			return err
		}
		addr += uint32(n)
		data = data[n:]
	}
	return nil
}

// WriteEncrypted always fails on the generic driver: flash encryption needs
// host support that only a specialized driver can provide.
func (g *Generic) WriteEncrypted(c *Chip, addr uint32, data []byte) error {
	return fmt.Errorf("encrypted write: %w", ErrUnsupportedHost)
}
