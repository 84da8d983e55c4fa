package spinor

import "time"

const (
	sectorSize = 4 << 10  // 4KB
	blockSize  = 64 << 10 // 64KB
)

// erase runs the shared protocol skeleton: write enable, erase command, wait
// idle. Any failing step aborts and propagates; retry policy belongs to the
// caller.
func (g *Generic) erase(c *Chip, cmd Command, timeout time.Duration) error {
	if err := c.drv.WriteEnable(c, false); err != nil {
		return err
	}
	if err := c.Host.Command(cmd); err != nil {
		return err
	}
	return c.drv.WaitIdle(c, timeout)
}

// EraseChip bulk erases the entire chip.
func (g *Generic) EraseChip(c *Chip) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	return g.erase(c, Command{Opcode: flashCmdEraseChip}, c.chipEraseTimeout())
}

// EraseSector erases the 4KB sector at addr. addr is not re-validated for
// alignment; the hardware's reaction to a misaligned address is surfaced
// as-is.
func (g *Generic) EraseSector(c *Chip, addr uint32) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	return g.erase(c, Command{Opcode: flashCmdEraseSector, Addr: addr, HasAddr: true}, c.sectorEraseTimeout())
}

// EraseBlock erases the 64KB block at addr.
func (g *Generic) EraseBlock(c *Chip, addr uint32) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	return g.erase(c, Command{Opcode: flashCmdEraseBlock, Addr: addr, HasAddr: true}, c.blockEraseTimeout())
}

// EraseRange erases size bytes starting at addr by issuing block erases for
// as much of the range as possible and sector erases for the remainder. addr
// should be sector aligned and size a multiple of the sector size; the tail
// sector is erased whole regardless.
func EraseRange(c *Chip, addr, size uint32) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	drv := c.drv

	for size >= blockSize {
		if err := drv.EraseBlock(c, addr); err != nil {
			return err
		}
		addr += blockSize
		size -= blockSize
	}
	for size > 0 {
		if err := drv.EraseSector(c, addr); err != nil {
			return err
		}
		if size < sectorSize {
			break
		}
		addr += sectorSize
		size -= sectorSize
	}
	return nil
}
