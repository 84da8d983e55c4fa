package spinor

import "time"

// chipParams carries the datasheet timing limits for one known chip. They
// size the wait-idle budgets of the mutating operations.
type chipParams struct {
	name string

	tRES1      time.Duration // release from power-down
	tDP        time.Duration // enter power-down
	tPP        time.Duration // page program
	tEraseSec  time.Duration // 4KB erase
	tEraseBlk  time.Duration // 64KB erase
	tEraseChip time.Duration
}

const (
	flashIDMicronN25Q32   = 0x20BA16
	flashIDWinbondW25Q32  = 0xEF4016
	flashIDWinbondW25Q128 = 0xEF7018
)

var knownChips = map[uint32]chipParams{
	flashIDMicronN25Q32: {
		name: "Micron N25Q 32Mb",

		// [N25Q32|Table 38: AC Characteristics and Operating Conditions]
		tPP:        5 * time.Millisecond,
		tEraseSec:  800 * time.Millisecond,
		tEraseBlk:  3 * time.Second,
		tEraseChip: 60 * time.Second,
	},

	flashIDWinbondW25Q32: {
		name: "Winbond W25Q 32Mb",

		tRES1:      3 * time.Microsecond,
		tDP:        3 * time.Microsecond,
		tPP:        3 * time.Millisecond,
		tEraseSec:  400 * time.Millisecond,
		tEraseBlk:  2000 * time.Millisecond,
		tEraseChip: 50 * time.Second,
	},

	flashIDWinbondW25Q128: {
		name: "Winbond W25Q 128Mb",

		// [W25Q128|9.6 AC Electrical Characteristics]
		tRES1:      3 * time.Microsecond,
		tDP:        3 * time.Microsecond,
		tPP:        3 * time.Millisecond,
		tEraseSec:  400 * time.Millisecond,
		tEraseBlk:  2000 * time.Millisecond,
		tEraseChip: 200 * time.Second,
	},
}

func paramsLookup(id uint32) *chipParams {
	if pr, ok := knownChips[id]; ok {
		return &pr
	}
	return nil
}

// ChipName returns the marketing name for a known JEDEC id, or "".
func ChipName(id uint32) string {
	if pr := paramsLookup(id); pr != nil {
		return pr.name
	}
	return ""
}

// paramOrMax returns the chip's own limit when the id resolved to a known
// part, and otherwise the worst case across every known part, so unknown
// chips get budgets no datasheet would exceed.
func (c *Chip) paramOrMax(get func(*chipParams) time.Duration) time.Duration {
	if c.pr != nil {
		return get(c.pr)
	}
	var tmax time.Duration
	for _, param := range knownChips {
		tmax = max(tmax, get(&param))
	}
	return tmax
}

func (c *Chip) powerUpTime() time.Duration {
	return c.paramOrMax(func(p *chipParams) time.Duration { return p.tRES1 })
}
func (c *Chip) powerDownTime() time.Duration {
	return c.paramOrMax(func(p *chipParams) time.Duration { return p.tDP })
}
func (c *Chip) pageProgramTimeout() time.Duration {
	return c.paramOrMax(func(p *chipParams) time.Duration { return p.tPP })
}
func (c *Chip) sectorEraseTimeout() time.Duration {
	return c.paramOrMax(func(p *chipParams) time.Duration { return p.tEraseSec })
}
func (c *Chip) blockEraseTimeout() time.Duration {
	return c.paramOrMax(func(p *chipParams) time.Duration { return p.tEraseBlk })
}
func (c *Chip) chipEraseTimeout() time.Duration {
	return c.paramOrMax(func(p *chipParams) time.Duration { return p.tEraseChip })
}

// idleTimeout bounds waits that follow register writes and resets, which
// settle far faster than erase or program cycles.
func (c *Chip) idleTimeout() time.Duration {
	return 100 * time.Millisecond
}
