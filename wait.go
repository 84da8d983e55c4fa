package spinor

import "time"

// pollInterval is the cost charged against a wait budget per status poll.
const pollInterval = 100 * time.Microsecond

// WaitIdle blocks until both the chip's write-in-progress bit is clear and
// the host state machine is idle. The timeout bounds total wall-clock
// blocking: the host-idle and chip-busy phases decrement one shared budget,
// so nesting never exceeds it. On ErrTimeout the chip may still be busy.
func (g *Generic) WaitIdle(c *Chip, timeout time.Duration) error {
	c, err := resolveChip(c)
	if err != nil {
		return err
	}
	budget := timeout
	return waitIdle(c, &budget)
}

// waitIdle is the engine behind Driver.WaitIdle. budget is decremented in
// place so a wait nested inside another wait draws down the same deadline.
func waitIdle(c *Chip, budget *time.Duration) error {
	for {
		if err := waitHostIdle(c, budget); err != nil {
			return err
		}
		sr, err := c.Host.ReadStatus(8)
		if err != nil {
			return err
		}
		if !StatusRegister(sr).Busy() {
			return nil
		}
		if *budget < pollInterval {
			return ErrTimeout
		}
		time.Sleep(pollInterval)
		*budget -= pollInterval
	}
}

// waitHostIdle waits for the host hardware state machine alone. Split out
// from waitIdle because alternative drivers need it when sequencing their
// own commands.
func waitHostIdle(c *Chip, budget *time.Duration) error {
	for !c.Host.Idle() {
		if *budget < pollInterval {
			return ErrTimeout
		}
		time.Sleep(pollInterval)
		*budget -= pollInterval
	}
	return nil
}
