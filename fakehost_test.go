package spinor

// fakeHost models enough of a flash chip behind the Host facade to exercise
// the driver: a status register with WEL/WIP semantics, a JEDEC id, and a
// byte-addressable memory array for program/read commands. Every Command is
// recorded for protocol-ordering assertions.
type fakeHost struct {
	id  [3]byte
	sr  uint16 // S15..S0; bit 0 WIP, bit 1 WEL
	mem []byte

	busyPolls int // ReadStatus reports WIP for this many more reads
	hostBusy  int // Idle reports false this many more times

	welStuck  bool  // WREN fails to latch WEL
	statusErr error // returned by ReadStatus
	cmdErr    func(Command) error

	max         int
	cmds        []Command
	statusReads int
	mode        ReadMode
	modeSet     bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{id: [3]byte{0xEF, 0x40, 0x16}}
}

func (h *fakeHost) Command(cmd Command) error {
	rec := cmd
	rec.Tx = append([]byte(nil), cmd.Tx...)
	h.cmds = append(h.cmds, rec)

	if h.cmdErr != nil {
		if err := h.cmdErr(cmd); err != nil {
			return err
		}
	}

	switch cmd.Opcode {
	case flashCmdWriteEnable:
		if !h.welStuck {
			h.sr |= 1 << 1
		}
	case flashCmdWriteDisable:
		h.sr &^= 1 << 1
	case flashCmdReadID:
		copy(cmd.Rx, h.id[:])
	case flashCmdReadStatus:
		cmd.Rx[0] = byte(h.sr)
		if len(cmd.Rx) > 1 {
			cmd.Rx[1] = byte(h.sr >> 8)
		}
	case flashCmdWriteStatus:
		v := uint16(cmd.Tx[0])
		if len(cmd.Tx) > 1 {
			v |= uint16(cmd.Tx[1]) << 8
		} else {
			v |= h.sr & 0xFF00
		}
		h.sr = v &^ (1 << 1) // register write completion drops WEL
	case flashCmdPageProgram:
		if h.mem != nil {
			copy(h.mem[cmd.Addr:], cmd.Tx)
		}
		h.sr &^= 1 << 1
	case flashCmdRead, flashCmdFastRead, flashCmdDualOutRead,
		flashCmdDualIORead, flashCmdQuadOutRead, flashCmdQuadIORead:
		if h.mem != nil {
			copy(cmd.Rx, h.mem[cmd.Addr:])
		}
	}
	return nil
}

func (h *fakeHost) ReadStatus(width int) (uint16, error) {
	h.statusReads++
	if h.statusErr != nil {
		return 0, h.statusErr
	}
	v := h.sr
	if h.busyPolls > 0 {
		h.busyPolls--
		v |= 1
	}
	if width == 8 {
		v &= 0xFF
	}
	return v, nil
}

func (h *fakeHost) Idle() bool {
	if h.hostBusy > 0 {
		h.hostBusy--
		return false
	}
	return true
}

func (h *fakeHost) ConfigureReadMode(mode ReadMode) error {
	h.mode = mode
	h.modeSet = true
	return nil
}

func (h *fakeHost) MaxTransfer() int {
	if h.max == 0 {
		return maxFTDITransfer - cmdBytes
	}
	return h.max
}

// opcodes flattens recorded commands for order assertions.
func opcodes(cmds []Command) []byte {
	ops := make([]byte, len(cmds))
	for i, c := range cmds {
		ops[i] = c.Opcode
	}
	return ops
}

// programs filters the recorded page program commands.
func programs(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Opcode == flashCmdPageProgram {
			out = append(out, c)
		}
	}
	return out
}
