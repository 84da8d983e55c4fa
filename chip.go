package spinor

// ReadMode selects the read command and bus line usage for a chip.
// The zero value means the mode was never configured.
type ReadMode int

const (
	readModeUnset ReadMode = iota

	ReadModeSlow    // 03h, single line, no dummy cycles
	ReadModeFast    // 0Bh, single line
	ReadModeDualOut // 3Bh, data on two lines
	ReadModeDualIO  // BBh, address and data on two lines
	ReadModeQuadOut // 6Bh, data on four lines
	ReadModeQuadIO  // EBh, address and data on four lines
)

// Quad reports whether the mode needs the chip's quad-enable bit set.
func (m ReadMode) Quad() bool {
	return m == ReadModeQuadOut || m == ReadModeQuadIO
}

func (m ReadMode) opcode() byte {
	switch m {
	case ReadModeFast:
		return flashCmdFastRead
	case ReadModeDualOut:
		return flashCmdDualOutRead
	case ReadModeDualIO:
		return flashCmdDualIORead
	case ReadModeQuadOut:
		return flashCmdQuadOutRead
	case ReadModeQuadIO:
		return flashCmdQuadIORead
	default:
		return flashCmdRead
	}
}

func (m ReadMode) String() string {
	switch m {
	case ReadModeSlow:
		return "slow"
	case ReadModeFast:
		return "fast"
	case ReadModeDualOut:
		return "dout"
	case ReadModeDualIO:
		return "dio"
	case ReadModeQuadOut:
		return "qout"
	case ReadModeQuadIO:
		return "qio"
	default:
		return "unset"
	}
}

// Chip is the handle for one attached flash device. It pairs a Host with the
// driver operation table used to talk to the chip. The caller owns the
// handle; the driver borrows it for the duration of each call and performs
// no internal locking, so concurrent calls on one chip must be serialized
// externally.
type Chip struct {
	Host Host

	// ReadMode is the read mode the chip should operate in. Set it before
	// calling SetReadMode or ConfigHostReadMode.
	ReadMode ReadMode

	// Size is the capacity in bytes, filled in by DetectSize.
	Size uint32

	drv Driver
	id  uint32
	pr  *chipParams
}

// NewChip returns a chip handle driven by drv over h.
func NewChip(h Host, drv Driver) *Chip {
	return &Chip{Host: h, drv: drv}
}

// Driver returns the chip's operation table.
func (c *Chip) Driver() Driver { return c.drv }

// ID returns the JEDEC id cached by the last ReadID, or zero.
func (c *Chip) ID() uint32 { return c.id }

// defaultChip substitutes for a nil chip handle at the API boundary,
// mirroring the convention that a missing handle means "the" flash chip of
// the process. It is owned by whoever calls SetDefaultChip.
var defaultChip *Chip

// SetDefaultChip registers the chip substituted when an operation is called
// with a nil handle.
func SetDefaultChip(c *Chip) { defaultChip = c }

func resolveChip(c *Chip) (*Chip, error) {
	if c != nil {
		return c, nil
	}
	if defaultChip != nil {
		return defaultChip, nil
	}
	return nil, ErrNotInitialized
}
