package spinor

// Command describes a single SPI flash transaction: one opcode, an optional
// 24-bit address phase, and an optional data phase. Tx bytes are clocked out
// after the address; Rx is filled with the bytes clocked back after Tx.
type Command struct {
	Opcode  byte
	Addr    uint32 // 24-bit flash address, used only when HasAddr is set
	HasAddr bool
	Tx      []byte
	Rx      []byte
}

// Host is the transaction facade of the underlying SPI controller. The chip
// driver never touches the bus directly: every hardware access goes through
// one of these methods.
//
// A Host is not required to be safe for concurrent use; the driver issues
// transactions strictly sequentially from a single call chain.
type Host interface {
	// Command executes cmd as one chip-select-framed transaction. The
	// combined length of Tx and Rx must not exceed MaxTransfer.
	Command(cmd Command) error

	// ReadStatus reads the chip status register via the standard RDSR
	// command. width is the register width in bits, 8 or 16; for 8 the high
	// byte of the result is zero.
	ReadStatus(width int) (uint16, error)

	// Idle reports whether the host's own hardware state machine has
	// finished all issued work. Hosts that complete every transaction
	// synchronously simply return true.
	Idle() bool

	// ConfigureReadMode sets up the host's line count and phase settings
	// for mode. Hosts lacking the required lines return an error wrapping
	// ErrUnsupportedHost.
	ConfigureReadMode(mode ReadMode) error

	// MaxTransfer returns the most data bytes the host can move in the
	// data phase of a single Command call.
	MaxTransfer() int
}
