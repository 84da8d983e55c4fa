package spinor

import "time"

// Flash commands:
//   - [N25Q32|Table 16: Command Set]
//   - [W25Q128|8.1.2 Instruction Set Table 1]
const (
	flashCmdPowerUp     = 0xAB // Release Power Down
	flashCmdPowerDown   = 0xB9
	flashCmdReadID      = 0x9F
	flashCmdResetEnable = 0x66
	flashCmdReset       = 0x99

	flashCmdRead        = 0x03
	flashCmdFastRead    = 0x0B
	flashCmdDualOutRead = 0x3B
	flashCmdDualIORead  = 0xBB
	flashCmdQuadOutRead = 0x6B
	flashCmdQuadIORead  = 0xEB

	flashCmdWriteEnable  = 0x06
	flashCmdWriteDisable = 0x04
	flashCmdPageProgram  = 0x02

	flashCmdEraseSector = 0x20 // Subsector Erase / Sector Erase (4KB)
	flashCmdEraseBlock  = 0xD8 // Sector Erase / Block Erase (64KB)
	flashCmdEraseChip   = 0xC7 // Bulk Erase / Chip Erase

	flashCmdReadStatus  = 0x05
	flashCmdWriteStatus = 0x01
)

// Driver is the operation table of a flash chip driver. Generic populates
// every slot with the lowest-common-denominator implementation; a
// chip-specific driver embeds *Generic and overrides only the slots its chip
// needs.
//
// An overriding implementation must honor the same contracts as the slot it
// replaces: mutating operations leave the chip idle on return, and every
// wait is bounded by the caller's timeout.
type Driver interface {
	// Probe reads the chip's JEDEC id and succeeds whenever the read does,
	// even if the id differs from flashID. Whether the mismatch disqualifies
	// this driver is the selection policy's call, not ours.
	Probe(c *Chip, flashID uint32) error

	// Reset issues the reset sequence and waits for the chip to settle.
	Reset(c *Chip) error

	// DetectSize derives the chip capacity from its JEDEC id and records it
	// on the handle.
	DetectSize(c *Chip) (uint32, error)

	// EraseChip erases the entire chip.
	EraseChip(c *Chip) error

	// EraseSector erases the 4KB sector containing addr. Alignment is the
	// caller's responsibility; misaligned addresses do whatever the
	// hardware does.
	EraseSector(c *Chip, addr uint32) error

	// EraseBlock erases the 64KB block containing addr.
	EraseBlock(c *Chip, addr uint32) error

	// Read fills buf from flash starting at addr, using the read command of
	// the configured read mode.
	Read(c *Chip, buf []byte, addr uint32) error

	// PageProgram programs data at addr in one transaction. len(data) must
	// not exceed the host's MaxTransfer and the write must not cross a page
	// boundary; use Write unless both are already guaranteed.
	PageProgram(c *Chip, addr uint32, data []byte) error

	// Write programs data at addr, splitting it into page programs as
	// needed. On failure, chunks written before the failing one remain
	// written.
	Write(c *Chip, addr uint32, data []byte) error

	// WriteEncrypted programs data through the host's flash encryption
	// engine. The generic driver has none and always fails with
	// ErrUnsupportedHost.
	WriteEncrypted(c *Chip, addr uint32, data []byte) error

	// WriteEnable sets (protect=false) or clears (protect=true) the chip's
	// write enable latch and verifies it took effect.
	WriteEnable(c *Chip, protect bool) error

	// WaitIdle blocks until both the chip and the host report idle, or the
	// timeout budget runs out (ErrTimeout).
	WaitIdle(c *Chip, timeout time.Duration) error

	// SetReadMode prepares the chip and host for the configured read mode,
	// including the chip's quad-enable bit for quad modes.
	SetReadMode(c *Chip) error

	// ConfigHostReadMode applies the configured read mode to the host.
	// Fails with ErrNotInitialized if the mode was never set.
	ConfigHostReadMode(c *Chip) error
}

// Generic drives any chip that speaks the common SPI NOR command set. The
// zero value is a usable driver; fields only need setting for chips that
// deviate from the defaults.
type Generic struct {
	// PageSize is the program page size in bytes, a power of two.
	// 0 means 256.
	PageSize uint32

	// QE describes the chip family's quad-enable register layout. The zero
	// value selects the 16-bit WRSR layout with QE at bit 9.
	QE StatusRegisterLayout
}

var _ Driver = (*Generic)(nil)

// GenericDriver is the shared ready-to-use generic operation table.
var GenericDriver = &Generic{}

func (g *Generic) pageSize() uint32 {
	if g.PageSize == 0 {
		return 256
	}
	return g.PageSize
}

func (g *Generic) qeLayout() StatusRegisterLayout {
	if g.QE == (StatusRegisterLayout{}) {
		return QELayoutWRSR16
	}
	return g.QE
}
