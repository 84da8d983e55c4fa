package spinor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownChipTimeouts(t *testing.T) {
	h := newFakeHost()
	h.id = [3]byte{0x20, 0xBA, 0x16}
	c := NewChip(h, GenericDriver)

	_, err := ReadID(c)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, c.chipEraseTimeout())
	assert.Equal(t, 5*time.Millisecond, c.pageProgramTimeout())
}

func TestUnknownChipFallsBackToWorstCase(t *testing.T) {
	h := newFakeHost()
	h.id = [3]byte{0xC8, 0x40, 0x17} // not in the table
	c := NewChip(h, GenericDriver)

	_, err := ReadID(c)
	require.NoError(t, err)

	// Unknown parts get the slowest limit any known datasheet specifies.
	assert.Equal(t, 200*time.Second, c.chipEraseTimeout())
	assert.Equal(t, 5*time.Millisecond, c.pageProgramTimeout())
	assert.Equal(t, 3*time.Second, c.blockEraseTimeout())
}

func TestChipName(t *testing.T) {
	assert.Equal(t, "Winbond W25Q 32Mb", ChipName(flashIDWinbondW25Q32))
	assert.Equal(t, "", ChipName(0xC84017))
}
