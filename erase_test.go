package spinor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraseChipProtocolOrder(t *testing.T) {
	h := newFakeHost()
	c := NewChip(h, GenericDriver)

	require.NoError(t, GenericDriver.EraseChip(c))
	require.Equal(t, []byte{flashCmdWriteEnable, flashCmdEraseChip}, opcodes(h.cmds))
	assert.False(t, h.cmds[1].HasAddr, "chip erase takes no address")
	assert.GreaterOrEqual(t, h.statusReads, 2, "WEL check plus at least one idle poll")
}

func TestEraseSectorProtocolOrder(t *testing.T) {
	h := newFakeHost()
	c := NewChip(h, GenericDriver)

	require.NoError(t, GenericDriver.EraseSector(c, 0x1000))
	require.Equal(t, []byte{flashCmdWriteEnable, flashCmdEraseSector}, opcodes(h.cmds))
	assert.True(t, h.cmds[1].HasAddr)
	assert.Equal(t, uint32(0x1000), h.cmds[1].Addr)
}

func TestEraseBlockProtocolOrder(t *testing.T) {
	h := newFakeHost()
	c := NewChip(h, GenericDriver)

	require.NoError(t, GenericDriver.EraseBlock(c, 0x20000))
	require.Equal(t, []byte{flashCmdWriteEnable, flashCmdEraseBlock}, opcodes(h.cmds))
	assert.Equal(t, uint32(0x20000), h.cmds[1].Addr)
}

func TestEraseStopsAfterWriteEnableFailure(t *testing.T) {
	h := newFakeHost()
	boom := errors.New("nack")
	h.cmdErr = func(cmd Command) error {
		if cmd.Opcode == flashCmdWriteEnable {
			return boom
		}
		return nil
	}
	c := NewChip(h, GenericDriver)

	err := GenericDriver.EraseChip(c)
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, opcodes(h.cmds), byte(flashCmdEraseChip),
		"erase command must not be issued after a failed write enable")
}

func TestEraseStopsAfterEraseCommandFailure(t *testing.T) {
	h := newFakeHost()
	boom := errors.New("nack")
	h.cmdErr = func(cmd Command) error {
		if cmd.Opcode == flashCmdEraseSector {
			return boom
		}
		return nil
	}
	c := NewChip(h, GenericDriver)

	err := GenericDriver.EraseSector(c, 0)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, h.statusReads, "no idle wait after a failed erase command")
}

func TestEraseRangeDecomposition(t *testing.T) {
	h := newFakeHost()
	c := NewChip(h, GenericDriver)

	// 2 blocks + 1 sector.
	require.NoError(t, EraseRange(c, 0, 2*blockSize+sectorSize))

	var erases []Command
	for _, cmd := range h.cmds {
		if cmd.Opcode == flashCmdEraseBlock || cmd.Opcode == flashCmdEraseSector {
			erases = append(erases, cmd)
		}
	}
	require.Len(t, erases, 3)
	assert.Equal(t, byte(flashCmdEraseBlock), erases[0].Opcode)
	assert.Equal(t, uint32(0), erases[0].Addr)
	assert.Equal(t, byte(flashCmdEraseBlock), erases[1].Opcode)
	assert.Equal(t, uint32(blockSize), erases[1].Addr)
	assert.Equal(t, byte(flashCmdEraseSector), erases[2].Opcode)
	assert.Equal(t, uint32(2*blockSize), erases[2].Addr)
}
