package spinor

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitIdleImmediate(t *testing.T) {
	h := newFakeHost()
	c := NewChip(h, GenericDriver)

	assert.NoError(t, GenericDriver.WaitIdle(c, 10*time.Millisecond))
	assert.Equal(t, 1, h.statusReads)
}

func TestWaitIdleChipBusy(t *testing.T) {
	h := newFakeHost()
	h.busyPolls = 5
	c := NewChip(h, GenericDriver)

	assert.NoError(t, GenericDriver.WaitIdle(c, 100*time.Millisecond))
	assert.Equal(t, 0, h.busyPolls)
}

func TestWaitIdleTimeout(t *testing.T) {
	h := newFakeHost()
	h.busyPolls = 1 << 30 // busy forever
	c := NewChip(h, GenericDriver)

	start := time.Now()
	err := GenericDriver.WaitIdle(c, 5*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 2*time.Second, "must not hang past the budget")
}

func TestWaitIdleSharedBudget(t *testing.T) {
	// 2ms buys 20 polls at the 100µs poll interval. The host-busy and
	// chip-busy phases draw down the same budget, so 12+12 polls must time
	// out even though either phase alone would fit.
	const budget = 2 * time.Millisecond

	h := newFakeHost()
	h.hostBusy = 12
	h.busyPolls = 12
	c := NewChip(h, GenericDriver)
	assert.ErrorIs(t, GenericDriver.WaitIdle(c, budget), ErrTimeout)

	h = newFakeHost()
	h.hostBusy = 12
	h.busyPolls = 4
	c = NewChip(h, GenericDriver)
	assert.NoError(t, GenericDriver.WaitIdle(c, budget))
}

func TestWaitIdleStatusReadError(t *testing.T) {
	h := newFakeHost()
	h.statusErr = errors.New("bus fault")
	c := NewChip(h, GenericDriver)

	err := GenericDriver.WaitIdle(c, 10*time.Millisecond)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout, "I/O failure must stay distinguishable from timeout")
	assert.Equal(t, h.statusErr, err)
}

func TestWaitIdleNilChipWithoutDefault(t *testing.T) {
	SetDefaultChip(nil)
	err := GenericDriver.WaitIdle(nil, time.Millisecond)
	assert.ErrorIs(t, err, ErrNotInitialized)
}
