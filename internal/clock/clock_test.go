package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeClock_Advance(t *testing.T) {
	c := NewFakeClock(100_000)

	assert.Equal(t, int64(100_000), c.NowUTCMs())
	assert.Equal(t, int64(0), c.MonotonicNS())

	c.Advance(5 * time.Second)
	assert.Equal(t, int64(105_000), c.NowUTCMs())
	assert.Equal(t, int64(5*time.Second), c.MonotonicNS())
}

func TestFakeClock_SetUTCMsLeavesMonotonicAlone(t *testing.T) {
	c := NewFakeClock(100_000)
	c.Advance(time.Second)

	c.SetUTCMs(500_000)
	assert.Equal(t, int64(500_000), c.NowUTCMs())
	assert.Equal(t, int64(time.Second), c.MonotonicNS())
}

func TestSystemClock_MonotonicAdvances(t *testing.T) {
	c := NewSystemClock()
	first := c.MonotonicNS()
	second := c.MonotonicNS()
	assert.GreaterOrEqual(t, second, first)
	assert.Greater(t, c.NowUTCMs(), int64(0))
}

func TestSessionEpoch_MonoDeadlineNS(t *testing.T) {
	c := NewFakeClock(1_000_000)
	c.Advance(3 * time.Second)

	epoch := NewSessionEpoch(c)
	assert.Equal(t, int64(1_003_000), epoch.UTCMs)
	assert.Equal(t, int64(3*time.Second), epoch.MonoNS)

	// A deadline 30s past the epoch lands 30s later on the monotonic line.
	deadline := epoch.MonoDeadlineNS(epoch.UTCMs + 30_000)
	assert.Equal(t, epoch.MonoNS+int64(30*time.Second), deadline)

	// Deadlines are epoch-derived: stepping the wall clock afterwards does
	// not change the mapping.
	c.SetUTCMs(9_999_999)
	assert.Equal(t, deadline, epoch.MonoDeadlineNS(epoch.UTCMs+30_000))
}
