package timebase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utcMs(t *testing.T, value string) int64 {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts.UnixMilli()
}

func TestGridStartMs(t *testing.T) {
	// 2025-01-15T10:07:00Z with a 30-minute grid floors to 10:00Z.
	now := utcMs(t, "2025-01-15T10:07:00Z")
	start := GridStartMs(now, 30)

	assert.Equal(t, utcMs(t, "2025-01-15T10:00:00Z"), start)
	assert.Equal(t, utcMs(t, "2025-01-15T10:30:00Z"), GridEndMs(now, 30))
	assert.Equal(t, int64(7*60_000), ElapsedInGridMs(now, 30))
	assert.Equal(t, int64(23*60_000), RemainingInGridMs(now, 30))
}

func TestGridStartMs_Idempotent(t *testing.T) {
	for _, grid := range []int{15, 30, 60} {
		now := utcMs(t, "2025-06-01T17:42:13Z")
		start := GridStartMs(now, grid)
		assert.Equal(t, start, GridStartMs(start, grid), "grid %d", grid)
		assert.True(t, IsGridAlignedMs(start, grid))
	}
}

func TestGridStartMs_ExactBoundary(t *testing.T) {
	boundary := utcMs(t, "2025-01-15T10:00:00Z")
	assert.Equal(t, boundary, GridStartMs(boundary, 30))
	assert.Equal(t, int64(0), ElapsedInGridMs(boundary, 30))
}

func TestFenceTick_ExactRational(t *testing.T) {
	// 30 seconds at 30000/1001 is ceil(30000*30000/1001000) = 900 frames.
	tick, err := FenceTick(30_000, NTSC2997)
	require.NoError(t, err)
	assert.Equal(t, int64(900), tick)

	// The ms-quantized approximation ceil(deltaMs / round(1000/fps)) would
	// give ceil(30000/33) = 910. Reject any drift back toward it.
	msQuantized := (int64(30_000) + 32) / 33
	assert.Equal(t, int64(910), msQuantized)
	assert.NotEqual(t, msQuantized, tick)
}

func TestFenceTick_Rounding(t *testing.T) {
	tests := []struct {
		deltaMs int64
		tb      Timebase
		want    int64
	}{
		{0, NTSC2997, 0},
		{1, NTSC2997, 1},                     // ceil(30/1001)
		{1_001, NTSC2997, 30},                // exactly 30 frames
		{1_000, Timebase{25, 1}, 25},         // PAL second
		{40, Timebase{25, 1}, 1},             // one PAL frame
		{41, Timebase{25, 1}, 2},             // just past one frame
		{3_600_000, NTSC2997, 107_893},       // one hour: ceil(3600000*30000/1001000)
		{86_400_000, NTSC2997, 2_589_411},    // one day: ceil(86400000*30/1001)
	}
	for _, tt := range tests {
		got, err := FenceTick(tt.deltaMs, tt.tb)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "delta %d at %s", tt.deltaMs, tt.tb)
	}
}

func TestFenceTick_InvalidTimebase(t *testing.T) {
	_, err := FenceTick(1000, Timebase{0, 1})
	assert.ErrorIs(t, err, ErrInvalidTimebase)
	_, err = FenceTick(1000, Timebase{30000, 0})
	assert.ErrorIs(t, err, ErrInvalidTimebase)
	_, err = FenceTick(1000, Timebase{-30000, 1001})
	assert.ErrorIs(t, err, ErrInvalidTimebase)
}

// TestDeadlineOffsetNS_ExactOverLongSessions checks the split-product form
// against arbitrary-precision arithmetic for frame indices spanning many
// hours of wall time.
func TestDeadlineOffsetNS_ExactOverLongSessions(t *testing.T) {
	frames := []int64{0, 1, 899, 900, 107_893, 1_078_920, 2_589_408, 10_000_000}
	for _, n := range frames {
		got, err := DeadlineOffsetNS(n, NTSC2997)
		require.NoError(t, err)

		// floor(n * 1e9 * den / num) with big.Int.
		exact := new(big.Int).Mul(big.NewInt(n), big.NewInt(1_000_000_000))
		exact.Mul(exact, big.NewInt(NTSC2997.Den))
		exact.Quo(exact, big.NewInt(NTSC2997.Num))
		require.True(t, exact.IsInt64())
		assert.Equal(t, exact.Int64(), got, "frame %d", n)
	}
}

func TestDeadlineOffsetNS_IntegerRates(t *testing.T) {
	// At 25/1 each frame is exactly 40ms.
	got, err := DeadlineOffsetNS(250, Timebase{25, 1})
	require.NoError(t, err)
	assert.Equal(t, int64(10*time.Second), got)
}

func TestDeadlineOffsetNS_Errors(t *testing.T) {
	_, err := DeadlineOffsetNS(10, Timebase{0, 0})
	assert.ErrorIs(t, err, ErrInvalidTimebase)
	_, err = DeadlineOffsetNS(-1, NTSC2997)
	assert.ErrorIs(t, err, ErrInvalidTimebase)
}
