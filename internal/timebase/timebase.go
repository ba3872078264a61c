// Package timebase implements the rational time and grid arithmetic that
// underpins block planning and fence pacing.
//
// All transforms are integer-only. Wall-clock quantities are milliseconds
// since the Unix epoch (UTC); fence quantities are frame indices at the
// channel's rational frame rate (for example 30000/1001). Floating point is
// deliberately absent: at fractional frame rates the ms-quantized
// approximation drifts by tens of milliseconds per block.
package timebase

import (
	"errors"
	"fmt"
)

// ErrInvalidTimebase indicates a non-positive frame-rate numerator or
// denominator. This is a programmer error, not a runtime condition.
var ErrInvalidTimebase = errors.New("invalid timebase")

const msPerMinute = 60_000

// Timebase is a rational frame rate, frames per second = Num/Den.
type Timebase struct {
	Num int64
	Den int64
}

// NTSC2997 is the 29.97 fps NTSC timebase.
var NTSC2997 = Timebase{Num: 30000, Den: 1001}

// Validate reports whether the timebase is usable.
func (tb Timebase) Validate() error {
	if tb.Num <= 0 || tb.Den <= 0 {
		return fmt.Errorf("%w: %d/%d", ErrInvalidTimebase, tb.Num, tb.Den)
	}
	return nil
}

// String renders the timebase as "num/den".
func (tb Timebase) String() string {
	return fmt.Sprintf("%d/%d", tb.Num, tb.Den)
}

// GridStartMs floors a UTC instant to the most recent grid boundary.
// gridMinutes must be positive; boundaries are exact multiples of
// gridMinutes*60_000 ms since the epoch.
func GridStartMs(nowUTCMs int64, gridMinutes int) int64 {
	gridMs := int64(gridMinutes) * msPerMinute
	return floorDiv(nowUTCMs, gridMs) * gridMs
}

// GridEndMs returns the end of the grid block containing nowUTCMs.
func GridEndMs(nowUTCMs int64, gridMinutes int) int64 {
	return GridStartMs(nowUTCMs, gridMinutes) + int64(gridMinutes)*msPerMinute
}

// ElapsedInGridMs returns the milliseconds elapsed since the current grid
// boundary.
func ElapsedInGridMs(nowUTCMs int64, gridMinutes int) int64 {
	return nowUTCMs - GridStartMs(nowUTCMs, gridMinutes)
}

// RemainingInGridMs returns the milliseconds remaining until the next grid
// boundary.
func RemainingInGridMs(nowUTCMs int64, gridMinutes int) int64 {
	return GridEndMs(nowUTCMs, gridMinutes) - nowUTCMs
}

// IsGridAlignedMs reports whether a UTC instant lies exactly on a grid
// boundary.
func IsGridAlignedMs(utcMs int64, gridMinutes int) bool {
	return utcMs%(int64(gridMinutes)*msPerMinute) == 0
}

// FenceTick converts a millisecond offset into a frame index at the given
// timebase, rounding up: ceil(deltaMs * Num / (Den * 1000)).
//
// The exact rational form matters. The tempting shortcut
// ceil(deltaMs / round(1000/fps)) accumulates roughly 30 ms of error per
// 30-second block at 30000/1001 and must not be reintroduced.
func FenceTick(deltaMs int64, tb Timebase) (int64, error) {
	if err := tb.Validate(); err != nil {
		return 0, err
	}
	denMs := tb.Den * 1000
	return ceilDiv(deltaMs*tb.Num, denMs), nil
}

// DeadlineOffsetNS returns the exact nanosecond offset of frame N from the
// session epoch, without floating point and without overflow for multi-hour
// sessions.
//
// With nsTotal = 1e9*Den split into whole = nsTotal/Num and rem = nsTotal%Num,
// the offset is N*whole + (N*rem)/Num. rem < Num keeps the second product
// within int64 range for any realistic N.
func DeadlineOffsetNS(frameIndex int64, tb Timebase) (int64, error) {
	if err := tb.Validate(); err != nil {
		return 0, err
	}
	if frameIndex < 0 {
		return 0, fmt.Errorf("%w: negative frame index %d", ErrInvalidTimebase, frameIndex)
	}
	nsTotal := int64(1_000_000_000) * tb.Den
	whole := nsTotal / tb.Num
	rem := nsTotal % tb.Num
	return frameIndex*whole + (frameIndex*rem)/tb.Num, nil
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// ceilDiv divides rounding toward positive infinity.
func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) == (b < 0) {
		q++
	}
	return q
}
