// Package clock provides the master clock abstraction for playoutd.
//
// Every timing decision on the pacing path (runway, feed-ahead, session
// drift, join-in-progress offsets) reads from an injected MasterClock rather
// than the OS wall clock, so runtime behaviour is reproducible under a
// stepped fake clock in tests.
package clock

import (
	"sync"
	"time"
)

// MasterClock is the single time authority for the playout runtime.
//
// NowUTCMs carries schedule authority (wall-clock UTC). MonotonicNS is the
// pacing domain: deadlines are computed monotonically so wall-clock steps
// never shift execution.
type MasterClock interface {
	// NowUTCMs returns the current wall-clock time in integer milliseconds
	// since the Unix epoch (UTC).
	NowUTCMs() int64
	// MonotonicNS returns nanoseconds on a monotonic timeline. The origin is
	// unspecified; only differences are meaningful.
	MonotonicNS() int64
}

// SystemClock reads the operating system clocks. The monotonic reading is
// anchored at construction so it is immune to wall-clock adjustments.
type SystemClock struct {
	base time.Time
}

// NewSystemClock creates a SystemClock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{base: time.Now()}
}

// NowUTCMs implements MasterClock.
func (c *SystemClock) NowUTCMs() int64 {
	return time.Now().UnixMilli()
}

// MonotonicNS implements MasterClock. time.Since uses the runtime monotonic
// reading embedded in the base timestamp.
func (c *SystemClock) MonotonicNS() int64 {
	return time.Since(c.base).Nanoseconds()
}

// FakeClock is a manually stepped clock for tests. Both domains advance
// together under Advance; the UTC reading can additionally be set directly.
type FakeClock struct {
	mu     sync.Mutex
	utcMs  int64
	monoNS int64
}

// NewFakeClock creates a FakeClock with the given initial UTC reading.
func NewFakeClock(utcMs int64) *FakeClock {
	return &FakeClock{utcMs: utcMs}
}

// NowUTCMs implements MasterClock.
func (c *FakeClock) NowUTCMs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.utcMs
}

// MonotonicNS implements MasterClock.
func (c *FakeClock) MonotonicNS() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.monoNS
}

// Advance steps both clock domains forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.utcMs += d.Milliseconds()
	c.monoNS += d.Nanoseconds()
}

// SetUTCMs sets the wall-clock reading without moving the monotonic domain,
// simulating an NTP step.
func (c *FakeClock) SetUTCMs(utcMs int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.utcMs = utcMs
}

// SessionEpoch is the immutable (UTC, monotonic) pair captured at session
// start. All session deadlines are derived from it: schedule authority stays
// UTC while execution deadlines live in the monotonic domain.
type SessionEpoch struct {
	UTCMs  int64
	MonoNS int64
}

// NewSessionEpoch captures the epoch pair from the given clock.
func NewSessionEpoch(c MasterClock) SessionEpoch {
	return SessionEpoch{UTCMs: c.NowUTCMs(), MonoNS: c.MonotonicNS()}
}

// MonoDeadlineNS maps a UTC schedule instant into the session's monotonic
// domain. The mapping is fixed at session start; later wall-clock steps do
// not move already-derived deadlines.
func (e SessionEpoch) MonoDeadlineNS(utcMs int64) int64 {
	return e.MonoNS + (utcMs-e.UTCMs)*int64(time.Millisecond)
}
