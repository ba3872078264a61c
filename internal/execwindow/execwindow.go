// Package execwindow holds the in-memory, sorted window of execution-ready
// blocks. The horizon manager is the only writer; the channel manager and the
// HTTP status surface read it.
package execwindow

import (
	"sort"
	"sync"

	"github.com/fernwood/playoutd/internal/models"
)

// Entry is one execution-ready block, the structural twin of a
// transmission-log entry.
type Entry struct {
	BlockID    string                 `json:"block_id"`
	StartUTCMs int64                  `json:"start_utc_ms"`
	EndUTCMs   int64                  `json:"end_utc_ms"`
	Segments   []models.SegmentRecord `json:"segments"`
}

// DurationMs returns the entry length.
func (e Entry) DurationMs() int64 { return e.EndUTCMs - e.StartUTCMs }

// Store is a thread-safe window of entries sorted by start time. Entries are
// append-only; removal happens only through Prune, driven by the horizon
// manager's retention policy.
type Store struct {
	mu      sync.RWMutex
	entries []Entry
	byID    map[string]struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{byID: make(map[string]struct{})}
}

// AddEntries appends entries the store has not seen, then re-sorts.
// Duplicate block IDs are silently ignored, which makes horizon extension
// idempotent.
func (s *Store) AddEntries(entries []Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	added := false
	for _, e := range entries {
		if _, ok := s.byID[e.BlockID]; ok {
			continue
		}
		s.byID[e.BlockID] = struct{}{}
		s.entries = append(s.entries, e)
		added = true
	}
	if added {
		sort.Slice(s.entries, func(i, j int) bool {
			return s.entries[i].StartUTCMs < s.entries[j].StartUTCMs
		})
	}
}

// NextEntry returns the first entry starting strictly after afterUTCMs.
func (s *Store) NextEntry(afterUTCMs int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].StartUTCMs > afterUTCMs
	})
	if i == len(s.entries) {
		return Entry{}, false
	}
	return s.entries[i], true
}

// ActiveEntryAt returns the entry covering nowUTCMs, if any:
// start <= now < end.
func (s *Store) ActiveEntryAt(nowUTCMs int64) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := sort.Search(len(s.entries), func(i int) bool {
		return s.entries[i].StartUTCMs > nowUTCMs
	})
	if i == 0 {
		return Entry{}, false
	}
	candidate := s.entries[i-1]
	if nowUTCMs < candidate.EndUTCMs {
		return candidate, true
	}
	return Entry{}, false
}

// WindowStart returns the earliest entry start, or false when empty.
func (s *Store) WindowStart() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[0].StartUTCMs, true
}

// WindowEnd returns the latest entry end, or false when empty.
func (s *Store) WindowEnd() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return 0, false
	}
	return s.entries[len(s.entries)-1].EndUTCMs, true
}

// Len returns the number of entries held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Snapshot returns a copy of the window in order.
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Prune drops entries ending at or before cutoffUTCMs and reports how many
// were removed.
func (s *Store) Prune(cutoffUTCMs int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.entries[:0]
	removed := 0
	for _, e := range s.entries {
		if e.EndUTCMs <= cutoffUTCMs {
			delete(s.byID, e.BlockID)
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return removed
}
