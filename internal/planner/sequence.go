package planner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/repository"
)

// SequenceStore serializes rotation-cursor advances per (channel, zone,
// family) key. The cursor only moves forward; it is mutated exclusively by
// the planner through Next.
type SequenceStore struct {
	repo repository.SequenceStateRepository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewSequenceStore creates a SequenceStore over the given repository.
func NewSequenceStore(repo repository.SequenceStateRepository) *SequenceStore {
	return &SequenceStore{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// FamilyKey derives the stable identity of an ordered program family.
func FamilyKey(programs []models.ProgramRef) string {
	keys := make([]string, len(programs))
	for i, p := range programs {
		keys[i] = p.Key()
	}
	return strings.Join(keys, "|")
}

// Next returns the current rotation index for the key and advances the cursor
// by one. rotatedAtMs records the grid slot that caused the advance.
func (s *SequenceStore) Next(ctx context.Context, channelSlug string, zoneID models.ULID, familyKey string, familySize int, rotatedAtMs int64) (int, error) {
	if familySize <= 0 {
		return 0, fmt.Errorf("family size must be positive, got %d", familySize)
	}

	lock := s.keyLock(channelSlug + "/" + zoneID.String() + "/" + familyKey)
	lock.Lock()
	defer lock.Unlock()

	state, err := s.repo.Get(ctx, channelSlug, zoneID, familyKey)
	if err != nil {
		return 0, err
	}
	if state == nil {
		state = &models.SequenceState{
			ChannelSlug: channelSlug,
			ZoneID:      zoneID,
			FamilyKey:   familyKey,
		}
	}

	index := state.NextIndex % familySize
	state.NextIndex++
	state.LastRotatedMs = rotatedAtMs
	if err := s.repo.Upsert(ctx, state); err != nil {
		return 0, err
	}
	return index, nil
}

func (s *SequenceStore) keyLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}
