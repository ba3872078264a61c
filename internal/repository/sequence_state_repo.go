package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fernwood/playoutd/internal/models"
)

// sequenceStateRepo implements SequenceStateRepository using GORM.
type sequenceStateRepo struct {
	db *gorm.DB
}

// NewSequenceStateRepository creates a new SequenceStateRepository.
func NewSequenceStateRepository(db *gorm.DB) *sequenceStateRepo {
	return &sequenceStateRepo{db: db}
}

// Get retrieves the cursor for a (channel, zone, family) key, or nil.
func (r *sequenceStateRepo) Get(ctx context.Context, channelSlug string, zoneID models.ULID, familyKey string) (*models.SequenceState, error) {
	var state models.SequenceState
	err := r.db.WithContext(ctx).
		Where("channel_slug = ? AND zone_id = ? AND family_key = ?", channelSlug, zoneID, familyKey).
		First(&state).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting sequence state: %w", err)
	}
	return &state, nil
}

// Upsert creates or updates a cursor on its composite key.
func (r *sequenceStateRepo) Upsert(ctx context.Context, state *models.SequenceState) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "channel_slug"}, {Name: "zone_id"}, {Name: "family_key"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"next_index", "last_rotated_ms", "updated_at"}),
		}).
		Create(state).Error
	if err != nil {
		return fmt.Errorf("upserting sequence state: %w", err)
	}
	return nil
}
