package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fernwood/playoutd/internal/models"
)

// ErrArtifactLocked indicates an attempt to rewrite a locked compiled log.
// The operator must create an override record before replacing it.
var ErrArtifactLocked = errors.New("compiled program log is locked")

// compiledProgramLogRepo implements CompiledProgramLogRepository using GORM.
type compiledProgramLogRepo struct {
	db *gorm.DB
}

// NewCompiledProgramLogRepository creates a new CompiledProgramLogRepository.
func NewCompiledProgramLogRepository(db *gorm.DB) *compiledProgramLogRepo {
	return &compiledProgramLogRepo{db: db}
}

// Create persists a compiled log. A locked row for the same (channel, day) is
// write-once: the attempt fails with ErrArtifactLocked.
func (r *compiledProgramLogRepo) Create(ctx context.Context, log *models.CompiledProgramLog) error {
	if err := log.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.CompiledProgramLog
		err := tx.Where("channel_slug = ? AND broadcast_day = ?", log.ChannelSlug, log.BroadcastDay).
			First(&existing).Error
		switch {
		case err == nil:
			if existing.Locked {
				return fmt.Errorf("%w: %s/%s", ErrArtifactLocked, log.ChannelSlug, log.BroadcastDay)
			}
			log.ID = existing.ID
			return tx.Save(log).Error
		case err == gorm.ErrRecordNotFound:
			return tx.Create(log).Error
		default:
			return fmt.Errorf("checking existing compiled log: %w", err)
		}
	})
}

// GetByChannelDay retrieves the compiled log for a channel and day, or nil.
func (r *compiledProgramLogRepo) GetByChannelDay(ctx context.Context, channelSlug, broadcastDay string) (*models.CompiledProgramLog, error) {
	var log models.CompiledProgramLog
	err := r.db.WithContext(ctx).
		Where("channel_slug = ? AND broadcast_day = ?", channelSlug, broadcastDay).
		First(&log).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting compiled log: %w", err)
	}
	return &log, nil
}

// transmissionLogRepo implements TransmissionLogRepository using GORM.
type transmissionLogRepo struct {
	db *gorm.DB
}

// NewTransmissionLogRepository creates a new TransmissionLogRepository.
func NewTransmissionLogRepository(db *gorm.DB) *transmissionLogRepo {
	return &transmissionLogRepo{db: db}
}

// UpsertBlocks writes block rows, ignoring duplicates by block ID. Duplicate
// blocks are expected from idempotent horizon extension.
func (r *transmissionLogRepo) UpsertBlocks(ctx context.Context, blocks []*models.TransmissionLogBlock) error {
	if len(blocks) == 0 {
		return nil
	}
	for _, b := range blocks {
		if err := b.Validate(); err != nil {
			return err
		}
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(blocks).Error
	if err != nil {
		return fmt.Errorf("upserting transmission log blocks: %w", err)
	}
	return nil
}

// GetByChannelRange returns block rows overlapping [startMs, endMs), ordered
// by start time.
func (r *transmissionLogRepo) GetByChannelRange(ctx context.Context, channelSlug string, startMs, endMs int64) ([]*models.TransmissionLogBlock, error) {
	var blocks []*models.TransmissionLogBlock
	err := r.db.WithContext(ctx).
		Where("channel_slug = ?", channelSlug).
		Where("end_utc_ms > ? AND start_utc_ms < ?", startMs, endMs).
		Order("start_utc_ms ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("getting transmission log blocks: %w", err)
	}
	return blocks, nil
}
