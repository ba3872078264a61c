package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fernwood/playoutd/internal/models"
)

// overrideRepo implements OverrideRepository using GORM.
type overrideRepo struct {
	db *gorm.DB
}

// NewOverrideRepository creates a new OverrideRepository.
func NewOverrideRepository(db *gorm.DB) *overrideRepo {
	return &overrideRepo{db: db}
}

// Create durably persists an override record. The database assigns the
// monotonic sequence number; it is populated on the record before return.
func (r *overrideRepo) Create(ctx context.Context, record *models.OverrideRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("creating override record: %w", err)
	}
	return nil
}

// GetByTarget returns all override records for a target, oldest first.
func (r *overrideRepo) GetByTarget(ctx context.Context, targetID string) ([]*models.OverrideRecord, error) {
	var records []*models.OverrideRecord
	err := r.db.WithContext(ctx).
		Where("target_id = ?", targetID).
		Order("seq ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("getting override records: %w", err)
	}
	return records, nil
}

// asRunRepo implements AsRunRepository using GORM.
type asRunRepo struct {
	db *gorm.DB
}

// NewAsRunRepository creates a new AsRunRepository.
func NewAsRunRepository(db *gorm.DB) *asRunRepo {
	return &asRunRepo{db: db}
}

// AppendBlock appends an as-run block with its segments. Rows are never
// updated through this repository; the log is append-only.
func (r *asRunRepo) AppendBlock(ctx context.Context, block *models.AsRunBlock) error {
	if err := block.Validate(); err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(block).Error; err != nil {
		return fmt.Errorf("appending as-run block: %w", err)
	}
	return nil
}

// GetByChannelRange returns as-run blocks for a channel within
// [startMs, endMs), oldest first, with segments preloaded.
func (r *asRunRepo) GetByChannelRange(ctx context.Context, channelSlug string, startMs, endMs int64) ([]*models.AsRunBlock, error) {
	var blocks []*models.AsRunBlock
	err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB { return db.Order("segment_index ASC") }).
		Where("channel_slug = ?", channelSlug).
		Where("start_utc_ms >= ? AND start_utc_ms < ?", startMs, endMs).
		Order("start_utc_ms ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, fmt.Errorf("getting as-run blocks: %w", err)
	}
	return blocks, nil
}

// LastBlock returns the most recent as-run block for a channel, or nil.
func (r *asRunRepo) LastBlock(ctx context.Context, channelSlug string) (*models.AsRunBlock, error) {
	var block models.AsRunBlock
	err := r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB { return db.Order("segment_index ASC") }).
		Where("channel_slug = ?", channelSlug).
		Order("start_utc_ms DESC").
		First(&block).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting last as-run block: %w", err)
	}
	return &block, nil
}
