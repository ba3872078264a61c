package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fernwood/playoutd/internal/models"
)

// trafficRepo implements TrafficRepository using GORM.
type trafficRepo struct {
	db *gorm.DB
}

// NewTrafficRepository creates a new TrafficRepository.
func NewTrafficRepository(db *gorm.DB) *trafficRepo {
	return &trafficRepo{db: db}
}

// GetPolicy returns the channel's traffic policy, or nil if none exists.
func (r *trafficRepo) GetPolicy(ctx context.Context, channelSlug string) (*models.TrafficChannelPolicy, error) {
	var policy models.TrafficChannelPolicy
	err := r.db.WithContext(ctx).
		Where("channel_slug = ?", channelSlug).
		First(&policy).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting traffic policy: %w", err)
	}
	return &policy, nil
}

// RecordPlays appends play-log rows.
func (r *trafficRepo) RecordPlays(ctx context.Context, plays []*models.TrafficPlayLog) error {
	if len(plays) == 0 {
		return nil
	}
	for _, p := range plays {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	if err := r.db.WithContext(ctx).Create(plays).Error; err != nil {
		return fmt.Errorf("recording traffic plays: %w", err)
	}
	return nil
}

// LastPlayed returns the most recent play time per asset URI for the channel
// since the given time.
//
// The max is folded here rather than with MAX(played_at): aggregates lose the
// column's datetime affinity on sqlite, so the driver hands back a raw string
// that does not scan into time.Time.
func (r *trafficRepo) LastPlayed(ctx context.Context, channelSlug string, since time.Time) (map[string]time.Time, error) {
	type row struct {
		AssetURI string
		PlayedAt time.Time
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.TrafficPlayLog{}).
		Select("asset_uri, played_at").
		Where("channel_slug = ? AND played_at >= ?", channelSlug, since).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("getting last played: %w", err)
	}
	result := make(map[string]time.Time, len(rows))
	for _, rec := range rows {
		if last, ok := result[rec.AssetURI]; !ok || rec.PlayedAt.After(last) {
			result[rec.AssetURI] = rec.PlayedAt
		}
	}
	return result, nil
}

// PlayCounts returns plays per asset URI for the channel within [from, to).
func (r *trafficRepo) PlayCounts(ctx context.Context, channelSlug string, from, to time.Time) (map[string]int, error) {
	type row struct {
		AssetURI string
		Count    int
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&models.TrafficPlayLog{}).
		Select("asset_uri, COUNT(*) AS count").
		Where("channel_slug = ? AND played_at >= ? AND played_at < ?", channelSlug, from, to).
		Group("asset_uri").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("getting play counts: %w", err)
	}
	result := make(map[string]int, len(rows))
	for _, r := range rows {
		result[r.AssetURI] = r.Count
	}
	return result, nil
}
