package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/fernwood/playoutd/internal/models"
)

// schedulePlanRepo implements SchedulePlanRepository using GORM.
type schedulePlanRepo struct {
	db *gorm.DB
}

// NewSchedulePlanRepository creates a new SchedulePlanRepository.
func NewSchedulePlanRepository(db *gorm.DB) *schedulePlanRepo {
	return &schedulePlanRepo{db: db}
}

// Create creates a new schedule plan with its zones.
func (r *schedulePlanRepo) Create(ctx context.Context, plan *models.SchedulePlan) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	for i := range plan.Zones {
		if err := plan.Zones[i].Validate(); err != nil {
			return err
		}
	}
	if err := r.db.WithContext(ctx).Create(plan).Error; err != nil {
		return fmt.Errorf("creating schedule plan: %w", err)
	}
	return nil
}

// GetByID retrieves a plan by ID with zones preloaded.
func (r *schedulePlanRepo) GetByID(ctx context.Context, id models.ULID) (*models.SchedulePlan, error) {
	var plan models.SchedulePlan
	err := r.db.WithContext(ctx).
		Preload("Zones", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("id = ?", id).
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting schedule plan by ID: %w", err)
	}
	return &plan, nil
}

// GetActiveForChannel returns the highest-priority plan active for the channel
// on the given date.
func (r *schedulePlanRepo) GetActiveForChannel(ctx context.Context, channelSlug string, date time.Time) (*models.SchedulePlan, error) {
	var plan models.SchedulePlan
	err := r.db.WithContext(ctx).
		Preload("Zones", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Where("channel_slug = ?", channelSlug).
		Where("active_from IS NULL OR active_from <= ?", date).
		Where("active_until IS NULL OR active_until >= ?", date).
		Order("priority DESC").
		First(&plan).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting active plan for channel %s: %w", channelSlug, err)
	}
	return &plan, nil
}

// GetChannels returns the distinct channel slugs that have plans.
func (r *schedulePlanRepo) GetChannels(ctx context.Context) ([]string, error) {
	var slugs []string
	err := r.db.WithContext(ctx).
		Model(&models.SchedulePlan{}).
		Distinct("channel_slug").
		Order("channel_slug ASC").
		Pluck("channel_slug", &slugs).Error
	if err != nil {
		return nil, fmt.Errorf("getting plan channels: %w", err)
	}
	return slugs, nil
}
