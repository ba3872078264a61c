package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/fernwood/playoutd/internal/models"
)

// assetRepo implements AssetRepository using GORM.
type assetRepo struct {
	db *gorm.DB
}

// NewAssetRepository creates a new AssetRepository.
func NewAssetRepository(db *gorm.DB) *assetRepo {
	return &assetRepo{db: db}
}

// Create creates an asset with its markers.
func (r *assetRepo) Create(ctx context.Context, asset *models.Asset) error {
	if err := asset.Validate(); err != nil {
		return err
	}
	for i := range asset.Markers {
		if err := asset.Markers[i].Validate(); err != nil {
			return err
		}
	}
	if err := r.db.WithContext(ctx).Create(asset).Error; err != nil {
		return fmt.Errorf("creating asset: %w", err)
	}
	return nil
}

// GetByURI retrieves an asset by URI with markers preloaded in offset order.
func (r *assetRepo) GetByURI(ctx context.Context, uri string) (*models.Asset, error) {
	var asset models.Asset
	err := r.db.WithContext(ctx).
		Preload("Markers", func(db *gorm.DB) *gorm.DB { return db.Order("offset_ms ASC") }).
		Where("uri = ?", uri).
		First(&asset).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("getting asset by URI: %w", err)
	}
	return &asset, nil
}

// GetFillerAssets returns non-content assets no longer than maxDurationMs,
// longest first.
func (r *assetRepo) GetFillerAssets(ctx context.Context, maxDurationMs int64, maxCount int) ([]*models.Asset, error) {
	if maxCount <= 0 {
		maxCount = 50
	}
	var assets []*models.Asset
	err := r.db.WithContext(ctx).
		Where("asset_type <> ?", models.AssetTypeContent).
		Where("duration_ms <= ?", maxDurationMs).
		Order("duration_ms DESC").
		Limit(maxCount).
		Find(&assets).Error
	if err != nil {
		return nil, fmt.Errorf("getting filler assets: %w", err)
	}
	return assets, nil
}
