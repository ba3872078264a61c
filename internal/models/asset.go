package models

import "fmt"

// AssetType classifies a media asset for scheduling and break filling.
type AssetType string

// Asset types.
const (
	AssetTypeContent    AssetType = "content"
	AssetTypeFiller     AssetType = "filler"
	AssetTypePromo      AssetType = "promo"
	AssetTypeAd         AssetType = "ad"
	AssetTypeCommercial AssetType = "commercial"
)

// MarkerKind classifies a stored asset marker. Only first-class breakpoints
// are persisted; computed (second-class) breakpoints are derived at
// segmentation time.
type MarkerKind string

// Marker kinds.
const (
	MarkerChapter     MarkerKind = "chapter"
	MarkerAdBreakHint MarkerKind = "ad_break_hint"
)

// Asset is a measured, immutable media asset. Duration and markers are
// captured once at import time; the planner treats them as read-only.
type Asset struct {
	BaseModel

	// URI is the opaque asset locator, unique across the library.
	URI string `gorm:"not null;size:2048;uniqueIndex" json:"uri"`

	// Title and Synopsis feed EPG derivation.
	Title    string `gorm:"size:512" json:"title,omitempty"`
	Synopsis string `gorm:"type:text" json:"synopsis,omitempty"`

	// DurationMs is the measured duration, strictly positive.
	DurationMs int64 `gorm:"not null" json:"duration_ms"`

	// AssetType classifies the asset.
	AssetType AssetType `gorm:"not null;size:32;index" json:"asset_type"`

	// Markers are the asset's ordered first-class breakpoints.
	Markers []AssetMarker `gorm:"foreignKey:AssetID;constraint:OnDelete:CASCADE" json:"markers,omitempty"`
}

// Validate checks the asset for required fields.
func (a *Asset) Validate() error {
	if a.URI == "" {
		return ErrAssetURIRequired
	}
	if a.DurationMs <= 0 {
		return fmt.Errorf("asset %s: duration_ms must be positive, got %d", a.URI, a.DurationMs)
	}
	switch a.AssetType {
	case AssetTypeContent, AssetTypeFiller, AssetTypePromo, AssetTypeAd, AssetTypeCommercial:
	default:
		return fmt.Errorf("asset %s: invalid asset_type %q", a.URI, a.AssetType)
	}
	return nil
}

// AssetMarker is a first-class breakpoint within an asset.
type AssetMarker struct {
	BaseModel

	// AssetID is the foreign key to the parent Asset.
	AssetID ULID `gorm:"type:varchar(26);not null;index" json:"asset_id"`

	// Kind is chapter or ad_break_hint.
	Kind MarkerKind `gorm:"not null;size:32" json:"kind"`

	// OffsetMs is the marker position from asset start.
	OffsetMs int64 `gorm:"not null" json:"offset_ms"`

	// Label is an optional display label.
	Label string `gorm:"size:255" json:"label,omitempty"`
}

// Validate checks the marker.
func (m *AssetMarker) Validate() error {
	switch m.Kind {
	case MarkerChapter, MarkerAdBreakHint:
	default:
		return fmt.Errorf("invalid marker kind %q", m.Kind)
	}
	if m.OffsetMs < 0 {
		return fmt.Errorf("marker offset_ms must be non-negative, got %d", m.OffsetMs)
	}
	return nil
}
