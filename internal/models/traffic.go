package models

import (
	"fmt"
	"time"
)

// TrafficChannelPolicy governs which interstitial types a channel may air and
// how often.
type TrafficChannelPolicy struct {
	BaseModel

	// ChannelSlug identifies the channel; one policy per channel.
	ChannelSlug string `gorm:"not null;size:255;uniqueIndex" json:"channel_slug"`

	// AllowedTypes lists the asset types eligible for break filling.
	// Empty means all interstitial types are allowed.
	AllowedTypes []AssetType `gorm:"serializer:json" json:"allowed_types,omitempty"`

	// DefaultCooldownSeconds is the minimum spacing between plays of the same
	// asset.
	DefaultCooldownSeconds int `gorm:"not null;default:0" json:"default_cooldown_seconds"`

	// TypeCooldowns overrides the default per asset type.
	TypeCooldowns map[AssetType]int `gorm:"serializer:json" json:"type_cooldowns,omitempty"`

	// MaxPlaysPerDay caps plays of one asset per broadcast day. Zero means
	// unlimited.
	MaxPlaysPerDay int `gorm:"not null;default:0" json:"max_plays_per_day"`
}

// Validate checks the policy.
func (p *TrafficChannelPolicy) Validate() error {
	if p.ChannelSlug == "" {
		return ErrChannelSlugRequired
	}
	if p.DefaultCooldownSeconds < 0 {
		return fmt.Errorf("default_cooldown_seconds must be non-negative, got %d", p.DefaultCooldownSeconds)
	}
	if p.MaxPlaysPerDay < 0 {
		return fmt.Errorf("max_plays_per_day must be non-negative, got %d", p.MaxPlaysPerDay)
	}
	return nil
}

// AllowsType reports whether the policy permits the given asset type in
// breaks.
func (p *TrafficChannelPolicy) AllowsType(t AssetType) bool {
	if len(p.AllowedTypes) == 0 {
		return true
	}
	for _, a := range p.AllowedTypes {
		if a == t {
			return true
		}
	}
	return false
}

// CooldownFor returns the effective cooldown for an asset type.
func (p *TrafficChannelPolicy) CooldownFor(t AssetType) time.Duration {
	if secs, ok := p.TypeCooldowns[t]; ok {
		return time.Duration(secs) * time.Second
	}
	return time.Duration(p.DefaultCooldownSeconds) * time.Second
}

// TrafficPlayLog is the append-only history of interstitial plays used by
// break-fill decisions.
type TrafficPlayLog struct {
	BaseModel

	ChannelSlug string    `gorm:"not null;size:255;index:idx_play_channel_asset" json:"channel_slug"`
	AssetURI    string    `gorm:"not null;size:2048;index:idx_play_channel_asset" json:"asset_uri"`
	AssetType   AssetType `gorm:"not null;size:32" json:"asset_type"`
	PlayedAt    time.Time `gorm:"not null;index" json:"played_at"`
	BreakIndex  int       `gorm:"not null" json:"break_index"`
	BlockID     string    `gorm:"not null;size:64;index" json:"block_id"`
	DurationMs  int64     `gorm:"not null" json:"duration_ms"`
}

// Validate checks the play-log row.
func (l *TrafficPlayLog) Validate() error {
	if l.ChannelSlug == "" {
		return ErrChannelSlugRequired
	}
	if l.AssetURI == "" {
		return ErrAssetURIRequired
	}
	if l.BlockID == "" {
		return ErrBlockIDRequired
	}
	return nil
}
