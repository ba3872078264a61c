package models

import "fmt"

// OverrideRecord is the durable, monotonically numbered attestation that an
// operator override happened. The record is committed before the override
// artifact is published; a record is never deleted.
type OverrideRecord struct {
	// Seq is the monotonic record number, assigned by the database.
	Seq uint64 `gorm:"primarykey;autoIncrement" json:"seq"`

	// Layer names the artifact layer being overridden (for example
	// "compiled_program_log").
	Layer string `gorm:"not null;size:64" json:"layer"`

	// TargetID identifies the overridden artifact.
	TargetID string `gorm:"not null;size:255;index" json:"target_id"`

	// ReasonCode is the operator-supplied reason.
	ReasonCode string `gorm:"not null;size:64" json:"reason_code"`

	// CreatedUTCMs is the commit instant in UTC milliseconds.
	CreatedUTCMs int64 `gorm:"not null" json:"created_utc_ms"`
}

// Validate checks the override record.
func (r *OverrideRecord) Validate() error {
	if r.Layer == "" {
		return fmt.Errorf("override record: layer is required")
	}
	if r.TargetID == "" {
		return fmt.Errorf("override record: target_id is required")
	}
	if r.ReasonCode == "" {
		return fmt.Errorf("override record: reason_code is required")
	}
	return nil
}

// AsRunBlock is the append-only attestation of one executed block. Rows are
// never rewritten; an incomplete block is recorded with Completed=false and a
// reason.
type AsRunBlock struct {
	BaseModel

	ChannelSlug string `gorm:"not null;size:255;index:idx_asrun_channel" json:"channel_slug"`
	BlockID     string `gorm:"not null;size:64;index" json:"block_id"`
	StartUTCMs  int64  `gorm:"not null;index:idx_asrun_channel" json:"start_utc_ms"`
	EndUTCMs    int64  `gorm:"not null" json:"end_utc_ms"`

	// Completed reports whether the sink confirmed block completion.
	Completed bool `gorm:"not null;default:false" json:"completed"`

	// DeltaMs is observed completion time minus scheduled end, from the
	// injected clock.
	DeltaMs int64 `gorm:"not null;default:0" json:"delta_ms"`

	// Reason carries the session-end reason for incomplete blocks.
	Reason string `gorm:"size:255" json:"reason,omitempty"`

	Segments []AsRunSegment `gorm:"foreignKey:BlockRowID;constraint:OnDelete:CASCADE" json:"segments,omitempty"`
}

// Validate checks the as-run block row.
func (b *AsRunBlock) Validate() error {
	if b.ChannelSlug == "" {
		return ErrChannelSlugRequired
	}
	if b.BlockID == "" {
		return ErrBlockIDRequired
	}
	return nil
}

// AsRunSegment attests one executed segment within an as-run block.
type AsRunSegment struct {
	BaseModel

	// BlockRowID is the foreign key to the parent AsRunBlock row.
	BlockRowID ULID `gorm:"type:varchar(26);not null;index" json:"block_row_id"`

	SegmentIndex       int             `gorm:"not null" json:"segment_index"`
	SegmentType        SegmentType     `gorm:"not null;size:32" json:"segment_type"`
	AssetURI           string          `gorm:"not null;size:2048" json:"asset_uri"`
	AssetStartOffsetMs int64           `gorm:"not null" json:"asset_start_offset_ms"`
	SegmentDurationMs  int64           `gorm:"not null" json:"segment_duration_ms"`
	BreakpointClass    BreakpointClass `gorm:"not null;size:16;default:none" json:"breakpoint_class"`
}
