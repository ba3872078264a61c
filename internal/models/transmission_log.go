package models

import "fmt"

// SegmentType classifies the smallest executable span within a block.
type SegmentType string

// Segment types.
const (
	SegmentContent    SegmentType = "content"
	SegmentFiller     SegmentType = "filler"
	SegmentPromo      SegmentType = "promo"
	SegmentAd         SegmentType = "ad"
	SegmentCommercial SegmentType = "commercial"
	SegmentPad        SegmentType = "pad"
)

// BreakpointClass records how a segment boundary was derived.
type BreakpointClass string

// Breakpoint classes. First-class boundaries come from chapter markers;
// second-class boundaries are computed by equal division.
const (
	BreakpointNone     BreakpointClass = "none"
	BreakpointChapter  BreakpointClass = "chapter"
	BreakpointComputed BreakpointClass = "computed"
)

// SegmentRecord is the durable form of a scheduled segment inside a
// transmission-log block row.
type SegmentRecord struct {
	SegmentType        SegmentType     `json:"segment_type"`
	AssetURI           string          `json:"asset_uri"`
	AssetStartOffsetMs int64           `json:"asset_start_offset_ms"`
	SegmentDurationMs  int64           `json:"segment_duration_ms"`
	BreakpointClass    BreakpointClass `json:"breakpoint_class,omitempty"`
	RuntimeRecovery    bool            `json:"runtime_recovery,omitempty"`
}

// TransmissionLogBlock is the as-built durable record of one locked block,
// keyed by block ID.
type TransmissionLogBlock struct {
	// BlockID is "blk-" plus the first 96 bits of SHA-256 over
	// "{asset_uri}:{start_utc_ms}".
	BlockID string `gorm:"primarykey;size:64" json:"block_id"`

	ChannelSlug  string `gorm:"not null;size:255;index:idx_txlog_channel_day" json:"channel_slug"`
	BroadcastDay string `gorm:"not null;size:10;index:idx_txlog_channel_day" json:"broadcast_day"`

	StartUTCMs int64 `gorm:"not null;index" json:"start_utc_ms"`
	EndUTCMs   int64 `gorm:"not null" json:"end_utc_ms"`

	// Segments is the block's ordered segment tuple.
	Segments []SegmentRecord `gorm:"serializer:json" json:"segments"`
}

// Validate checks the block row.
func (b *TransmissionLogBlock) Validate() error {
	if b.BlockID == "" {
		return ErrBlockIDRequired
	}
	if b.ChannelSlug == "" {
		return ErrChannelSlugRequired
	}
	if b.EndUTCMs <= b.StartUTCMs {
		return ErrInvalidTimeRange
	}
	var total int64
	for i, seg := range b.Segments {
		if seg.SegmentDurationMs <= 0 {
			return fmt.Errorf("block %s segment %d: duration must be positive", b.BlockID, i)
		}
		total += seg.SegmentDurationMs
	}
	if total != b.EndUTCMs-b.StartUTCMs {
		return fmt.Errorf("block %s: segment durations sum to %d, want %d",
			b.BlockID, total, b.EndUTCMs-b.StartUTCMs)
	}
	return nil
}

// CompiledProgramLog is the durable form of a locked transmission log for one
// channel and broadcast day. Locked is terminal.
type CompiledProgramLog struct {
	BaseModel

	ChannelSlug  string `gorm:"not null;size:255;uniqueIndex:idx_compiled_unique" json:"channel_slug"`
	BroadcastDay string `gorm:"not null;size:10;uniqueIndex:idx_compiled_unique" json:"broadcast_day"`

	// ScheduleHash fingerprints the resolved day the log was compiled from.
	ScheduleHash string `gorm:"not null;size:64" json:"schedule_hash"`

	// CompiledJSON is the serialized transmission log.
	CompiledJSON string `gorm:"type:text;not null" json:"compiled_json"`

	// Locked marks the log immutable. A locked row is never rewritten.
	Locked bool `gorm:"not null;default:false" json:"locked"`

	RangeStartMs int64 `gorm:"not null" json:"range_start_ms"`
	RangeEndMs   int64 `gorm:"not null" json:"range_end_ms"`
}

// Validate checks the compiled log row.
func (c *CompiledProgramLog) Validate() error {
	if c.ChannelSlug == "" {
		return ErrChannelSlugRequired
	}
	if c.BroadcastDay == "" {
		return ErrBroadcastDayRequired
	}
	if c.RangeEndMs <= c.RangeStartMs {
		return ErrInvalidTimeRange
	}
	return nil
}
