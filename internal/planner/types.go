// Package planner implements the multi-stage planning pipeline: schedule-plan
// resolution, EPG derivation, act segmentation, break filling, and
// transmission-log assembly and lock.
//
// The pipeline is pure with respect to time: every stage takes explicit UTC
// instants and never consults a process clock. All durations are integer
// milliseconds.
package planner

import (
	"time"

	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/internal/models"
)

const msPerMinute = 60_000

// ChannelType selects the segmentation strategy.
type ChannelType string

// Channel types.
const (
	ChannelTypeMovie   ChannelType = "movie"
	ChannelTypeNetwork ChannelType = "network"
)

// Transition tags how a content segment hands off into the following break.
type Transition string

// Transitions. Segments ending on a chapter marker cut clean; segments ending
// on a computed breakpoint fade.
const (
	TransitionNone Transition = "none"
	TransitionFade Transition = "fade"
)

// ChannelConfig carries the per-channel planning options.
type ChannelConfig struct {
	ChannelSlug      string
	Location         *time.Location
	GridBlockMinutes int
	DayAnchor        config.DayAnchor
	ChannelType      ChannelType
	NumBreaks        int
	FadeDurationMs   int64
}

// GridMs returns the grid block length in milliseconds.
func (c ChannelConfig) GridMs() int64 {
	return int64(c.GridBlockMinutes) * msPerMinute
}

// ChannelConfigFromPlayout builds a ChannelConfig from the daemon playout
// options.
func ChannelConfigFromPlayout(channelSlug string, pc config.PlayoutConfig) (ChannelConfig, error) {
	loc, err := time.LoadLocation(pc.Timezone)
	if err != nil {
		return ChannelConfig{}, err
	}
	anchor, err := config.ParseDayAnchor(pc.BroadcastDayStart)
	if err != nil {
		return ChannelConfig{}, err
	}
	return ChannelConfig{
		ChannelSlug:      channelSlug,
		Location:         loc,
		GridBlockMinutes: pc.GridBlockMinutes,
		DayAnchor:        anchor,
		ChannelType:      ChannelType(pc.ChannelType),
		NumBreaks:        pc.NumBreaks,
		FadeDurationMs:   pc.FadeDuration.Milliseconds(),
	}, nil
}

// ResolvedSlot is one grid slot bound to a concrete asset.
type ResolvedSlot struct {
	StartUTCMs int64
	EndUTCMs   int64
	ProgramRef models.ProgramRef
	Asset      *models.Asset
}

// DurationMs returns the slot length.
func (s ResolvedSlot) DurationMs() int64 { return s.EndUTCMs - s.StartUTCMs }

// ResolvedScheduleDay is the resolution of a schedule plan for one channel on
// one broadcast date. Immutable once used to build a transmission log.
type ResolvedScheduleDay struct {
	ChannelSlug  string
	BroadcastDay string
	Slots        []ResolvedSlot
}

// ContentSegmentSpec is one act of content within a segmented block.
type ContentSegmentSpec struct {
	AssetURI           string
	AssetStartOffsetMs int64
	DurationMs         int64
	Transition         Transition
	FadeDurationMs     int64
	BreakpointClass    models.BreakpointClass
}

// BreakSpec is a break slot awaiting interstitial filling.
type BreakSpec struct {
	Index      int
	DurationMs int64
}

// SegmentedBlock is a slot after act segmentation: content acts alternating
// with break slots. Content[i] is followed by Breaks[i] when it exists.
type SegmentedBlock struct {
	Slot    ResolvedSlot
	Content []ContentSegmentSpec
	Breaks  []BreakSpec
}

// FilledBlock is a segmented block with its breaks materialized into
// interstitial and pad segments. Segments are in execution order and sum
// exactly to the slot duration.
type FilledBlock struct {
	Slot     ResolvedSlot
	Segments []models.SegmentRecord
}

// EPGEvent is the viewer-facing projection of one resolved slot.
type EPGEvent struct {
	ChannelSlug string            `json:"channel_slug"`
	StartUTCMs  int64             `json:"start_utc_ms"`
	EndUTCMs    int64             `json:"end_utc_ms"`
	Title       string            `json:"title"`
	Synopsis    string            `json:"synopsis,omitempty"`
	ProgramRef  models.ProgramRef `json:"program_ref"`
}

// LogState is the transmission log lifecycle state.
type LogState string

// Log states. Locked is terminal.
const (
	LogStateBuilding LogState = "building"
	LogStateLocked   LogState = "locked"
)

// TransmissionLogEntry is one execution-ready block. Frozen once the log is
// locked.
type TransmissionLogEntry struct {
	BlockID    string
	BlockIndex int
	StartUTCMs int64
	EndUTCMs   int64
	Segments   []models.SegmentRecord
}

// TransmissionLog is the ordered, contiguous, grid-aligned block sequence for
// one channel and broadcast day.
type TransmissionLog struct {
	ChannelSlug      string
	BroadcastDay     string
	GridBlockMinutes int
	State            LogState
	Entries          []TransmissionLogEntry
}

// RangeStartMs returns the log's first boundary, or 0 for an empty log.
func (l *TransmissionLog) RangeStartMs() int64 {
	if len(l.Entries) == 0 {
		return 0
	}
	return l.Entries[0].StartUTCMs
}

// RangeEndMs returns the log's last boundary, or 0 for an empty log.
func (l *TransmissionLog) RangeEndMs() int64 {
	if len(l.Entries) == 0 {
		return 0
	}
	return l.Entries[len(l.Entries)-1].EndUTCMs
}

// PlanResult is the output of planning one broadcast day.
type PlanResult struct {
	Log   *TransmissionLog
	EPG   []EPGEvent
	Plays []*models.TrafficPlayLog
	Day   *ResolvedScheduleDay
}
