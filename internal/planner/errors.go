package planner

import (
	"fmt"

	"github.com/fernwood/playoutd/internal/models"
)

// EmptyProgramFamilyError indicates a zone with no schedulable programs.
// Planning for the day aborts.
type EmptyProgramFamilyError struct {
	ZoneID   models.ULID
	ZoneName string
}

func (e *EmptyProgramFamilyError) Error() string {
	return fmt.Sprintf("zone %s (%s) has no schedulable programs", e.ZoneName, e.ZoneID)
}

// DSTTransitionError indicates a zone crossing a DST transition the zone's
// policy does not absorb.
type DSTTransitionError struct {
	ZoneName     string
	BroadcastDay string
	Policy       models.DSTPolicy
	DeltaMs      int64
}

func (e *DSTTransitionError) Error() string {
	return fmt.Sprintf("zone %s on %s crosses a DST transition (wall-clock delta %dms) not absorbed by policy %q",
		e.ZoneName, e.BroadcastDay, e.DeltaMs, e.Policy)
}

// SeamError indicates a violated transmission-log seam invariant: contiguity,
// grid duration, monotonic ordering, or positive duration.
type SeamError struct {
	BlockIndex int
	Reason     string
}

func (e *SeamError) Error() string {
	return fmt.Sprintf("transmission log seam violation at block %d: %s", e.BlockIndex, e.Reason)
}

// GridAlignmentError indicates a block boundary off the grid. It carries the
// nearest valid boundaries on either side.
type GridAlignmentError struct {
	BoundaryUTCMs int64
	FloorUTCMs    int64
	CeilUTCMs     int64
}

func (e *GridAlignmentError) Error() string {
	return fmt.Sprintf("boundary %d not grid aligned (nearest valid: %d or %d)",
		e.BoundaryUTCMs, e.FloorUTCMs, e.CeilUTCMs)
}

// ArtifactExistsError indicates an attempt to rewrite a locked transmission
// log. Locked logs are write-once; overriding one requires an override record.
type ArtifactExistsError struct {
	ChannelSlug  string
	BroadcastDay string
}

func (e *ArtifactExistsError) Error() string {
	return fmt.Sprintf("transmission log for %s/%s is locked", e.ChannelSlug, e.BroadcastDay)
}

// FillerShortfallError indicates that no interstitials were available and the
// fallback filler cannot span the break.
type FillerShortfallError struct {
	BreakDurationMs  int64
	FillerDurationMs int64
}

func (e *FillerShortfallError) Error() string {
	return fmt.Sprintf("fallback filler of %dms cannot span %dms break",
		e.FillerDurationMs, e.BreakDurationMs)
}
