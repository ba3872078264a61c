package planner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fernwood/playoutd/internal/timebase"
)

// BlockID derives the execution identity of a block: "blk-" plus the first
// 96 bits of SHA-256 over "{asset_uri}:{start_utc_ms}". Deterministic in its
// inputs; independent of asset row IDs.
func BlockID(assetURI string, startUTCMs int64) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s:%d", assetURI, startUTCMs)))
	return "blk-" + hex.EncodeToString(sum[:12])
}

// AssembleLog concatenates filled blocks into a transmission log in building
// state, validating seam and grid invariants. Blocks must arrive in broadcast
// order.
func AssembleLog(channelSlug, broadcastDay string, gridMinutes int, blocks []FilledBlock) (*TransmissionLog, error) {
	log := &TransmissionLog{
		ChannelSlug:      channelSlug,
		BroadcastDay:     broadcastDay,
		GridBlockMinutes: gridMinutes,
		State:            LogStateBuilding,
	}
	gridMs := int64(gridMinutes) * msPerMinute

	for i, block := range blocks {
		entry := TransmissionLogEntry{
			BlockID:    BlockID(block.Slot.Asset.URI, block.Slot.StartUTCMs),
			BlockIndex: i,
			StartUTCMs: block.Slot.StartUTCMs,
			EndUTCMs:   block.Slot.EndUTCMs,
			Segments:   block.Segments,
		}

		if entry.EndUTCMs <= entry.StartUTCMs {
			return nil, &SeamError{BlockIndex: i, Reason: "non-positive block duration"}
		}
		if entry.EndUTCMs-entry.StartUTCMs != gridMs {
			return nil, &SeamError{BlockIndex: i,
				Reason: fmt.Sprintf("duration %dms, want grid %dms", entry.EndUTCMs-entry.StartUTCMs, gridMs)}
		}
		if i > 0 {
			prev := log.Entries[i-1]
			if prev.EndUTCMs != entry.StartUTCMs {
				return nil, &SeamError{BlockIndex: i,
					Reason: fmt.Sprintf("starts at %d, predecessor ends at %d", entry.StartUTCMs, prev.EndUTCMs)}
			}
			if entry.StartUTCMs <= prev.StartUTCMs {
				return nil, &SeamError{BlockIndex: i, Reason: "blocks out of order"}
			}
		}
		for _, boundary := range []int64{entry.StartUTCMs, entry.EndUTCMs} {
			if !timebase.IsGridAlignedMs(boundary, gridMinutes) {
				return nil, &GridAlignmentError{
					BoundaryUTCMs: boundary,
					FloorUTCMs:    timebase.GridStartMs(boundary, gridMinutes),
					CeilUTCMs:     timebase.GridEndMs(boundary, gridMinutes),
				}
			}
		}
		if err := validateSegments(entry, gridMs); err != nil {
			return nil, err
		}

		log.Entries = append(log.Entries, entry)
	}
	return log, nil
}

func validateSegments(entry TransmissionLogEntry, gridMs int64) error {
	var total int64
	for j, seg := range entry.Segments {
		if seg.SegmentDurationMs <= 0 {
			return &SeamError{BlockIndex: entry.BlockIndex,
				Reason: fmt.Sprintf("segment %d has non-positive duration", j)}
		}
		total += seg.SegmentDurationMs
	}
	if total != gridMs {
		return &SeamError{BlockIndex: entry.BlockIndex,
			Reason: fmt.Sprintf("segments sum to %dms, want %dms", total, gridMs)}
	}
	return nil
}

// Lock transitions the log building -> locked. Locked is terminal; locking an
// already-locked log is an error and never a rewrite.
func (l *TransmissionLog) Lock() error {
	if l.State == LogStateLocked {
		return &ArtifactExistsError{ChannelSlug: l.ChannelSlug, BroadcastDay: l.BroadcastDay}
	}
	l.State = LogStateLocked
	return nil
}
