// Package asrun writes the append-only as-run attestation log and guards the
// override flow: an override record is durably committed before the override
// artifact is published.
package asrun

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/repository"
)

// OverridePersistFailure indicates the override record could not be durably
// stored. The override artifact must not be published.
type OverridePersistFailure struct {
	TargetID string
	Cause    error
}

func (e *OverridePersistFailure) Error() string {
	return fmt.Sprintf("persisting override record for %s: %v", e.TargetID, e.Cause)
}

func (e *OverridePersistFailure) Unwrap() error { return e.Cause }

// Writer appends as-run blocks in observation order.
type Writer struct {
	repo   repository.AsRunRepository
	logger *slog.Logger
}

// NewWriter creates a Writer.
func NewWriter(repo repository.AsRunRepository, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{repo: repo, logger: logger.With(slog.String("component", "asrun"))}
}

// RecordCompleted attests a block the sink confirmed, with the observed
// drift against its scheduled end.
func (w *Writer) RecordCompleted(ctx context.Context, channelSlug string, entry execwindow.Entry, deltaMs int64) error {
	return w.record(ctx, channelSlug, entry, true, deltaMs, "")
}

// RecordIncomplete attests a block cut short, carrying the session-end
// reason.
func (w *Writer) RecordIncomplete(ctx context.Context, channelSlug string, entry execwindow.Entry, reason string) error {
	return w.record(ctx, channelSlug, entry, false, 0, reason)
}

func (w *Writer) record(ctx context.Context, channelSlug string, entry execwindow.Entry, completed bool, deltaMs int64, reason string) error {
	block := &models.AsRunBlock{
		ChannelSlug: channelSlug,
		BlockID:     entry.BlockID,
		StartUTCMs:  entry.StartUTCMs,
		EndUTCMs:    entry.EndUTCMs,
		Completed:   completed,
		DeltaMs:     deltaMs,
		Reason:      reason,
	}
	for i, seg := range entry.Segments {
		class := seg.BreakpointClass
		if class == "" {
			class = models.BreakpointNone
		}
		block.Segments = append(block.Segments, models.AsRunSegment{
			SegmentIndex:       i,
			SegmentType:        seg.SegmentType,
			AssetURI:           seg.AssetURI,
			AssetStartOffsetMs: seg.AssetStartOffsetMs,
			SegmentDurationMs:  seg.SegmentDurationMs,
			BreakpointClass:    class,
		})
	}
	if err := w.repo.AppendBlock(ctx, block); err != nil {
		return err
	}
	w.logger.Debug("as-run block recorded",
		slog.String("channel", channelSlug),
		slog.String("block_id", entry.BlockID),
		slog.Bool("completed", completed),
		slog.Int64("delta_ms", deltaMs))
	return nil
}

// OverrideStore serializes override commits. Persist is atomic and durable
// before return.
type OverrideStore struct {
	mu    sync.Mutex
	repo  repository.OverrideRepository
	clock clock.MasterClock
}

// NewOverrideStore creates an OverrideStore.
func NewOverrideStore(repo repository.OverrideRepository, clk clock.MasterClock) *OverrideStore {
	return &OverrideStore{repo: repo, clock: clk}
}

// Commit durably persists an override record and then runs publish. If the
// record cannot be stored the publish never runs and the override aborts
// with OverridePersistFailure.
func (s *OverrideStore) Commit(ctx context.Context, layer, targetID, reasonCode string, publish func() error) (*models.OverrideRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &models.OverrideRecord{
		Layer:        layer,
		TargetID:     targetID,
		ReasonCode:   reasonCode,
		CreatedUTCMs: s.clock.NowUTCMs(),
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, &OverridePersistFailure{TargetID: targetID, Cause: err}
	}
	if publish != nil {
		if err := publish(); err != nil {
			return record, err
		}
	}
	return record, nil
}
