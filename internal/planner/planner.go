package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/repository"
)

// Planner runs the full pipeline for one broadcast day: resolve, segment,
// fill, assemble, lock. It holds no clock; every timestamp in the result is
// derived from the broadcast date and the channel grid.
type Planner struct {
	library  assets.Library
	resolver *Resolver
	filler   *Filler
	traffic  repository.TrafficRepository
	logger   *slog.Logger
}

// New creates a Planner. traffic may be nil, in which case break filling is
// unconstrained by policy or play history.
func New(library assets.Library, sequences *SequenceStore, traffic repository.TrafficRepository, logger *slog.Logger) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		library:  library,
		resolver: NewResolver(library, sequences, logger),
		filler:   NewFiller(library, logger),
		traffic:  traffic,
		logger:   logger,
	}
}

// PlanDay produces a locked transmission log, the day's EPG, and the traffic
// plays the log implies. The caller persists the result; planning itself
// writes nothing but sequence-state advances.
func (p *Planner) PlanDay(ctx context.Context, plan *models.SchedulePlan, date time.Time, cfg ChannelConfig) (*PlanResult, error) {
	day, err := p.resolver.ResolveDay(ctx, plan, date, cfg)
	if err != nil {
		return nil, err
	}

	fc, err := p.fillContext(ctx, cfg.ChannelSlug, day)
	if err != nil {
		return nil, err
	}

	var (
		blocks []FilledBlock
		plays  []*models.TrafficPlayLog
	)
	for _, slot := range day.Slots {
		filled, slotPlays, err := p.fillSlot(ctx, slot, cfg, fc)
		if err != nil {
			return nil, fmt.Errorf("filling block at %d: %w", slot.StartUTCMs, err)
		}
		blocks = append(blocks, *filled)
		plays = append(plays, slotPlays...)
	}

	log, err := AssembleLog(cfg.ChannelSlug, day.BroadcastDay, cfg.GridBlockMinutes, blocks)
	if err != nil {
		return nil, err
	}
	if err := log.Lock(); err != nil {
		return nil, err
	}

	p.logger.Info("planned broadcast day",
		slog.String("channel", cfg.ChannelSlug),
		slog.String("day", day.BroadcastDay),
		slog.Int("blocks", len(log.Entries)),
		slog.Int("plays", len(plays)))

	return &PlanResult{Log: log, EPG: DeriveEPG(day), Plays: plays, Day: day}, nil
}

// fillSlot segments one slot and materializes its breaks.
func (p *Planner) fillSlot(ctx context.Context, slot ResolvedSlot, cfg ChannelConfig, fc *FillContext) (*FilledBlock, []*models.TrafficPlayLog, error) {
	seg, err := SegmentSlot(slot, cfg)
	if err != nil {
		return nil, nil, err
	}
	seg, err = p.collapseIfUnfillable(ctx, seg)
	if err != nil {
		return nil, nil, err
	}

	// Cooldowns apply at the block's scheduled air time.
	fc.NowUTC = time.UnixMilli(slot.StartUTCMs).UTC()
	blockID := BlockID(slot.Asset.URI, slot.StartUTCMs)

	var (
		segments []models.SegmentRecord
		plays    []*models.TrafficPlayLog
	)
	for i, c := range seg.Content {
		segments = append(segments, models.SegmentRecord{
			SegmentType:        models.SegmentContent,
			AssetURI:           c.AssetURI,
			AssetStartOffsetMs: c.AssetStartOffsetMs,
			SegmentDurationMs:  c.DurationMs,
			BreakpointClass:    c.BreakpointClass,
		})
		if i >= len(seg.Breaks) {
			continue
		}
		spec := seg.Breaks[i]
		fill, err := p.filler.FillBreak(ctx, spec, fc)
		if err != nil {
			return nil, nil, err
		}
		segments = append(segments, fill...)
		for _, s := range fill {
			if s.SegmentType == models.SegmentPad || s.AssetURI == "" {
				continue
			}
			plays = append(plays, &models.TrafficPlayLog{
				ChannelSlug: cfg.ChannelSlug,
				AssetURI:    s.AssetURI,
				AssetType:   models.AssetType(s.SegmentType),
				PlayedAt:    fc.NowUTC,
				BreakIndex:  spec.Index,
				BlockID:     blockID,
				DurationMs:  s.SegmentDurationMs,
			})
		}
	}
	return &FilledBlock{Slot: slot, Segments: segments}, plays, nil
}

// collapseIfUnfillable checks whether any interstitial fits the block's
// largest break. When none does, mid-content breaks are pointless: the block
// collapses to uncut content followed by one trailing break, which the filler
// then spans with a single fallback asset.
func (p *Planner) collapseIfUnfillable(ctx context.Context, seg *SegmentedBlock) (*SegmentedBlock, error) {
	if len(seg.Breaks) == 0 {
		return seg, nil
	}
	var maxBreakMs, totalBreakMs, totalContentMs int64
	for _, b := range seg.Breaks {
		totalBreakMs += b.DurationMs
		if b.DurationMs > maxBreakMs {
			maxBreakMs = b.DurationMs
		}
	}
	candidates, err := p.library.FillerCandidates(ctx, maxBreakMs, 1)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 {
		return seg, nil
	}

	for _, c := range seg.Content {
		totalContentMs += c.DurationMs
	}
	return &SegmentedBlock{
		Slot: seg.Slot,
		Content: []ContentSegmentSpec{{
			AssetURI:        seg.Slot.Asset.URI,
			DurationMs:      totalContentMs,
			Transition:      TransitionNone,
			BreakpointClass: models.BreakpointNone,
		}},
		Breaks: []BreakSpec{{Index: 0, DurationMs: totalBreakMs}},
	}, nil
}

// fillContext loads the channel's traffic policy and recent play history.
func (p *Planner) fillContext(ctx context.Context, channelSlug string, day *ResolvedScheduleDay) (*FillContext, error) {
	fc := NewFillContext(time.Time{})
	if p.traffic == nil || len(day.Slots) == 0 {
		return fc, nil
	}

	policy, err := p.traffic.GetPolicy(ctx, channelSlug)
	if err != nil {
		return nil, err
	}
	fc.Policy = policy

	dayStart := time.UnixMilli(day.Slots[0].StartUTCMs).UTC()
	since := dayStart.Add(-24 * time.Hour)
	if fc.LastPlayed, err = p.traffic.LastPlayed(ctx, channelSlug, since); err != nil {
		return nil, err
	}
	counts, err := p.traffic.PlayCounts(ctx, channelSlug, dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, err
	}
	fc.PlayCounts = counts
	if fc.PlayCounts == nil {
		fc.PlayCounts = make(map[string]int)
	}
	if fc.LastPlayed == nil {
		fc.LastPlayed = make(map[string]time.Time)
	}
	return fc, nil
}
