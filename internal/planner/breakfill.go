package planner

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/models"
)

const fillerCandidateLimit = 50

// FillContext carries the traffic state consulted while packing breaks. The
// maps are mutated as spots are placed so cooldowns and caps apply within the
// day being planned, not just against history.
type FillContext struct {
	Policy     *models.TrafficChannelPolicy
	LastPlayed map[string]time.Time
	PlayCounts map[string]int
	NowUTC     time.Time
}

// NewFillContext builds a permissive context with empty history.
func NewFillContext(nowUTC time.Time) *FillContext {
	return &FillContext{
		LastPlayed: make(map[string]time.Time),
		PlayCounts: make(map[string]int),
		NowUTC:     nowUTC,
	}
}

func (fc *FillContext) allows(asset *models.Asset) bool {
	if fc.Policy != nil {
		if !fc.Policy.AllowsType(asset.AssetType) {
			return false
		}
		if cd := fc.Policy.CooldownFor(asset.AssetType); cd > 0 {
			if last, ok := fc.LastPlayed[asset.URI]; ok && fc.NowUTC.Sub(last) < cd {
				return false
			}
		}
		if max := fc.Policy.MaxPlaysPerDay; max > 0 && fc.PlayCounts[asset.URI] >= max {
			return false
		}
	}
	return true
}

func (fc *FillContext) record(asset *models.Asset, at time.Time) {
	fc.LastPlayed[asset.URI] = at
	fc.PlayCounts[asset.URI]++
}

// Filler packs interstitials into break slots.
type Filler struct {
	library assets.Library
	logger  *slog.Logger
}

// NewFiller creates a Filler.
func NewFiller(library assets.Library, logger *slog.Logger) *Filler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Filler{library: library, logger: logger}
}

// FillBreak materializes one break slot into spot and pad segments summing
// exactly to the break duration.
//
// Packing is greedy over the library's candidate order (longest first): the
// first admissible interstitial that fits is taken and the scan restarts. Any
// unfilled gap is distributed as pad segments after each spot, the trailing
// pad absorbing the remainder. Filler-class assets are never packed as spots;
// they are reserved for the fallback, where a single filler spans the whole
// break and one shorter than the break is fatal.
func (f *Filler) FillBreak(ctx context.Context, spec BreakSpec, fc *FillContext) ([]models.SegmentRecord, error) {
	if spec.DurationMs == 0 {
		return nil, nil
	}

	candidates, err := f.library.FillerCandidates(ctx, spec.DurationMs, fillerCandidateLimit)
	if err != nil {
		return nil, err
	}

	remaining := spec.DurationMs
	var spots []*models.Asset
	for {
		picked := pickFirst(candidates, remaining, fc)
		if picked == nil {
			break
		}
		spots = append(spots, picked)
		remaining -= picked.DurationMs
		fc.record(picked, fc.NowUTC)
	}

	if len(spots) == 0 {
		return f.fallbackFill(ctx, spec)
	}

	return interleavePads(spots, remaining), nil
}

func pickFirst(candidates []*models.Asset, remaining int64, fc *FillContext) *models.Asset {
	for _, c := range candidates {
		if c.AssetType == models.AssetTypeFiller {
			continue
		}
		if c.DurationMs <= remaining && fc.allows(c) {
			return c
		}
	}
	return nil
}

// fallbackFill spans the entire break with the longest available filler,
// trimmed to the break duration.
func (f *Filler) fallbackFill(ctx context.Context, spec BreakSpec) ([]models.SegmentRecord, error) {
	longest, err := f.library.FillerCandidates(ctx, math.MaxInt64, 1)
	if err != nil {
		return nil, err
	}
	if len(longest) == 0 {
		return nil, &FillerShortfallError{BreakDurationMs: spec.DurationMs}
	}
	if longest[0].DurationMs < spec.DurationMs {
		return nil, &FillerShortfallError{
			BreakDurationMs:  spec.DurationMs,
			FillerDurationMs: longest[0].DurationMs,
		}
	}
	return []models.SegmentRecord{{
		SegmentType:       segmentTypeFor(longest[0].AssetType),
		AssetURI:          longest[0].URI,
		SegmentDurationMs: spec.DurationMs,
	}}, nil
}

// interleavePads emits [spot, pad, spot, pad, ...]. Leading pads take the
// ceiling share of the gap so the trailing pad carries the remainder; a pad
// that would be zero is omitted.
func interleavePads(spots []*models.Asset, gapMs int64) []models.SegmentRecord {
	n := int64(len(spots))
	base := int64(0)
	if gapMs > 0 {
		base = (gapMs + n - 1) / n
	}

	out := make([]models.SegmentRecord, 0, 2*len(spots))
	gapLeft := gapMs
	for _, spot := range spots {
		out = append(out, models.SegmentRecord{
			SegmentType:       segmentTypeFor(spot.AssetType),
			AssetURI:          spot.URI,
			SegmentDurationMs: spot.DurationMs,
		})
		pad := base
		if pad > gapLeft {
			pad = gapLeft
		}
		if pad > 0 {
			out = append(out, models.SegmentRecord{
				SegmentType:       models.SegmentPad,
				SegmentDurationMs: pad,
			})
			gapLeft -= pad
		}
	}
	return out
}

func segmentTypeFor(t models.AssetType) models.SegmentType {
	switch t {
	case models.AssetTypePromo:
		return models.SegmentPromo
	case models.AssetTypeAd:
		return models.SegmentAd
	case models.AssetTypeCommercial:
		return models.SegmentCommercial
	default:
		return models.SegmentFiller
	}
}
