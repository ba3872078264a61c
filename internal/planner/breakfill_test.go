package planner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/models"
)

func segmentSum(segs []models.SegmentRecord) int64 {
	var sum int64
	for _, s := range segs {
		sum += s.SegmentDurationMs
	}
	return sum
}

func TestFillBreak_PacksWithTrailingRemainder(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///promo-a.mkv", DurationMs: 45_000, AssetType: models.AssetTypePromo},
		{URI: "file:///promo-b.mkv", DurationMs: 45_000, AssetType: models.AssetTypePromo},
		{URI: "file:///ad-c.mkv", DurationMs: 20_000, AssetType: models.AssetTypeAd},
	})
	filler := NewFiller(lib, nil)
	fc := NewFillContext(time.Unix(1000, 0).UTC())
	fc.Policy = &models.TrafficChannelPolicy{ChannelSlug: "retro-one", MaxPlaysPerDay: 1}

	segs, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 120_000}, fc)
	require.NoError(t, err)

	require.Len(t, segs, 6)
	wantTypes := []models.SegmentType{
		models.SegmentPromo, models.SegmentPad,
		models.SegmentPromo, models.SegmentPad,
		models.SegmentAd, models.SegmentPad,
	}
	wantDurations := []int64{45_000, 3_334, 45_000, 3_334, 20_000, 3_332}
	for i := range segs {
		assert.Equal(t, wantTypes[i], segs[i].SegmentType, "segment %d", i)
		assert.Equal(t, wantDurations[i], segs[i].SegmentDurationMs, "segment %d", i)
	}
	assert.Equal(t, int64(120_000), segmentSum(segs))
}

func TestFillBreak_ZeroGapEmitsNoPads(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///promo-a.mkv", DurationMs: 45_000, AssetType: models.AssetTypePromo},
		{URI: "file:///promo-b.mkv", DurationMs: 45_000, AssetType: models.AssetTypePromo},
	})
	filler := NewFiller(lib, nil)
	fc := NewFillContext(time.Unix(1000, 0).UTC())
	fc.Policy = &models.TrafficChannelPolicy{ChannelSlug: "retro-one", MaxPlaysPerDay: 1}

	segs, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 90_000}, fc)
	require.NoError(t, err)

	require.Len(t, segs, 2)
	for _, s := range segs {
		assert.NotEqual(t, models.SegmentPad, s.SegmentType)
	}
	assert.Equal(t, int64(90_000), segmentSum(segs))
}

func TestFillBreak_FallbackSpansBreak(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///bumper-10m.mkv", DurationMs: 10 * 60_000, AssetType: models.AssetTypeFiller},
	})
	filler := NewFiller(lib, nil)

	segs, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 6 * 60_000}, NewFillContext(time.Unix(1000, 0).UTC()))
	require.NoError(t, err)

	require.Len(t, segs, 1)
	assert.Equal(t, models.SegmentFiller, segs[0].SegmentType)
	assert.Equal(t, "file:///bumper-10m.mkv", segs[0].AssetURI)
	assert.Equal(t, int64(6*60_000), segs[0].SegmentDurationMs)
}

func TestFillBreak_FallbackTooShortIsFatal(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///bumper-5m.mkv", DurationMs: 5 * 60_000, AssetType: models.AssetTypeFiller},
	})
	filler := NewFiller(lib, nil)

	_, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 6 * 60_000}, NewFillContext(time.Unix(1000, 0).UTC()))
	var shortfall *FillerShortfallError
	require.ErrorAs(t, err, &shortfall)
	assert.Equal(t, int64(6*60_000), shortfall.BreakDurationMs)
	assert.Equal(t, int64(5*60_000), shortfall.FillerDurationMs)
}

func TestFillBreak_FillerClassNotPackedAsSpot(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///promo.mkv", DurationMs: 20_000, AssetType: models.AssetTypePromo},
		{URI: "file:///bumper.mkv", DurationMs: 60_000, AssetType: models.AssetTypeFiller},
	})
	filler := NewFiller(lib, nil)

	segs, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 60_000}, NewFillContext(time.Unix(1000, 0).UTC()))
	require.NoError(t, err)

	// The filler-class bumper would fit exactly, but only the promo plays;
	// the bumper stays reserved for the fallback span.
	require.Len(t, segs, 2)
	assert.Equal(t, "file:///promo.mkv", segs[0].AssetURI)
	assert.Equal(t, models.SegmentPad, segs[1].SegmentType)
	assert.Equal(t, int64(40_000), segs[1].SegmentDurationMs)
}

func TestFillBreak_CooldownExcludesRecentPlays(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///promo-a.mkv", DurationMs: 45_000, AssetType: models.AssetTypePromo},
		{URI: "file:///promo-b.mkv", DurationMs: 40_000, AssetType: models.AssetTypePromo},
	})
	filler := NewFiller(lib, nil)
	now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	fc := NewFillContext(now)
	fc.Policy = &models.TrafficChannelPolicy{
		ChannelSlug:            "retro-one",
		DefaultCooldownSeconds: 3600,
		MaxPlaysPerDay:         1,
	}
	fc.LastPlayed["file:///promo-a.mkv"] = now.Add(-10 * time.Minute)

	segs, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 45_000}, fc)
	require.NoError(t, err)

	// promo-a is inside its cooldown; promo-b plays with a trailing pad.
	require.Len(t, segs, 2)
	assert.Equal(t, "file:///promo-b.mkv", segs[0].AssetURI)
	assert.Equal(t, models.SegmentPad, segs[1].SegmentType)
	assert.Equal(t, int64(5_000), segs[1].SegmentDurationMs)
}

func TestFillBreak_PolicyTypeFilter(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///ad.mkv", DurationMs: 30_000, AssetType: models.AssetTypeAd},
		{URI: "file:///promo.mkv", DurationMs: 30_000, AssetType: models.AssetTypePromo},
	})
	filler := NewFiller(lib, nil)
	fc := NewFillContext(time.Unix(1000, 0).UTC())
	fc.Policy = &models.TrafficChannelPolicy{
		ChannelSlug:    "retro-one",
		AllowedTypes:   []models.AssetType{models.AssetTypePromo},
		MaxPlaysPerDay: 1,
	}

	segs, err := filler.FillBreak(context.Background(), BreakSpec{DurationMs: 30_000}, fc)
	require.NoError(t, err)

	require.Len(t, segs, 1)
	assert.Equal(t, "file:///promo.mkv", segs[0].AssetURI)
}
