package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/playoutd/internal/models"
)

func slotWithAsset(asset *models.Asset, durationMs int64) ResolvedSlot {
	return ResolvedSlot{
		StartUTCMs: 0,
		EndUTCMs:   durationMs,
		ProgramRef: models.ProgramRef{Kind: models.ProgramRefEpisode, Ref: asset.URI},
		Asset:      asset,
	}
}

func TestSegmentSlot_MovieIgnoresMarkers(t *testing.T) {
	asset := &models.Asset{
		URI: "file:///movie.mkv", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent,
		Markers: []models.AssetMarker{{Kind: models.MarkerChapter, OffsetMs: 10 * 60_000}},
	}
	cfg := ChannelConfig{ChannelType: ChannelTypeMovie, GridBlockMinutes: 30, NumBreaks: 3}

	block, err := SegmentSlot(slotWithAsset(asset, 30*60_000), cfg)
	require.NoError(t, err)

	require.Len(t, block.Content, 1)
	assert.Equal(t, int64(24*60_000), block.Content[0].DurationMs)
	assert.Equal(t, TransitionNone, block.Content[0].Transition)
	require.Len(t, block.Breaks, 1)
	assert.Equal(t, int64(6*60_000), block.Breaks[0].DurationMs)
}

func TestSegmentSlot_MovieLongerThanSlot(t *testing.T) {
	asset := &models.Asset{URI: "file:///long.mkv", DurationMs: 100 * 60_000, AssetType: models.AssetTypeContent}
	cfg := ChannelConfig{ChannelType: ChannelTypeMovie, GridBlockMinutes: 30}

	block, err := SegmentSlot(slotWithAsset(asset, 30*60_000), cfg)
	require.NoError(t, err)

	require.Len(t, block.Content, 1)
	assert.Equal(t, int64(30*60_000), block.Content[0].DurationMs)
	assert.Empty(t, block.Breaks)
}

func TestSegmentSlot_NetworkChapterMarkers(t *testing.T) {
	asset := &models.Asset{
		URI: "file:///ep.mkv", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent,
		Markers: []models.AssetMarker{
			{Kind: models.MarkerChapter, OffsetMs: 8 * 60_000},
			{Kind: models.MarkerChapter, OffsetMs: 16 * 60_000},
		},
	}
	cfg := ChannelConfig{ChannelType: ChannelTypeNetwork, GridBlockMinutes: 30, NumBreaks: 3, FadeDurationMs: 500}

	block, err := SegmentSlot(slotWithAsset(asset, 30*60_000), cfg)
	require.NoError(t, err)

	require.Len(t, block.Content, 3)
	for i, want := range []int64{0, 8 * 60_000, 16 * 60_000} {
		assert.Equal(t, want, block.Content[i].AssetStartOffsetMs)
		assert.Equal(t, int64(8*60_000), block.Content[i].DurationMs)
	}
	// Chapter boundaries cut clean.
	assert.Equal(t, TransitionNone, block.Content[0].Transition)
	assert.Equal(t, models.BreakpointChapter, block.Content[0].BreakpointClass)
	assert.Equal(t, models.BreakpointNone, block.Content[2].BreakpointClass)

	require.Len(t, block.Breaks, 2)
	assert.Equal(t, int64(3*60_000), block.Breaks[0].DurationMs)
	assert.Equal(t, int64(3*60_000), block.Breaks[1].DurationMs)
}

func TestSegmentSlot_NetworkComputedBreakpoints(t *testing.T) {
	asset := &models.Asset{URI: "file:///ep.mkv", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent}
	cfg := ChannelConfig{ChannelType: ChannelTypeNetwork, GridBlockMinutes: 30, NumBreaks: 3, FadeDurationMs: 500}

	block, err := SegmentSlot(slotWithAsset(asset, 30*60_000), cfg)
	require.NoError(t, err)

	require.Len(t, block.Content, 4)
	for i := 0; i < 3; i++ {
		assert.Equal(t, int64(6*60_000), block.Content[i].DurationMs)
		assert.Equal(t, TransitionFade, block.Content[i].Transition)
		assert.Equal(t, int64(500), block.Content[i].FadeDurationMs)
		assert.Equal(t, models.BreakpointComputed, block.Content[i].BreakpointClass)
	}
	assert.Equal(t, TransitionNone, block.Content[3].Transition)

	require.Len(t, block.Breaks, 3)
	for _, b := range block.Breaks {
		assert.Equal(t, int64(2*60_000), b.DurationMs)
	}
}

func TestSegmentSlot_EpisodeFillsSlot(t *testing.T) {
	asset := &models.Asset{URI: "file:///ep.mkv", DurationMs: 31 * 60_000, AssetType: models.AssetTypeContent}
	cfg := ChannelConfig{ChannelType: ChannelTypeNetwork, GridBlockMinutes: 30, NumBreaks: 3}

	block, err := SegmentSlot(slotWithAsset(asset, 30*60_000), cfg)
	require.NoError(t, err)

	require.Len(t, block.Content, 1)
	assert.Equal(t, int64(30*60_000), block.Content[0].DurationMs)
	assert.Empty(t, block.Breaks)
}

func TestDistributeBreaks_RemainderOnLastBreaks(t *testing.T) {
	breaks := distributeBreaks(10, 3)
	require.Len(t, breaks, 3)
	assert.Equal(t, int64(3), breaks[0].DurationMs)
	assert.Equal(t, int64(3), breaks[1].DurationMs)
	assert.Equal(t, int64(4), breaks[2].DurationMs)

	var sum int64
	for _, b := range breaks {
		sum += b.DurationMs
	}
	assert.Equal(t, int64(10), sum)
}
