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

func TestPlanDay_LockedContiguousLog(t *testing.T) {
	lib := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///ep-a.mkv", Title: "Episode A", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent},
		{URI: "file:///ep-b.mkv", Title: "Episode B", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent},
		{URI: "file:///promo-a.mkv", DurationMs: 45_000, AssetType: models.AssetTypePromo},
		{URI: "file:///promo-b.mkv", DurationMs: 30_000, AssetType: models.AssetTypePromo},
	})
	zone := models.Zone{
		BaseModel:  models.BaseModel{ID: models.NewULID()},
		Name:       "Morning",
		LocalStart: "06:00",
		LocalEnd:   "07:00",
		DSTPolicy:  models.DSTReject,
		Programs: []models.ProgramRef{
			{Kind: models.ProgramRefEpisode, Ref: "file:///ep-a.mkv"},
			{Kind: models.ProgramRefEpisode, Ref: "file:///ep-b.mkv"},
		},
	}
	p := New(lib, NewSequenceStore(newMemSequenceRepo()), nil, nil)

	result, err := p.PlanDay(context.Background(), planWithZone(zone),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), utcConfig(30))
	require.NoError(t, err)

	log := result.Log
	assert.Equal(t, LogStateLocked, log.State)
	require.Len(t, log.Entries, 2)
	for _, entry := range log.Entries {
		var sum int64
		for _, s := range entry.Segments {
			require.Positive(t, s.SegmentDurationMs)
			sum += s.SegmentDurationMs
		}
		assert.Equal(t, int64(30*60_000), sum)
		assert.Equal(t, BlockID(entry.Segments[0].AssetURI, entry.StartUTCMs), entry.BlockID)
	}
	assert.Equal(t, log.Entries[0].EndUTCMs, log.Entries[1].StartUTCMs)

	require.Len(t, result.EPG, 2)
	assert.Equal(t, "Episode A", result.EPG[0].Title)

	// Every interstitial placement produced a play-log row bound to its block.
	require.NotEmpty(t, result.Plays)
	for _, play := range result.Plays {
		assert.Equal(t, "retro-one", play.ChannelSlug)
		assert.NotEmpty(t, play.BlockID)
		assert.NotEqual(t, models.AssetType(models.SegmentPad), play.AssetType)
	}
}

func TestPlanDay_NoInterstitialsCollapsesToSingleFiller(t *testing.T) {
	// Three chapter markers would normally cut three breaks of 2 min each,
	// but the only filler is 10 min long and fits none of them. The block
	// collapses to uncut content plus one six-minute filler.
	lib := assets.NewStaticLibrary([]*models.Asset{
		{
			URI: "file:///ep.mkv", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent,
			Markers: []models.AssetMarker{
				{Kind: models.MarkerChapter, OffsetMs: 6 * 60_000},
				{Kind: models.MarkerChapter, OffsetMs: 12 * 60_000},
				{Kind: models.MarkerChapter, OffsetMs: 18 * 60_000},
			},
		},
		{URI: "file:///bumper-10m.mkv", DurationMs: 10 * 60_000, AssetType: models.AssetTypeFiller},
	})
	zone := models.Zone{
		BaseModel:  models.BaseModel{ID: models.NewULID()},
		Name:       "Morning",
		LocalStart: "06:00",
		LocalEnd:   "06:30",
		DSTPolicy:  models.DSTReject,
		Programs:   []models.ProgramRef{{Kind: models.ProgramRefEpisode, Ref: "file:///ep.mkv"}},
	}
	p := New(lib, NewSequenceStore(newMemSequenceRepo()), nil, nil)

	result, err := p.PlanDay(context.Background(), planWithZone(zone),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), utcConfig(30))
	require.NoError(t, err)

	require.Len(t, result.Log.Entries, 1)
	segs := result.Log.Entries[0].Segments
	require.Len(t, segs, 2)
	assert.Equal(t, models.SegmentContent, segs[0].SegmentType)
	assert.Equal(t, int64(24*60_000), segs[0].SegmentDurationMs)
	assert.Equal(t, models.SegmentFiller, segs[1].SegmentType)
	assert.Equal(t, int64(6*60_000), segs[1].SegmentDurationMs)
}

func TestPlanDay_EmptyFamilyAborts(t *testing.T) {
	zone := models.Zone{
		BaseModel:  models.BaseModel{ID: models.NewULID()},
		Name:       "Empty",
		LocalStart: "06:00",
		LocalEnd:   "07:00",
		DSTPolicy:  models.DSTReject,
	}
	p := New(testLibrary(), NewSequenceStore(newMemSequenceRepo()), nil, nil)

	_, err := p.PlanDay(context.Background(), planWithZone(zone),
		time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), utcConfig(30))

	var empty *EmptyProgramFamilyError
	require.ErrorAs(t, err, &empty)
}
