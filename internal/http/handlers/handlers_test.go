package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/playoutd/internal/airsink"
	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/channel"
	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/models"
)

func TestHealthHandler_GetHealth(t *testing.T) {
	handler := NewHealthHandler("1.0.0")

	output, err := handler.GetHealth(context.Background(), &HealthInput{})
	require.NoError(t, err)

	assert.Equal(t, "healthy", output.Body.Status)
	assert.Equal(t, "1.0.0", output.Body.Version)
	assert.Positive(t, output.Body.CPUInfo.Cores)
	// No database configured.
	assert.Equal(t, "unknown", output.Body.Database.Status)
}

type memCompiledRepo struct {
	logs map[string]*models.CompiledProgramLog
}

func (m *memCompiledRepo) Create(_ context.Context, log *models.CompiledProgramLog) error {
	m.logs[log.ChannelSlug+"/"+log.BroadcastDay] = log
	return nil
}

func (m *memCompiledRepo) GetByChannelDay(_ context.Context, channelSlug, broadcastDay string) (*models.CompiledProgramLog, error) {
	return m.logs[channelSlug+"/"+broadcastDay], nil
}

func TestEPGHandler_GetEPG(t *testing.T) {
	entries := []execwindow.Entry{
		{
			BlockID:    "blk-aaaaaaaaaaaaaaaaaaaaaaaa",
			StartUTCMs: 0,
			EndUTCMs:   1_800_000,
			Segments: []models.SegmentRecord{
				{SegmentType: models.SegmentContent, AssetURI: "file:///media/ep-a.mkv", SegmentDurationMs: 1_740_000},
				{SegmentType: models.SegmentPromo, AssetURI: "file:///media/promo.mkv", SegmentDurationMs: 60_000},
			},
		},
	}
	compiledJSON, err := json.Marshal(entries)
	require.NoError(t, err)

	repo := &memCompiledRepo{logs: map[string]*models.CompiledProgramLog{
		"retro-one/2025-01-15": {
			ChannelSlug:  "retro-one",
			BroadcastDay: "2025-01-15",
			ScheduleHash: "abc123",
			CompiledJSON: string(compiledJSON),
			Locked:       true,
		},
	}}
	library := assets.NewStaticLibrary([]*models.Asset{
		{URI: "file:///media/ep-a.mkv", AssetType: models.AssetTypeContent, DurationMs: 1_740_000, Title: "Night Shift", Synopsis: "Pilot"},
	})
	handler := NewEPGHandler(repo, library, nil)

	output, err := handler.GetEPG(context.Background(), &EPGInput{Slug: "retro-one", Day: "2025-01-15"})
	require.NoError(t, err)

	assert.True(t, output.Body.Locked)
	assert.Equal(t, "abc123", output.Body.ScheduleHash)
	require.Len(t, output.Body.Events, 1)
	event := output.Body.Events[0]
	assert.Equal(t, "Night Shift", event.Title)
	assert.Equal(t, "Pilot", event.Synopsis)
	assert.Equal(t, "file:///media/ep-a.mkv", event.AssetURI)
	assert.Equal(t, int64(1_800_000), event.EndUTCMs)
}

func TestEPGHandler_UnknownDayIs404(t *testing.T) {
	handler := NewEPGHandler(&memCompiledRepo{logs: map[string]*models.CompiledProgramLog{}}, assets.NewStaticLibrary(nil), nil)

	_, err := handler.GetEPG(context.Background(), &EPGInput{Slug: "retro-one", Day: "2030-01-01"})
	require.Error(t, err)

	_, err = handler.GetEPG(context.Background(), &EPGInput{Slug: "retro-one"})
	require.Error(t, err)
}

type fakeWindows struct {
	stores map[string]*execwindow.Store
}

func (f *fakeWindows) Window(slug string) *execwindow.Store { return f.stores[slug] }

func TestWindowHandler_GetWindow(t *testing.T) {
	store := execwindow.NewStore()
	store.AddEntries([]execwindow.Entry{
		{BlockID: "blk-a", StartUTCMs: 1_000_000, EndUTCMs: 2_800_000,
			Segments: []models.SegmentRecord{{SegmentType: models.SegmentContent, SegmentDurationMs: 1_800_000}}},
		{BlockID: "blk-b", StartUTCMs: 2_800_000, EndUTCMs: 4_600_000,
			Segments: []models.SegmentRecord{{SegmentType: models.SegmentContent, SegmentDurationMs: 1_800_000}}},
	})
	handler := NewWindowHandler(&fakeWindows{stores: map[string]*execwindow.Store{"retro-one": store}}, clock.NewFakeClock(1_500_000))

	output, err := handler.GetWindow(context.Background(), &WindowInput{Slug: "retro-one"})
	require.NoError(t, err)

	assert.Equal(t, 2, output.Body.Entries)
	assert.Equal(t, int64(1_000_000), output.Body.WindowStart)
	assert.Equal(t, int64(4_600_000), output.Body.WindowEnd)
	assert.Equal(t, int64(3_100_000), output.Body.DepthAheadMs)
	require.Len(t, output.Body.Blocks, 2)
	assert.Equal(t, "blk-a", output.Body.Blocks[0].BlockID)

	_, err = handler.GetWindow(context.Background(), &WindowInput{Slug: "missing"})
	require.Error(t, err)
}

func TestChannelHandler_Status(t *testing.T) {
	ring := airsink.NewTsRingBuffer(4096)
	require.NoError(t, ring.Write(make([]byte, 188)))
	m := channel.NewManager(channel.Config{ChannelSlug: "retro-one", Ring: ring}, channel.Deps{Clock: clock.NewFakeClock(0)})
	handler := NewChannelHandler(map[string]*channel.Manager{"retro-one": m})

	list, err := handler.ListChannels(context.Background(), &ChannelListInput{})
	require.NoError(t, err)
	require.Len(t, list.Body.Channels, 1)
	assert.Equal(t, "NONE", list.Body.Channels[0].BoundaryState)
	assert.Zero(t, list.Body.Channels[0].Viewers)

	status, err := handler.GetChannelStatus(context.Background(), &ChannelStatusInput{Slug: "retro-one"})
	require.NoError(t, err)
	assert.Equal(t, "retro-one", status.Body.ChannelSlug)
	assert.Equal(t, int64(188), status.Body.BufferBytes)
	assert.Equal(t, int64(4096), status.Body.BufferCapacityBytes)
	assert.Zero(t, status.Body.BufferDroppedBytes)

	_, err = handler.GetChannelStatus(context.Background(), &ChannelStatusInput{Slug: "missing"})
	require.Error(t, err)
}
