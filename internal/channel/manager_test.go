package channel

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fernwood/playoutd/internal/airsink"
	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/horizon"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/observability"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type switchCall struct {
	targetBoundaryMs int64
	issuedAtMs       int64
}

type fakeStream struct {
	events chan airsink.BlockEvent
}

func (f *fakeStream) Next(ctx context.Context) (airsink.BlockEvent, error) {
	select {
	case ev := <-f.events:
		return ev, nil
	case <-ctx.Done():
		return airsink.BlockEvent{}, ctx.Err()
	}
}

func (f *fakeStream) Close() error { return nil }

type fakeSink struct {
	mu          sync.Mutex
	feeds       []airsink.BlockPlan
	feedResults []airsink.FeedResult
	switches    []switchCall
	stream      *fakeStream
	started     bool
}

func newFakeSink() *fakeSink {
	return &fakeSink{stream: &fakeStream{events: make(chan airsink.BlockEvent, 16)}}
}

func (f *fakeSink) GetVersion(context.Context) (string, error) { return "air-test", nil }

func (f *fakeSink) AttachStream(context.Context, string, string, string, bool) error { return nil }

func (f *fakeSink) StartBlockPlanSession(context.Context, string, airsink.ProgramFormat) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.started = true
	return nil
}

func (f *fakeSink) FeedBlockPlan(_ context.Context, plan airsink.BlockPlan) (airsink.FeedResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.feedResults) > 0 {
		result := f.feedResults[0]
		f.feedResults = f.feedResults[1:]
		if result != airsink.FeedAccepted {
			return result, nil
		}
	}
	f.feeds = append(f.feeds, plan)
	return airsink.FeedAccepted, nil
}

func (f *fakeSink) SwitchToLive(_ context.Context, _ string, targetBoundaryMs, issuedAtMs int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.switches = append(f.switches, switchCall{targetBoundaryMs, issuedAtMs})
	return nil
}

func (f *fakeSink) SubscribeBlockEvents(context.Context, string) (airsink.EventStream, error) {
	return f.stream, nil
}

func (f *fakeSink) feedPlans() []airsink.BlockPlan {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]airsink.BlockPlan, len(f.feeds))
	copy(out, f.feeds)
	return out
}

func (f *fakeSink) emitCompleted(entry execwindow.Entry) {
	f.stream.events <- airsink.BlockEvent{Completed: &airsink.BlockCompleted{
		BlockID:    entry.BlockID,
		StartUTCMs: entry.StartUTCMs,
		EndUTCMs:   entry.EndUTCMs,
	}}
}

func (f *fakeSink) emitEnded(reason string) {
	f.stream.events <- airsink.BlockEvent{Ended: &airsink.SessionEnded{Reason: reason}}
}

type fakeEntries struct {
	entries []execwindow.Entry
}

func (f *fakeEntries) ActiveEntry(_ context.Context, slug string, atUTCMs int64) (execwindow.Entry, error) {
	for _, e := range f.entries {
		if e.StartUTCMs <= atUTCMs && atUTCMs < e.EndUTCMs {
			return e, nil
		}
	}
	return execwindow.Entry{}, &horizon.NoScheduleDataError{ChannelSlug: slug, AtUTCMs: atUTCMs}
}

func (f *fakeEntries) NextEntry(_ context.Context, slug string, afterUTCMs int64) (execwindow.Entry, error) {
	for _, e := range f.entries {
		if e.StartUTCMs > afterUTCMs {
			return e, nil
		}
	}
	return execwindow.Entry{}, &horizon.NoScheduleDataError{ChannelSlug: slug, AtUTCMs: afterUTCMs}
}

type asRunCall struct {
	blockID   string
	completed bool
	deltaMs   int64
	reason    string
}

type fakeAsRun struct {
	mu    sync.Mutex
	calls []asRunCall
}

func (f *fakeAsRun) RecordCompleted(_ context.Context, _ string, entry execwindow.Entry, deltaMs int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, asRunCall{blockID: entry.BlockID, completed: true, deltaMs: deltaMs})
	return nil
}

func (f *fakeAsRun) RecordIncomplete(_ context.Context, _ string, entry execwindow.Entry, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, asRunCall{blockID: entry.BlockID, reason: reason})
	return nil
}

func (f *fakeAsRun) recorded() []asRunCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]asRunCall, len(f.calls))
	copy(out, f.calls)
	return out
}

func blockAt(id string, startMs, durMs int64) execwindow.Entry {
	return execwindow.Entry{
		BlockID:    id,
		StartUTCMs: startMs,
		EndUTCMs:   startMs + durMs,
		Segments: []models.SegmentRecord{
			{SegmentType: models.SegmentContent, AssetURI: "file:///media/" + id + ".mkv", SegmentDurationMs: durMs},
		},
	}
}

func contiguousBlocks(n int, startMs, durMs int64) []execwindow.Entry {
	out := make([]execwindow.Entry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, blockAt("blk-"+string(rune('a'+i)), startMs+int64(i)*durMs, durMs))
	}
	return out
}

func testManager(t *testing.T, sink *fakeSink, entries []execwindow.Entry, clk clock.MasterClock, budget time.Duration) (*Manager, *fakeAsRun) {
	t.Helper()
	asrun := &fakeAsRun{}
	m := NewManager(Config{
		ChannelSlug:   "retro-one",
		Format:        airsink.ProgramFormat{FrameRateNum: 30000, FrameRateDen: 1001},
		Transport:     "ts",
		Endpoint:      "ring://retro-one",
		PreloadBudget: budget,
		StopDeadline:  2 * time.Second,
	}, Deps{
		Clock:   clk,
		Sink:    sink,
		Entries: &fakeEntries{entries: entries},
		AsRun:   asrun,
	})
	return m, asrun
}

func waitForState(t *testing.T, m *Manager, want BoundaryState) {
	t.Helper()
	require.Eventually(t, func() bool { return m.State() == want },
		2*time.Second, 5*time.Millisecond, "state never reached %s", want)
}

func TestManager_JoinInProgressSeed(t *testing.T) {
	blockStart := int64(600_000)
	entry := execwindow.Entry{
		BlockID:    "blk-jip",
		StartUTCMs: blockStart,
		EndUTCMs:   blockStart + 1_800_000,
		Segments: []models.SegmentRecord{
			{SegmentType: models.SegmentContent, AssetURI: "file:///media/movie.mkv", SegmentDurationMs: 1_440_000},
			{SegmentType: models.SegmentPromo, AssetURI: "file:///media/promo.mkv", SegmentDurationMs: 60_000},
			{SegmentType: models.SegmentPad, SegmentDurationMs: 300_000},
		},
	}
	successor := blockAt("blk-next", blockStart+1_800_000, 1_800_000)

	clk := clock.NewFakeClock(blockStart + 7*60_000)
	sink := newFakeSink()
	m, _ := testManager(t, sink, []execwindow.Entry{entry, successor}, clk, 10*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)
	defer m.Stop(context.Background())

	feeds := sink.feedPlans()
	require.Len(t, feeds, 1)
	seed := feeds[0]
	assert.Equal(t, "blk-jip", seed.BlockID)
	assert.Equal(t, blockStart, seed.StartUTCMs)
	require.Len(t, seed.Segments, 3)
	assert.Equal(t, int64(7*60_000), seed.Segments[0].AssetStartOffsetMs)
	assert.Equal(t, int64(1_440_000-7*60_000), seed.Segments[0].SegmentDurationMs)
	assert.Equal(t, int64(60_000), seed.Segments[1].SegmentDurationMs)

	// The join instant is the declared switch boundary.
	require.Len(t, sink.switches, 1)
	assert.Equal(t, blockStart+7*60_000, sink.switches[0].targetBoundaryMs)

	// The successor feed starts clean.
	sink.emitCompleted(entry)
	require.Eventually(t, func() bool { return len(sink.feedPlans()) == 2 },
		2*time.Second, 5*time.Millisecond)
	next := sink.feedPlans()[1]
	assert.Equal(t, "blk-next", next.BlockID)
	assert.Zero(t, next.Segments[0].AssetStartOffsetMs)
}

func TestManager_SeedSkipsFullyElapsedSegments(t *testing.T) {
	entry := execwindow.Entry{
		BlockID:    "blk-deep",
		StartUTCMs: 0,
		EndUTCMs:   1_800_000,
		Segments: []models.SegmentRecord{
			{SegmentType: models.SegmentContent, AssetURI: "file:///media/a.mkv", SegmentDurationMs: 600_000},
			{SegmentType: models.SegmentContent, AssetURI: "file:///media/b.mkv", SegmentDurationMs: 1_200_000},
		},
	}

	plan := seedPlan(entry, 900_000)
	require.Len(t, plan.Segments, 1)
	assert.Equal(t, "file:///media/b.mkv", plan.Segments[0].AssetURI)
	assert.Equal(t, int64(300_000), plan.Segments[0].AssetStartOffsetMs)
	assert.Equal(t, int64(900_000), plan.Segments[0].SegmentDurationMs)

	clean := seedPlan(entry, 0)
	assert.Equal(t, entry.Segments, clean.Segments)
}

func TestManager_FeedExactlyOncePerCompletion(t *testing.T) {
	entries := contiguousBlocks(8, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, asrun := testManager(t, sink, entries, clk, 10*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)

	for i := 0; i < 5; i++ {
		sink.emitCompleted(entries[i])
	}
	sink.emitEnded("natural_end")
	waitForState(t, m, StateNone)

	// Seed plus exactly one successor feed per BlockCompleted, in order,
	// none after SessionEnded.
	feeds := sink.feedPlans()
	require.Len(t, feeds, 6)
	for i, plan := range feeds {
		assert.Equal(t, entries[i].BlockID, plan.BlockID)
	}

	calls := asrun.recorded()
	require.Len(t, calls, 6)
	for i := 0; i < 5; i++ {
		assert.True(t, calls[i].completed)
		assert.Equal(t, entries[i].BlockID, calls[i].blockID)
	}
	assert.False(t, calls[5].completed)
	assert.Equal(t, "natural_end", calls[5].reason)
}

func TestManager_RunwayFromInjectedClock(t *testing.T) {
	entries := []execwindow.Entry{blockAt("blk-a", 100_000, 10_000)}
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, _ := testManager(t, sink, entries, clk, 5*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)
	defer m.Stop(context.Background())

	assert.Equal(t, int64(10_000), m.RunwayMs())

	clk.Advance(5 * time.Second)
	assert.Equal(t, int64(5_000), m.RunwayMs())

	// Past the delivered end the runway is zero, never negative.
	clk.Advance(6 * time.Second)
	assert.Equal(t, int64(0), m.RunwayMs())
}

func TestManager_SessionDeltaUsesInjectedClock(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, asrun := testManager(t, sink, entries, clk, 10*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)
	defer m.Stop(context.Background())

	// Scheduled end 110_000; the sink reports completion 250ms late.
	clk.SetUTCMs(110_250)
	sink.emitCompleted(entries[0])
	require.Eventually(t, func() bool { return len(asrun.recorded()) == 1 },
		2*time.Second, 5*time.Millisecond)
	assert.Equal(t, int64(250), asrun.recorded()[0].deltaMs)
}

func TestManager_RunwayBelowBudgetBlocksStart(t *testing.T) {
	entries := []execwindow.Entry{blockAt("blk-a", 100_000, 10_000)}
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, _ := testManager(t, sink, entries, clk, 30*time.Second)

	err := m.AddViewer(context.Background())
	var runwayErr *RunwayReadinessError
	require.ErrorAs(t, err, &runwayErr)
	assert.Equal(t, int64(10_000), runwayErr.RunwayMs)
	assert.Equal(t, int64(30_000), runwayErr.RequiredMs)

	// Blocked start, not a terminal failure: the viewer was never attached
	// and no sink call was made.
	assert.Equal(t, StateNone, m.State())
	assert.Zero(t, m.Viewers())
	assert.Empty(t, sink.feedPlans())
}

func TestManager_RecoveryPadsExemptFromRunway(t *testing.T) {
	entry := execwindow.Entry{
		BlockID:    "blk-pad",
		StartUTCMs: 100_000,
		EndUTCMs:   140_000,
		Segments: []models.SegmentRecord{
			{SegmentType: models.SegmentContent, AssetURI: "file:///media/a.mkv", SegmentDurationMs: 10_000},
			{SegmentType: models.SegmentPad, SegmentDurationMs: 30_000, RuntimeRecovery: true},
		},
	}
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, _ := testManager(t, sink, []execwindow.Entry{entry}, clk, 20*time.Second)

	err := m.AddViewer(context.Background())
	var runwayErr *RunwayReadinessError
	require.ErrorAs(t, err, &runwayErr)
	assert.Equal(t, int64(10_000), runwayErr.RunwayMs)
}

func TestManager_QueueFullBacksOffAndRetries(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	sink.feedResults = []airsink.FeedResult{airsink.FeedQueueFull, airsink.FeedQueueFull}
	m, _ := testManager(t, sink, entries, clk, 10*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)
	defer m.Stop(context.Background())

	feeds := sink.feedPlans()
	require.Len(t, feeds, 1)
	assert.Equal(t, "blk-a", feeds[0].BlockID)
}

func TestManager_ViewerLifecycle(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, _ := testManager(t, sink, entries, clk, 10*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)
	require.NoError(t, m.AddViewer(context.Background()))
	assert.Equal(t, 2, m.Viewers())

	// A second viewer joins the existing session.
	assert.Len(t, sink.feedPlans(), 1)

	require.NoError(t, m.RemoveViewer(context.Background()))
	assert.Equal(t, StateLive, m.State())

	require.NoError(t, m.RemoveViewer(context.Background()))
	assert.Equal(t, StateNone, m.State())
	assert.Zero(t, m.Viewers())
}

func TestManager_StopSettlesWithinDeadline(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	m, _ := testManager(t, sink, entries, clk, 10*time.Second)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)

	started := time.Now()
	require.NoError(t, m.Stop(context.Background()))
	assert.Less(t, time.Since(started), 2*time.Second)
	assert.Equal(t, StateNone, m.State())
}

func TestManager_SessionTeardownResetsRing(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	ring := airsink.NewTsRingBuffer(1 << 20)
	m := NewManager(Config{
		ChannelSlug:   "retro-one",
		Format:        airsink.ProgramFormat{FrameRateNum: 30000, FrameRateDen: 1001},
		Transport:     "mpegts",
		Endpoint:      "ring://retro-one",
		PreloadBudget: 10 * time.Second,
		StopDeadline:  2 * time.Second,
		Ring:          ring,
	}, Deps{
		Clock:   clk,
		Sink:    sink,
		Entries: &fakeEntries{entries: entries},
		AsRun:   &fakeAsRun{},
	})

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)

	require.NoError(t, ring.Write(make([]byte, 188*10)))
	stats := m.RingStats()
	assert.Equal(t, int64(1_880), stats.BufferedBytes)
	assert.Equal(t, int64(1<<20), stats.CapacityBytes)

	// Teardown leaves no stale TS behind for the next session.
	require.NoError(t, m.Stop(context.Background()))
	assert.Equal(t, int64(0), m.RingStats().BufferedBytes)
}

func feedAheadManager(sink *fakeSink, entries []execwindow.Entry, clk clock.MasterClock, horizonAhead time.Duration, out *syncBuffer) *Manager {
	logger := observability.NewLoggerWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, out)
	return NewManager(Config{
		ChannelSlug:      "retro-one",
		Format:           airsink.ProgramFormat{FrameRateNum: 30000, FrameRateDen: 1001},
		Transport:        "mpegts",
		Endpoint:         "ring://retro-one",
		PreloadBudget:    10 * time.Second,
		StopDeadline:     2 * time.Second,
		FeedAheadHorizon: horizonAhead,
	}, Deps{
		Clock:   clk,
		Sink:    sink,
		Entries: &fakeEntries{entries: entries},
		AsRun:   &fakeAsRun{},
		Logger:  logger,
	})
}

func TestManager_FeedAheadHorizonMissWarns(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	out := &syncBuffer{}
	m := feedAheadManager(sink, entries, clk, time.Minute, out)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)

	// The successor lands 10s before its start against a 60s horizon.
	sink.emitCompleted(entries[0])
	require.Eventually(t, func() bool { return len(sink.feedPlans()) == 2 },
		2*time.Second, 5*time.Millisecond)
	sink.emitEnded("natural_end")
	waitForState(t, m, StateNone)

	assert.Contains(t, out.String(), "feed-ahead horizon miss")
	assert.Contains(t, out.String(), entries[1].BlockID)
}

func TestManager_FeedAheadHorizonMetIsQuiet(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	sink := newFakeSink()
	out := &syncBuffer{}
	m := feedAheadManager(sink, entries, clk, 5*time.Second, out)

	require.NoError(t, m.AddViewer(context.Background()))
	waitForState(t, m, StateLive)

	sink.emitCompleted(entries[0])
	require.Eventually(t, func() bool { return len(sink.feedPlans()) == 2 },
		2*time.Second, 5*time.Millisecond)
	sink.emitEnded("natural_end")
	waitForState(t, m, StateNone)

	assert.NotContains(t, out.String(), "feed-ahead horizon miss")
}

func TestBoundaryTransitions(t *testing.T) {
	legal := [][2]BoundaryState{
		{StateNone, StatePlanned},
		{StatePlanned, StatePreloadIssued},
		{StatePreloadIssued, StateSwitchScheduled},
		{StateSwitchScheduled, StateSwitchIssued},
		{StateSwitchIssued, StateLive},
		{StateLive, StateNone},
		{StateLive, StatePlanned},
	}
	for _, pair := range legal {
		assert.True(t, transitionAllowed(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	assert.False(t, transitionAllowed(StateNone, StateLive))
	assert.False(t, transitionAllowed(StatePlanned, StateNone))
	assert.False(t, transitionAllowed(StateFailedTerminal, StateNone))
	assert.False(t, transitionAllowed(StateFailedTerminal, StateFailedTerminal))
	assert.True(t, transitionAllowed(StatePlanned, StateFailedTerminal))
}

func TestManager_IllegalTransitionIsTerminal(t *testing.T) {
	entries := contiguousBlocks(4, 100_000, 10_000)
	clk := clock.NewFakeClock(100_000)
	m, _ := testManager(t, newFakeSink(), entries, clk, 10*time.Second)

	err := m.transition(StateLive)
	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, StateFailedTerminal, m.State())

	// Absorbing: further viewers are refused.
	require.Error(t, m.AddViewer(context.Background()))
	require.NoError(t, m.Stop(context.Background()))
	assert.Equal(t, StateFailedTerminal, m.State())
}
