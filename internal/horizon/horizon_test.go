package horizon

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/planner"
	"github.com/fernwood/playoutd/internal/repository"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.SchedulePlan{}, &models.Zone{}, &models.SequenceState{},
		&models.Asset{}, &models.AssetMarker{},
		&models.CompiledProgramLog{}, &models.TransmissionLogBlock{},
		&models.TrafficChannelPolicy{}, &models.TrafficPlayLog{},
	))
	return db
}

func seedSchedule(t *testing.T, db *gorm.DB) {
	t.Helper()
	ctx := context.Background()

	assetRepo := repository.NewAssetRepository(db)
	require.NoError(t, assetRepo.Create(ctx, &models.Asset{
		URI: "file:///ep-a.mkv", Title: "Episode A", DurationMs: 24 * 60_000, AssetType: models.AssetTypeContent,
	}))
	require.NoError(t, assetRepo.Create(ctx, &models.Asset{
		URI: "file:///promo.mkv", DurationMs: 60_000, AssetType: models.AssetTypePromo,
	}))

	planRepo := repository.NewSchedulePlanRepository(db)
	require.NoError(t, planRepo.Create(ctx, &models.SchedulePlan{
		ChannelSlug: "retro-one",
		Name:        "Base",
		Zones: []models.Zone{{
			Name:       "Morning",
			LocalStart: "06:00",
			LocalEnd:   "07:00",
			DSTPolicy:  models.DSTReject,
			Programs:   []models.ProgramRef{{Kind: models.ProgramRefEpisode, Ref: "file:///ep-a.mkv"}},
		}},
	}))
}

func channelCfg() planner.ChannelConfig {
	anchor, _ := config.ParseDayAnchor("06:00")
	return planner.ChannelConfig{
		ChannelSlug:      "retro-one",
		Location:         time.UTC,
		GridBlockMinutes: 30,
		DayAnchor:        anchor,
		ChannelType:      planner.ChannelTypeNetwork,
		NumBreaks:        3,
		FadeDurationMs:   500,
	}
}

func newTestManager(t *testing.T, db *gorm.DB, clk clock.MasterClock, mode string) *Manager {
	t.Helper()
	lib := assets.NewLibrary(repository.NewAssetRepository(db))
	p := planner.New(lib,
		planner.NewSequenceStore(repository.NewSequenceStateRepository(db)),
		repository.NewTrafficRepository(db), nil)

	mgr, err := NewManager(config.HorizonConfig{
		AuthorityMode: mode,
		Depth:         24 * time.Hour,
		SyncInterval:  time.Minute,
		Retention:     24 * time.Hour,
	}, Deps{
		Clock:    clk,
		Planner:  p,
		Plans:    repository.NewSchedulePlanRepository(db),
		Compiled: repository.NewCompiledProgramLogRepository(db),
		TxLog:    repository.NewTransmissionLogRepository(db),
		Traffic:  repository.NewTrafficRepository(db),
	})
	require.NoError(t, err)
	mgr.Register(channelCfg())
	return mgr
}

func TestExtendChannel_PopulatesWindowIdempotently(t *testing.T) {
	db := setupDB(t)
	seedSchedule(t, db)
	clk := clock.NewFakeClock(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli())
	mgr := newTestManager(t, db, clk, "authoritative")
	ctx := context.Background()

	require.NoError(t, mgr.ExtendChannel(ctx, "retro-one"))
	store := mgr.Window("retro-one")
	require.NotNil(t, store)
	first := store.Len()
	require.Greater(t, first, 0)

	end, ok := store.WindowEnd()
	require.True(t, ok)
	assert.GreaterOrEqual(t, end-clk.NowUTCMs(), (24 * time.Hour).Milliseconds())

	// Extending again adds nothing.
	require.NoError(t, mgr.ExtendChannel(ctx, "retro-one"))
	assert.Equal(t, first, store.Len())

	// The day's compiled artifact is locked.
	compiled, err := repository.NewCompiledProgramLogRepository(db).
		GetByChannelDay(ctx, "retro-one", "2025-01-15")
	require.NoError(t, err)
	require.NotNil(t, compiled)
	assert.True(t, compiled.Locked)
}

func TestExtendChannel_RestoresFromPersistedArtifacts(t *testing.T) {
	db := setupDB(t)
	seedSchedule(t, db)
	clk := clock.NewFakeClock(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli())
	ctx := context.Background()

	first := newTestManager(t, db, clk, "authoritative")
	require.NoError(t, first.ExtendChannel(ctx, "retro-one"))
	want := first.Window("retro-one").Snapshot()

	// A fresh manager over the same database restores the locked days
	// instead of replanning them.
	second := newTestManager(t, db, clk, "authoritative")
	require.NoError(t, second.ExtendChannel(ctx, "retro-one"))
	got := second.Window("retro-one").Snapshot()

	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].BlockID, got[i].BlockID)
		assert.Equal(t, want[i].StartUTCMs, got[i].StartUTCMs)
	}
}

func TestActiveEntry_AuthoritativeMissDoesNotPlan(t *testing.T) {
	db := setupDB(t)
	seedSchedule(t, db)
	clk := clock.NewFakeClock(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli())
	mgr := newTestManager(t, db, clk, "authoritative")

	_, err := mgr.ActiveEntry(context.Background(), "retro-one", clk.NowUTCMs())
	var noData *NoScheduleDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, "retro-one", noData.ChannelSlug)

	// The read path must not have planned anything.
	assert.Equal(t, 0, mgr.Window("retro-one").Len())
}

func TestActiveEntry_LegacyMissExtends(t *testing.T) {
	db := setupDB(t)
	seedSchedule(t, db)
	clk := clock.NewFakeClock(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli())
	mgr := newTestManager(t, db, clk, "legacy")

	entry, err := mgr.ActiveEntry(context.Background(), "retro-one", clk.NowUTCMs())
	require.NoError(t, err)
	assert.Equal(t, clk.NowUTCMs(), entry.StartUTCMs)
}

func TestExtendChannel_CursorHoldsUntilPlanAuthored(t *testing.T) {
	db := setupDB(t)
	clk := clock.NewFakeClock(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli())
	mgr := newTestManager(t, db, clk, "authoritative")
	ctx := context.Background()

	// Passes without an authored plan must not advance the planning cursor.
	for i := 0; i < 3; i++ {
		require.NoError(t, mgr.ExtendChannel(ctx, "retro-one"))
	}
	assert.Equal(t, 0, mgr.Window("retro-one").Len())

	// Once a plan exists, planning resumes from the current broadcast day and
	// the window covers the playhead.
	seedSchedule(t, db)
	require.NoError(t, mgr.ExtendChannel(ctx, "retro-one"))
	entry, err := mgr.ActiveEntry(ctx, "retro-one", clk.NowUTCMs())
	require.NoError(t, err)
	assert.Equal(t, clk.NowUTCMs(), entry.StartUTCMs)
}

func TestExtendChannel_ConcurrentWithReads(t *testing.T) {
	db := setupDB(t)
	seedSchedule(t, db)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	clk := clock.NewFakeClock(time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli())
	mgr := newTestManager(t, db, clk, "legacy")
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = mgr.ExtendChannel(ctx, "retro-one")
		}()
		go func() {
			defer wg.Done()
			_, _ = mgr.ActiveEntry(ctx, "retro-one", clk.NowUTCMs())
		}()
	}
	wg.Wait()

	entry, err := mgr.ActiveEntry(ctx, "retro-one", clk.NowUTCMs())
	require.NoError(t, err)
	assert.Equal(t, clk.NowUTCMs(), entry.StartUTCMs)
}

func TestBroadcastDayFor_AnchorBoundary(t *testing.T) {
	cfg := channelCfg()

	// 05:59 local is still the previous broadcast day; 06:00 begins the next.
	before := time.Date(2025, 1, 15, 5, 59, 0, 0, time.UTC).UnixMilli()
	after := time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC).UnixMilli()

	assert.Equal(t, "2025-01-14", broadcastDayFor(before, cfg).Format("2006-01-02"))
	assert.Equal(t, "2025-01-15", broadcastDayFor(after, cfg).Format("2006-01-02"))
}
