// Package horizon implements the horizon manager: the sole authority
// permitted to trigger schedule planning. It keeps each channel's execution
// window populated ahead of the playhead, persists locked artifacts, and
// serves read-only lookups to the runtime and the HTTP surface.
package horizon

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/planner"
	"github.com/fernwood/playoutd/internal/repository"
)

// AuthorityMode selects who may trigger planning.
type AuthorityMode string

// Authority modes. In authoritative mode read paths never plan; in legacy
// mode a read miss falls back to a synchronous extension for compatibility
// with pre-horizon deployments. Shadow plans like authoritative but is not
// yet the system of record.
const (
	ModeLegacy        AuthorityMode = "legacy"
	ModeShadow        AuthorityMode = "shadow"
	ModeAuthoritative AuthorityMode = "authoritative"
)

// maxDaysPerPass bounds one extension pass so a channel with sparse zones
// cannot spin the loop.
const maxDaysPerPass = 8

// Deps are the collaborators a Manager needs.
type Deps struct {
	Clock    clock.MasterClock
	Planner  *planner.Planner
	Plans    repository.SchedulePlanRepository
	Compiled repository.CompiledProgramLogRepository
	TxLog    repository.TransmissionLogRepository
	Traffic  repository.TrafficRepository
	Logger   *slog.Logger
}

// Manager extends and serves per-channel execution windows.
type Manager struct {
	deps      Deps
	mode      AuthorityMode
	depthMs   int64
	retainMs  int64
	syncEvery time.Duration
	cronSched cron.Schedule
	logger    *slog.Logger

	mu       sync.Mutex
	channels map[string]*channelState
}

type channelState struct {
	cfg   planner.ChannelConfig
	store *execwindow.Store

	// extendMu serializes extension passes for the channel. The sync loop and
	// legacy-mode read misses may call ExtendChannel concurrently; lastDay is
	// owned by the section it guards.
	extendMu sync.Mutex
	lastDay  time.Time
}

// NewManager creates a Manager from horizon configuration.
func NewManager(cfg config.HorizonConfig, deps Deps) (*Manager, error) {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	m := &Manager{
		deps:      deps,
		mode:      AuthorityMode(cfg.AuthorityMode),
		depthMs:   cfg.Depth.Milliseconds(),
		retainMs:  cfg.Retention.Milliseconds(),
		syncEvery: cfg.SyncInterval,
		logger:    deps.Logger.With(slog.String("component", "horizon")),
		channels:  make(map[string]*channelState),
	}
	if cfg.ExtendSchedule != "" {
		sched, err := cron.ParseStandard(cfg.ExtendSchedule)
		if err != nil {
			return nil, fmt.Errorf("parsing extend_schedule: %w", err)
		}
		m.cronSched = sched
	}
	return m, nil
}

// Register adds a channel to the manager with its planning configuration.
func (m *Manager) Register(channelCfg planner.ChannelConfig) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.channels[channelCfg.ChannelSlug]; ok {
		return
	}
	m.channels[channelCfg.ChannelSlug] = &channelState{
		cfg:   channelCfg,
		store: execwindow.NewStore(),
	}
}

// Window returns the channel's execution window store, or nil if the channel
// is not registered.
func (m *Manager) Window(channelSlug string) *execwindow.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if st, ok := m.channels[channelSlug]; ok {
		return st.store
	}
	return nil
}

// Run drives the extension loop until the context is cancelled. Extensions
// fire every sync interval and additionally on the configured cron schedule.
func (m *Manager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.syncEvery)
	defer ticker.Stop()

	m.ExtendAll(ctx)
	nextCron := m.nextCronAfter(time.Now())

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			m.ExtendAll(ctx)
			if !nextCron.IsZero() && !now.Before(nextCron) {
				m.ExtendAll(ctx)
				nextCron = m.nextCronAfter(now)
			}
		}
	}
}

func (m *Manager) nextCronAfter(t time.Time) time.Time {
	if m.cronSched == nil {
		return time.Time{}
	}
	return m.cronSched.Next(t)
}

// ExtendAll extends every registered channel. Failures are logged per
// channel; one channel's planning failure never blocks the others.
func (m *Manager) ExtendAll(ctx context.Context) {
	for _, slug := range m.channelSlugs() {
		if err := m.ExtendChannel(ctx, slug); err != nil {
			m.logger.Error("horizon extension failed",
				slog.String("channel", slug), slog.Any("error", err))
		}
	}
}

func (m *Manager) channelSlugs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	slugs := make([]string, 0, len(m.channels))
	for slug := range m.channels {
		slugs = append(slugs, slug)
	}
	return slugs
}

// ExtendChannel plans (or restores) broadcast days until the channel's
// window reaches the target depth ahead of the playhead, then prunes entries
// behind the retention horizon. Duplicate blocks are ignored by the store,
// so repeated extension is idempotent.
func (m *Manager) ExtendChannel(ctx context.Context, channelSlug string) error {
	m.mu.Lock()
	st, ok := m.channels[channelSlug]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("channel %s not registered", channelSlug)
	}

	st.extendMu.Lock()
	defer st.extendMu.Unlock()

	nowMs := m.deps.Clock.NowUTCMs()
	horizonDay := broadcastDayFor(nowMs+m.depthMs, st.cfg)
	for i := 0; i < maxDaysPerPass; i++ {
		if end, ok := st.store.WindowEnd(); ok && end-nowMs >= m.depthMs {
			break
		}
		day := m.nextDayToPlan(st, nowMs)
		if day.After(horizonDay) {
			break
		}
		planned, err := m.planOrRestoreDay(ctx, st, day)
		if err != nil {
			return err
		}
		if !planned {
			// No active plan. The cursor holds so planning resumes from this
			// day once an operator authors one.
			break
		}
		st.lastDay = day
	}

	if m.retainMs > 0 {
		if removed := st.store.Prune(nowMs - m.retainMs); removed > 0 {
			m.logger.Debug("pruned execution window",
				slog.String("channel", channelSlug), slog.Int("removed", removed))
		}
	}
	return nil
}

// PlanBroadcastDay plans (or restores) a single broadcast day for a channel.
// Used by the offline compile path; the steady-state loop goes through
// ExtendChannel.
func (m *Manager) PlanBroadcastDay(ctx context.Context, channelSlug string, day time.Time) error {
	m.mu.Lock()
	st, ok := m.channels[channelSlug]
	m.mu.Unlock()
	if !ok {
		return fmt.Errorf("channel %s not registered", channelSlug)
	}
	planned, err := m.planOrRestoreDay(ctx, st, day)
	if err != nil {
		return err
	}
	if !planned {
		return fmt.Errorf("no active schedule plan for channel %s on %s",
			channelSlug, day.Format("2006-01-02"))
	}
	return nil
}

func (m *Manager) nextDayToPlan(st *channelState, nowMs int64) time.Time {
	if st.lastDay.IsZero() {
		return broadcastDayFor(nowMs, st.cfg)
	}
	return st.lastDay.AddDate(0, 0, 1)
}

// planOrRestoreDay restores the day from a persisted locked artifact when one
// exists, otherwise plans it fresh and persists the result. The locked
// compiled log is write-once: a concurrent writer losing the race falls back
// to the restore path. Reports false when the channel has no active plan; a
// plan that yields no slots for the date (day-of-week gaps) still counts as
// planned.
func (m *Manager) planOrRestoreDay(ctx context.Context, st *channelState, day time.Time) (bool, error) {
	dayKey := day.Format("2006-01-02")

	restored, err := m.restoreDay(ctx, st, dayKey)
	if err != nil {
		return false, err
	}
	if restored {
		return true, nil
	}

	plan, err := m.deps.Plans.GetActiveForChannel(ctx, st.cfg.ChannelSlug, day)
	if err != nil {
		return false, err
	}
	if plan == nil {
		m.logger.Warn("no active schedule plan",
			slog.String("channel", st.cfg.ChannelSlug), slog.String("day", dayKey))
		return false, nil
	}

	result, err := m.deps.Planner.PlanDay(ctx, plan, day, st.cfg)
	if err != nil {
		return false, err
	}
	if len(result.Log.Entries) == 0 {
		return true, nil
	}

	if err := m.persistDay(ctx, st, result); err != nil {
		if errors.Is(err, repository.ErrArtifactLocked) {
			_, err = m.restoreDay(ctx, st, dayKey)
			return err == nil, err
		}
		return false, err
	}
	st.store.AddEntries(entriesFromLog(result.Log))
	return true, nil
}

func (m *Manager) restoreDay(ctx context.Context, st *channelState, dayKey string) (bool, error) {
	compiled, err := m.deps.Compiled.GetByChannelDay(ctx, st.cfg.ChannelSlug, dayKey)
	if err != nil {
		return false, err
	}
	if compiled == nil {
		return false, nil
	}
	var entries []execwindow.Entry
	if err := json.Unmarshal([]byte(compiled.CompiledJSON), &entries); err != nil {
		return false, fmt.Errorf("decoding compiled log %s/%s: %w", st.cfg.ChannelSlug, dayKey, err)
	}
	st.store.AddEntries(entries)
	return true, nil
}

func (m *Manager) persistDay(ctx context.Context, st *channelState, result *planner.PlanResult) error {
	entries := entriesFromLog(result.Log)
	compiledJSON, err := json.Marshal(entries)
	if err != nil {
		return err
	}
	hash := sha256.Sum256(compiledJSON)

	compiled := &models.CompiledProgramLog{
		ChannelSlug:  result.Log.ChannelSlug,
		BroadcastDay: result.Log.BroadcastDay,
		ScheduleHash: hex.EncodeToString(hash[:]),
		CompiledJSON: string(compiledJSON),
		Locked:       true,
		RangeStartMs: result.Log.RangeStartMs(),
		RangeEndMs:   result.Log.RangeEndMs(),
	}
	if err := m.deps.Compiled.Create(ctx, compiled); err != nil {
		return err
	}

	blocks := make([]*models.TransmissionLogBlock, 0, len(result.Log.Entries))
	for _, e := range result.Log.Entries {
		blocks = append(blocks, &models.TransmissionLogBlock{
			BlockID:      e.BlockID,
			ChannelSlug:  result.Log.ChannelSlug,
			BroadcastDay: result.Log.BroadcastDay,
			StartUTCMs:   e.StartUTCMs,
			EndUTCMs:     e.EndUTCMs,
			Segments:     e.Segments,
		})
	}
	if err := m.deps.TxLog.UpsertBlocks(ctx, blocks); err != nil {
		return err
	}

	if m.deps.Traffic != nil && len(result.Plays) > 0 {
		if err := m.deps.Traffic.RecordPlays(ctx, result.Plays); err != nil {
			return err
		}
	}
	return nil
}

func entriesFromLog(log *planner.TransmissionLog) []execwindow.Entry {
	entries := make([]execwindow.Entry, 0, len(log.Entries))
	for _, e := range log.Entries {
		entries = append(entries, execwindow.Entry{
			BlockID:    e.BlockID,
			StartUTCMs: e.StartUTCMs,
			EndUTCMs:   e.EndUTCMs,
			Segments:   e.Segments,
		})
	}
	return entries
}

// broadcastDayFor returns the broadcast date containing the given instant.
// Local clock readings before the day anchor belong to the previous date.
func broadcastDayFor(nowUTCMs int64, cfg planner.ChannelConfig) time.Time {
	local := time.UnixMilli(nowUTCMs).In(cfg.Location)
	anchorMin := int(cfg.DayAnchor)
	if local.Hour()*60+local.Minute() < anchorMin {
		local = local.AddDate(0, 0, -1)
	}
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, cfg.Location)
}
