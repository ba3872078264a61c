// Package channel hosts the per-channel runtime orchestrator. While viewers
// are attached it drives one playout session against the AIR sink: seeding
// join-in-progress, feeding successor blocks across fence boundaries, and
// attesting each observed block to the as-run log.
package channel

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/fernwood/playoutd/internal/airsink"
	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/horizon"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/timebase"
)

// feed retry bounds for QueueFull back-off.
const (
	maxFeedAttempts  = 5
	feedRetryBackoff = 25 * time.Millisecond
)

// EntrySource serves execution-window reads. *horizon.Manager is the
// production implementation.
type EntrySource interface {
	ActiveEntry(ctx context.Context, channelSlug string, atUTCMs int64) (execwindow.Entry, error)
	NextEntry(ctx context.Context, channelSlug string, afterUTCMs int64) (execwindow.Entry, error)
}

// AsRunLog attests observed blocks. *asrun.Writer is the production
// implementation.
type AsRunLog interface {
	RecordCompleted(ctx context.Context, channelSlug string, entry execwindow.Entry, deltaMs int64) error
	RecordIncomplete(ctx context.Context, channelSlug string, entry execwindow.Entry, reason string) error
}

// Config carries the static per-channel runtime options.
type Config struct {
	ChannelSlug   string
	Format        airsink.ProgramFormat
	Transport     string
	Endpoint      string
	PreloadBudget time.Duration
	StopDeadline  time.Duration

	// FeedAheadHorizon is how far before a block's start its feed must land.
	// A later feed is logged as a horizon miss. Zero disables the check.
	FeedAheadHorizon time.Duration

	// Ring is the channel's TS fan-out buffer. The manager does not move
	// bytes through it, but it owns the session lifecycle: teardown resets
	// the ring so no stale TS crosses into the next session.
	Ring *airsink.TsRingBuffer
}

// Deps are the injected collaborators.
type Deps struct {
	Clock   clock.MasterClock
	Sink    airsink.Sink
	Entries EntrySource
	AsRun   AsRunLog
	Logger  *slog.Logger
}

// Manager is the per-channel finite-state machine driving a single playout
// session while viewers are attached.
type Manager struct {
	cfg     Config
	clock   clock.MasterClock
	sink    airsink.Sink
	entries EntrySource
	asrun   AsRunLog
	logger  *slog.Logger

	mu      sync.Mutex
	state   BoundaryState
	viewers int
	sess    *session
}

// NewManager creates a Manager in state NONE.
func NewManager(cfg Config, deps Deps) *Manager {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		cfg:     cfg,
		clock:   deps.Clock,
		sink:    deps.Sink,
		entries: deps.Entries,
		asrun:   deps.AsRun,
		logger:  logger.With(slog.String("component", "channel"), slog.String("channel", cfg.ChannelSlug)),
	}
}

// State returns the current boundary state.
func (m *Manager) State() BoundaryState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Viewers returns the attached viewer count.
func (m *Manager) Viewers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.viewers
}

// RunwayMs returns the delivered runway ahead of the injected clock, never
// negative. Zero when no session is live.
func (m *Manager) RunwayMs() int64 {
	m.mu.Lock()
	sess := m.sess
	m.mu.Unlock()
	if sess == nil {
		return 0
	}
	runway := sess.deliveredEndMs() - m.clock.NowUTCMs()
	if runway < 0 {
		return 0
	}
	return runway
}

// RingStats describes the channel's TS fan-out buffer.
type RingStats struct {
	BufferedBytes int64
	CapacityBytes int64
	DroppedBytes  int64
}

// RingStats reports the fan-out buffer's occupancy. Zero values when the
// channel carries no ring.
func (m *Manager) RingStats() RingStats {
	ring := m.cfg.Ring
	if ring == nil {
		return RingStats{}
	}
	return RingStats{
		BufferedBytes: ring.Size(),
		CapacityBytes: ring.Capacity(),
		DroppedBytes:  ring.DroppedBytes(),
	}
}

// transition applies one boundary state change. An illegal request forces
// FAILED_TERMINAL and reports IllegalTransitionError.
func (m *Manager) transition(to BoundaryState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transitionLocked(to)
}

func (m *Manager) transitionLocked(to BoundaryState) error {
	from := m.state
	if !transitionAllowed(from, to) {
		if from != StateFailedTerminal {
			m.state = StateFailedTerminal
		}
		return &IllegalTransitionError{ChannelSlug: m.cfg.ChannelSlug, From: from, To: to}
	}
	m.state = to
	m.logger.Debug("boundary transition",
		slog.String("from", from.String()), slog.String("to", to.String()))
	return nil
}

// AddViewer attaches one viewer. The 0 -> 1 transition starts a session; a
// start failure leaves the viewer detached.
func (m *Manager) AddViewer(ctx context.Context) error {
	m.mu.Lock()
	if m.state == StateFailedTerminal {
		m.mu.Unlock()
		return &IllegalTransitionError{ChannelSlug: m.cfg.ChannelSlug, From: StateFailedTerminal, To: StatePlanned}
	}
	starting := m.viewers == 0 && m.sess == nil
	m.viewers++
	m.mu.Unlock()

	if !starting {
		return nil
	}
	if err := m.startSession(ctx); err != nil {
		m.mu.Lock()
		m.viewers--
		m.mu.Unlock()
		return err
	}
	return nil
}

// RemoveViewer detaches one viewer. The N -> 0 transition stops the session.
func (m *Manager) RemoveViewer(ctx context.Context) error {
	m.mu.Lock()
	if m.viewers == 0 {
		m.mu.Unlock()
		return nil
	}
	m.viewers--
	stopping := m.viewers == 0
	m.mu.Unlock()

	if stopping {
		return m.Stop(ctx)
	}
	return nil
}

// Stop is the universal cancel: it closes the event subscription, cancels
// outstanding RPCs, and settles the boundary state within the stop deadline.
// The state afterwards is NONE unless the channel already failed terminally.
func (m *Manager) Stop(ctx context.Context) error {
	m.mu.Lock()
	sess := m.sess
	m.sess = nil
	m.mu.Unlock()

	if sess != nil {
		sess.cancel()
		select {
		case <-sess.done:
		case <-time.After(m.cfg.StopDeadline):
			m.logger.Warn("session did not settle within stop deadline")
		case <-ctx.Done():
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateFailedTerminal {
		m.state = StateNone
	}
	return nil
}

func (m *Manager) clearSession(s *session) {
	m.mu.Lock()
	if m.sess == s {
		m.sess = nil
	}
	m.mu.Unlock()
	if m.cfg.Ring != nil {
		m.cfg.Ring.Reset()
	}
}

// fail moves the channel to FAILED_TERMINAL.
func (m *Manager) fail(reason string, err error) {
	m.mu.Lock()
	m.state = StateFailedTerminal
	m.mu.Unlock()
	m.logger.Error("channel failed terminally",
		slog.String("reason", reason), slog.Any("error", err))
}

// validateRunway walks the execution window from the active entry forward and
// sums non-recovery segment time until the preload budget is met. Recovery
// pads never count toward runway.
func (m *Manager) validateRunway(ctx context.Context, nowUTCMs int64, active execwindow.Entry) error {
	budget := m.cfg.PreloadBudget.Milliseconds()

	runway := nonRecoveryMs(active.Segments) - (nowUTCMs - active.StartUTCMs)
	if runway < 0 {
		runway = 0
	}
	cursor := active
	for runway < budget {
		next, err := m.entries.NextEntry(ctx, m.cfg.ChannelSlug, cursor.StartUTCMs)
		if err != nil {
			var miss *horizon.NoScheduleDataError
			if errors.As(err, &miss) {
				break
			}
			return err
		}
		runway += nonRecoveryMs(next.Segments)
		cursor = next
	}
	if runway < budget {
		return &RunwayReadinessError{ChannelSlug: m.cfg.ChannelSlug, RunwayMs: runway, RequiredMs: budget}
	}
	return nil
}

func nonRecoveryMs(segments []models.SegmentRecord) int64 {
	var total int64
	for _, seg := range segments {
		if seg.SegmentType == models.SegmentPad && seg.RuntimeRecovery {
			continue
		}
		total += seg.SegmentDurationMs
	}
	return total
}

// startSession performs the 0 -> 1 sequence: JIP seeding, handshake, preload,
// switch, and the single event subscription. Runway below budget blocks the
// start without failing the channel.
func (m *Manager) startSession(ctx context.Context) error {
	epoch := clock.NewSessionEpoch(m.clock)

	// The (active entry, offset) pair is computed once; every later decision
	// derives from it.
	active, err := m.entries.ActiveEntry(ctx, m.cfg.ChannelSlug, epoch.UTCMs)
	if err != nil {
		return err
	}
	offsetMs := epoch.UTCMs - active.StartUTCMs

	if err := m.validateRunway(ctx, epoch.UTCMs, active); err != nil {
		return err
	}
	if err := m.transition(StatePlanned); err != nil {
		return err
	}

	sessCtx, cancel := context.WithCancel(context.Background())
	sess := &session{
		mgr:    m,
		epoch:  epoch,
		ctx:    sessCtx,
		cancel: cancel,
		done:   make(chan struct{}),
	}

	if err := sess.preload(active, offsetMs); err != nil {
		cancel()
		m.fail("session preload", err)
		return err
	}

	m.mu.Lock()
	m.sess = sess
	m.mu.Unlock()
	go sess.run()
	return nil
}

// session owns one live playout session. It is single-owner: only its run
// goroutine mutates the cursor after preload.
type session struct {
	mgr    *Manager
	epoch  clock.SessionEpoch
	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	stream airsink.EventStream

	mu        sync.Mutex
	current   execwindow.Entry
	delivered int64
}

func (s *session) deliveredEndMs() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.delivered
}

func (s *session) setCursor(entry execwindow.Entry) {
	s.mu.Lock()
	s.current = entry
	s.delivered = entry.EndUTCMs
	s.mu.Unlock()
}

func (s *session) currentEntry() execwindow.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// preload runs the start sequence up to LIVE: handshake, attach, seed feed,
// switch, subscribe.
func (s *session) preload(active execwindow.Entry, offsetMs int64) error {
	m := s.mgr

	version, err := m.sink.GetVersion(s.ctx)
	if err != nil {
		return err
	}
	m.logger.Debug("sink handshake", slog.String("sink_version", version))

	if err := m.sink.AttachStream(s.ctx, m.cfg.ChannelSlug, m.cfg.Transport, m.cfg.Endpoint, true); err != nil {
		return err
	}
	if err := m.sink.StartBlockPlanSession(s.ctx, m.cfg.ChannelSlug, m.cfg.Format); err != nil {
		return err
	}

	if err := s.feed(seedPlan(active, offsetMs)); err != nil {
		return err
	}
	s.setCursor(active)
	if err := m.transition(StatePreloadIssued); err != nil {
		return err
	}

	if err := m.transition(StateSwitchScheduled); err != nil {
		return err
	}
	// The join instant is the authoritative switch boundary for a JIP start.
	if err := m.sink.SwitchToLive(s.ctx, m.cfg.ChannelSlug, s.epoch.UTCMs, m.clock.NowUTCMs()); err != nil {
		return err
	}
	if err := m.transition(StateSwitchIssued); err != nil {
		return err
	}

	stream, err := m.sink.SubscribeBlockEvents(s.ctx, m.cfg.ChannelSlug)
	if err != nil {
		return err
	}
	s.stream = stream
	return m.transition(StateLive)
}

// run is the steady-state loop: each BlockCompleted triggers exactly one feed
// of the successor entry; no feed is issued mid-block or after SessionEnded.
func (s *session) run() {
	defer close(s.done)
	defer s.mgr.clearSession(s)
	defer s.stream.Close()
	m := s.mgr

	for {
		event, err := s.stream.Next(s.ctx)
		if err != nil {
			if s.ctx.Err() != nil {
				return // Stop() cancelled us; Stop settles the state.
			}
			s.attestIncomplete("transport_error")
			m.fail("event stream", err)
			return
		}

		if event.Ended != nil {
			s.attestIncomplete(event.Ended.Reason)
			m.logger.Info("session ended", slog.String("reason", event.Ended.Reason))
			if err := m.transition(StateNone); err != nil {
				m.logger.Error("settling ended session", slog.Any("error", err))
			}
			return
		}

		completed := event.Completed
		current := s.currentEntry()
		deltaMs := m.clock.NowUTCMs() - current.EndUTCMs
		if err := m.asrun.RecordCompleted(s.ctx, m.cfg.ChannelSlug, current, deltaMs); err != nil {
			m.logger.Error("as-run append failed",
				slog.String("block_id", current.BlockID), slog.Any("error", err))
		}
		m.logger.Debug("block completed",
			slog.String("block_id", completed.BlockID),
			slog.Int64("delta_ms", deltaMs))

		next, err := m.entries.NextEntry(s.ctx, m.cfg.ChannelSlug, current.StartUTCMs)
		if err != nil {
			m.fail("no successor entry", err)
			return
		}
		if tick, terr := timebase.FenceTick(next.StartUTCMs-s.epoch.UTCMs, timebase.Timebase{
			Num: m.cfg.Format.FrameRateNum, Den: m.cfg.Format.FrameRateDen,
		}); terr == nil {
			m.logger.Debug("feeding successor",
				slog.String("block_id", next.BlockID),
				slog.Int64("fence_tick", tick))
		}
		if err := s.feed(airsink.BlockPlan{
			BlockID:    next.BlockID,
			StartUTCMs: next.StartUTCMs,
			EndUTCMs:   next.EndUTCMs,
			Segments:   next.Segments,
		}); err != nil {
			m.fail("feeding successor", err)
			return
		}
		if h := m.cfg.FeedAheadHorizon; h > 0 {
			if lead := next.StartUTCMs - m.clock.NowUTCMs(); lead < h.Milliseconds() {
				m.logger.Warn("feed-ahead horizon miss",
					slog.String("block_id", next.BlockID),
					slog.Int64("lead_ms", lead),
					slog.Int64("horizon_ms", h.Milliseconds()))
			}
		}
		s.setCursor(next)
	}
}

// attestIncomplete records the in-flight block as cut short. Best effort on
// teardown paths.
func (s *session) attestIncomplete(reason string) {
	current := s.currentEntry()
	if current.BlockID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.mgr.asrun.RecordIncomplete(ctx, s.mgr.cfg.ChannelSlug, current, reason); err != nil {
		s.mgr.logger.Error("as-run append failed",
			slog.String("block_id", current.BlockID), slog.Any("error", err))
	}
}

// feed delivers one block plan, backing off on QueueFull. Rejected is fatal.
func (s *session) feed(plan airsink.BlockPlan) error {
	for attempt := 1; ; attempt++ {
		result, err := s.mgr.sink.FeedBlockPlan(s.ctx, plan)
		if err != nil {
			return err
		}
		switch result {
		case airsink.FeedAccepted:
			return nil
		case airsink.FeedQueueFull:
			if attempt >= maxFeedAttempts {
				return &RunwayReadinessError{
					ChannelSlug: s.mgr.cfg.ChannelSlug,
					RunwayMs:    s.deliveredEndMs() - s.mgr.clock.NowUTCMs(),
					RequiredMs:  s.mgr.cfg.PreloadBudget.Milliseconds(),
				}
			}
			select {
			case <-s.ctx.Done():
				return s.ctx.Err()
			case <-time.After(feedRetryBackoff):
			}
		default:
			return errors.New("sink rejected block plan " + plan.BlockID)
		}
	}
}

// seedPlan builds the join-in-progress first feed: block identity and bounds
// unchanged, segments before the join offset dropped, the segment containing
// it trimmed so playback lands exactly at the offset.
func seedPlan(entry execwindow.Entry, offsetMs int64) airsink.BlockPlan {
	plan := airsink.BlockPlan{
		BlockID:    entry.BlockID,
		StartUTCMs: entry.StartUTCMs,
		EndUTCMs:   entry.EndUTCMs,
	}
	if offsetMs <= 0 {
		plan.Segments = append(plan.Segments, entry.Segments...)
		return plan
	}

	var elapsed int64
	for _, seg := range entry.Segments {
		if elapsed+seg.SegmentDurationMs <= offsetMs {
			elapsed += seg.SegmentDurationMs
			continue
		}
		if elapsed < offsetMs {
			within := offsetMs - elapsed
			trimmed := seg
			trimmed.AssetStartOffsetMs += within
			trimmed.SegmentDurationMs -= within
			plan.Segments = append(plan.Segments, trimmed)
			elapsed += seg.SegmentDurationMs
			continue
		}
		plan.Segments = append(plan.Segments, seg)
		elapsed += seg.SegmentDurationMs
	}
	return plan
}
