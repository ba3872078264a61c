// Package repository defines data access interfaces for playoutd entities.
// All database access goes through these interfaces, enabling easy testing
// and database backend switching.
package repository

import (
	"context"
	"time"

	"github.com/fernwood/playoutd/internal/models"
)

// SchedulePlanRepository defines operations for schedule plan persistence.
type SchedulePlanRepository interface {
	// Create creates a new schedule plan with its zones.
	Create(ctx context.Context, plan *models.SchedulePlan) error
	// GetByID retrieves a plan by ID with zones preloaded.
	GetByID(ctx context.Context, id models.ULID) (*models.SchedulePlan, error)
	// GetActiveForChannel returns the highest-priority plan active for the
	// channel on the given date, with zones preloaded.
	GetActiveForChannel(ctx context.Context, channelSlug string, date time.Time) (*models.SchedulePlan, error)
	// GetChannels returns the distinct channel slugs that have plans.
	GetChannels(ctx context.Context) ([]string, error)
}

// SequenceStateRepository defines operations for rotation cursor persistence.
type SequenceStateRepository interface {
	// Get retrieves the cursor for a (channel, zone, family) key, or nil.
	Get(ctx context.Context, channelSlug string, zoneID models.ULID, familyKey string) (*models.SequenceState, error)
	// Upsert creates or updates a cursor.
	Upsert(ctx context.Context, state *models.SequenceState) error
}

// AssetRepository defines read operations over the asset library.
type AssetRepository interface {
	// GetByURI retrieves an asset by URI with markers preloaded.
	GetByURI(ctx context.Context, uri string) (*models.Asset, error)
	// GetFillerAssets returns interstitial assets no longer than maxDurationMs,
	// longest first, at most maxCount.
	GetFillerAssets(ctx context.Context, maxDurationMs int64, maxCount int) ([]*models.Asset, error)
	// Create creates an asset with its markers (import path, not planning).
	Create(ctx context.Context, asset *models.Asset) error
}

// CompiledProgramLogRepository defines operations for locked transmission logs.
type CompiledProgramLogRepository interface {
	// Create persists a compiled log. Returns an error if a locked row already
	// exists for the (channel, broadcast day) pair.
	Create(ctx context.Context, log *models.CompiledProgramLog) error
	// GetByChannelDay retrieves the compiled log for a channel and day, or nil.
	GetByChannelDay(ctx context.Context, channelSlug, broadcastDay string) (*models.CompiledProgramLog, error)
}

// TransmissionLogRepository defines operations for as-built block rows.
type TransmissionLogRepository interface {
	// UpsertBlocks writes block rows, ignoring duplicates by block ID.
	UpsertBlocks(ctx context.Context, blocks []*models.TransmissionLogBlock) error
	// GetByChannelRange returns block rows overlapping [startMs, endMs).
	GetByChannelRange(ctx context.Context, channelSlug string, startMs, endMs int64) ([]*models.TransmissionLogBlock, error)
}

// TrafficRepository defines operations for break-fill policy and history.
type TrafficRepository interface {
	// GetPolicy returns the channel's traffic policy, or nil if none exists.
	GetPolicy(ctx context.Context, channelSlug string) (*models.TrafficChannelPolicy, error)
	// RecordPlays appends play-log rows.
	RecordPlays(ctx context.Context, plays []*models.TrafficPlayLog) error
	// LastPlayed returns the most recent play time per asset URI for the
	// channel since the given time.
	LastPlayed(ctx context.Context, channelSlug string, since time.Time) (map[string]time.Time, error)
	// PlayCounts returns plays per asset URI for the channel within [from, to).
	PlayCounts(ctx context.Context, channelSlug string, from, to time.Time) (map[string]int, error)
}

// OverrideRepository defines operations for operator override records.
type OverrideRepository interface {
	// Create durably persists an override record and assigns its sequence
	// number before returning.
	Create(ctx context.Context, record *models.OverrideRecord) error
	// GetByTarget returns all override records for a target, oldest first.
	GetByTarget(ctx context.Context, targetID string) ([]*models.OverrideRecord, error)
}

// AsRunRepository defines append-only as-run attestation operations.
type AsRunRepository interface {
	// AppendBlock appends an as-run block with its segments.
	AppendBlock(ctx context.Context, block *models.AsRunBlock) error
	// GetByChannelRange returns as-run blocks for a channel within
	// [startMs, endMs), oldest first.
	GetByChannelRange(ctx context.Context, channelSlug string, startMs, endMs int64) ([]*models.AsRunBlock, error)
	// LastBlock returns the most recent as-run block for a channel, or nil.
	LastBlock(ctx context.Context, channelSlug string) (*models.AsRunBlock, error)
}
