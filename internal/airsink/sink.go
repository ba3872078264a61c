// Package airsink defines the client surface of the external AIR rendering
// engine. The runtime depends only on the Sink interface; the gRPC adapter
// and the test fakes are interchangeable behind it.
package airsink

import (
	"context"
	"errors"

	"github.com/fernwood/playoutd/internal/models"
)

// FeedResult is the sink's verdict on one fed block.
type FeedResult int

// Feed results. QueueFull asks the core to back off and retry at the next
// scheduling pass; Rejected is fatal for the session.
const (
	FeedAccepted FeedResult = iota
	FeedQueueFull
	FeedRejected
)

func (r FeedResult) String() string {
	switch r {
	case FeedAccepted:
		return "accepted"
	case FeedQueueFull:
		return "queue_full"
	case FeedRejected:
		return "rejected"
	}
	return "unknown"
}

// ErrSessionTransport indicates a sink disconnect or timeout. The session is
// torn down and restarted.
var ErrSessionTransport = errors.New("sink transport error")

// ProgramFormat describes the output format a session renders.
type ProgramFormat struct {
	Width        int
	Height       int
	FrameRateNum int64
	FrameRateDen int64
	AspectPolicy string
	SampleRate   int
	Channels     int
}

// BlockPlan is one execution-ready block delivered to the sink.
type BlockPlan struct {
	BlockID    string
	StartUTCMs int64
	EndUTCMs   int64
	Segments   []models.SegmentRecord
}

// BlockCompleted reports that the sink finished rendering a block.
type BlockCompleted struct {
	BlockID     string
	StartUTCMs  int64
	EndUTCMs    int64
	FinalCtMs   int64
	TotalBlocks int64
}

// SessionEnded is the terminal event of a block-event stream.
type SessionEnded struct {
	Reason string
}

// BlockEvent is either a BlockCompleted or a terminal SessionEnded; exactly
// one field is set.
type BlockEvent struct {
	Completed *BlockCompleted
	Ended     *SessionEnded
}

// EventStream is a blocking reader over the sink's block events. Next returns
// events in sink order; after a SessionEnded or a transport error the stream
// is exhausted.
type EventStream interface {
	Next(ctx context.Context) (BlockEvent, error)
	Close() error
}

// Sink is the control surface of the AIR rendering engine.
type Sink interface {
	// GetVersion performs the connection handshake.
	GetVersion(ctx context.Context) (string, error)

	// AttachStream binds an output path, atomically replacing any existing
	// attachment when replaceExisting is set.
	AttachStream(ctx context.Context, channelID, transport, endpoint string, replaceExisting bool) error

	// StartBlockPlanSession enters block-plan mode for a channel.
	StartBlockPlanSession(ctx context.Context, channelID string, format ProgramFormat) error

	// FeedBlockPlan delivers one block.
	FeedBlockPlan(ctx context.Context, plan BlockPlan) (FeedResult, error)

	// SwitchToLive schedules the switch at the declared boundary instant.
	SwitchToLive(ctx context.Context, channelID string, targetBoundaryMs, issuedAtMs int64) error

	// SubscribeBlockEvents opens the session's single event subscription.
	SubscribeBlockEvents(ctx context.Context, channelID string) (EventStream, error)
}
