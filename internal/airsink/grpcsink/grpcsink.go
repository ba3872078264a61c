// Package grpcsink is the production airsink.Sink over the air.v1 gRPC
// control surface. It lives apart from the airsink package so the runtime
// core compiles without the generated protobuf stubs.
package grpcsink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/fernwood/playoutd/internal/airsink"
	"github.com/fernwood/playoutd/internal/config"
	"github.com/fernwood/playoutd/pkg/airproto"
)

// Sink drives an AIR engine over gRPC.
type Sink struct {
	conn        *grpc.ClientConn
	client      airproto.AirControlClient
	callTimeout time.Duration
	logger      *slog.Logger
}

// Dial connects to the AIR engine.
func Dial(ctx context.Context, cfg config.SinkConfig, logger *slog.Logger) (*Sink, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: dialing %s: %v", airsink.ErrSessionTransport, cfg.Address, err)
	}
	return &Sink{
		conn:        conn,
		client:      airproto.NewAirControlClient(conn),
		callTimeout: cfg.CallTimeout,
		logger:      logger.With(slog.String("component", "airsink")),
	}, nil
}

// Close releases the underlying connection.
func (s *Sink) Close() error {
	return s.conn.Close()
}

func (s *Sink) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.callTimeout)
}

// GetVersion implements airsink.Sink.
func (s *Sink) GetVersion(ctx context.Context) (string, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()
	resp, err := s.client.GetVersion(ctx, &airproto.GetVersionRequest{})
	if err != nil {
		return "", fmt.Errorf("%w: GetVersion: %v", airsink.ErrSessionTransport, err)
	}
	return resp.GetVersion(), nil
}

// AttachStream implements airsink.Sink.
func (s *Sink) AttachStream(ctx context.Context, channelID, transport, endpoint string, replaceExisting bool) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()
	_, err := s.client.AttachStream(ctx, &airproto.AttachStreamRequest{
		ChannelId:       channelID,
		Transport:       transport,
		Endpoint:        endpoint,
		ReplaceExisting: replaceExisting,
	})
	if err != nil {
		return fmt.Errorf("%w: AttachStream: %v", airsink.ErrSessionTransport, err)
	}
	return nil
}

// StartBlockPlanSession implements airsink.Sink.
func (s *Sink) StartBlockPlanSession(ctx context.Context, channelID string, format airsink.ProgramFormat) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()
	_, err := s.client.StartBlockPlanSession(ctx, &airproto.StartBlockPlanSessionRequest{
		ChannelId: channelID,
		ProgramFormat: &airproto.ProgramFormat{
			Width:        int32(format.Width),
			Height:       int32(format.Height),
			FrameRateNum: format.FrameRateNum,
			FrameRateDen: format.FrameRateDen,
			AspectPolicy: format.AspectPolicy,
			SampleRate:   int32(format.SampleRate),
			Channels:     int32(format.Channels),
		},
	})
	if err != nil {
		return fmt.Errorf("%w: StartBlockPlanSession: %v", airsink.ErrSessionTransport, err)
	}
	return nil
}

// FeedBlockPlan implements airsink.Sink.
func (s *Sink) FeedBlockPlan(ctx context.Context, plan airsink.BlockPlan) (airsink.FeedResult, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	segments := make([]*airproto.Segment, 0, len(plan.Segments))
	for _, seg := range plan.Segments {
		segments = append(segments, &airproto.Segment{
			SegmentType:        string(seg.SegmentType),
			AssetUri:           seg.AssetURI,
			AssetStartOffsetMs: seg.AssetStartOffsetMs,
			SegmentDurationMs:  seg.SegmentDurationMs,
		})
	}
	resp, err := s.client.FeedBlockPlan(ctx, &airproto.FeedBlockPlanRequest{
		BlockId:    plan.BlockID,
		StartUtcMs: plan.StartUTCMs,
		EndUtcMs:   plan.EndUTCMs,
		Segments:   segments,
	})
	if err != nil {
		return airsink.FeedRejected, fmt.Errorf("%w: FeedBlockPlan: %v", airsink.ErrSessionTransport, err)
	}
	switch resp.GetResult() {
	case airproto.FeedBlockPlanResponse_RESULT_ACCEPTED:
		return airsink.FeedAccepted, nil
	case airproto.FeedBlockPlanResponse_RESULT_QUEUE_FULL:
		return airsink.FeedQueueFull, nil
	default:
		return airsink.FeedRejected, nil
	}
}

// SwitchToLive implements airsink.Sink.
func (s *Sink) SwitchToLive(ctx context.Context, channelID string, targetBoundaryMs, issuedAtMs int64) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()
	_, err := s.client.SwitchToLive(ctx, &airproto.SwitchToLiveRequest{
		ChannelId:            channelID,
		TargetBoundaryTimeMs: targetBoundaryMs,
		IssuedAtTimeMs:       issuedAtMs,
	})
	if err != nil {
		return fmt.Errorf("%w: SwitchToLive: %v", airsink.ErrSessionTransport, err)
	}
	return nil
}

// SubscribeBlockEvents implements airsink.Sink. The stream is lazy: the first
// Next call observes the first event the sink emits.
func (s *Sink) SubscribeBlockEvents(ctx context.Context, channelID string) (airsink.EventStream, error) {
	stream, err := s.client.SubscribeBlockEvents(ctx, &airproto.SubscribeBlockEventsRequest{
		ChannelId: channelID,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: SubscribeBlockEvents: %v", airsink.ErrSessionTransport, err)
	}
	return &eventStream{stream: stream}, nil
}

type eventStream struct {
	stream grpc.ServerStreamingClient[airproto.BlockEvent]
}

func (s *eventStream) Next(_ context.Context) (airsink.BlockEvent, error) {
	msg, err := s.stream.Recv()
	if err != nil {
		return airsink.BlockEvent{}, fmt.Errorf("%w: event stream: %v", airsink.ErrSessionTransport, err)
	}
	if done := msg.GetSessionEnded(); done != nil {
		return airsink.BlockEvent{Ended: &airsink.SessionEnded{Reason: done.GetReason()}}, nil
	}
	if completed := msg.GetBlockCompleted(); completed != nil {
		return airsink.BlockEvent{Completed: &airsink.BlockCompleted{
			BlockID:     completed.GetBlockId(),
			StartUTCMs:  completed.GetStartUtcMs(),
			EndUTCMs:    completed.GetEndUtcMs(),
			FinalCtMs:   completed.GetFinalCtMs(),
			TotalBlocks: completed.GetTotalBlocks(),
		}}, nil
	}
	return airsink.BlockEvent{}, fmt.Errorf("%w: empty block event", airsink.ErrSessionTransport)
}

func (s *eventStream) Close() error {
	return s.stream.CloseSend()
}

var _ airsink.Sink = (*Sink)(nil)
