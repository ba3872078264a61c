// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: air.proto

package airproto

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	AirControl_GetVersion_FullMethodName            = "/air.v1.AirControl/GetVersion"
	AirControl_AttachStream_FullMethodName          = "/air.v1.AirControl/AttachStream"
	AirControl_StartBlockPlanSession_FullMethodName = "/air.v1.AirControl/StartBlockPlanSession"
	AirControl_FeedBlockPlan_FullMethodName         = "/air.v1.AirControl/FeedBlockPlan"
	AirControl_SwitchToLive_FullMethodName          = "/air.v1.AirControl/SwitchToLive"
	AirControl_SubscribeBlockEvents_FullMethodName  = "/air.v1.AirControl/SubscribeBlockEvents"
)

// AirControlClient is the client API for AirControl service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// AirControl is the control surface of the AIR rendering engine. The core
// drives one session per channel: attach an output, start block-plan mode,
// feed blocks, and watch the event stream for completions.
type AirControlClient interface {
	GetVersion(ctx context.Context, in *GetVersionRequest, opts ...grpc.CallOption) (*GetVersionResponse, error)
	AttachStream(ctx context.Context, in *AttachStreamRequest, opts ...grpc.CallOption) (*AttachStreamResponse, error)
	StartBlockPlanSession(ctx context.Context, in *StartBlockPlanSessionRequest, opts ...grpc.CallOption) (*StartBlockPlanSessionResponse, error)
	FeedBlockPlan(ctx context.Context, in *FeedBlockPlanRequest, opts ...grpc.CallOption) (*FeedBlockPlanResponse, error)
	SwitchToLive(ctx context.Context, in *SwitchToLiveRequest, opts ...grpc.CallOption) (*SwitchToLiveResponse, error)
	SubscribeBlockEvents(ctx context.Context, in *SubscribeBlockEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[BlockEvent], error)
}

type airControlClient struct {
	cc grpc.ClientConnInterface
}

func NewAirControlClient(cc grpc.ClientConnInterface) AirControlClient {
	return &airControlClient{cc}
}

func (c *airControlClient) GetVersion(ctx context.Context, in *GetVersionRequest, opts ...grpc.CallOption) (*GetVersionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetVersionResponse)
	err := c.cc.Invoke(ctx, AirControl_GetVersion_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airControlClient) AttachStream(ctx context.Context, in *AttachStreamRequest, opts ...grpc.CallOption) (*AttachStreamResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(AttachStreamResponse)
	err := c.cc.Invoke(ctx, AirControl_AttachStream_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airControlClient) StartBlockPlanSession(ctx context.Context, in *StartBlockPlanSessionRequest, opts ...grpc.CallOption) (*StartBlockPlanSessionResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(StartBlockPlanSessionResponse)
	err := c.cc.Invoke(ctx, AirControl_StartBlockPlanSession_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airControlClient) FeedBlockPlan(ctx context.Context, in *FeedBlockPlanRequest, opts ...grpc.CallOption) (*FeedBlockPlanResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(FeedBlockPlanResponse)
	err := c.cc.Invoke(ctx, AirControl_FeedBlockPlan_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airControlClient) SwitchToLive(ctx context.Context, in *SwitchToLiveRequest, opts ...grpc.CallOption) (*SwitchToLiveResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(SwitchToLiveResponse)
	err := c.cc.Invoke(ctx, AirControl_SwitchToLive_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *airControlClient) SubscribeBlockEvents(ctx context.Context, in *SubscribeBlockEventsRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[BlockEvent], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &AirControl_ServiceDesc.Streams[0], AirControl_SubscribeBlockEvents_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[SubscribeBlockEventsRequest, BlockEvent]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AirControl_SubscribeBlockEventsClient = grpc.ServerStreamingClient[BlockEvent]

// AirControlServer is the server API for AirControl service.
// All implementations must embed UnimplementedAirControlServer
// for forward compatibility.
//
// AirControl is the control surface of the AIR rendering engine. The core
// drives one session per channel: attach an output, start block-plan mode,
// feed blocks, and watch the event stream for completions.
type AirControlServer interface {
	GetVersion(context.Context, *GetVersionRequest) (*GetVersionResponse, error)
	AttachStream(context.Context, *AttachStreamRequest) (*AttachStreamResponse, error)
	StartBlockPlanSession(context.Context, *StartBlockPlanSessionRequest) (*StartBlockPlanSessionResponse, error)
	FeedBlockPlan(context.Context, *FeedBlockPlanRequest) (*FeedBlockPlanResponse, error)
	SwitchToLive(context.Context, *SwitchToLiveRequest) (*SwitchToLiveResponse, error)
	SubscribeBlockEvents(*SubscribeBlockEventsRequest, grpc.ServerStreamingServer[BlockEvent]) error
	mustEmbedUnimplementedAirControlServer()
}

// UnimplementedAirControlServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedAirControlServer struct{}

func (UnimplementedAirControlServer) GetVersion(context.Context, *GetVersionRequest) (*GetVersionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVersion not implemented")
}
func (UnimplementedAirControlServer) AttachStream(context.Context, *AttachStreamRequest) (*AttachStreamResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AttachStream not implemented")
}
func (UnimplementedAirControlServer) StartBlockPlanSession(context.Context, *StartBlockPlanSessionRequest) (*StartBlockPlanSessionResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method StartBlockPlanSession not implemented")
}
func (UnimplementedAirControlServer) FeedBlockPlan(context.Context, *FeedBlockPlanRequest) (*FeedBlockPlanResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method FeedBlockPlan not implemented")
}
func (UnimplementedAirControlServer) SwitchToLive(context.Context, *SwitchToLiveRequest) (*SwitchToLiveResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method SwitchToLive not implemented")
}
func (UnimplementedAirControlServer) SubscribeBlockEvents(*SubscribeBlockEventsRequest, grpc.ServerStreamingServer[BlockEvent]) error {
	return status.Errorf(codes.Unimplemented, "method SubscribeBlockEvents not implemented")
}
func (UnimplementedAirControlServer) mustEmbedUnimplementedAirControlServer() {}
func (UnimplementedAirControlServer) testEmbeddedByValue()                    {}

// UnsafeAirControlServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to AirControlServer will
// result in compilation errors.
type UnsafeAirControlServer interface {
	mustEmbedUnimplementedAirControlServer()
}

func RegisterAirControlServer(s grpc.ServiceRegistrar, srv AirControlServer) {
	// If the following call pancis, it indicates UnimplementedAirControlServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&AirControl_ServiceDesc, srv)
}

func _AirControl_GetVersion_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetVersionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AirControlServer).GetVersion(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AirControl_GetVersion_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AirControlServer).GetVersion(ctx, req.(*GetVersionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AirControl_AttachStream_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(AttachStreamRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AirControlServer).AttachStream(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AirControl_AttachStream_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AirControlServer).AttachStream(ctx, req.(*AttachStreamRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AirControl_StartBlockPlanSession_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(StartBlockPlanSessionRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AirControlServer).StartBlockPlanSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AirControl_StartBlockPlanSession_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AirControlServer).StartBlockPlanSession(ctx, req.(*StartBlockPlanSessionRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AirControl_FeedBlockPlan_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(FeedBlockPlanRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AirControlServer).FeedBlockPlan(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AirControl_FeedBlockPlan_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AirControlServer).FeedBlockPlan(ctx, req.(*FeedBlockPlanRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AirControl_SwitchToLive_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SwitchToLiveRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AirControlServer).SwitchToLive(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: AirControl_SwitchToLive_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AirControlServer).SwitchToLive(ctx, req.(*SwitchToLiveRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _AirControl_SubscribeBlockEvents_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(SubscribeBlockEventsRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(AirControlServer).SubscribeBlockEvents(m, &grpc.GenericServerStream[SubscribeBlockEventsRequest, BlockEvent]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type AirControl_SubscribeBlockEventsServer = grpc.ServerStreamingServer[BlockEvent]

// AirControl_ServiceDesc is the grpc.ServiceDesc for AirControl service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var AirControl_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "air.v1.AirControl",
	HandlerType: (*AirControlServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetVersion",
			Handler:    _AirControl_GetVersion_Handler,
		},
		{
			MethodName: "AttachStream",
			Handler:    _AirControl_AttachStream_Handler,
		},
		{
			MethodName: "StartBlockPlanSession",
			Handler:    _AirControl_StartBlockPlanSession_Handler,
		},
		{
			MethodName: "FeedBlockPlan",
			Handler:    _AirControl_FeedBlockPlan_Handler,
		},
		{
			MethodName: "SwitchToLive",
			Handler:    _AirControl_SwitchToLive_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "SubscribeBlockEvents",
			Handler:       _AirControl_SubscribeBlockEvents_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "air.proto",
}
