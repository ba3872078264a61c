// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: air.proto

package airproto

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type FeedBlockPlanResponse_Result int32

const (
	FeedBlockPlanResponse_RESULT_UNSPECIFIED FeedBlockPlanResponse_Result = 0
	FeedBlockPlanResponse_RESULT_ACCEPTED    FeedBlockPlanResponse_Result = 1
	FeedBlockPlanResponse_RESULT_QUEUE_FULL  FeedBlockPlanResponse_Result = 2
	FeedBlockPlanResponse_RESULT_REJECTED    FeedBlockPlanResponse_Result = 3
)

// Enum value maps for FeedBlockPlanResponse_Result.
var (
	FeedBlockPlanResponse_Result_name = map[int32]string{
		0: "RESULT_UNSPECIFIED",
		1: "RESULT_ACCEPTED",
		2: "RESULT_QUEUE_FULL",
		3: "RESULT_REJECTED",
	}
	FeedBlockPlanResponse_Result_value = map[string]int32{
		"RESULT_UNSPECIFIED": 0,
		"RESULT_ACCEPTED":    1,
		"RESULT_QUEUE_FULL":  2,
		"RESULT_REJECTED":    3,
	}
)

func (x FeedBlockPlanResponse_Result) Enum() *FeedBlockPlanResponse_Result {
	p := new(FeedBlockPlanResponse_Result)
	*p = x
	return p
}

func (x FeedBlockPlanResponse_Result) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (FeedBlockPlanResponse_Result) Descriptor() protoreflect.EnumDescriptor {
	return file_air_proto_enumTypes[0].Descriptor()
}

func (FeedBlockPlanResponse_Result) Type() protoreflect.EnumType {
	return &file_air_proto_enumTypes[0]
}

func (x FeedBlockPlanResponse_Result) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use FeedBlockPlanResponse_Result.Descriptor instead.
func (FeedBlockPlanResponse_Result) EnumDescriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{9, 0}
}

type GetVersionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVersionRequest) Reset() {
	*x = GetVersionRequest{}
	mi := &file_air_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVersionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVersionRequest) ProtoMessage() {}

func (x *GetVersionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVersionRequest.ProtoReflect.Descriptor instead.
func (*GetVersionRequest) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{0}
}

type GetVersionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Version       string                 `protobuf:"bytes,1,opt,name=version,proto3" json:"version,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetVersionResponse) Reset() {
	*x = GetVersionResponse{}
	mi := &file_air_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetVersionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetVersionResponse) ProtoMessage() {}

func (x *GetVersionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetVersionResponse.ProtoReflect.Descriptor instead.
func (*GetVersionResponse) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{1}
}

func (x *GetVersionResponse) GetVersion() string {
	if x != nil {
		return x.Version
	}
	return ""
}

type AttachStreamRequest struct {
	state           protoimpl.MessageState `protogen:"open.v1"`
	ChannelId       string                 `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	Transport       string                 `protobuf:"bytes,2,opt,name=transport,proto3" json:"transport,omitempty"`
	Endpoint        string                 `protobuf:"bytes,3,opt,name=endpoint,proto3" json:"endpoint,omitempty"`
	ReplaceExisting bool                   `protobuf:"varint,4,opt,name=replace_existing,json=replaceExisting,proto3" json:"replace_existing,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *AttachStreamRequest) Reset() {
	*x = AttachStreamRequest{}
	mi := &file_air_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachStreamRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachStreamRequest) ProtoMessage() {}

func (x *AttachStreamRequest) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachStreamRequest.ProtoReflect.Descriptor instead.
func (*AttachStreamRequest) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{2}
}

func (x *AttachStreamRequest) GetChannelId() string {
	if x != nil {
		return x.ChannelId
	}
	return ""
}

func (x *AttachStreamRequest) GetTransport() string {
	if x != nil {
		return x.Transport
	}
	return ""
}

func (x *AttachStreamRequest) GetEndpoint() string {
	if x != nil {
		return x.Endpoint
	}
	return ""
}

func (x *AttachStreamRequest) GetReplaceExisting() bool {
	if x != nil {
		return x.ReplaceExisting
	}
	return false
}

type AttachStreamResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *AttachStreamResponse) Reset() {
	*x = AttachStreamResponse{}
	mi := &file_air_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *AttachStreamResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AttachStreamResponse) ProtoMessage() {}

func (x *AttachStreamResponse) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AttachStreamResponse.ProtoReflect.Descriptor instead.
func (*AttachStreamResponse) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{3}
}

type ProgramFormat struct {
	state        protoimpl.MessageState `protogen:"open.v1"`
	Width        int32                  `protobuf:"varint,1,opt,name=width,proto3" json:"width,omitempty"`
	Height       int32                  `protobuf:"varint,2,opt,name=height,proto3" json:"height,omitempty"`
	FrameRateNum int64                  `protobuf:"varint,3,opt,name=frame_rate_num,json=frameRateNum,proto3" json:"frame_rate_num,omitempty"`
	FrameRateDen int64                  `protobuf:"varint,4,opt,name=frame_rate_den,json=frameRateDen,proto3" json:"frame_rate_den,omitempty"`
	// "preserve" or "stretch".
	AspectPolicy  string `protobuf:"bytes,5,opt,name=aspect_policy,json=aspectPolicy,proto3" json:"aspect_policy,omitempty"`
	SampleRate    int32  `protobuf:"varint,6,opt,name=sample_rate,json=sampleRate,proto3" json:"sample_rate,omitempty"`
	Channels      int32  `protobuf:"varint,7,opt,name=channels,proto3" json:"channels,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ProgramFormat) Reset() {
	*x = ProgramFormat{}
	mi := &file_air_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ProgramFormat) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ProgramFormat) ProtoMessage() {}

func (x *ProgramFormat) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ProgramFormat.ProtoReflect.Descriptor instead.
func (*ProgramFormat) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{4}
}

func (x *ProgramFormat) GetWidth() int32 {
	if x != nil {
		return x.Width
	}
	return 0
}

func (x *ProgramFormat) GetHeight() int32 {
	if x != nil {
		return x.Height
	}
	return 0
}

func (x *ProgramFormat) GetFrameRateNum() int64 {
	if x != nil {
		return x.FrameRateNum
	}
	return 0
}

func (x *ProgramFormat) GetFrameRateDen() int64 {
	if x != nil {
		return x.FrameRateDen
	}
	return 0
}

func (x *ProgramFormat) GetAspectPolicy() string {
	if x != nil {
		return x.AspectPolicy
	}
	return ""
}

func (x *ProgramFormat) GetSampleRate() int32 {
	if x != nil {
		return x.SampleRate
	}
	return 0
}

func (x *ProgramFormat) GetChannels() int32 {
	if x != nil {
		return x.Channels
	}
	return 0
}

type StartBlockPlanSessionRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChannelId     string                 `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	ProgramFormat *ProgramFormat         `protobuf:"bytes,2,opt,name=program_format,json=programFormat,proto3" json:"program_format,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBlockPlanSessionRequest) Reset() {
	*x = StartBlockPlanSessionRequest{}
	mi := &file_air_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBlockPlanSessionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBlockPlanSessionRequest) ProtoMessage() {}

func (x *StartBlockPlanSessionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBlockPlanSessionRequest.ProtoReflect.Descriptor instead.
func (*StartBlockPlanSessionRequest) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{5}
}

func (x *StartBlockPlanSessionRequest) GetChannelId() string {
	if x != nil {
		return x.ChannelId
	}
	return ""
}

func (x *StartBlockPlanSessionRequest) GetProgramFormat() *ProgramFormat {
	if x != nil {
		return x.ProgramFormat
	}
	return nil
}

type StartBlockPlanSessionResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	SessionId     string                 `protobuf:"bytes,1,opt,name=session_id,json=sessionId,proto3" json:"session_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *StartBlockPlanSessionResponse) Reset() {
	*x = StartBlockPlanSessionResponse{}
	mi := &file_air_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *StartBlockPlanSessionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*StartBlockPlanSessionResponse) ProtoMessage() {}

func (x *StartBlockPlanSessionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use StartBlockPlanSessionResponse.ProtoReflect.Descriptor instead.
func (*StartBlockPlanSessionResponse) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{6}
}

func (x *StartBlockPlanSessionResponse) GetSessionId() string {
	if x != nil {
		return x.SessionId
	}
	return ""
}

type Segment struct {
	state              protoimpl.MessageState `protogen:"open.v1"`
	SegmentType        string                 `protobuf:"bytes,1,opt,name=segment_type,json=segmentType,proto3" json:"segment_type,omitempty"`
	AssetUri           string                 `protobuf:"bytes,2,opt,name=asset_uri,json=assetUri,proto3" json:"asset_uri,omitempty"`
	AssetStartOffsetMs int64                  `protobuf:"varint,3,opt,name=asset_start_offset_ms,json=assetStartOffsetMs,proto3" json:"asset_start_offset_ms,omitempty"`
	SegmentDurationMs  int64                  `protobuf:"varint,4,opt,name=segment_duration_ms,json=segmentDurationMs,proto3" json:"segment_duration_ms,omitempty"`
	unknownFields      protoimpl.UnknownFields
	sizeCache          protoimpl.SizeCache
}

func (x *Segment) Reset() {
	*x = Segment{}
	mi := &file_air_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Segment) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Segment) ProtoMessage() {}

func (x *Segment) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Segment.ProtoReflect.Descriptor instead.
func (*Segment) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{7}
}

func (x *Segment) GetSegmentType() string {
	if x != nil {
		return x.SegmentType
	}
	return ""
}

func (x *Segment) GetAssetUri() string {
	if x != nil {
		return x.AssetUri
	}
	return ""
}

func (x *Segment) GetAssetStartOffsetMs() int64 {
	if x != nil {
		return x.AssetStartOffsetMs
	}
	return 0
}

func (x *Segment) GetSegmentDurationMs() int64 {
	if x != nil {
		return x.SegmentDurationMs
	}
	return 0
}

type FeedBlockPlanRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BlockId       string                 `protobuf:"bytes,1,opt,name=block_id,json=blockId,proto3" json:"block_id,omitempty"`
	StartUtcMs    int64                  `protobuf:"varint,2,opt,name=start_utc_ms,json=startUtcMs,proto3" json:"start_utc_ms,omitempty"`
	EndUtcMs      int64                  `protobuf:"varint,3,opt,name=end_utc_ms,json=endUtcMs,proto3" json:"end_utc_ms,omitempty"`
	Segments      []*Segment             `protobuf:"bytes,4,rep,name=segments,proto3" json:"segments,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeedBlockPlanRequest) Reset() {
	*x = FeedBlockPlanRequest{}
	mi := &file_air_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeedBlockPlanRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeedBlockPlanRequest) ProtoMessage() {}

func (x *FeedBlockPlanRequest) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeedBlockPlanRequest.ProtoReflect.Descriptor instead.
func (*FeedBlockPlanRequest) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{8}
}

func (x *FeedBlockPlanRequest) GetBlockId() string {
	if x != nil {
		return x.BlockId
	}
	return ""
}

func (x *FeedBlockPlanRequest) GetStartUtcMs() int64 {
	if x != nil {
		return x.StartUtcMs
	}
	return 0
}

func (x *FeedBlockPlanRequest) GetEndUtcMs() int64 {
	if x != nil {
		return x.EndUtcMs
	}
	return 0
}

func (x *FeedBlockPlanRequest) GetSegments() []*Segment {
	if x != nil {
		return x.Segments
	}
	return nil
}

type FeedBlockPlanResponse struct {
	state         protoimpl.MessageState       `protogen:"open.v1"`
	Result        FeedBlockPlanResponse_Result `protobuf:"varint,1,opt,name=result,proto3,enum=air.v1.FeedBlockPlanResponse_Result" json:"result,omitempty"`
	Detail        string                       `protobuf:"bytes,2,opt,name=detail,proto3" json:"detail,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *FeedBlockPlanResponse) Reset() {
	*x = FeedBlockPlanResponse{}
	mi := &file_air_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *FeedBlockPlanResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FeedBlockPlanResponse) ProtoMessage() {}

func (x *FeedBlockPlanResponse) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FeedBlockPlanResponse.ProtoReflect.Descriptor instead.
func (*FeedBlockPlanResponse) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{9}
}

func (x *FeedBlockPlanResponse) GetResult() FeedBlockPlanResponse_Result {
	if x != nil {
		return x.Result
	}
	return FeedBlockPlanResponse_RESULT_UNSPECIFIED
}

func (x *FeedBlockPlanResponse) GetDetail() string {
	if x != nil {
		return x.Detail
	}
	return ""
}

type SwitchToLiveRequest struct {
	state     protoimpl.MessageState `protogen:"open.v1"`
	ChannelId string                 `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	// The authoritative switch instant, declared by the core.
	TargetBoundaryTimeMs int64 `protobuf:"varint,2,opt,name=target_boundary_time_ms,json=targetBoundaryTimeMs,proto3" json:"target_boundary_time_ms,omitempty"`
	IssuedAtTimeMs       int64 `protobuf:"varint,3,opt,name=issued_at_time_ms,json=issuedAtTimeMs,proto3" json:"issued_at_time_ms,omitempty"`
	unknownFields        protoimpl.UnknownFields
	sizeCache            protoimpl.SizeCache
}

func (x *SwitchToLiveRequest) Reset() {
	*x = SwitchToLiveRequest{}
	mi := &file_air_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SwitchToLiveRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SwitchToLiveRequest) ProtoMessage() {}

func (x *SwitchToLiveRequest) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SwitchToLiveRequest.ProtoReflect.Descriptor instead.
func (*SwitchToLiveRequest) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{10}
}

func (x *SwitchToLiveRequest) GetChannelId() string {
	if x != nil {
		return x.ChannelId
	}
	return ""
}

func (x *SwitchToLiveRequest) GetTargetBoundaryTimeMs() int64 {
	if x != nil {
		return x.TargetBoundaryTimeMs
	}
	return 0
}

func (x *SwitchToLiveRequest) GetIssuedAtTimeMs() int64 {
	if x != nil {
		return x.IssuedAtTimeMs
	}
	return 0
}

type SwitchToLiveResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SwitchToLiveResponse) Reset() {
	*x = SwitchToLiveResponse{}
	mi := &file_air_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SwitchToLiveResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SwitchToLiveResponse) ProtoMessage() {}

func (x *SwitchToLiveResponse) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SwitchToLiveResponse.ProtoReflect.Descriptor instead.
func (*SwitchToLiveResponse) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{11}
}

type SubscribeBlockEventsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ChannelId     string                 `protobuf:"bytes,1,opt,name=channel_id,json=channelId,proto3" json:"channel_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SubscribeBlockEventsRequest) Reset() {
	*x = SubscribeBlockEventsRequest{}
	mi := &file_air_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SubscribeBlockEventsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SubscribeBlockEventsRequest) ProtoMessage() {}

func (x *SubscribeBlockEventsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SubscribeBlockEventsRequest.ProtoReflect.Descriptor instead.
func (*SubscribeBlockEventsRequest) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{12}
}

func (x *SubscribeBlockEventsRequest) GetChannelId() string {
	if x != nil {
		return x.ChannelId
	}
	return ""
}

type BlockEvent struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Types that are valid to be assigned to Event:
	//
	//	*BlockEvent_BlockCompleted
	//	*BlockEvent_SessionEnded
	Event         isBlockEvent_Event `protobuf_oneof:"event"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BlockEvent) Reset() {
	*x = BlockEvent{}
	mi := &file_air_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BlockEvent) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BlockEvent) ProtoMessage() {}

func (x *BlockEvent) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BlockEvent.ProtoReflect.Descriptor instead.
func (*BlockEvent) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{13}
}

func (x *BlockEvent) GetEvent() isBlockEvent_Event {
	if x != nil {
		return x.Event
	}
	return nil
}

func (x *BlockEvent) GetBlockCompleted() *BlockCompleted {
	if x != nil {
		if x, ok := x.Event.(*BlockEvent_BlockCompleted); ok {
			return x.BlockCompleted
		}
	}
	return nil
}

func (x *BlockEvent) GetSessionEnded() *SessionEnded {
	if x != nil {
		if x, ok := x.Event.(*BlockEvent_SessionEnded); ok {
			return x.SessionEnded
		}
	}
	return nil
}

type isBlockEvent_Event interface {
	isBlockEvent_Event()
}

type BlockEvent_BlockCompleted struct {
	BlockCompleted *BlockCompleted `protobuf:"bytes,1,opt,name=block_completed,json=blockCompleted,proto3,oneof"`
}

type BlockEvent_SessionEnded struct {
	SessionEnded *SessionEnded `protobuf:"bytes,2,opt,name=session_ended,json=sessionEnded,proto3,oneof"`
}

func (*BlockEvent_BlockCompleted) isBlockEvent_Event() {}

func (*BlockEvent_SessionEnded) isBlockEvent_Event() {}

type BlockCompleted struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	BlockId       string                 `protobuf:"bytes,1,opt,name=block_id,json=blockId,proto3" json:"block_id,omitempty"`
	StartUtcMs    int64                  `protobuf:"varint,2,opt,name=start_utc_ms,json=startUtcMs,proto3" json:"start_utc_ms,omitempty"`
	EndUtcMs      int64                  `protobuf:"varint,3,opt,name=end_utc_ms,json=endUtcMs,proto3" json:"end_utc_ms,omitempty"`
	FinalCtMs     int64                  `protobuf:"varint,4,opt,name=final_ct_ms,json=finalCtMs,proto3" json:"final_ct_ms,omitempty"`
	TotalBlocks   int64                  `protobuf:"varint,5,opt,name=total_blocks,json=totalBlocks,proto3" json:"total_blocks,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BlockCompleted) Reset() {
	*x = BlockCompleted{}
	mi := &file_air_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BlockCompleted) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BlockCompleted) ProtoMessage() {}

func (x *BlockCompleted) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BlockCompleted.ProtoReflect.Descriptor instead.
func (*BlockCompleted) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{14}
}

func (x *BlockCompleted) GetBlockId() string {
	if x != nil {
		return x.BlockId
	}
	return ""
}

func (x *BlockCompleted) GetStartUtcMs() int64 {
	if x != nil {
		return x.StartUtcMs
	}
	return 0
}

func (x *BlockCompleted) GetEndUtcMs() int64 {
	if x != nil {
		return x.EndUtcMs
	}
	return 0
}

func (x *BlockCompleted) GetFinalCtMs() int64 {
	if x != nil {
		return x.FinalCtMs
	}
	return 0
}

func (x *BlockCompleted) GetTotalBlocks() int64 {
	if x != nil {
		return x.TotalBlocks
	}
	return 0
}

type SessionEnded struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Reason        string                 `protobuf:"bytes,1,opt,name=reason,proto3" json:"reason,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SessionEnded) Reset() {
	*x = SessionEnded{}
	mi := &file_air_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SessionEnded) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SessionEnded) ProtoMessage() {}

func (x *SessionEnded) ProtoReflect() protoreflect.Message {
	mi := &file_air_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SessionEnded.ProtoReflect.Descriptor instead.
func (*SessionEnded) Descriptor() ([]byte, []int) {
	return file_air_proto_rawDescGZIP(), []int{15}
}

func (x *SessionEnded) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

var File_air_proto protoreflect.FileDescriptor

var file_air_proto_rawDesc = string([]byte{
	0x0a, 0x09, 0x61, 0x69, 0x72, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06, 0x61, 0x69, 0x72,
	0x2e, 0x76, 0x31, 0x22, 0x13, 0x0a, 0x11, 0x47, 0x65, 0x74, 0x56, 0x65, 0x72, 0x73, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x22, 0x2e, 0x0a, 0x12, 0x47, 0x65, 0x74, 0x56,
	0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x18,
	0x0a, 0x07, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x07, 0x76, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x22, 0x99, 0x01, 0x0a, 0x13, 0x41, 0x74, 0x74,
	0x61, 0x63, 0x68, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x49, 0x64, 0x12,
	0x1c, 0x0a, 0x09, 0x74, 0x72, 0x61, 0x6e, 0x73, 0x70, 0x6f, 0x72, 0x74, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x09, 0x74, 0x72, 0x61, 0x6e, 0x73, 0x70, 0x6f, 0x72, 0x74, 0x12, 0x1a, 0x0a,
	0x08, 0x65, 0x6e, 0x64, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x08, 0x65, 0x6e, 0x64, 0x70, 0x6f, 0x69, 0x6e, 0x74, 0x12, 0x29, 0x0a, 0x10, 0x72, 0x65, 0x70,
	0x6c, 0x61, 0x63, 0x65, 0x5f, 0x65, 0x78, 0x69, 0x73, 0x74, 0x69, 0x6e, 0x67, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x08, 0x52, 0x0f, 0x72, 0x65, 0x70, 0x6c, 0x61, 0x63, 0x65, 0x45, 0x78, 0x69, 0x73,
	0x74, 0x69, 0x6e, 0x67, 0x22, 0x16, 0x0a, 0x14, 0x41, 0x74, 0x74, 0x61, 0x63, 0x68, 0x53, 0x74,
	0x72, 0x65, 0x61, 0x6d, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0xeb, 0x01, 0x0a,
	0x0d, 0x50, 0x72, 0x6f, 0x67, 0x72, 0x61, 0x6d, 0x46, 0x6f, 0x72, 0x6d, 0x61, 0x74, 0x12, 0x14,
	0x0a, 0x05, 0x77, 0x69, 0x64, 0x74, 0x68, 0x18, 0x01, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x77,
	0x69, 0x64, 0x74, 0x68, 0x12, 0x16, 0x0a, 0x06, 0x68, 0x65, 0x69, 0x67, 0x68, 0x74, 0x18, 0x02,
	0x20, 0x01, 0x28, 0x05, 0x52, 0x06, 0x68, 0x65, 0x69, 0x67, 0x68, 0x74, 0x12, 0x24, 0x0a, 0x0e,
	0x66, 0x72, 0x61, 0x6d, 0x65, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x5f, 0x6e, 0x75, 0x6d, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x52, 0x61, 0x74, 0x65, 0x4e,
	0x75, 0x6d, 0x12, 0x24, 0x0a, 0x0e, 0x66, 0x72, 0x61, 0x6d, 0x65, 0x5f, 0x72, 0x61, 0x74, 0x65,
	0x5f, 0x64, 0x65, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0c, 0x66, 0x72, 0x61, 0x6d,
	0x65, 0x52, 0x61, 0x74, 0x65, 0x44, 0x65, 0x6e, 0x12, 0x23, 0x0a, 0x0d, 0x61, 0x73, 0x70, 0x65,
	0x63, 0x74, 0x5f, 0x70, 0x6f, 0x6c, 0x69, 0x63, 0x79, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0c, 0x61, 0x73, 0x70, 0x65, 0x63, 0x74, 0x50, 0x6f, 0x6c, 0x69, 0x63, 0x79, 0x12, 0x1f, 0x0a,
	0x0b, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x18, 0x06, 0x20, 0x01,
	0x28, 0x05, 0x52, 0x0a, 0x73, 0x61, 0x6d, 0x70, 0x6c, 0x65, 0x52, 0x61, 0x74, 0x65, 0x12, 0x1a,
	0x0a, 0x08, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x73, 0x18, 0x07, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x08, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x73, 0x22, 0x7b, 0x0a, 0x1c, 0x53, 0x74,
	0x61, 0x72, 0x74, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x53, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x68,
	0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x49, 0x64, 0x12, 0x3c, 0x0a, 0x0e, 0x70, 0x72, 0x6f,
	0x67, 0x72, 0x61, 0x6d, 0x5f, 0x66, 0x6f, 0x72, 0x6d, 0x61, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x15, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x6f, 0x67, 0x72,
	0x61, 0x6d, 0x46, 0x6f, 0x72, 0x6d, 0x61, 0x74, 0x52, 0x0d, 0x70, 0x72, 0x6f, 0x67, 0x72, 0x61,
	0x6d, 0x46, 0x6f, 0x72, 0x6d, 0x61, 0x74, 0x22, 0x3e, 0x0a, 0x1d, 0x53, 0x74, 0x61, 0x72, 0x74,
	0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1d, 0x0a, 0x0a, 0x73, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x73, 0x65,
	0x73, 0x73, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x22, 0xac, 0x01, 0x0a, 0x07, 0x53, 0x65, 0x67, 0x6d,
	0x65, 0x6e, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x74,
	0x79, 0x70, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x73, 0x65, 0x67, 0x6d, 0x65,
	0x6e, 0x74, 0x54, 0x79, 0x70, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x61, 0x73, 0x73, 0x65, 0x74, 0x5f,
	0x75, 0x72, 0x69, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x61, 0x73, 0x73, 0x65, 0x74,
	0x55, 0x72, 0x69, 0x12, 0x31, 0x0a, 0x15, 0x61, 0x73, 0x73, 0x65, 0x74, 0x5f, 0x73, 0x74, 0x61,
	0x72, 0x74, 0x5f, 0x6f, 0x66, 0x66, 0x73, 0x65, 0x74, 0x5f, 0x6d, 0x73, 0x18, 0x03, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x12, 0x61, 0x73, 0x73, 0x65, 0x74, 0x53, 0x74, 0x61, 0x72, 0x74, 0x4f, 0x66,
	0x66, 0x73, 0x65, 0x74, 0x4d, 0x73, 0x12, 0x2e, 0x0a, 0x13, 0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e,
	0x74, 0x5f, 0x64, 0x75, 0x72, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x6d, 0x73, 0x18, 0x04, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x11, 0x73, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x44, 0x75, 0x72, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x4d, 0x73, 0x22, 0x9e, 0x01, 0x0a, 0x14, 0x46, 0x65, 0x65, 0x64, 0x42,
	0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x19, 0x0a, 0x08, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x07, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x49, 0x64, 0x12, 0x20, 0x0a, 0x0c, 0x73, 0x74,
	0x61, 0x72, 0x74, 0x5f, 0x75, 0x74, 0x63, 0x5f, 0x6d, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x55, 0x74, 0x63, 0x4d, 0x73, 0x12, 0x1c, 0x0a, 0x0a,
	0x65, 0x6e, 0x64, 0x5f, 0x75, 0x74, 0x63, 0x5f, 0x6d, 0x73, 0x18, 0x03, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x08, 0x65, 0x6e, 0x64, 0x55, 0x74, 0x63, 0x4d, 0x73, 0x12, 0x2b, 0x0a, 0x08, 0x73, 0x65,
	0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x0f, 0x2e, 0x61,
	0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x52, 0x08, 0x73,
	0x65, 0x67, 0x6d, 0x65, 0x6e, 0x74, 0x73, 0x22, 0xd0, 0x01, 0x0a, 0x15, 0x46, 0x65, 0x65, 0x64,
	0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x3c, 0x0a, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0e, 0x32, 0x24, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x65, 0x65, 0x64, 0x42,
	0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x2e, 0x52, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x52, 0x06, 0x72, 0x65, 0x73, 0x75, 0x6c, 0x74, 0x12,
	0x16, 0x0a, 0x06, 0x64, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x06, 0x64, 0x65, 0x74, 0x61, 0x69, 0x6c, 0x22, 0x61, 0x0a, 0x06, 0x52, 0x65, 0x73, 0x75, 0x6c,
	0x74, 0x12, 0x16, 0x0a, 0x12, 0x52, 0x45, 0x53, 0x55, 0x4c, 0x54, 0x5f, 0x55, 0x4e, 0x53, 0x50,
	0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x13, 0x0a, 0x0f, 0x52, 0x45, 0x53,
	0x55, 0x4c, 0x54, 0x5f, 0x41, 0x43, 0x43, 0x45, 0x50, 0x54, 0x45, 0x44, 0x10, 0x01, 0x12, 0x15,
	0x0a, 0x11, 0x52, 0x45, 0x53, 0x55, 0x4c, 0x54, 0x5f, 0x51, 0x55, 0x45, 0x55, 0x45, 0x5f, 0x46,
	0x55, 0x4c, 0x4c, 0x10, 0x02, 0x12, 0x13, 0x0a, 0x0f, 0x52, 0x45, 0x53, 0x55, 0x4c, 0x54, 0x5f,
	0x52, 0x45, 0x4a, 0x45, 0x43, 0x54, 0x45, 0x44, 0x10, 0x03, 0x22, 0x96, 0x01, 0x0a, 0x13, 0x53,
	0x77, 0x69, 0x74, 0x63, 0x68, 0x54, 0x6f, 0x4c, 0x69, 0x76, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x49,
	0x64, 0x12, 0x35, 0x0a, 0x17, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x5f, 0x62, 0x6f, 0x75, 0x6e,
	0x64, 0x61, 0x72, 0x79, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x5f, 0x6d, 0x73, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x03, 0x52, 0x14, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x42, 0x6f, 0x75, 0x6e, 0x64, 0x61,
	0x72, 0x79, 0x54, 0x69, 0x6d, 0x65, 0x4d, 0x73, 0x12, 0x29, 0x0a, 0x11, 0x69, 0x73, 0x73, 0x75,
	0x65, 0x64, 0x5f, 0x61, 0x74, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x5f, 0x6d, 0x73, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x03, 0x52, 0x0e, 0x69, 0x73, 0x73, 0x75, 0x65, 0x64, 0x41, 0x74, 0x54, 0x69, 0x6d,
	0x65, 0x4d, 0x73, 0x22, 0x16, 0x0a, 0x14, 0x53, 0x77, 0x69, 0x74, 0x63, 0x68, 0x54, 0x6f, 0x4c,
	0x69, 0x76, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x3c, 0x0a, 0x1b, 0x53,
	0x75, 0x62, 0x73, 0x63, 0x72, 0x69, 0x62, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x45, 0x76, 0x65,
	0x6e, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x1d, 0x0a, 0x0a, 0x63, 0x68,
	0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09,
	0x63, 0x68, 0x61, 0x6e, 0x6e, 0x65, 0x6c, 0x49, 0x64, 0x22, 0x95, 0x01, 0x0a, 0x0a, 0x42, 0x6c,
	0x6f, 0x63, 0x6b, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x12, 0x41, 0x0a, 0x0f, 0x62, 0x6c, 0x6f, 0x63,
	0x6b, 0x5f, 0x63, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x16, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x42, 0x6c, 0x6f, 0x63, 0x6b,
	0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x64, 0x48, 0x00, 0x52, 0x0e, 0x62, 0x6c, 0x6f,
	0x63, 0x6b, 0x43, 0x6f, 0x6d, 0x70, 0x6c, 0x65, 0x74, 0x65, 0x64, 0x12, 0x3b, 0x0a, 0x0d, 0x73,
	0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x5f, 0x65, 0x6e, 0x64, 0x65, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x0b, 0x32, 0x14, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x45, 0x6e, 0x64, 0x65, 0x64, 0x48, 0x00, 0x52, 0x0c, 0x73, 0x65, 0x73, 0x73,
	0x69, 0x6f, 0x6e, 0x45, 0x6e, 0x64, 0x65, 0x64, 0x42, 0x07, 0x0a, 0x05, 0x65, 0x76, 0x65, 0x6e,
	0x74, 0x22, 0xae, 0x01, 0x0a, 0x0e, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x43, 0x6f, 0x6d, 0x70, 0x6c,
	0x65, 0x74, 0x65, 0x64, 0x12, 0x19, 0x0a, 0x08, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x5f, 0x69, 0x64,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x49, 0x64, 0x12,
	0x20, 0x0a, 0x0c, 0x73, 0x74, 0x61, 0x72, 0x74, 0x5f, 0x75, 0x74, 0x63, 0x5f, 0x6d, 0x73, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x74, 0x55, 0x74, 0x63, 0x4d,
	0x73, 0x12, 0x1c, 0x0a, 0x0a, 0x65, 0x6e, 0x64, 0x5f, 0x75, 0x74, 0x63, 0x5f, 0x6d, 0x73, 0x18,
	0x03, 0x20, 0x01, 0x28, 0x03, 0x52, 0x08, 0x65, 0x6e, 0x64, 0x55, 0x74, 0x63, 0x4d, 0x73, 0x12,
	0x1e, 0x0a, 0x0b, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x63, 0x74, 0x5f, 0x6d, 0x73, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x09, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x43, 0x74, 0x4d, 0x73, 0x12,
	0x21, 0x0a, 0x0c, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x73, 0x18,
	0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x0b, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x42, 0x6c, 0x6f, 0x63,
	0x6b, 0x73, 0x22, 0x26, 0x0a, 0x0c, 0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x45, 0x6e, 0x64,
	0x65, 0x64, 0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x32, 0xee, 0x03, 0x0a, 0x0a, 0x41,
	0x69, 0x72, 0x43, 0x6f, 0x6e, 0x74, 0x72, 0x6f, 0x6c, 0x12, 0x43, 0x0a, 0x0a, 0x47, 0x65, 0x74,
	0x56, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x12, 0x19, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31,
	0x2e, 0x47, 0x65, 0x74, 0x56, 0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x1a, 0x1a, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x47, 0x65, 0x74, 0x56,
	0x65, 0x72, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x49,
	0x0a, 0x0c, 0x41, 0x74, 0x74, 0x61, 0x63, 0x68, 0x53, 0x74, 0x72, 0x65, 0x61, 0x6d, 0x12, 0x1b,
	0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x74, 0x74, 0x61, 0x63, 0x68, 0x53, 0x74,
	0x72, 0x65, 0x61, 0x6d, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x61, 0x69,
	0x72, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x74, 0x74, 0x61, 0x63, 0x68, 0x53, 0x74, 0x72, 0x65, 0x61,
	0x6d, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x64, 0x0a, 0x15, 0x53, 0x74, 0x61,
	0x72, 0x74, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x53, 0x65, 0x73, 0x73, 0x69,
	0x6f, 0x6e, 0x12, 0x24, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x74, 0x61, 0x72,
	0x74, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x53, 0x65, 0x73, 0x73, 0x69, 0x6f,
	0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x25, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76,
	0x31, 0x2e, 0x53, 0x74, 0x61, 0x72, 0x74, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e,
	0x53, 0x65, 0x73, 0x73, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12,
	0x4c, 0x0a, 0x0d, 0x46, 0x65, 0x65, 0x64, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e,
	0x12, 0x1c, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x65, 0x65, 0x64, 0x42, 0x6c,
	0x6f, 0x63, 0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1d,
	0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x46, 0x65, 0x65, 0x64, 0x42, 0x6c, 0x6f, 0x63,
	0x6b, 0x50, 0x6c, 0x61, 0x6e, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x49, 0x0a,
	0x0c, 0x53, 0x77, 0x69, 0x74, 0x63, 0x68, 0x54, 0x6f, 0x4c, 0x69, 0x76, 0x65, 0x12, 0x1b, 0x2e,
	0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x77, 0x69, 0x74, 0x63, 0x68, 0x54, 0x6f, 0x4c,
	0x69, 0x76, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x61, 0x69, 0x72,
	0x2e, 0x76, 0x31, 0x2e, 0x53, 0x77, 0x69, 0x74, 0x63, 0x68, 0x54, 0x6f, 0x4c, 0x69, 0x76, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x51, 0x0a, 0x14, 0x53, 0x75, 0x62, 0x73,
	0x63, 0x72, 0x69, 0x62, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x73,
	0x12, 0x23, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75, 0x62, 0x73, 0x63, 0x72,
	0x69, 0x62, 0x65, 0x42, 0x6c, 0x6f, 0x63, 0x6b, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x12, 0x2e, 0x61, 0x69, 0x72, 0x2e, 0x76, 0x31, 0x2e, 0x42,
	0x6c, 0x6f, 0x63, 0x6b, 0x45, 0x76, 0x65, 0x6e, 0x74, 0x30, 0x01, 0x42, 0x2b, 0x5a, 0x29, 0x67,
	0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x66, 0x65, 0x72, 0x6e, 0x77, 0x6f,
	0x6f, 0x64, 0x2f, 0x70, 0x6c, 0x61, 0x79, 0x6f, 0x75, 0x74, 0x64, 0x2f, 0x70, 0x6b, 0x67, 0x2f,
	0x61, 0x69, 0x72, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_air_proto_rawDescOnce sync.Once
	file_air_proto_rawDescData []byte
)

func file_air_proto_rawDescGZIP() []byte {
	file_air_proto_rawDescOnce.Do(func() {
		file_air_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_air_proto_rawDesc), len(file_air_proto_rawDesc)))
	})
	return file_air_proto_rawDescData
}

var file_air_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_air_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_air_proto_goTypes = []any{
	(FeedBlockPlanResponse_Result)(0),     // 0: air.v1.FeedBlockPlanResponse.Result
	(*GetVersionRequest)(nil),             // 1: air.v1.GetVersionRequest
	(*GetVersionResponse)(nil),            // 2: air.v1.GetVersionResponse
	(*AttachStreamRequest)(nil),           // 3: air.v1.AttachStreamRequest
	(*AttachStreamResponse)(nil),          // 4: air.v1.AttachStreamResponse
	(*ProgramFormat)(nil),                 // 5: air.v1.ProgramFormat
	(*StartBlockPlanSessionRequest)(nil),  // 6: air.v1.StartBlockPlanSessionRequest
	(*StartBlockPlanSessionResponse)(nil), // 7: air.v1.StartBlockPlanSessionResponse
	(*Segment)(nil),                       // 8: air.v1.Segment
	(*FeedBlockPlanRequest)(nil),          // 9: air.v1.FeedBlockPlanRequest
	(*FeedBlockPlanResponse)(nil),         // 10: air.v1.FeedBlockPlanResponse
	(*SwitchToLiveRequest)(nil),           // 11: air.v1.SwitchToLiveRequest
	(*SwitchToLiveResponse)(nil),          // 12: air.v1.SwitchToLiveResponse
	(*SubscribeBlockEventsRequest)(nil),   // 13: air.v1.SubscribeBlockEventsRequest
	(*BlockEvent)(nil),                    // 14: air.v1.BlockEvent
	(*BlockCompleted)(nil),                // 15: air.v1.BlockCompleted
	(*SessionEnded)(nil),                  // 16: air.v1.SessionEnded
}
var file_air_proto_depIdxs = []int32{
	5,  // 0: air.v1.StartBlockPlanSessionRequest.program_format:type_name -> air.v1.ProgramFormat
	8,  // 1: air.v1.FeedBlockPlanRequest.segments:type_name -> air.v1.Segment
	0,  // 2: air.v1.FeedBlockPlanResponse.result:type_name -> air.v1.FeedBlockPlanResponse.Result
	15, // 3: air.v1.BlockEvent.block_completed:type_name -> air.v1.BlockCompleted
	16, // 4: air.v1.BlockEvent.session_ended:type_name -> air.v1.SessionEnded
	1,  // 5: air.v1.AirControl.GetVersion:input_type -> air.v1.GetVersionRequest
	3,  // 6: air.v1.AirControl.AttachStream:input_type -> air.v1.AttachStreamRequest
	6,  // 7: air.v1.AirControl.StartBlockPlanSession:input_type -> air.v1.StartBlockPlanSessionRequest
	9,  // 8: air.v1.AirControl.FeedBlockPlan:input_type -> air.v1.FeedBlockPlanRequest
	11, // 9: air.v1.AirControl.SwitchToLive:input_type -> air.v1.SwitchToLiveRequest
	13, // 10: air.v1.AirControl.SubscribeBlockEvents:input_type -> air.v1.SubscribeBlockEventsRequest
	2,  // 11: air.v1.AirControl.GetVersion:output_type -> air.v1.GetVersionResponse
	4,  // 12: air.v1.AirControl.AttachStream:output_type -> air.v1.AttachStreamResponse
	7,  // 13: air.v1.AirControl.StartBlockPlanSession:output_type -> air.v1.StartBlockPlanSessionResponse
	10, // 14: air.v1.AirControl.FeedBlockPlan:output_type -> air.v1.FeedBlockPlanResponse
	12, // 15: air.v1.AirControl.SwitchToLive:output_type -> air.v1.SwitchToLiveResponse
	14, // 16: air.v1.AirControl.SubscribeBlockEvents:output_type -> air.v1.BlockEvent
	11, // [11:17] is the sub-list for method output_type
	5,  // [5:11] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_air_proto_init() }
func file_air_proto_init() {
	if File_air_proto != nil {
		return
	}
	file_air_proto_msgTypes[13].OneofWrappers = []any{
		(*BlockEvent_BlockCompleted)(nil),
		(*BlockEvent_SessionEnded)(nil),
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_air_proto_rawDesc), len(file_air_proto_rawDesc)),
			NumEnums:      1,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_air_proto_goTypes,
		DependencyIndexes: file_air_proto_depIdxs,
		EnumInfos:         file_air_proto_enumTypes,
		MessageInfos:      file_air_proto_msgTypes,
	}.Build()
	File_air_proto = out.File
	file_air_proto_goTypes = nil
	file_air_proto_depIdxs = nil
}
