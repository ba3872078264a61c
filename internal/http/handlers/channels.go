package handlers

import (
	"context"
	"sort"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fernwood/playoutd/internal/channel"
)

// ChannelHandler serves per-channel runtime status.
type ChannelHandler struct {
	managers map[string]*channel.Manager
}

// NewChannelHandler creates a channel status handler over the registered
// channel managers.
func NewChannelHandler(managers map[string]*channel.Manager) *ChannelHandler {
	return &ChannelHandler{managers: managers}
}

// ChannelListInput is the input for the channel list endpoint.
type ChannelListInput struct{}

// ChannelListOutput is the channel list response.
type ChannelListOutput struct {
	Body ChannelListResponse
}

// ChannelStatusInput identifies one channel.
type ChannelStatusInput struct {
	Slug string `path:"slug" doc:"Channel slug"`
}

// ChannelStatusOutput is the per-channel status response.
type ChannelStatusOutput struct {
	Body ChannelStatusResponse
}

// Register registers the channel routes with the API.
func (h *ChannelHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listChannels",
		Method:      "GET",
		Path:        "/api/v1/channels",
		Summary:     "List channels",
		Description: "Returns runtime status for every registered channel",
		Tags:        []string{"Runtime"},
	}, h.ListChannels)
	huma.Register(api, huma.Operation{
		OperationID: "getChannelStatus",
		Method:      "GET",
		Path:        "/api/v1/channels/{slug}",
		Summary:     "Channel status",
		Description: "Returns the boundary state, viewer count, and runway for one channel",
		Tags:        []string{"Runtime"},
	}, h.GetChannelStatus)
}

// ListChannels returns runtime status for all channels, sorted by slug.
func (h *ChannelHandler) ListChannels(context.Context, *ChannelListInput) (*ChannelListOutput, error) {
	resp := ChannelListResponse{Channels: make([]ChannelStatusResponse, 0, len(h.managers))}
	for slug, m := range h.managers {
		resp.Channels = append(resp.Channels, statusFor(slug, m))
	}
	sort.Slice(resp.Channels, func(i, j int) bool {
		return resp.Channels[i].ChannelSlug < resp.Channels[j].ChannelSlug
	})
	return &ChannelListOutput{Body: resp}, nil
}

// GetChannelStatus returns runtime status for one channel.
func (h *ChannelHandler) GetChannelStatus(_ context.Context, input *ChannelStatusInput) (*ChannelStatusOutput, error) {
	m, ok := h.managers[input.Slug]
	if !ok {
		return nil, huma.Error404NotFound("unknown channel " + input.Slug)
	}
	return &ChannelStatusOutput{Body: statusFor(input.Slug, m)}, nil
}

func statusFor(slug string, m *channel.Manager) ChannelStatusResponse {
	ring := m.RingStats()
	return ChannelStatusResponse{
		ChannelSlug:         slug,
		BoundaryState:       m.State().String(),
		Viewers:             m.Viewers(),
		RunwayMs:            m.RunwayMs(),
		BufferBytes:         ring.BufferedBytes,
		BufferCapacityBytes: ring.CapacityBytes,
		BufferDroppedBytes:  ring.DroppedBytes,
	}
}
