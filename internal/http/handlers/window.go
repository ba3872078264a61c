package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fernwood/playoutd/internal/clock"
	"github.com/fernwood/playoutd/internal/execwindow"
)

// WindowSource exposes per-channel execution windows. *horizon.Manager is the
// production implementation.
type WindowSource interface {
	Window(channelSlug string) *execwindow.Store
}

// WindowHandler serves execution-window status.
type WindowHandler struct {
	windows WindowSource
	clock   clock.MasterClock
}

// NewWindowHandler creates a window handler.
func NewWindowHandler(windows WindowSource, clk clock.MasterClock) *WindowHandler {
	return &WindowHandler{windows: windows, clock: clk}
}

// WindowInput identifies one channel.
type WindowInput struct {
	Slug string `path:"slug" doc:"Channel slug"`
}

// WindowOutput is the execution-window status response.
type WindowOutput struct {
	Body WindowStatusResponse
}

// Register registers the window routes with the API.
func (h *WindowHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getChannelWindow",
		Method:      "GET",
		Path:        "/api/v1/channels/{slug}/window",
		Summary:     "Execution window status",
		Description: "Returns the execution-ready blocks currently held for a channel",
		Tags:        []string{"Runtime"},
	}, h.GetWindow)
}

// GetWindow returns the execution-window status for a channel.
func (h *WindowHandler) GetWindow(_ context.Context, input *WindowInput) (*WindowOutput, error) {
	store := h.windows.Window(input.Slug)
	if store == nil {
		return nil, huma.Error404NotFound("unknown channel " + input.Slug)
	}

	entries := store.Snapshot()
	resp := WindowStatusResponse{
		ChannelSlug: input.Slug,
		Entries:     len(entries),
		Blocks:      make([]WindowEntry, 0, len(entries)),
	}
	if len(entries) > 0 {
		resp.WindowStart = entries[0].StartUTCMs
		resp.WindowEnd = entries[len(entries)-1].EndUTCMs
		if ahead := resp.WindowEnd - h.clock.NowUTCMs(); ahead > 0 {
			resp.DepthAheadMs = ahead
		}
	}
	for _, entry := range entries {
		resp.Blocks = append(resp.Blocks, WindowEntry{
			BlockID:    entry.BlockID,
			StartUTCMs: entry.StartUTCMs,
			EndUTCMs:   entry.EndUTCMs,
			Segments:   len(entry.Segments),
		})
	}
	return &WindowOutput{Body: resp}, nil
}
