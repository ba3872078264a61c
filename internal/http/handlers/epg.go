package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path"

	"github.com/danielgtaylor/huma/v2"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/execwindow"
	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/repository"
)

// EPGHandler serves the per-channel programme guide, derived from locked
// compiled logs.
type EPGHandler struct {
	compiled repository.CompiledProgramLogRepository
	library  assets.Library
	logger   *slog.Logger
}

// NewEPGHandler creates an EPG handler.
func NewEPGHandler(compiled repository.CompiledProgramLogRepository, library assets.Library, logger *slog.Logger) *EPGHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &EPGHandler{compiled: compiled, library: library, logger: logger}
}

// EPGInput identifies one channel and broadcast day.
type EPGInput struct {
	Slug string `path:"slug" doc:"Channel slug"`
	Day  string `query:"day" doc:"Broadcast day, YYYY-MM-DD" example:"2025-01-15"`
}

// EPGOutput is the programme guide response.
type EPGOutput struct {
	Body EPGResponse
}

// Register registers the EPG routes with the API.
func (h *EPGHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getChannelEPG",
		Method:      "GET",
		Path:        "/api/v1/channels/{slug}/epg",
		Summary:     "Channel programme guide",
		Description: "Returns the programme listing for one broadcast day, derived from the locked transmission log",
		Tags:        []string{"Schedule"},
	}, h.GetEPG)
}

// GetEPG returns the programme guide for a channel and day.
func (h *EPGHandler) GetEPG(ctx context.Context, input *EPGInput) (*EPGOutput, error) {
	if input.Day == "" {
		return nil, huma.Error422UnprocessableEntity("day query parameter is required")
	}

	compiled, err := h.compiled.GetByChannelDay(ctx, input.Slug, input.Day)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading compiled log", err)
	}
	if compiled == nil {
		return nil, huma.Error404NotFound("no compiled log for " + input.Slug + " on " + input.Day)
	}

	var entries []execwindow.Entry
	if err := json.Unmarshal([]byte(compiled.CompiledJSON), &entries); err != nil {
		return nil, huma.Error500InternalServerError("decoding compiled log", err)
	}

	resp := EPGResponse{
		ChannelSlug:  input.Slug,
		BroadcastDay: input.Day,
		Locked:       compiled.Locked,
		ScheduleHash: compiled.ScheduleHash,
		Events:       make([]EPGEvent, 0, len(entries)),
	}
	for _, entry := range entries {
		event := EPGEvent{
			StartUTCMs: entry.StartUTCMs,
			EndUTCMs:   entry.EndUTCMs,
			BlockID:    entry.BlockID,
		}
		if uri := primaryContentURI(entry.Segments); uri != "" {
			event.AssetURI = uri
			event.Title, event.Synopsis = h.describe(ctx, uri)
		}
		resp.Events = append(resp.Events, event)
	}
	return &EPGOutput{Body: resp}, nil
}

func primaryContentURI(segments []models.SegmentRecord) string {
	for _, seg := range segments {
		if seg.SegmentType == models.SegmentContent {
			return seg.AssetURI
		}
	}
	return ""
}

// describe resolves the event title and synopsis, falling back to the URI
// basename for assets missing from the library.
func (h *EPGHandler) describe(ctx context.Context, uri string) (string, string) {
	asset, err := h.library.Describe(ctx, uri)
	if err != nil {
		if !errors.Is(err, assets.ErrAssetNotFound) {
			h.logger.Warn("asset lookup failed", slog.String("uri", uri), slog.Any("error", err))
		}
		return path.Base(uri), ""
	}
	title := asset.Title
	if title == "" {
		title = path.Base(uri)
	}
	return title, asset.Synopsis
}
