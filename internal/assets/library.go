// Package assets exposes the media library to the planner as a small
// capability surface. The planner never touches the database directly; it
// asks the library for durations, breakpoint markers and filler candidates.
package assets

import (
	"context"
	"errors"
	"fmt"

	"github.com/fernwood/playoutd/internal/models"
	"github.com/fernwood/playoutd/internal/repository"
)

// ErrAssetNotFound indicates an asset URI that the library does not know.
var ErrAssetNotFound = errors.New("asset not found")

// Library is the read surface the planner depends on.
type Library interface {
	// Describe returns the asset for a URI. Returns ErrAssetNotFound if the
	// URI is unknown.
	Describe(ctx context.Context, uri string) (*models.Asset, error)

	// FillerCandidates returns non-content assets no longer than
	// maxDurationMs, longest first.
	FillerCandidates(ctx context.Context, maxDurationMs int64, maxCount int) ([]*models.Asset, error)
}

// dbLibrary backs Library with the asset repository.
type dbLibrary struct {
	repo repository.AssetRepository
}

// NewLibrary creates a Library backed by the asset repository.
func NewLibrary(repo repository.AssetRepository) Library {
	return &dbLibrary{repo: repo}
}

func (l *dbLibrary) Describe(ctx context.Context, uri string) (*models.Asset, error) {
	asset, err := l.repo.GetByURI(ctx, uri)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, uri)
	}
	return asset, nil
}

func (l *dbLibrary) FillerCandidates(ctx context.Context, maxDurationMs int64, maxCount int) ([]*models.Asset, error) {
	return l.repo.GetFillerAssets(ctx, maxDurationMs, maxCount)
}
