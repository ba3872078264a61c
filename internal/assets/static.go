package assets

import (
	"context"
	"fmt"
	"sort"

	"github.com/fernwood/playoutd/internal/models"
)

// StaticLibrary is an in-memory Library keyed by asset URI. It is used by the
// offline plan command and by tests; nothing in it is safe for concurrent
// mutation after construction.
type StaticLibrary struct {
	byURI map[string]*models.Asset
}

// NewStaticLibrary builds a StaticLibrary from a fixed asset list.
func NewStaticLibrary(assetList []*models.Asset) *StaticLibrary {
	byURI := make(map[string]*models.Asset, len(assetList))
	for _, a := range assetList {
		byURI[a.URI] = a
	}
	return &StaticLibrary{byURI: byURI}
}

func (l *StaticLibrary) Describe(_ context.Context, uri string) (*models.Asset, error) {
	asset, ok := l.byURI[uri]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, uri)
	}
	return asset, nil
}

func (l *StaticLibrary) FillerCandidates(_ context.Context, maxDurationMs int64, maxCount int) ([]*models.Asset, error) {
	var out []*models.Asset
	for _, a := range l.byURI {
		if a.AssetType == models.AssetTypeContent {
			continue
		}
		if a.DurationMs > maxDurationMs {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].DurationMs != out[j].DurationMs {
			return out[i].DurationMs > out[j].DurationMs
		}
		return out[i].URI < out[j].URI
	})
	if maxCount > 0 && len(out) > maxCount {
		out = out[:maxCount]
	}
	return out, nil
}
