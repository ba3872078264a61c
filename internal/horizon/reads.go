package horizon

import (
	"context"
	"fmt"

	"github.com/fernwood/playoutd/internal/execwindow"
)

// NoScheduleDataError indicates a read path found no execution data. In
// authoritative mode this is a planning failure the consumer must propagate,
// never a trigger to plan.
type NoScheduleDataError struct {
	ChannelSlug string
	AtUTCMs     int64
}

func (e *NoScheduleDataError) Error() string {
	return fmt.Sprintf("no execution data for channel %s at %d", e.ChannelSlug, e.AtUTCMs)
}

// ActiveEntry returns the entry covering the given instant. In legacy mode a
// miss falls back to one synchronous extension before failing.
func (m *Manager) ActiveEntry(ctx context.Context, channelSlug string, atUTCMs int64) (execwindow.Entry, error) {
	store := m.Window(channelSlug)
	if store == nil {
		return execwindow.Entry{}, &NoScheduleDataError{ChannelSlug: channelSlug, AtUTCMs: atUTCMs}
	}
	if entry, ok := store.ActiveEntryAt(atUTCMs); ok {
		return entry, nil
	}
	if m.mode == ModeLegacy {
		if err := m.ExtendChannel(ctx, channelSlug); err != nil {
			return execwindow.Entry{}, err
		}
		if entry, ok := store.ActiveEntryAt(atUTCMs); ok {
			return entry, nil
		}
	}
	return execwindow.Entry{}, &NoScheduleDataError{ChannelSlug: channelSlug, AtUTCMs: atUTCMs}
}

// NextEntry returns the first entry starting strictly after the given
// instant, with the same legacy-mode fallback as ActiveEntry.
func (m *Manager) NextEntry(ctx context.Context, channelSlug string, afterUTCMs int64) (execwindow.Entry, error) {
	store := m.Window(channelSlug)
	if store == nil {
		return execwindow.Entry{}, &NoScheduleDataError{ChannelSlug: channelSlug, AtUTCMs: afterUTCMs}
	}
	if entry, ok := store.NextEntry(afterUTCMs); ok {
		return entry, nil
	}
	if m.mode == ModeLegacy {
		if err := m.ExtendChannel(ctx, channelSlug); err != nil {
			return execwindow.Entry{}, err
		}
		if entry, ok := store.NextEntry(afterUTCMs); ok {
			return entry, nil
		}
	}
	return execwindow.Entry{}, &NoScheduleDataError{ChannelSlug: channelSlug, AtUTCMs: afterUTCMs}
}
