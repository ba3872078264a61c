package planner

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/fernwood/playoutd/internal/assets"
	"github.com/fernwood/playoutd/internal/models"
)

// Resolver turns a schedule plan and a broadcast date into a
// ResolvedScheduleDay. Resolution is deterministic: the only mutable input is
// the sequence store, advanced exactly once per slot.
type Resolver struct {
	library   assets.Library
	sequences *SequenceStore
	logger    *slog.Logger
}

// NewResolver creates a Resolver.
func NewResolver(library assets.Library, sequences *SequenceStore, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{library: library, sequences: sequences, logger: logger}
}

// ResolveDay resolves the plan for one broadcast date. The date's year, month
// and day are interpreted in the channel timezone; clock fields are ignored.
//
// Overlapping zones are settled by plan position: a slot claimed by an earlier
// zone shadows later zones at that instant, and a shadowed zone does not
// advance its rotation for the slot it lost.
func (r *Resolver) ResolveDay(ctx context.Context, plan *models.SchedulePlan, date time.Time, cfg ChannelConfig) (*ResolvedScheduleDay, error) {
	day := &ResolvedScheduleDay{
		ChannelSlug:  cfg.ChannelSlug,
		BroadcastDay: date.Format("2006-01-02"),
	}

	zones := eligibleZones(plan.Zones, date)
	gridMs := cfg.GridMs()
	claimed := make(map[int64]struct{})

	for _, zone := range zones {
		if len(zone.Programs) == 0 {
			return nil, &EmptyProgramFamilyError{ZoneID: zone.ID, ZoneName: zone.Name}
		}

		startUTC, endUTC, err := zoneSpanUTC(zone, date, cfg)
		if err != nil {
			return nil, err
		}
		spanMs := endUTC.UnixMilli() - startUTC.UnixMilli()
		if spanMs%gridMs != 0 {
			boundary := endUTC.UnixMilli()
			return nil, &GridAlignmentError{
				BoundaryUTCMs: boundary,
				FloorUTCMs:    boundary - boundary%gridMs,
				CeilUTCMs:     boundary - boundary%gridMs + gridMs,
			}
		}

		familyKey := FamilyKey(zone.Programs)
		slotCount := int(spanMs / gridMs)
		placed := 0
		for i := 0; i < slotCount; i++ {
			slotStartMs := startUTC.UnixMilli() + int64(i)*gridMs
			if _, taken := claimed[slotStartMs]; taken {
				continue
			}
			index, err := r.sequences.Next(ctx, cfg.ChannelSlug, zone.ID, familyKey, len(zone.Programs), slotStartMs)
			if err != nil {
				return nil, fmt.Errorf("advancing sequence for zone %s: %w", zone.Name, err)
			}
			ref := zone.Programs[index%len(zone.Programs)]

			asset, err := r.library.Describe(ctx, ref.Ref)
			if err != nil {
				return nil, fmt.Errorf("resolving %s in zone %s: %w", ref.Key(), zone.Name, err)
			}

			day.Slots = append(day.Slots, ResolvedSlot{
				StartUTCMs: slotStartMs,
				EndUTCMs:   slotStartMs + gridMs,
				ProgramRef: ref,
				Asset:      asset,
			})
			claimed[slotStartMs] = struct{}{}
			placed++
		}

		r.logger.Debug("resolved zone",
			slog.String("channel", cfg.ChannelSlug),
			slog.String("zone", zone.Name),
			slog.String("day", day.BroadcastDay),
			slog.Int("slots", placed))
	}

	sort.Slice(day.Slots, func(i, j int) bool {
		return day.Slots[i].StartUTCMs < day.Slots[j].StartUTCMs
	})
	return day, nil
}

// eligibleZones filters by day-of-week and effective-date range, ordered by
// plan position so earlier zones win overlapping slots; local start breaks
// ties between zones sharing a position.
func eligibleZones(zones []models.Zone, date time.Time) []models.Zone {
	var out []models.Zone
	for _, z := range zones {
		if z.MatchesDay(date.Weekday()) && z.EffectiveOn(date) {
			out = append(out, z)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].LocalStart < out[j].LocalStart
	})
	return out
}

// zoneSpanUTC converts the zone's local window on the given date to UTC
// instants and applies the zone's DST policy when the wall-clock span and the
// UTC span disagree.
func zoneSpanUTC(zone models.Zone, date time.Time, cfg ChannelConfig) (time.Time, time.Time, error) {
	startH, startM := mustClock(zone.LocalStart)
	endH, endM := mustClock(zone.LocalEnd)

	start := time.Date(date.Year(), date.Month(), date.Day(), startH, startM, 0, 0, cfg.Location)
	endDay := date
	wrap := endH*60+endM <= startH*60+startM
	if wrap {
		endDay = date.AddDate(0, 0, 1)
	}
	end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), endH, endM, 0, 0, cfg.Location)

	nominalMin := endH*60 + endM - (startH*60 + startM)
	if wrap {
		nominalMin += 24 * 60
	}
	nominalMs := int64(nominalMin) * msPerMinute
	actualMs := end.UnixMilli() - start.UnixMilli()
	deltaMs := actualMs - nominalMs
	if deltaMs == 0 {
		return start.UTC(), end.UTC(), nil
	}

	gridMs := cfg.GridMs()
	switch zone.DSTPolicy {
	case models.DSTShrinkOneBlock:
		if deltaMs == -gridMs {
			return start.UTC(), end.UTC(), nil
		}
	case models.DSTExpandOneBlock:
		if deltaMs == gridMs {
			return start.UTC(), end.UTC(), nil
		}
	}
	return time.Time{}, time.Time{}, &DSTTransitionError{
		ZoneName:     zone.Name,
		BroadcastDay: date.Format("2006-01-02"),
		Policy:       zone.DSTPolicy,
		DeltaMs:      deltaMs,
	}
}

// mustClock parses "HH:MM". Zone validation guarantees the format.
func mustClock(s string) (int, int) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		panic(fmt.Sprintf("unvalidated zone clock %q: %v", s, err))
	}
	return t.Hour(), t.Minute()
}
