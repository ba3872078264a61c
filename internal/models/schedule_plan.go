package models

import (
	"fmt"
	"strings"
	"time"
)

// ProgramRefKind discriminates how a program reference resolves to an asset.
type ProgramRefKind string

// Program reference kinds.
const (
	ProgramRefEpisode ProgramRefKind = "episode"
	ProgramRefMovie   ProgramRefKind = "movie"
	ProgramRefVirtual ProgramRefKind = "virtual"
)

// ProgramRef is a tagged identifier for schedulable content.
type ProgramRef struct {
	Kind ProgramRefKind `json:"kind"`
	Ref  string         `json:"ref"`
}

// Key returns the stable identity string used for sequence-state keys.
func (p ProgramRef) Key() string {
	return string(p.Kind) + ":" + p.Ref
}

// Validate checks the program reference.
func (p ProgramRef) Validate() error {
	switch p.Kind {
	case ProgramRefEpisode, ProgramRefMovie, ProgramRefVirtual:
	default:
		return fmt.Errorf("invalid program ref kind %q", p.Kind)
	}
	if p.Ref == "" {
		return ErrProgramRefRequired
	}
	return nil
}

// DSTPolicy selects how a zone behaves on a DST transition day.
type DSTPolicy string

// DST policies.
const (
	DSTReject         DSTPolicy = "reject"
	DSTShrinkOneBlock DSTPolicy = "shrink_one_block"
	DSTExpandOneBlock DSTPolicy = "expand_one_block"
)

// SchedulePlan is a channel's editorial intent: ordered zones plus priority
// and an activation window. Plans are date-independent and immutable once
// authored.
type SchedulePlan struct {
	BaseModel

	// ChannelSlug identifies the channel this plan belongs to.
	ChannelSlug string `gorm:"not null;size:255;index" json:"channel_slug"`

	// Name is a human-readable plan name.
	Name string `gorm:"not null;size:255" json:"name"`

	// Priority orders competing plans; higher wins.
	Priority int `gorm:"not null;default:0" json:"priority"`

	// ActiveFrom / ActiveUntil bound the plan's activation window.
	ActiveFrom  *time.Time `gorm:"index" json:"active_from,omitempty"`
	ActiveUntil *time.Time `gorm:"index" json:"active_until,omitempty"`

	// Zones are the plan's ordered time windows.
	Zones []Zone `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE" json:"zones,omitempty"`
}

// Validate checks the plan for required fields.
func (p *SchedulePlan) Validate() error {
	if p.ChannelSlug == "" {
		return ErrChannelSlugRequired
	}
	if p.Name == "" {
		return ErrNameRequired
	}
	if p.ActiveFrom != nil && p.ActiveUntil != nil && !p.ActiveUntil.After(*p.ActiveFrom) {
		return ErrInvalidTimeRange
	}
	return nil
}

// Zone is a named time window within the broadcast day carrying an ordered
// family of schedulable program references.
type Zone struct {
	BaseModel

	// PlanID is the foreign key to the parent SchedulePlan.
	PlanID ULID `gorm:"type:varchar(26);not null;index" json:"plan_id"`

	// Name is the zone's display name.
	Name string `gorm:"not null;size:255" json:"name"`

	// Position orders zones within the plan.
	Position int `gorm:"not null;default:0" json:"position"`

	// LocalStart / LocalEnd are local times of day, "HH:MM". A zone ending at
	// or before its start wraps past midnight.
	LocalStart string `gorm:"not null;size:5" json:"local_start"`
	LocalEnd   string `gorm:"not null;size:5" json:"local_end"`

	// DaysOfWeek filters broadcast dates, comma-separated lowercase
	// three-letter day names ("mon,tue,fri"). Empty matches every day.
	DaysOfWeek string `gorm:"size:64" json:"days_of_week,omitempty"`

	// EffectiveFrom / EffectiveUntil bound the zone by broadcast date.
	EffectiveFrom  *time.Time `json:"effective_from,omitempty"`
	EffectiveUntil *time.Time `json:"effective_until,omitempty"`

	// DSTPolicy selects behaviour on DST transition days.
	DSTPolicy DSTPolicy `gorm:"not null;size:32;default:reject" json:"dst_policy"`

	// Programs is the ordered program-ref family rotated through the zone's
	// slots.
	Programs []ProgramRef `gorm:"serializer:json" json:"programs"`
}

// Validate checks the zone for required fields and well-formed values.
func (z *Zone) Validate() error {
	if z.Name == "" {
		return ErrNameRequired
	}
	if _, err := time.Parse("15:04", z.LocalStart); err != nil {
		return fmt.Errorf("invalid local_start %q: %w", z.LocalStart, err)
	}
	if _, err := time.Parse("15:04", z.LocalEnd); err != nil {
		return fmt.Errorf("invalid local_end %q: %w", z.LocalEnd, err)
	}
	switch z.DSTPolicy {
	case DSTReject, DSTShrinkOneBlock, DSTExpandOneBlock:
	default:
		return fmt.Errorf("invalid dst_policy %q", z.DSTPolicy)
	}
	for _, ref := range z.Programs {
		if err := ref.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MatchesDay reports whether the zone's day-of-week filter includes the given
// weekday.
func (z *Zone) MatchesDay(day time.Weekday) bool {
	if z.DaysOfWeek == "" {
		return true
	}
	want := strings.ToLower(day.String()[:3])
	for _, d := range strings.Split(z.DaysOfWeek, ",") {
		if strings.TrimSpace(strings.ToLower(d)) == want {
			return true
		}
	}
	return false
}

// EffectiveOn reports whether the zone's effective-date range includes the
// given broadcast date.
func (z *Zone) EffectiveOn(date time.Time) bool {
	if z.EffectiveFrom != nil && date.Before(*z.EffectiveFrom) {
		return false
	}
	if z.EffectiveUntil != nil && date.After(*z.EffectiveUntil) {
		return false
	}
	return true
}

// SequenceState is the per (channel, zone, program-ref-family) rotation
// cursor. NextIndex only ever advances; it is mutated exclusively by the
// planner.
type SequenceState struct {
	BaseModel

	ChannelSlug string `gorm:"not null;size:255;uniqueIndex:idx_sequence_key" json:"channel_slug"`
	ZoneID      ULID   `gorm:"type:varchar(26);not null;uniqueIndex:idx_sequence_key" json:"zone_id"`
	FamilyKey   string `gorm:"not null;size:512;uniqueIndex:idx_sequence_key" json:"family_key"`

	// NextIndex is the next position in the program family, monotonic.
	NextIndex int `gorm:"not null;default:0" json:"next_index"`

	// LastRotatedMs is the UTC ms of the grid slot that last advanced the
	// cursor.
	LastRotatedMs int64 `gorm:"not null;default:0" json:"last_rotated_ms"`
}
