package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProgramRef_Key(t *testing.T) {
	ref := ProgramRef{Kind: ProgramRefEpisode, Ref: "show-42"}
	assert.Equal(t, "episode:show-42", ref.Key())
}

func TestProgramRef_Validate(t *testing.T) {
	assert.NoError(t, ProgramRef{Kind: ProgramRefMovie, Ref: "m1"}.Validate())
	assert.Error(t, ProgramRef{Kind: "series", Ref: "m1"}.Validate())
	assert.Error(t, ProgramRef{Kind: ProgramRefMovie}.Validate())
}

func TestSchedulePlan_Validate(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := from.AddDate(0, 6, 0)

	plan := &SchedulePlan{ChannelSlug: "retro-one", Name: "Weekday", ActiveFrom: &from, ActiveUntil: &until}
	assert.NoError(t, plan.Validate())

	assert.Error(t, (&SchedulePlan{Name: "x"}).Validate())
	assert.Error(t, (&SchedulePlan{ChannelSlug: "c"}).Validate())

	bad := &SchedulePlan{ChannelSlug: "c", Name: "x", ActiveFrom: &until, ActiveUntil: &from}
	assert.Error(t, bad.Validate())
}

func TestZone_Validate(t *testing.T) {
	zone := &Zone{
		Name:       "Morning Cartoons",
		LocalStart: "06:00",
		LocalEnd:   "09:00",
		DSTPolicy:  DSTReject,
		Programs:   []ProgramRef{{Kind: ProgramRefEpisode, Ref: "toons"}},
	}
	assert.NoError(t, zone.Validate())

	bad := *zone
	bad.LocalStart = "6am"
	assert.Error(t, bad.Validate())

	bad = *zone
	bad.DSTPolicy = "ignore"
	assert.Error(t, bad.Validate())

	bad = *zone
	bad.Programs = []ProgramRef{{Kind: "nope", Ref: "x"}}
	assert.Error(t, bad.Validate())
}

func TestZone_MatchesDay(t *testing.T) {
	zone := &Zone{DaysOfWeek: "mon, wed ,fri"}
	assert.True(t, zone.MatchesDay(time.Monday))
	assert.True(t, zone.MatchesDay(time.Wednesday))
	assert.False(t, zone.MatchesDay(time.Sunday))

	all := &Zone{}
	assert.True(t, all.MatchesDay(time.Sunday))
}

func TestZone_EffectiveOn(t *testing.T) {
	from := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	zone := &Zone{EffectiveFrom: &from, EffectiveUntil: &until}

	assert.True(t, zone.EffectiveOn(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, zone.EffectiveOn(time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)))
	assert.False(t, zone.EffectiveOn(time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)))
}
