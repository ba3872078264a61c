package channel

import "fmt"

// BoundaryState is the per-channel session lifecycle state.
type BoundaryState int

// Boundary lifecycle states. FailedTerminal is absorbing.
const (
	StateNone BoundaryState = iota
	StatePlanned
	StatePreloadIssued
	StateSwitchScheduled
	StateSwitchIssued
	StateLive
	StateFailedTerminal
)

func (s BoundaryState) String() string {
	switch s {
	case StateNone:
		return "NONE"
	case StatePlanned:
		return "PLANNED"
	case StatePreloadIssued:
		return "PRELOAD_ISSUED"
	case StateSwitchScheduled:
		return "SWITCH_SCHEDULED"
	case StateSwitchIssued:
		return "SWITCH_ISSUED"
	case StateLive:
		return "LIVE"
	case StateFailedTerminal:
		return "FAILED_TERMINAL"
	}
	return "UNKNOWN"
}

// legalTransitions is the complete set of allowed state changes. Anything
// else forces FAILED_TERMINAL.
var legalTransitions = map[BoundaryState][]BoundaryState{
	StateNone:            {StatePlanned},
	StatePlanned:         {StatePreloadIssued},
	StatePreloadIssued:   {StateSwitchScheduled},
	StateSwitchScheduled: {StateSwitchIssued},
	StateSwitchIssued:    {StateLive},
	StateLive:            {StateNone, StatePlanned},
}

func transitionAllowed(from, to BoundaryState) bool {
	if from == StateFailedTerminal {
		return false
	}
	if to == StateFailedTerminal {
		return true
	}
	for _, next := range legalTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IllegalTransitionError reports a boundary transition outside the lifecycle
// table. The channel is left in FAILED_TERMINAL.
type IllegalTransitionError struct {
	ChannelSlug string
	From        BoundaryState
	To          BoundaryState
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("channel %s: illegal boundary transition %s -> %s",
		e.ChannelSlug, e.From, e.To)
}

// RunwayReadinessError indicates the non-recovery runway ahead of the
// playhead is below the preload budget. The session must not start; the
// horizon needs extending first.
type RunwayReadinessError struct {
	ChannelSlug string
	RunwayMs    int64
	RequiredMs  int64
}

func (e *RunwayReadinessError) Error() string {
	return fmt.Sprintf("channel %s: runway %dms below preload budget %dms",
		e.ChannelSlug, e.RunwayMs, e.RequiredMs)
}
