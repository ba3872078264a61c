package planner

// DeriveEPG projects a resolved day into viewer-facing events, one per slot.
// The projection is pure; titles and synopses come from the bound assets.
func DeriveEPG(day *ResolvedScheduleDay) []EPGEvent {
	events := make([]EPGEvent, 0, len(day.Slots))
	for _, slot := range day.Slots {
		title := slot.Asset.Title
		if title == "" {
			title = slot.ProgramRef.Ref
		}
		events = append(events, EPGEvent{
			ChannelSlug: day.ChannelSlug,
			StartUTCMs:  slot.StartUTCMs,
			EndUTCMs:    slot.EndUTCMs,
			Title:       title,
			Synopsis:    slot.Asset.Synopsis,
			ProgramRef:  slot.ProgramRef,
		})
	}
	return events
}
