package planner

import (
	"fmt"
	"sort"

	"github.com/fernwood/playoutd/internal/models"
)

// SegmentSlot splits one resolved slot into content acts and break slots.
//
// Movie channels never break mid-content: the asset plays from the top and
// any surplus becomes a single trailing break. Network channels break at
// chapter markers when the asset has them, otherwise at computed equal
// divisions.
func SegmentSlot(slot ResolvedSlot, cfg ChannelConfig) (*SegmentedBlock, error) {
	slotMs := slot.DurationMs()
	if slotMs <= 0 {
		return nil, fmt.Errorf("slot at %d has non-positive duration %d", slot.StartUTCMs, slotMs)
	}
	assetMs := slot.Asset.DurationMs

	if cfg.ChannelType == ChannelTypeMovie {
		return segmentMovie(slot, slotMs, assetMs), nil
	}
	return segmentNetwork(slot, slotMs, assetMs, cfg), nil
}

func segmentMovie(slot ResolvedSlot, slotMs, assetMs int64) *SegmentedBlock {
	contentMs := assetMs
	if contentMs > slotMs {
		contentMs = slotMs
	}
	block := &SegmentedBlock{
		Slot: slot,
		Content: []ContentSegmentSpec{{
			AssetURI:        slot.Asset.URI,
			DurationMs:      contentMs,
			Transition:      TransitionNone,
			BreakpointClass: models.BreakpointNone,
		}},
	}
	if surplus := slotMs - contentMs; surplus > 0 {
		block.Breaks = []BreakSpec{{Index: 0, DurationMs: surplus}}
	}
	return block
}

func segmentNetwork(slot ResolvedSlot, slotMs, assetMs int64, cfg ChannelConfig) *SegmentedBlock {
	contentMs := assetMs
	if contentMs >= slotMs {
		// No room for breaks; content truncates to the slot.
		return &SegmentedBlock{
			Slot: slot,
			Content: []ContentSegmentSpec{{
				AssetURI:        slot.Asset.URI,
				DurationMs:      slotMs,
				Transition:      TransitionNone,
				BreakpointClass: models.BreakpointNone,
			}},
		}
	}
	totalBreakMs := slotMs - contentMs

	breakpoints, class := breakpointsFor(slot.Asset, contentMs, cfg.NumBreaks)
	if len(breakpoints) == 0 {
		return &SegmentedBlock{
			Slot: slot,
			Content: []ContentSegmentSpec{{
				AssetURI:        slot.Asset.URI,
				DurationMs:      contentMs,
				Transition:      TransitionNone,
				BreakpointClass: models.BreakpointNone,
			}},
			Breaks: []BreakSpec{{Index: 0, DurationMs: totalBreakMs}},
		}
	}

	transition := TransitionNone
	var fadeMs int64
	if class == models.BreakpointComputed {
		transition = TransitionFade
		fadeMs = cfg.FadeDurationMs
	}

	block := &SegmentedBlock{Slot: slot}
	prev := int64(0)
	for _, bp := range breakpoints {
		block.Content = append(block.Content, ContentSegmentSpec{
			AssetURI:           slot.Asset.URI,
			AssetStartOffsetMs: prev,
			DurationMs:         bp - prev,
			Transition:         transition,
			FadeDurationMs:     fadeMs,
			BreakpointClass:    class,
		})
		prev = bp
	}
	block.Content = append(block.Content, ContentSegmentSpec{
		AssetURI:           slot.Asset.URI,
		AssetStartOffsetMs: prev,
		DurationMs:         contentMs - prev,
		Transition:         TransitionNone,
		BreakpointClass:    models.BreakpointNone,
	})
	block.Breaks = distributeBreaks(totalBreakMs, len(breakpoints))
	return block
}

// breakpointsFor returns the in-content break positions, strictly increasing
// within (0, contentMs), and their class. Stored markers are first-class;
// equal division is the second-class fallback.
func breakpointsFor(asset *models.Asset, contentMs int64, numBreaks int) ([]int64, models.BreakpointClass) {
	var markers []int64
	for _, m := range asset.Markers {
		if m.OffsetMs > 0 && m.OffsetMs < contentMs {
			markers = append(markers, m.OffsetMs)
		}
	}
	if len(markers) > 0 {
		sort.Slice(markers, func(i, j int) bool { return markers[i] < markers[j] })
		return dedupe(markers), models.BreakpointChapter
	}

	if numBreaks < 1 {
		return nil, models.BreakpointNone
	}
	var computed []int64
	for i := 1; i <= numBreaks; i++ {
		bp := contentMs * int64(i) / int64(numBreaks+1)
		if bp > 0 && bp < contentMs {
			computed = append(computed, bp)
		}
	}
	return dedupe(computed), models.BreakpointComputed
}

// distributeBreaks splits the total break time over n break slots: every slot
// gets the floor share, the remainder lands one extra ms each on the last
// slots. Early breaks stay uniform.
func distributeBreaks(totalMs int64, n int) []BreakSpec {
	base := totalMs / int64(n)
	rem := int(totalMs % int64(n))
	breaks := make([]BreakSpec, n)
	for i := range breaks {
		d := base
		if i >= n-rem {
			d++
		}
		breaks[i] = BreakSpec{Index: i, DurationMs: d}
	}
	return breaks
}

func dedupe(sorted []int64) []int64 {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
