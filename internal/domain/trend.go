package domain

import "math"

const (
	// TrendSlotCount is the number of boxes drawn per day.
	TrendSlotCount = 9
	// TargetSlot is the fixed goal marker.
	TargetSlot = 4
	// BaselineSlot is where a weight equal to the initial weight lands.
	BaselineSlot = 5
)

// SlotState is a bit set describing how one trend box is drawn.
type SlotState uint8

const SlotEmpty SlotState = 0

const (
	SlotTarget SlotState = 1 << iota
	SlotActive
)

func (s SlotState) IsTarget() bool { return s&SlotTarget != 0 }
func (s SlotState) IsActive() bool { return s&SlotActive != 0 }

// Trend is the nine-box indicator for one day.
type Trend struct {
	Slots [TrendSlotCount]SlotState `json:"slots"`
	// Active is the index of the active slot, or -1 when the day has no
	// weight.
	Active int `json:"active"`
	// Clamped is set when the difference fell outside the drawable range and
	// Active was pinned to the nearest edge.
	Clamped bool `json:"clamped"`
}

// ComputeTrend places rec's weight on the nine-box scale relative to
// initialWeight. Slot TargetSlot is always marked as the target. The active
// slot is round(weight-initialWeight)+BaselineSlot clamped to [0, 8]; a
// difference of -1 therefore shares the target slot.
func ComputeTrend(initialWeight float64, rec DayRecord) Trend {
	t := Trend{Active: -1}
	t.Slots[TargetSlot] = SlotTarget

	if !rec.HasWeight() || math.IsNaN(initialWeight) || math.IsInf(initialWeight, 0) {
		return t
	}

	diff := math.Round(*rec.Weight - initialWeight)
	idx := BaselineSlot
	switch {
	case diff < -BaselineSlot:
		idx, t.Clamped = 0, true
	case diff > TrendSlotCount-1-BaselineSlot:
		idx, t.Clamped = TrendSlotCount-1, true
	default:
		idx += int(diff)
	}

	t.Active = idx
	t.Slots[idx] |= SlotActive
	return t
}
