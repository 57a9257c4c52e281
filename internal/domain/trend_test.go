package domain_test

import (
	"math"
	"testing"

	"weighttrend/internal/domain"
)

func activeSlots(tr domain.Trend) []int {
	var out []int
	for i, s := range tr.Slots {
		if s.IsActive() {
			out = append(out, i)
		}
	}
	return out
}

func TestComputeTrend(t *testing.T) {
	tests := []struct {
		name        string
		initial     float64
		weight      *float64
		wantActive  int
		wantClamped bool
	}{
		{"no weight", 150, nil, -1, false},
		{"unchanged", 150, ptr(150.0), 5, false},
		{"gain two", 150, ptr(152.0), 7, false},
		{"loss one shares target", 150, ptr(149.0), 4, false},
		{"loss five", 150, ptr(145.0), 0, false},
		{"gain three", 150, ptr(153.0), 8, false},
		{"rounds down", 150, ptr(151.4), 6, false},
		{"rounds half away from zero", 150, ptr(150.5), 6, false},
		{"negative half away from zero", 150, ptr(149.5), 4, false},
		{"gain ten clamps high", 150, ptr(160.0), 8, true},
		{"loss ten clamps low", 150, ptr(140.0), 0, true},
		{"zero initial clamps", 0, ptr(150.0), 8, true},
		{"nan weight", 150, ptr(math.NaN()), -1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tr := domain.ComputeTrend(tc.initial, domain.DayRecord{Weight: tc.weight})

			if !tr.Slots[domain.TargetSlot].IsTarget() {
				t.Fatal("target slot not marked")
			}
			for i, s := range tr.Slots {
				if i != domain.TargetSlot && s.IsTarget() {
					t.Errorf("slot %d unexpectedly marked target", i)
				}
			}
			if tr.Active != tc.wantActive {
				t.Errorf("Active = %d; want %d", tr.Active, tc.wantActive)
			}
			if tr.Clamped != tc.wantClamped {
				t.Errorf("Clamped = %v; want %v", tr.Clamped, tc.wantClamped)
			}

			active := activeSlots(tr)
			if tc.wantActive < 0 {
				if len(active) != 0 {
					t.Errorf("active slots = %v; want none", active)
				}
				return
			}
			if len(active) != 1 || active[0] != tc.wantActive {
				t.Errorf("active slots = %v; want [%d]", active, tc.wantActive)
			}
		})
	}
}

func TestComputeTrend_OnlyTargetWithoutWeight(t *testing.T) {
	tr := domain.ComputeTrend(150, domain.DayRecord{Comment: ptr("skipped")})
	for i, s := range tr.Slots {
		want := domain.SlotEmpty
		if i == domain.TargetSlot {
			want = domain.SlotTarget
		}
		if s != want {
			t.Errorf("slot %d = %v; want %v", i, s, want)
		}
	}
}
