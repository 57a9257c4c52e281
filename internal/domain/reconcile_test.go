package domain_test

import (
	"testing"
	"time"

	"weighttrend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestReconcileMonth_LengthAndOrder(t *testing.T) {
	for y := 2023; y <= 2024; y++ {
		for mo := time.January; mo <= time.December; mo++ {
			m := domain.Month{Year: y, Month: mo}
			got := domain.ReconcileMonth(m, nil)
			if len(got) != m.Days() {
				t.Fatalf("%v: len = %d; want %d", m, len(got), m.Days())
			}
			for i, r := range got {
				if r.Date != m.Day(i+1) {
					t.Fatalf("%v: entry %d has date %v", m, i, r.Date)
				}
				if i > 0 && got[i-1].Date.Compare(r.Date) >= 0 {
					t.Fatalf("%v: not strictly ascending at %d", m, i)
				}
				if r.Weight != nil || r.Comment != nil {
					t.Fatalf("%v: placeholder %d not empty", m, i)
				}
			}
		}
	}
}

func TestReconcileMonth_February(t *testing.T) {
	if n := len(domain.ReconcileMonth(domain.Month{Year: 2024, Month: time.February}, nil)); n != 29 {
		t.Errorf("leap February = %d rows", n)
	}
	if n := len(domain.ReconcileMonth(domain.Month{Year: 2023, Month: time.February}, nil)); n != 28 {
		t.Errorf("non-leap February = %d rows", n)
	}
}

func TestReconcileMonth_KeepsStoredRecords(t *testing.T) {
	m := domain.Month{Year: 2024, Month: time.March}
	stored := []domain.DayRecord{
		{Date: m.Day(20), Comment: ptr("party")},
		{Date: m.Day(3), Weight: ptr(151.4)},
		{Date: m.Day(31), Weight: ptr(149.0), Comment: ptr("end")},
	}

	got := domain.ReconcileMonth(m, stored)

	if got[2].Weight == nil || *got[2].Weight != 151.4 {
		t.Errorf("day 3 = %+v", got[2])
	}
	if got[19].Comment == nil || *got[19].Comment != "party" || got[19].Weight != nil {
		t.Errorf("day 20 = %+v", got[19])
	}
	if got[30].Weight == nil || *got[30].Comment != "end" {
		t.Errorf("day 31 = %+v", got[30])
	}
	if got[0].Weight != nil || got[0].Comment != nil {
		t.Errorf("day 1 should be a placeholder, got %+v", got[0])
	}
}

func TestReconcileMonth_IgnoresOtherMonths(t *testing.T) {
	jan := domain.Month{Year: 2024, Month: time.January}
	stored := []domain.DayRecord{
		// These would all match a naive "2024-1" prefix.
		{Date: domain.NewDate(2024, time.November, 1), Weight: ptr(1.0)},
		{Date: domain.NewDate(2024, time.December, 1), Weight: ptr(2.0)},
		{Date: domain.NewDate(2023, time.January, 1), Weight: ptr(3.0)},
		{Date: domain.NewDate(2024, time.January, 2), Weight: ptr(4.0)},
	}

	got := domain.ReconcileMonth(jan, stored)

	if len(got) != 31 {
		t.Fatalf("len = %d", len(got))
	}
	for i, r := range got {
		if !jan.Contains(r.Date) {
			t.Fatalf("entry %d dated %v is outside %v", i, r.Date, jan)
		}
		if i == 1 {
			if r.Weight == nil || *r.Weight != 4.0 {
				t.Errorf("Jan 2 = %+v", r)
			}
			continue
		}
		if r.Weight != nil {
			t.Errorf("entry %d picked up foreign weight %v", i, *r.Weight)
		}
	}
}

func TestInitialWeight(t *testing.T) {
	m := domain.Month{Year: 2024, Month: time.May}
	if got := domain.InitialWeight(domain.ReconcileMonth(m, nil)); got != 0 {
		t.Errorf("empty month initial = %v; want 0", got)
	}
	days := domain.ReconcileMonth(m, []domain.DayRecord{
		{Date: m.Day(9), Weight: ptr(148.0)},
		{Date: m.Day(4), Weight: ptr(150.0)},
		{Date: m.Day(2), Comment: ptr("no scale")},
	})
	if got := domain.InitialWeight(days); got != 150.0 {
		t.Errorf("initial = %v; want 150", got)
	}
}
