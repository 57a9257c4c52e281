package domain_test

import (
	"errors"
	"testing"
	"time"

	"weighttrend/internal/domain"
)

func TestMonthDays(t *testing.T) {
	tests := []struct {
		m    domain.Month
		want int
	}{
		{domain.Month{Year: 2024, Month: time.February}, 29},
		{domain.Month{Year: 2023, Month: time.February}, 28},
		{domain.Month{Year: 2000, Month: time.February}, 29},
		{domain.Month{Year: 1900, Month: time.February}, 28},
		{domain.Month{Year: 2024, Month: time.April}, 30},
		{domain.Month{Year: 2024, Month: time.December}, 31},
	}
	for _, tc := range tests {
		if got := tc.m.Days(); got != tc.want {
			t.Errorf("%v.Days() = %d; want %d", tc.m, got, tc.want)
		}
	}
}

func TestMonthNavigation(t *testing.T) {
	dec := domain.Month{Year: 2024, Month: time.December}
	if got := dec.Next(); got != (domain.Month{Year: 2025, Month: time.January}) {
		t.Errorf("Next() = %v", got)
	}
	jan := domain.Month{Year: 2024, Month: time.January}
	if got := jan.Prev(); got != (domain.Month{Year: 2023, Month: time.December}) {
		t.Errorf("Prev() = %v", got)
	}
	// Stepping from a 31-day month never skips the following short month.
	if got := (domain.Month{Year: 2024, Month: time.January}).Next(); got.Month != time.February {
		t.Errorf("Jan.Next() = %v", got)
	}
}

func TestMonthBounds(t *testing.T) {
	m := domain.Month{Year: 2024, Month: time.February}
	if got := m.First().String(); got != "2024-02-01" {
		t.Errorf("First() = %s", got)
	}
	if got := m.Last().String(); got != "2024-02-29" {
		t.Errorf("Last() = %s", got)
	}
	if !m.Contains(domain.NewDate(2024, time.February, 15)) {
		t.Error("expected Contains for mid-month date")
	}
	if m.Contains(domain.NewDate(2024, time.March, 1)) || m.Contains(domain.NewDate(2023, time.February, 1)) {
		t.Error("Contains should reject other months")
	}
}

func TestParseMonth(t *testing.T) {
	m, err := domain.ParseMonth("2024-01")
	if err != nil {
		t.Fatalf("ParseMonth: %v", err)
	}
	if m.String() != "2024-01" || m.Title() != "January 2024" {
		t.Errorf("got %s / %s", m, m.Title())
	}
	for _, bad := range []string{"2024-1", "2024-13", "24-01", "2024-01-01"} {
		if _, err := domain.ParseMonth(bad); !errors.Is(err, domain.ErrInvalidMonth) {
			t.Errorf("ParseMonth(%q) err = %v; want ErrInvalidMonth", bad, err)
		}
	}
}
