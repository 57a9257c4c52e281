package memory

import (
	"context"
	"testing"
	"time"

	"weighttrend/internal/domain"
)

func TestDayRepository(t *testing.T) {
	db := New()
	ctx := context.Background()
	m := domain.Month{Year: 2024, Month: time.June}

	w1, w2 := 70.0, 69.5
	note := "new scale"

	// Upsert
	if err := db.UpsertDay(ctx, domain.DayRecord{Date: m.Day(3), Weight: &w1}); err != nil {
		t.Fatalf("UpsertDay: %v", err)
	}
	if err := db.UpsertDay(ctx, domain.DayRecord{Date: m.Day(3), Weight: &w2, Comment: &note}); err != nil {
		t.Fatalf("UpsertDay (replace): %v", err)
	}
	if db.Len() != 1 {
		t.Fatalf("expected 1 stored day, got %d", db.Len())
	}

	// Another month
	_ = db.UpsertDay(ctx, domain.DayRecord{Date: m.Next().Day(1), Weight: &w1})

	days, err := db.ListMonth(ctx, m)
	if err != nil {
		t.Fatalf("ListMonth: %v", err)
	}
	if len(days) != 1 {
		t.Fatalf("expected 1 day in %v, got %d", m, len(days))
	}
	if *days[0].Weight != 69.5 || *days[0].Comment != "new scale" {
		t.Errorf("unexpected record: %+v", days[0])
	}

	// Mutating the caller's value does not leak into the store.
	w2 = 1
	days, _ = db.ListMonth(ctx, m)
	if *days[0].Weight != 69.5 {
		t.Error("stored weight changed through caller pointer")
	}
}

func TestListMonthOrdered(t *testing.T) {
	db := New()
	ctx := context.Background()
	m := domain.Month{Year: 2024, Month: time.February}

	for _, day := range []int{29, 2, 14, 1} {
		w := float64(day)
		_ = db.UpsertDay(ctx, domain.DayRecord{Date: m.Day(day), Weight: &w})
	}

	days, err := db.ListMonth(ctx, m)
	if err != nil {
		t.Fatalf("ListMonth: %v", err)
	}
	want := []int{1, 2, 14, 29}
	if len(days) != len(want) {
		t.Fatalf("got %d days, want %d", len(days), len(want))
	}
	for i, d := range days {
		if d.Date.Day() != want[i] {
			t.Errorf("days[%d] = %v; want day %d", i, d.Date, want[i])
		}
	}
}
