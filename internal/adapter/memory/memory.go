// Package memory implements an in-memory repository for development and testing.
package memory

import (
	"context"
	"slices"
	"sync"

	"weighttrend/internal/domain"
)

// DB implements an in-memory database storage.
type DB struct {
	mu   sync.Mutex
	days map[domain.Date]domain.DayRecord
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{days: make(map[domain.Date]domain.DayRecord)}
}

// Ensure interfaces are met.
var _ domain.DayRepository = (*DB)(nil)

// ListMonth returns the stored records dated inside m, oldest first.
func (db *DB) ListMonth(ctx context.Context, m domain.Month) ([]domain.DayRecord, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.DayRecord
	for d, rec := range db.days {
		if m.Contains(d) {
			out = append(out, copyRecord(rec))
		}
	}
	slices.SortFunc(out, func(a, b domain.DayRecord) int { return a.Date.Compare(b.Date) })
	return out, nil
}

// UpsertDay stores rec, replacing any record for the same date.
func (db *DB) UpsertDay(ctx context.Context, rec domain.DayRecord) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.days[rec.Date] = copyRecord(rec)
	return nil
}

// Len returns the number of stored days.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.days)
}

// Close is a no-op so DB can stand in for the SQL stores.
func (db *DB) Close() error { return nil }

// copy so callers can't mutate stored values through the pointers
func copyRecord(r domain.DayRecord) domain.DayRecord {
	out := domain.DayRecord{Date: r.Date}
	if r.Weight != nil {
		w := *r.Weight
		out.Weight = &w
	}
	if r.Comment != nil {
		c := *r.Comment
		out.Comment = &c
	}
	return out
}
