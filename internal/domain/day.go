// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"math"
)

// DayRecord is one calendar day's weight and comment. Weight and Comment are
// nil when nothing has been recorded.
type DayRecord struct {
	Date    Date     `json:"date"`
	Weight  *float64 `json:"weight"`
	Comment *string  `json:"comment"`
}

// HasWeight reports whether r carries a usable weight measurement.
func (r DayRecord) HasWeight() bool {
	return r.Weight != nil && !math.IsNaN(*r.Weight) && !math.IsInf(*r.Weight, 0)
}

// DayRepository is the port for day persistence. Implementations hold at most
// one record per date.
type DayRepository interface {
	// ListMonth returns the stored records whose date falls inside m, in no
	// particular order.
	ListMonth(ctx context.Context, m Month) ([]DayRecord, error)
	// UpsertDay inserts rec or replaces the record already stored for
	// rec.Date.
	UpsertDay(ctx context.Context, rec DayRecord) error
}
