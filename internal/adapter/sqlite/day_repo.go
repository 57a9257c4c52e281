package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"weighttrend/internal/domain"
)

var _ domain.DayRepository = (*DB)(nil)

// ListMonth returns the stored days of m. Dates are stored zero-padded, so
// the inclusive text range [first, last] cannot match another month.
func (d *DB) ListMonth(ctx context.Context, m domain.Month) ([]domain.DayRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT date, weight, comment FROM days WHERE date >= ? AND date <= ? ORDER BY date",
		m.First().String(), m.Last().String(),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]domain.DayRecord, 0, m.Days())
	for rows.Next() {
		var (
			date    string
			weight  sql.NullFloat64
			comment sql.NullString
		)
		if err := rows.Scan(&date, &weight, &comment); err != nil {
			return nil, err
		}
		day, err := domain.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("scan day: %w", err)
		}
		rec := domain.DayRecord{Date: day}
		if weight.Valid {
			w := weight.Float64
			rec.Weight = &w
		}
		if comment.Valid {
			c := comment.String
			rec.Comment = &c
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpsertDay inserts rec or replaces the row for rec.Date.
func (d *DB) UpsertDay(ctx context.Context, rec domain.DayRecord) error {
	var weight, comment any
	if rec.Weight != nil {
		weight = *rec.Weight
	}
	if rec.Comment != nil {
		comment = *rec.Comment
	}
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO days(date, weight, comment, updated_at)
		VALUES(?, ?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT(date) DO UPDATE SET
			weight = excluded.weight,
			comment = excluded.comment,
			updated_at = excluded.updated_at`,
		rec.Date.String(), weight, comment,
	)
	return err
}

// CountDays returns the number of stored rows.
func (d *DB) CountDays(ctx context.Context) (int, error) {
	var n int
	err := d.sql.QueryRowContext(ctx, "SELECT COUNT(1) FROM days").Scan(&n)
	return n, err
}
