package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"weighttrend/internal/domain"
)

var _ domain.DayRepository = (*DB)(nil)

// ListMonth returns the stored days of m. Dates are zero-padded text, so a
// lexical range between the first and last day selects exactly one month.
func (d *DB) ListMonth(ctx context.Context, m domain.Month) ([]domain.DayRecord, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT date, weight, comment FROM days WHERE date >= $1 AND date <= $2 ORDER BY date;",
		m.First().String(), m.Last().String(),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

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
		rec, err := toRecord(date, weight, comment)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// UpsertDay inserts rec or replaces the row for rec.Date.
func (d *DB) UpsertDay(ctx context.Context, rec domain.DayRecord) error {
	_, err := d.sql.ExecContext(ctx,
		`INSERT INTO days(date, weight, comment, updated_at) VALUES($1, $2, $3, now())
		ON CONFLICT (date) DO UPDATE SET weight = EXCLUDED.weight, comment = EXCLUDED.comment, updated_at = EXCLUDED.updated_at;`,
		rec.Date.String(), nullFloat(rec.Weight), nullString(rec.Comment),
	)
	return err
}

func toRecord(date string, weight sql.NullFloat64, comment sql.NullString) (domain.DayRecord, error) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return domain.DayRecord{}, fmt.Errorf("scan day: %w", err)
	}
	rec := domain.DayRecord{Date: d}
	if weight.Valid {
		w := weight.Float64
		rec.Weight = &w
	}
	if comment.Valid {
		c := comment.String
		rec.Comment = &c
	}
	return rec, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}
