package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"weighttrend/internal/domain"
)

// ErrInvalidWeight is returned by SaveDay when a weight is present but not a
// positive finite number.
var ErrInvalidWeight = errors.New("weight must be a positive number")

// MonthService encapsulates the month grid use cases.
type MonthService struct {
	repo domain.DayRepository
	unit string
	log  *slog.Logger
}

// NewMonthService creates a MonthService backed by the given repository.
// unit is the label of the stored weights ("kg" or "lb").
func NewMonthService(repo domain.DayRepository, unit string, logger *slog.Logger) *MonthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &MonthService{repo: repo, unit: unit, log: logger.With("component", "month_service")}
}

// Unit returns the unit weights are stored in.
func (s *MonthService) Unit() string { return s.unit }

// DayView is one reconciled row of the grid.
type DayView struct {
	domain.DayRecord
	Label string       `json:"label"`
	Trend domain.Trend `json:"trend"`
}

// MonthView is the complete grid for one month.
type MonthView struct {
	Month         domain.Month `json:"month"`
	Title         string       `json:"title"`
	Unit          string       `json:"unit"`
	InitialWeight float64      `json:"initialWeight"`
	Days          []DayView    `json:"days"`
}

// LoadMonth fetches the stored days of m, fills the gaps and computes the
// trend boxes for every day.
func (s *MonthService) LoadMonth(ctx context.Context, m domain.Month) (*MonthView, error) {
	stored, err := s.repo.ListMonth(ctx, m)
	if err != nil {
		s.log.ErrorContext(ctx, "load month failed", "month", m.String(), "error", err)
		return nil, fmt.Errorf("load month %s: %w", m, err)
	}

	days := domain.ReconcileMonth(m, stored)
	initial := domain.InitialWeight(days)

	view := &MonthView{
		Month:         m,
		Title:         m.Title(),
		Unit:          s.unit,
		InitialWeight: initial,
		Days:          make([]DayView, 0, len(days)),
	}
	for _, d := range days {
		view.Days = append(view.Days, DayView{
			DayRecord: d,
			Label:     domain.DayOrdinal(d.Date.Day()),
			Trend:     domain.ComputeTrend(initial, d),
		})
	}
	return view, nil
}

// Day returns the stored record for date, or an empty placeholder when
// nothing has been recorded yet.
func (s *MonthService) Day(ctx context.Context, date domain.Date) (domain.DayRecord, error) {
	if date.IsZero() {
		return domain.DayRecord{}, domain.ErrInvalidDate
	}
	m := domain.MonthOf(date)
	stored, err := s.repo.ListMonth(ctx, m)
	if err != nil {
		return domain.DayRecord{}, fmt.Errorf("load day %s: %w", date, err)
	}
	return domain.ReconcileMonth(m, stored)[date.Day()-1], nil
}

// SaveDay validates and stores the weight and comment for date, replacing
// whatever was stored for that date before.
func (s *MonthService) SaveDay(ctx context.Context, date domain.Date, weight *float64, comment *string) (domain.DayRecord, error) {
	if date.IsZero() {
		return domain.DayRecord{}, domain.ErrInvalidDate
	}
	if weight != nil && (math.IsNaN(*weight) || math.IsInf(*weight, 0) || *weight <= 0) {
		return domain.DayRecord{}, ErrInvalidWeight
	}

	rec := domain.DayRecord{Date: date, Weight: weight, Comment: normalizeComment(comment)}
	if err := s.repo.UpsertDay(ctx, rec); err != nil {
		s.log.ErrorContext(ctx, "save day failed", "date", date.String(), "error", err)
		return domain.DayRecord{}, fmt.Errorf("save day %s: %w", date, err)
	}

	s.log.InfoContext(ctx, "day saved", "date", date.String(), "has_weight", rec.Weight != nil, "has_comment", rec.Comment != nil)
	return rec, nil
}

func normalizeComment(c *string) *string {
	if c == nil {
		return nil
	}
	t := strings.TrimSpace(*c)
	if t == "" {
		return nil
	}
	return &t
}
