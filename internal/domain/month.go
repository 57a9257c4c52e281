package domain

import (
	"errors"
	"fmt"
	"time"
)

// MonthLayout is the canonical text form of a Month.
const MonthLayout = "2006-01"

// ErrInvalidMonth is returned when a string is not a YYYY-MM month.
var ErrInvalidMonth = errors.New("invalid month")

// Month is the year+month window shown on screen.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d Date) Month {
	return Month{Year: d.Year(), Month: d.Month()}
}

// CurrentMonth returns the month containing today's local date.
func CurrentMonth() Month {
	return MonthOf(Today())
}

// ParseMonth parses a strict YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// Days returns the number of calendar days in m (28–31).
func (m Month) Days() int {
	// Day 0 of the following month is the last day of m.
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Day returns day n (1-based) of m.
func (m Month) Day(n int) Date {
	return NewDate(m.Year, m.Month, n)
}

func (m Month) First() Date { return m.Day(1) }
func (m Month) Last() Date  { return m.Day(m.Days()) }

// Contains reports whether d falls inside m.
func (m Month) Contains(d Date) bool {
	return d.Year() == m.Year && d.Month() == m.Month
}

// Next returns the following calendar month.
func (m Month) Next() Month { return m.add(1) }

// Prev returns the preceding calendar month.
func (m Month) Prev() Month { return m.add(-1) }

func (m Month) add(n int) Month {
	t := time.Date(m.Year, m.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// Title is the human heading for m, e.g. "February 2024".
func (m Month) Title() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// MarshalText implements encoding.TextMarshaler.
func (m Month) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Month) UnmarshalText(b []byte) error {
	p, err := ParseMonth(string(b))
	if err != nil {
		return err
	}
	*m = p
	return nil
}
