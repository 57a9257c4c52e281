package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"weighttrend/internal/domain"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Date
		wantErr bool
	}{
		{"2024-02-29", domain.NewDate(2024, time.February, 29), false},
		{"2023-12-01", domain.NewDate(2023, time.December, 1), false},
		{"2024-1-5", domain.Date{}, true},
		{"2024-01-5", domain.Date{}, true},
		{"2023-02-29", domain.Date{}, true},
		{"2024-13-01", domain.Date{}, true},
		{"", domain.Date{}, true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := domain.ParseDate(tc.in)
			if tc.wantErr {
				if !errors.Is(err, domain.ErrInvalidDate) {
					t.Fatalf("ParseDate(%q) err = %v; want ErrInvalidDate", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseDate(%q) = %v; want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestDateString_ZeroPadded(t *testing.T) {
	d := domain.NewDate(812, time.March, 4)
	if got := d.String(); got != "0812-03-04" {
		t.Errorf("String() = %q", got)
	}
	if got := (domain.Date{}).String(); got != "" {
		t.Errorf("zero String() = %q; want empty", got)
	}
}

func TestNewDate_Normalises(t *testing.T) {
	got := domain.NewDate(2023, time.February, 29)
	if want := domain.NewDate(2023, time.March, 1); got != want {
		t.Errorf("NewDate(2023-02-29) = %v; want %v", got, want)
	}
	if got := domain.NewDate(2024, time.December, 32); got.String() != "2025-01-01" {
		t.Errorf("NewDate across year = %v", got)
	}
}

func TestDateCompare(t *testing.T) {
	a := domain.NewDate(2024, time.January, 31)
	b := domain.NewDate(2024, time.February, 1)
	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Errorf("ordering wrong for %v / %v", a, b)
	}
	if a.Compare(a) != 0 {
		t.Error("date should compare equal to itself")
	}
}

func TestDateJSON(t *testing.T) {
	var v struct {
		D domain.Date `json:"d"`
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-07-09"}`), &v); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"d":"2024-07-09"}` {
		t.Errorf("marshal = %s", b)
	}
	if err := json.Unmarshal([]byte(`{"d":"2024-7-9"}`), &v); err == nil {
		t.Error("expected error for unpadded date")
	}
}
