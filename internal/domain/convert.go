package domain

import "fmt"

const kgToLb = 2.2046226218

// Weight units understood by ConvertWeight.
const (
	UnitKg = "kg"
	UnitLb = "lb"
)

// ValidUnit returns an error unless u is "kg" or "lb".
func ValidUnit(u string) error {
	if u != UnitKg && u != UnitLb {
		return fmt.Errorf("unit must be %q or %q, got %q", UnitKg, UnitLb, u)
	}
	return nil
}

// ConvertWeight converts a weight value between "kg" and "lb".
// Returns v unchanged if from == to or if the units are unrecognised.
func ConvertWeight(v float64, from, to string) float64 {
	if from == to {
		return v
	}
	if from == UnitKg && to == UnitLb {
		return v * kgToLb
	}
	if from == UnitLb && to == UnitKg {
		return v / kgToLb
	}
	return v
}
