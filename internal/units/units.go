package units

import (
	"errors"
	"math"
)

// Conversion constants. Volumes are canonically stored in whole milliliters;
// ounces and pounds exist only at the edges for input and display.
const (
	MlPerOz = 29.5735
	LbPerKg = 2.20462
)

const (
	UnitMl = "ml"
	UnitOz = "oz"
	UnitKg = "kg"
	UnitLb = "lb"
)

var (
	// ErrInvalidAmount covers non-finite or non-positive amounts as well as
	// unrecognized unit tokens.
	ErrInvalidAmount = errors.New("amount must be a positive number with unit ml or oz")
)

// VolumeToMl converts a caller-supplied amount to whole milliliters.
// Rounding is half away from zero.
func VolumeToMl(amount float64, unit string) (int, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	switch unit {
	case UnitMl:
		return int(math.Round(amount)), nil
	case UnitOz:
		return int(math.Round(amount * MlPerOz)), nil
	default:
		return 0, ErrInvalidAmount
	}
}

// MlToOz converts milliliters to ounces rounded to one decimal place.
// Display only; stored values are never re-derived from it.
func MlToOz(amountMl int) float64 {
	return math.Round(float64(amountMl)/MlPerOz*10) / 10
}

// WeightToKg converts a caller-supplied weight to kilograms rounded to one
// decimal place.
func WeightToKg(amount float64, unit string) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return 0, ErrInvalidAmount
	}
	switch unit {
	case UnitKg:
		return math.Round(amount*10) / 10, nil
	case UnitLb:
		return math.Round(amount/LbPerKg*10) / 10, nil
	default:
		return 0, ErrInvalidAmount
	}
}

// KgToLb converts kilograms to pounds rounded to one decimal place.
func KgToLb(weightKg float64) float64 {
	return math.Round(weightKg*LbPerKg*10) / 10
}
