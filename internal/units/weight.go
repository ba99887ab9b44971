// Package units converts between mass units for display. All internal
// computation is kg-based; the configured unit only affects formatting.
package units

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/helpmefast/fastvault/internal/model"
)

const lbsPerKg = 2.20462

func KgToLbs(kg float64) float64 {
	return kg * lbsPerKg
}

func LbsToKg(lbs float64) float64 {
	return lbs / lbsPerKg
}

// FormatWeight renders a kg value in the given display unit with one decimal.
func FormatWeight(kg float64, unit model.WeightUnit) string {
	if unit == model.WeightUnitLbs {
		return fmt.Sprintf("%.1f", KgToLbs(kg))
	}
	return fmt.Sprintf("%.1f", kg)
}

// ParseWeight parses a user-supplied weight in the given unit and returns kg.
// Unparsable or non-positive values are rejected.
func ParseWeight(value string, unit model.WeightUnit) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid weight %q", value)
	}
	return ToKg(v, unit)
}

// ToKg converts a weight value from the given unit to kg. The value must be
// strictly positive.
func ToKg(value float64, unit model.WeightUnit) (float64, error) {
	if value <= 0 {
		return 0, fmt.Errorf("weight must be > 0")
	}
	switch unit {
	case "", model.WeightUnitKg:
		return value, nil
	case model.WeightUnitLbs:
		return LbsToKg(value), nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lbs)", unit)
	}
}

// FromKg converts a kg value to the given display unit.
func FromKg(kg float64, unit model.WeightUnit) (float64, error) {
	switch unit {
	case "", model.WeightUnitKg:
		return kg, nil
	case model.WeightUnitLbs:
		return KgToLbs(kg), nil
	default:
		return 0, fmt.Errorf("invalid weight unit %q (use kg or lbs)", unit)
	}
}
