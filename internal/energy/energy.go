// Package energy estimates caloric burn and fat loss from a profile and
// elapsed fasting time. All functions are pure; weights are kg, heights cm.
package energy

import (
	"fmt"
	"math"

	"github.com/helpmefast/fastvault/internal/model"
)

const (
	secondsPerDay = 86400
	// Energy density of body fat, kcal per kg.
	kcalPerKgFat = 7700
)

// activityMultipliers maps activity levels to their TDEE multiplier. This is
// the single source of truth for valid levels.
var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

// BMR computes the basal metabolic rate via Mifflin-St Jeor.
func BMR(p model.Profile) float64 {
	base := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == model.GenderMale {
		return base + 5
	}
	return base - 161
}

// TDEE computes total daily energy expenditure in kcal/day.
func TDEE(p model.Profile) (float64, error) {
	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return 0, fmt.Errorf("unknown activity level %q", p.ActivityLevel)
	}
	return BMR(p) * mult, nil
}

// WeightLossForDuration estimates fat mass burned (kg) over the given fasted
// seconds at the given TDEE. Zero inputs yield zero, never an error.
func WeightLossForDuration(seconds int64, tdee float64) float64 {
	if seconds <= 0 || tdee <= 0 {
		return 0
	}
	kcalPerSecond := tdee / secondsPerDay
	return kcalPerSecond * float64(seconds) / kcalPerKgFat
}

// FatBurnedGrams is WeightLossForDuration expressed in grams.
func FatBurnedGrams(seconds int64, tdee float64) float64 {
	return WeightLossForDuration(seconds, tdee) * 1000
}

// CaloriesBurned estimates kcal burned over the given fasted seconds.
func CaloriesBurned(seconds int64, tdee float64) int {
	if seconds <= 0 || tdee <= 0 {
		return 0
	}
	return int(math.Round(tdee / secondsPerDay * float64(seconds)))
}

// ProjectedWeightLoss estimates fat mass burned (kg) over a full target
// duration in hours.
func ProjectedWeightLoss(targetHours, tdee float64) float64 {
	if targetHours <= 0 {
		return 0
	}
	return WeightLossForDuration(int64(targetHours*3600), tdee)
}

// ProjectedCalories estimates kcal burned over a full target duration.
func ProjectedCalories(targetHours, tdee float64) int {
	if targetHours <= 0 {
		return 0
	}
	return CaloriesBurned(int64(targetHours*3600), tdee)
}
