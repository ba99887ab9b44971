package model

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type WeightUnit string

const (
	WeightUnitKg  WeightUnit = "kg"
	WeightUnitLbs WeightUnit = "lbs"
)

// DangerZone is a wall-clock hour range [Start, End) during which the user
// tends to break fasts (e.g. evening cravings).
type DangerZone struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Config is the per-vault configuration document.
type Config struct {
	VaultPath     string       `json:"vaultPath"`
	Theme         string       `json:"theme"`
	Notifications bool         `json:"notifications"`
	DangerZones   []DangerZone `json:"dangerZones"`
	WeightUnit    WeightUnit   `json:"weightUnit"`
}

// Profile holds the user's physiological parameters. TMB is the total daily
// energy expenditure derived from the other fields; it is cached in the
// document but always recomputed on save.
type Profile struct {
	Name          string        `json:"name,omitempty"`
	Avatar        string        `json:"avatar,omitempty"`
	Weight        float64       `json:"weight"`
	Height        float64       `json:"height"`
	TMB           float64       `json:"tmb"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	ActivityLevel ActivityLevel `json:"activityLevel"`
}

// FastEntry is a completed fast. Duration and WeightLoss are computed once at
// end-of-fast time and never recomputed, even if the profile later changes.
type FastEntry struct {
	ID         string    `json:"id"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
	Duration   int64     `json:"duration"`
	WeightLoss float64   `json:"weightLoss"`
}

// ProgressEntry is a dated weight/photo/note snapshot independent of any fast.
// CreatedAt orders same-day entries; entries without it sort as earliest.
type ProgressEntry struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	Weight    *float64   `json:"weight,omitempty"`
	PhotoPath string     `json:"photoPath,omitempty"`
	Note      string     `json:"note,omitempty"`
}

// History is the vault's ledger document.
type History struct {
	Fasts           []FastEntry     `json:"fasts"`
	ProgressEntries []ProgressEntry `json:"progressEntries"`
}

func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

func ValidActivityLevel(l ActivityLevel) bool {
	switch l {
	case ActivitySedentary, ActivityLight, ActivityModerate, ActivityActive, ActivityVeryActive:
		return true
	}
	return false
}

func ValidWeightUnit(u WeightUnit) bool {
	return u == WeightUnitKg || u == WeightUnitLbs
}
