package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/helpmefast/fastvault/internal/energy"
	"github.com/helpmefast/fastvault/internal/fast"
	"github.com/helpmefast/fastvault/internal/model"
	"github.com/helpmefast/fastvault/internal/phase"
	"github.com/helpmefast/fastvault/internal/tips"
	"github.com/helpmefast/fastvault/internal/vault"
)

// ActiveFast restores the session descriptor from the vault. This is the
// sole recovery mechanism after a restart: an absent or corrupt-but-parsable
// descriptor reads as idle, a persisted active descriptor re-enters the
// active state with its stored start time and goal.
func ActiveFast(s vault.Store) (fast.Session, error) {
	return loadSession(s)
}

// StartFast begins a fast at now with the given goal and persists the
// descriptor so it survives restarts. Rejected with fast.ErrAlreadyActive
// when a session is already running.
func StartFast(s vault.Store, targetHours float64, now time.Time) (fast.Session, error) {
	cur, err := loadSession(s)
	if err != nil {
		return fast.Session{}, err
	}
	next, err := cur.Start(now, targetHours)
	if err != nil {
		return cur, err
	}
	if err := saveSession(s, next); err != nil {
		return cur, err
	}
	return next, nil
}

// EndFast finishes the active fast at now, freezing its duration and the
// estimated weight loss (computed from the profile's TDEE as of now) into a
// history entry. The entry is appended and persisted before the descriptor
// is cleared. Rejected with fast.ErrNotActive when idle.
func EndFast(s vault.Store, now time.Time) (model.FastEntry, error) {
	cur, err := loadSession(s)
	if err != nil {
		return model.FastEntry{}, err
	}
	next, sum, err := cur.End(now)
	if err != nil {
		return model.FastEntry{}, err
	}

	profile, err := loadProfile(s)
	if err != nil {
		return model.FastEntry{}, err
	}

	entry := model.FastEntry{
		ID:         uuid.NewString(),
		StartTime:  sum.StartTime,
		EndTime:    sum.EndTime,
		Duration:   sum.DurationSeconds,
		WeightLoss: energy.WeightLossForDuration(sum.DurationSeconds, profile.TMB),
	}

	history, err := loadHistory(s)
	if err != nil {
		return model.FastEntry{}, err
	}
	history.Fasts = append(history.Fasts, entry)
	if err := saveHistory(s, history); err != nil {
		return model.FastEntry{}, err
	}
	if err := saveSession(s, next); err != nil {
		return model.FastEntry{}, err
	}
	return entry, nil
}

// Status is a derived snapshot of the current fast at one clock instant.
// Nothing in it is persisted; every field recomputes from the descriptor,
// the profile and the wall clock.
type Status struct {
	Active           bool
	StartTime        time.Time
	TargetHours      float64
	ElapsedSeconds   int64
	RemainingSeconds int64
	Progress         float64

	Phase         phase.Phase
	PhaseProgress float64

	CaloriesBurned      int
	FatBurnedGrams      float64
	WeightLoss          float64
	ProjectedWeightLoss float64
	ProjectedCalories   int

	Message      tips.Message
	Tip          *tips.Tip
	InDangerZone bool
}

// FastStatus assembles the full derived view of the current fast.
func FastStatus(s vault.Store, now time.Time) (Status, error) {
	sess, err := loadSession(s)
	if err != nil {
		return Status{}, err
	}
	profile, err := loadProfile(s)
	if err != nil {
		return Status{}, err
	}
	cfg, err := loadConfig(s)
	if err != nil {
		return Status{}, err
	}

	elapsed := sess.ElapsedSeconds(now)
	hours := sess.ElapsedHours(now)

	st := Status{
		Active:           sess.Active,
		StartTime:        sess.StartTime,
		TargetHours:      sess.TargetHours,
		ElapsedSeconds:   elapsed,
		RemainingSeconds: sess.RemainingSeconds(now),
		Progress:         sess.Progress(now),

		Phase:         phase.Current(hours),
		PhaseProgress: phase.Progress(hours),

		CaloriesBurned:      energy.CaloriesBurned(elapsed, profile.TMB),
		FatBurnedGrams:      energy.FatBurnedGrams(elapsed, profile.TMB),
		WeightLoss:          energy.WeightLossForDuration(elapsed, profile.TMB),
		ProjectedWeightLoss: energy.ProjectedWeightLoss(sess.TargetHours, profile.TMB),
		ProjectedCalories:   energy.ProjectedCalories(sess.TargetHours, profile.TMB),

		Message:      tips.MessageFor(hours),
		InDangerZone: phase.InDangerZone(now, cfg.DangerZones),
	}
	if tip, ok := tips.Rotating(hours, elapsed, 0); ok {
		st.Tip = &tip
	}
	return st, nil
}
