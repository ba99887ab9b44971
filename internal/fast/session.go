// Package fast models the lifecycle of a single fast as a pure state
// machine. A Session is either idle or active; transitions return new values
// and never touch a clock or storage themselves, which keeps them trivially
// testable. Persistence of the descriptor is the caller's concern.
package fast

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	ErrAlreadyActive = errors.New("a fast is already active")
	ErrNotActive     = errors.New("no active fast")
)

// Session is the persisted active-fast descriptor. Active implies StartTime
// and TargetHours are set; the zero value is the idle state.
type Session struct {
	Active      bool      `json:"isActive"`
	StartTime   time.Time `json:"startTime"`
	TargetHours float64   `json:"targetHours"`
}

// Summary captures the frozen facts of a finished fast.
type Summary struct {
	StartTime       time.Time
	EndTime         time.Time
	DurationSeconds int64
}

// Start begins a fast at now with the given goal duration. Valid only from
// the idle state.
func (s Session) Start(now time.Time, targetHours float64) (Session, error) {
	if s.Active {
		return s, ErrAlreadyActive
	}
	if targetHours <= 0 {
		return s, fmt.Errorf("target hours must be > 0")
	}
	return Session{Active: true, StartTime: now, TargetHours: targetHours}, nil
}

// End finishes the fast at now, returning the idle session and a summary.
// Duration is whole seconds, never negative.
func (s Session) End(now time.Time) (Session, Summary, error) {
	if !s.Active {
		return s, Summary{}, ErrNotActive
	}
	duration := int64(now.Sub(s.StartTime) / time.Second)
	if duration < 0 {
		duration = 0
	}
	return Session{}, Summary{StartTime: s.StartTime, EndTime: now, DurationSeconds: duration}, nil
}

// ElapsedSeconds is the whole seconds since the fast started, clamped to >= 0.
func (s Session) ElapsedSeconds(now time.Time) int64 {
	if !s.Active {
		return 0
	}
	elapsed := int64(now.Sub(s.StartTime) / time.Second)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ElapsedHours is the fractional hours since the fast started.
func (s Session) ElapsedHours(now time.Time) float64 {
	return float64(s.ElapsedSeconds(now)) / 3600
}

// RemainingSeconds counts down to the goal, clamped to >= 0.
func (s Session) RemainingSeconds(now time.Time) int64 {
	if !s.Active {
		return 0
	}
	remaining := int64(s.TargetHours*3600) - s.ElapsedSeconds(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Progress is elapsed time over the goal duration, in [0, 1]. Zero when no
// goal is set.
func (s Session) Progress(now time.Time) float64 {
	if !s.Active || s.TargetHours <= 0 {
		return 0
	}
	return math.Min(float64(s.ElapsedSeconds(now))/(s.TargetHours*3600), 1)
}

// Normalize repairs a descriptor read from untrusted storage: a session
// marked active without a start time or a positive goal collapses to idle.
func (s Session) Normalize() Session {
	if !s.Active || s.StartTime.IsZero() || s.TargetHours <= 0 {
		return Session{}
	}
	return s
}
