// Package phase maps elapsed fasting hours onto named metabolic phases.
package phase

import (
	"math"
	"time"

	"github.com/helpmefast/fastvault/internal/model"
)

// Phase is one segment of the hour axis. Segments are half-open
// [StartHours, EndHours); the last segment is unbounded.
type Phase struct {
	Name       string
	Color      string
	StartHours float64
	EndHours   float64
}

// Phases partitions [0, inf) into contiguous, non-overlapping segments.
var Phases = []Phase{
	{Name: "Anabolic", Color: "#38B2AC", StartHours: 0, EndHours: 4},
	{Name: "Catabolic", Color: "#ECC94B", StartHours: 4, EndHours: 16},
	{Name: "Fat Burning", Color: "#ED8936", StartHours: 16, EndHours: 24},
	{Name: "Ketosis", Color: "#D53F8C", StartHours: 24, EndHours: math.Inf(1)},
}

// Current returns the phase containing the given elapsed hours. Out-of-table
// values fall back to the last phase.
func Current(hours float64) Phase {
	for _, p := range Phases {
		if hours >= p.StartHours && hours < p.EndHours {
			return p
		}
	}
	return Phases[len(Phases)-1]
}

// Progress reports how far through its current phase the fast is, in [0, 1].
// The unbounded final phase is measured against a 24h window.
func Progress(hours float64) float64 {
	p := Current(hours)
	if math.IsInf(p.EndHours, 1) {
		return math.Min((hours-p.StartHours)/24, 1)
	}
	return math.Min((hours-p.StartHours)/(p.EndHours-p.StartHours), 1)
}

// Boundaries returns the finite non-zero phase starts, used as divider
// markers on a circular progress indicator.
func Boundaries() []float64 {
	var out []float64
	for _, p := range Phases {
		if p.StartHours > 0 {
			out = append(out, p.StartHours)
		}
	}
	return out
}

// InDangerZone reports whether the current wall-clock hour falls inside any
// configured danger zone. Zones are [start, end) hours of the day.
func InDangerZone(now time.Time, zones []model.DangerZone) bool {
	hour := now.Hour()
	for _, z := range zones {
		if hour >= z.Start && hour < z.End {
			return true
		}
	}
	return false
}
