// Package tips selects educational tips and motivational messages for the
// current point of a fast. Selection is deterministic in its inputs so the
// UI can poll it without its own state.
package tips

const defaultIntervalMinutes = 2

// Relevant filters the catalog to tips applicable at the given fasted hours.
func Relevant(currentHours float64) []Tip {
	var out []Tip
	for _, t := range Catalog {
		if currentHours >= t.MinHours && currentHours <= t.MaxHours {
			out = append(out, t)
		}
	}
	return out
}

// Rotating picks one relevant tip, advancing one position every
// intervalMinutes of elapsed time. Returns false when no tip applies.
func Rotating(currentHours float64, elapsedSeconds int64, intervalMinutes int) (Tip, bool) {
	relevant := Relevant(currentHours)
	if len(relevant) == 0 {
		return Tip{}, false
	}
	if intervalMinutes <= 0 {
		intervalMinutes = defaultIntervalMinutes
	}
	cycle := elapsedSeconds / int64(intervalMinutes*60)
	return relevant[int(cycle%int64(len(relevant)))], true
}
