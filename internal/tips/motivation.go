package tips

// Message is a motivational milestone shown from Hours fasted onward.
type Message struct {
	Hours float64
	Text  string
	Phase string
}

// Messages is ordered by ascending hour threshold.
var Messages = []Message{
	{Hours: 0, Text: "Digestion Phase: Enjoy the energy from your last meal.", Phase: "Anabolic"},
	{Hours: 4, Text: "Insulin Normalizing: Your body is preparing for metabolic transition.", Phase: "Catabolic"},
	{Hours: 8, Text: "Glycogen in Use: Energy reserves being mobilized.", Phase: "Catabolic"},
	{Hours: 12, Text: "Low Insulin: The door to fat burning has opened.", Phase: "Catabolic"},
	{Hours: 16, Text: "Peak Focus: BDNF increasing.", Phase: "Fat Burning"},
	{Hours: 18, Text: "Autophagy Activated: Cellular cleanup in progress.", Phase: "Fat Burning"},
	{Hours: 20, Text: "Intensified Fat Burning: Metabolism optimized.", Phase: "Fat Burning"},
	{Hours: 24, Text: "Ketosis Established: Maximum fat burning efficiency.", Phase: "Ketosis"},
	{Hours: 36, Text: "Deep Autophagy: Cellular regeneration at peak.", Phase: "Ketosis"},
	{Hours: 48, Text: "Elevated Growth Hormone: Accelerated recovery and repair.", Phase: "Ketosis"},
	{Hours: 72, Text: "Advanced Fasting State: Metabolic benefits maximized.", Phase: "Ketosis"},
	{Hours: 96, Text: "Mental Resilience: Clarity and focus at elevated levels.", Phase: "Ketosis"},
	{Hours: 120, Text: "Prolonged Fast: Complete metabolic transformation.", Phase: "Ketosis"},
}

// MessageFor returns the highest-threshold message whose hours do not exceed
// hoursFasted, defaulting to the first entry.
func MessageFor(hoursFasted float64) Message {
	selected := Messages[0]
	for i := len(Messages) - 1; i >= 0; i-- {
		if hoursFasted >= Messages[i].Hours {
			selected = Messages[i]
			break
		}
	}
	return selected
}
