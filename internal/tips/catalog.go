package tips

import "math"

// Category groups tips by topic for display filtering and coloring.
type Category string

const (
	CategoryElectrolytes Category = "electrolytes"
	CategoryHydration    Category = "hydration"
	CategoryActivity     Category = "activity"
	CategoryScience      Category = "science"
	CategoryMental       Category = "mental"
	CategorySafety       Category = "safety"
	CategoryBreaking     Category = "breaking"
	CategoryMotivation   Category = "motivation"
)

// Tip is a static catalog entry relevant between MinHours and MaxHours of a
// fast (inclusive bounds; MaxHours may be unbounded).
type Tip struct {
	ID       string
	Text     string
	Category Category
	MinHours float64
	MaxHours float64
	Source   string
}

// CategoryMeta carries display metadata per category.
var CategoryMeta = map[Category]struct {
	Label string
	Color string
}{
	CategoryElectrolytes: {Label: "Electrolytes", Color: "#ECC94B"},
	CategoryHydration:    {Label: "Hydration", Color: "#38B2AC"},
	CategoryActivity:     {Label: "Activity", Color: "#ED8936"},
	CategoryScience:      {Label: "Science", Color: "#805AD5"},
	CategoryMental:       {Label: "Mental", Color: "#3182CE"},
	CategorySafety:       {Label: "Safety", Color: "#E53E3E"},
	CategoryBreaking:     {Label: "Refeeding", Color: "#DD6B20"},
	CategoryMotivation:   {Label: "Motivation", Color: "#D53F8C"},
}

var always = math.Inf(1)

// Catalog is the full tip reference set, ordered by category.
var Catalog = []Tip{
	{ID: "elec-01", Text: "Electrolytes are non-negotiable during extended fasts. Sodium, potassium, and magnesium prevent cramps, headaches, and fatigue.", Category: CategoryElectrolytes, MinHours: 0, MaxHours: always},
	{ID: "elec-02", Text: "Feeling dizzy or lightheaded? That's almost always low sodium, not hunger. A pinch of salt under your tongue gives immediate relief.", Category: CategoryElectrolytes, MinHours: 4, MaxHours: always},
	{ID: "elec-03", Text: "Your kidneys flush sodium faster during fasting because insulin is low. You need 2-3x more sodium than normal.", Category: CategoryElectrolytes, MinHours: 8, MaxHours: always, Source: "Dr. Jason Fung, The Complete Guide to Fasting"},
	{ID: "elec-04", Text: "Magnesium is the calm mineral. Low magnesium causes anxiety, insomnia, and muscle twitching during fasts.", Category: CategoryElectrolytes, MinHours: 12, MaxHours: always},
	{ID: "elec-05", Text: "The keto flu during fasting is not inevitable. Proper electrolyte supplementation eliminates headaches, brain fog, and nausea.", Category: CategoryElectrolytes, MinHours: 16, MaxHours: always},
	{ID: "elec-06", Text: "For fasts over 48h, electrolytes become critical as your body's reserves deplete. Supplement consistently.", Category: CategoryElectrolytes, MinHours: 36, MaxHours: always},

	{ID: "hydr-01", Text: "Aim for 2-3 liters of water daily while fasting. Much of your usual water intake normally comes from food.", Category: CategoryHydration, MinHours: 0, MaxHours: always},
	{ID: "hydr-02", Text: "Black coffee and plain tea are fasting-safe and can blunt hunger. Skip the cream and sweeteners.", Category: CategoryHydration, MinHours: 0, MaxHours: always},
	{ID: "hydr-03", Text: "Sparkling water is a great tool: the carbonation creates a feeling of fullness that calms hunger waves.", Category: CategoryHydration, MinHours: 4, MaxHours: always},
	{ID: "hydr-04", Text: "Thirst is often disguised as hunger. When a craving hits, drink a glass of water first and wait ten minutes.", Category: CategoryHydration, MinHours: 0, MaxHours: 24},

	{ID: "actv-01", Text: "Light walking after hour 12 accelerates glycogen depletion and speeds up the switch to fat burning.", Category: CategoryActivity, MinHours: 12, MaxHours: always},
	{ID: "actv-02", Text: "Zone-2 cardio pairs well with fasting: low intensity runs almost entirely on fat once glycogen is low.", Category: CategoryActivity, MinHours: 16, MaxHours: always},
	{ID: "actv-03", Text: "Avoid maximal-effort training past 24h fasted. Strength work is fine; new personal records can wait.", Category: CategoryActivity, MinHours: 24, MaxHours: always},

	{ID: "sci-01", Text: "After about 4 hours, insulin starts falling and your body begins tapping stored glycogen.", Category: CategoryScience, MinHours: 4, MaxHours: 16},
	{ID: "sci-02", Text: "Around hour 12, liver glycogen runs low and fat oxidation ramps up significantly.", Category: CategoryScience, MinHours: 12, MaxHours: 24},
	{ID: "sci-03", Text: "Autophagy, the cellular cleanup process, measurably increases around 16-18 hours fasted.", Category: CategoryScience, MinHours: 16, MaxHours: always, Source: "PubMed"},
	{ID: "sci-04", Text: "By 24 hours most people are in mild ketosis: the liver converts fat into ketones that fuel the brain.", Category: CategoryScience, MinHours: 24, MaxHours: always},
	{ID: "sci-05", Text: "Growth hormone rises markedly during multi-day fasts, protecting muscle while fat is burned.", Category: CategoryScience, MinHours: 48, MaxHours: always, Source: "PubMed"},

	{ID: "ment-01", Text: "Hunger comes in waves that pass in 15-20 minutes. Ride the wave instead of fighting it.", Category: CategoryMental, MinHours: 0, MaxHours: always},
	{ID: "ment-02", Text: "Keep busy. Hunger is loudest when you are bored; a walk or a task quiets it fast.", Category: CategoryMental, MinHours: 4, MaxHours: always},
	{ID: "ment-03", Text: "Many fasters report peak mental clarity between hours 18 and 48. Use it for your hardest work.", Category: CategoryMental, MinHours: 18, MaxHours: always},

	{ID: "safe-01", Text: "Break your fast immediately if you feel faint, confused, or your heart races. No fast is worth an emergency.", Category: CategorySafety, MinHours: 0, MaxHours: always},
	{ID: "safe-02", Text: "Fasting is not appropriate while pregnant, underweight, or on insulin without medical supervision.", Category: CategorySafety, MinHours: 0, MaxHours: always},
	{ID: "safe-03", Text: "Past 72h, consider medical supervision. Refeeding risk grows with fast length.", Category: CategorySafety, MinHours: 72, MaxHours: always},

	{ID: "brk-01", Text: "Plan how you'll break the fast before hunger decides for you: something small, protein-forward, easy to digest.", Category: CategoryBreaking, MinHours: 12, MaxHours: always},
	{ID: "brk-02", Text: "After 24h+, break gently: bone broth or eggs first, wait 30-60 minutes, then a normal meal.", Category: CategoryBreaking, MinHours: 24, MaxHours: always},
	{ID: "brk-03", Text: "Avoid large carb loads right after a long fast; they spike insulin hard and can cause discomfort.", Category: CategoryBreaking, MinHours: 36, MaxHours: always},

	{ID: "motv-01", Text: "You chose to be here. Remember your why, whether it's health, clarity, or discipline, and hold it close.", Category: CategoryMotivation, MinHours: 0, MaxHours: always},
	{ID: "motv-02", Text: "Every hour fasted is an hour of low insulin. The scale may not move today, but the metabolism is.", Category: CategoryMotivation, MinHours: 8, MaxHours: always},
	{ID: "motv-03", Text: "The first 16 hours are the hardest. After that, ketones rise and hunger genuinely quiets down.", Category: CategoryMotivation, MinHours: 10, MaxHours: 20},
	{ID: "motv-04", Text: "You are past the point most people quit. Fat burning is now doing the work for you.", Category: CategoryMotivation, MinHours: 20, MaxHours: always},
}
