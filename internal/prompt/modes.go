package prompt

// Mode selects the coaching style for a single exchange.
type Mode string

const (
	ModeCoach    Mode = "coach"
	ModeDrill    Mode = "drill"
	ModeRebuttal Mode = "rebuttal"
	ModeCX       Mode = "cx"
	ModeFlow     Mode = "flow"
	ModeEnvision Mode = "envision"
)

// DefaultMode is what unknown or absent mode tags coerce to.
const DefaultMode = ModeCoach

// ModeSpec is the per-mode contract: the task instruction sent to the model,
// the required output section headings in order, and the output token budget.
type ModeSpec struct {
	Task            string
	Sections        []string
	MaxOutputTokens int32
}

// standardSections is the fixed four-part report every non-envision mode must
// emit, in this exact order.
var standardSections = []string{
	"SCORECARD",
	"KEY ISSUES",
	"FIX PLAN",
	"DRILLS",
}

// envisionSections is the full round-simulation skeleton.
var envisionSections = []string{
	"INTAKE CHECK",
	"TERRAIN SETUP",
	"OPPONENT FORECAST",
	"ROUND WALKTHROUGH",
	"ENDGAME PACKAGE",
	"TRAINING ASSIGNMENTS",
	"JUDGE ADAPTATION",
}

var registry = map[Mode]ModeSpec{
	ModeCoach: {
		Task:            "Coach mode: Identify the 3 highest-impact issues, what matters most to win, and a prioritized fix plan.",
		Sections:        standardSections,
		MaxOutputTokens: 1024,
	},
	ModeDrill: {
		Task:            "Drill mode: Create 3-5 timed drills (10-15 min each) with scoring rubrics and what 'excellent' looks like.",
		Sections:        standardSections,
		MaxOutputTokens: 1024,
	},
	ModeRebuttal: {
		Task:            "Rebuttal mode: No full scripts. Give the best 1-2 voters, key turns/answers, weighing, and an outline for the 1AR/2NR.",
		Sections:        standardSections,
		MaxOutputTokens: 1024,
	},
	ModeCX: {
		Task:            "CX mode: Give 10 sharp cross-ex questions + follow-ups + what each question is trying to expose.",
		Sections:        standardSections,
		MaxOutputTokens: 1024,
	},
	ModeFlow: {
		Task:            "Flow mode: Label arguments clearly and show what was answered vs dropped; recommend the best collapse path.",
		Sections:        standardSections,
		MaxOutputTokens: 1024,
	},
	ModeEnvision: {
		Task:            "Envision mode: Simulate the entire round from the round sheet below. Predict the strongest opposing strategy, walk through every speech, and deliver a complete game plan the debater can execute.",
		Sections:        envisionSections,
		MaxOutputTokens: 4096,
	},
}

// ParseMode reports whether s names a registered mode.
func ParseMode(s string) (Mode, bool) {
	m := Mode(s)
	_, ok := registry[m]
	return m, ok
}

// Coerce maps unknown or empty tags to the default mode.
func Coerce(s string) Mode {
	if m, ok := ParseMode(s); ok {
		return m
	}
	return DefaultMode
}

// Spec returns the contract for a registered mode. It never fails: unknown
// tags must be coerced or rejected before reaching the registry.
func Spec(mode Mode) ModeSpec {
	return registry[mode]
}
