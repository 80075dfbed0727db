package prompt

import (
	"fmt"
	"strings"

	"ldclash-backend/internal/models"
)

// Bundle is the composed payload for one completion call.
type Bundle struct {
	Instructions string
	Input        string
}

const persona = "You are an elite Lincoln-Douglas (LD) debate coach. " +
	"Give concrete, structured, round-winning advice. Prefer numbered bullets. " +
	"Do NOT write full speeches or full cases. " +
	"You may provide outlines and at most 1-2 sentences of example phrasing. " +
	"Focus on: VC alignment, warrants, clash, offense/defense, weighing, collapse, and strategy."

const plainTextRules = `NO MARKDOWN:
- Do NOT use Markdown.
- No headings like "###" or "##".
- No bold markers like "**".
- Plain text only.
- Use ALL CAPS labels for section headings.
- Use "-" for bullets.`

// EmptySectionToken is what the model must emit under a heading it has
// nothing to say for, so clients can rely on every heading being present.
const EmptySectionToken = "- none"

// Build composes the instruction and input text for one request. Validation
// is assumed to have happened upstream; Build never fails.
func Build(mode Mode, req *models.ChatRequest) Bundle {
	spec := Spec(mode)

	var b strings.Builder

	// Layer 1 — Persona
	b.WriteString(persona)
	b.WriteString("\n\n")

	// Layer 2 — Mode task
	fmt.Fprintf(&b, "MODE: %s\nTASK: %s\n\n", mode, spec.Task)

	// Layer 3 — Output format
	b.WriteString(plainTextRules)
	b.WriteString("\n\n")
	b.WriteString(sectionContract(spec.Sections))

	// Layer 4 — Steering vocabulary (envision only)
	if mode == ModeEnvision {
		b.WriteString("\n\n")
		b.WriteString("STEERING VOCABULARY — use these terms where they apply:\n")
		b.WriteString(Glossary)
	}

	return Bundle{
		Instructions: b.String(),
		Input:        buildInput(mode, req),
	}
}

func sectionContract(sections []string) string {
	var b strings.Builder
	b.WriteString("OUTPUT STRUCTURE — emit exactly these section headings, in this order, each on its own line:\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "%s:\n", s)
	}
	fmt.Fprintf(&b, "Under each heading use \"-\" bullets. If a section has nothing, write exactly %q under it. Do not add, rename, or reorder sections.", EmptySectionToken)
	return b.String()
}

func buildInput(mode Mode, req *models.ChatRequest) string {
	if mode != ModeEnvision {
		return req.Message
	}

	p := req.Envision
	if p == nil {
		p = &models.EnvisionParams{}
	}

	var b strings.Builder
	b.WriteString("ROUND SHEET\n")
	writeField(&b, "TOPIC", p.Topic)
	writeField(&b, "SIDE", p.Side)
	writeField(&b, "VALUE", p.Value)
	writeField(&b, "CRITERION", p.Criterion)
	writeField(&b, "JUDGE", p.JudgeType)
	writeField(&b, "ENDGAME PREFERENCE", p.EndgamePref)
	writeField(&b, "RISK POSTURE", p.RiskPosture)
	writeField(&b, "STRATEGY STYLE", p.StrategyStyle)
	writeField(&b, "DECISION LENS", p.DecisionLens)

	// The free-text message stands in for the case when no structured case
	// text was supplied.
	caseText := p.CaseText
	if strings.TrimSpace(caseText) == "" {
		caseText = req.Message
	}
	b.WriteString("CASE:\n")
	b.WriteString(caseText)

	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "%s: %s\n", label, value)
}
