package prompt

import (
	"strings"
	"testing"

	"ldclash-backend/internal/models"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name     string
		tag      string
		expected Mode
	}{
		{"known mode passes through", "drill", ModeDrill},
		{"envision passes through", "envision", ModeEnvision},
		{"empty tag defaults", "", ModeCoach},
		{"unknown tag defaults", "judge", ModeCoach},
		{"case sensitive", "Coach", ModeCoach},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Coerce(tc.tag); got != tc.expected {
				t.Errorf("Expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestSpec_EveryModeRegistered(t *testing.T) {
	for _, m := range []Mode{ModeCoach, ModeDrill, ModeRebuttal, ModeCX, ModeFlow, ModeEnvision} {
		spec := Spec(m)
		if spec.Task == "" {
			t.Errorf("mode %q has no task text", m)
		}
		if len(spec.Sections) == 0 {
			t.Errorf("mode %q has no output sections", m)
		}
		if spec.MaxOutputTokens <= 0 {
			t.Errorf("mode %q has no token budget", m)
		}
	}
}

func TestSpec_TokenBudgets(t *testing.T) {
	if Spec(ModeEnvision).MaxOutputTokens <= Spec(ModeCoach).MaxOutputTokens {
		t.Error("envision budget should exceed the standard mode budget")
	}
}

func TestBuild_StandardMode(t *testing.T) {
	req := &models.ChatRequest{Message: "Here is my 1AR outline."}
	bundle := Build(ModeRebuttal, req)

	if bundle.Input != req.Message {
		t.Errorf("standard mode input should be the raw message, got %q", bundle.Input)
	}
	if !strings.Contains(bundle.Instructions, "MODE: rebuttal") {
		t.Error("instructions missing mode tag")
	}
	if !strings.Contains(bundle.Instructions, "Do NOT use Markdown") {
		t.Error("instructions missing plain-text rules")
	}
	if strings.Contains(bundle.Instructions, "STEERING VOCABULARY") {
		t.Error("glossary must only appear in envision mode")
	}
}

func TestBuild_SectionOrder(t *testing.T) {
	bundle := Build(ModeCoach, &models.ChatRequest{Message: "x"})

	last := -1
	for _, s := range []string{"SCORECARD:", "KEY ISSUES:", "FIX PLAN:", "DRILLS:"} {
		idx := strings.Index(bundle.Instructions, s)
		if idx < 0 {
			t.Fatalf("instructions missing section heading %q", s)
		}
		if idx < last {
			t.Fatalf("section %q out of order", s)
		}
		last = idx
	}

	if !strings.Contains(bundle.Instructions, EmptySectionToken) {
		t.Error("instructions missing empty-section fallback token")
	}
}

func TestBuild_EnvisionMergesRoundSheet(t *testing.T) {
	req := &models.ChatRequest{
		Message: "fallback case text",
		Envision: &models.EnvisionParams{
			Topic:       "Resolved: Civil disobedience is justified.",
			Side:        "AFF",
			Value:       "Justice",
			Criterion:   "Protecting rights",
			CaseText:    "My full AC text.",
			JudgeType:   "flay",
			RiskPosture: "low",
		},
	}
	bundle := Build(ModeEnvision, req)

	for _, want := range []string{
		"ROUND SHEET",
		"TOPIC: Resolved: Civil disobedience is justified.",
		"SIDE: AFF",
		"VALUE: Justice",
		"CRITERION: Protecting rights",
		"JUDGE: flay",
		"RISK POSTURE: low",
		"CASE:\nMy full AC text.",
	} {
		if !strings.Contains(bundle.Input, want) {
			t.Errorf("envision input missing %q", want)
		}
	}

	if strings.Contains(bundle.Input, "ENDGAME PREFERENCE") {
		t.Error("empty round sheet fields must be omitted")
	}
	if strings.Contains(bundle.Input, "fallback case text") {
		t.Error("message must not be used when caseText is present")
	}
}

func TestBuild_EnvisionFallsBackToMessage(t *testing.T) {
	req := &models.ChatRequest{Message: "pasted NC analysis"}
	bundle := Build(ModeEnvision, req)

	if !strings.Contains(bundle.Input, "CASE:\npasted NC analysis") {
		t.Error("envision without caseText should use the raw message as the case")
	}
}

func TestBuild_EnvisionCarriesGlossaryAndSkeleton(t *testing.T) {
	bundle := Build(ModeEnvision, &models.ChatRequest{Message: "x"})

	if !strings.Contains(bundle.Instructions, "STEERING VOCABULARY") {
		t.Fatal("envision instructions missing glossary block")
	}
	if !strings.Contains(bundle.Instructions, "Meta-weighing") {
		t.Error("glossary terms not injected verbatim")
	}
	for _, s := range envisionSections {
		if !strings.Contains(bundle.Instructions, s+":") {
			t.Errorf("envision instructions missing section %q", s)
		}
	}
}
