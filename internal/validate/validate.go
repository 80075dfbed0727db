package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"ldclash-backend/internal/models"
	"ldclash-backend/internal/prompt"
)

// MaxMessageLen bounds the submitted debate text.
const MaxMessageLen = 12000

// RefusalMessage is the fixed reply for ghostwriting requests.
const RefusalMessage = "No ghostwriting. Paste YOUR draft and I'll diagnose + outline fixes + drills (not generate full speeches)."

// ghostwriting is a best-effort heuristic, not a guarantee. It catches direct
// "write/generate/draft a case/speech" phrasing and misses paraphrased asks;
// both false positives and false negatives are accepted.
var ghostwriting = regexp.MustCompile(`(?i)(write|generate|draft).*(case|speech|AC|NC|1AR|2NR)|give me (a )?full (AC|NC|1AR|2NR)`)

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type PolicyError struct{ Message string }

func (e *PolicyError) Error() string { return e.Message }

// Chat checks a decoded request and returns the coaching mode to use. Unknown
// mode tags coerce to the default rather than failing.
func Chat(req *models.ChatRequest) (prompt.Mode, error) {
	fields := map[string]string{}

	if strings.TrimSpace(req.Message) == "" {
		fields["message"] = "Message is required"
	} else if utf8.RuneCountInString(req.Message) > MaxMessageLen {
		fields["message"] = "Message must be at most 12000 characters"
	}

	if len(fields) > 0 {
		return "", &ValidationError{Fields: fields}
	}

	if ghostwriting.MatchString(req.Message) {
		return "", &PolicyError{Message: RefusalMessage}
	}

	return prompt.Coerce(req.Mode), nil
}
