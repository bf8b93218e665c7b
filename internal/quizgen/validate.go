package quizgen

import "strings"

const (
	minQuestionLength    = 10
	minOptionLength      = 2
	minExplanationLength = 20
	optionCount          = 4
)

// leadWords are the interrogative/imperative openers a question text may
// start with instead of containing a question mark.
var leadWords = []string{
	"what", "how", "why", "when", "where", "which", "who",
	"explain", "describe", "compare", "analyze", "evaluate", "discuss",
}

// ValidQuestion reports whether a generated question passes the
// structural and content-quality rules. It never returns an error;
// anything malformed is simply rejected.
func ValidQuestion(q Question) bool {
	text := strings.TrimSpace(q.Text)
	explanation := strings.TrimSpace(q.Explanation)

	if text == "" || explanation == "" || len(q.Options) != optionCount {
		return false
	}
	if len(text) < minQuestionLength || len(explanation) < minExplanationLength {
		return false
	}

	distinct := make(map[string]struct{}, optionCount)
	for _, opt := range q.Options {
		trimmed := strings.TrimSpace(opt)
		if len(trimmed) < minOptionLength {
			return false
		}
		distinct[strings.ToLower(trimmed)] = struct{}{}
	}
	if len(distinct) != optionCount {
		return false
	}

	if q.CorrectIndex < 0 || q.CorrectIndex > optionCount-1 {
		return false
	}

	lower := strings.ToLower(text)
	if !startsWithLeadWord(lower) && !strings.Contains(lower, "?") {
		return false
	}

	return true
}

func startsWithLeadWord(lower string) bool {
	for _, w := range leadWords {
		if strings.HasPrefix(lower, w) {
			return true
		}
	}
	return false
}
