package quizgen

import "testing"

func wellFormed() Question {
	return Question{
		Text:         "What is the primary purpose of the useEffect hook?",
		Options:      []string{"Run side effects", "Render markup", "Manage routing", "Style components"},
		CorrectIndex: 0,
		Explanation:  "useEffect runs side effects after render; the other options describe unrelated concerns.",
		UserAnswer:   NoAnswer,
	}
}

func TestValidQuestionAcceptsWellFormed(t *testing.T) {
	if !ValidQuestion(wellFormed()) {
		t.Error("well-formed question should pass validation")
	}
}

func TestValidQuestionRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Question)
	}{
		{"empty text", func(q *Question) { q.Text = "   " }},
		{"short text", func(q *Question) { q.Text = "Why Go?" }},
		{"three options", func(q *Question) { q.Options = q.Options[:3] }},
		{"five options", func(q *Question) { q.Options = append(q.Options, "Extra choice") }},
		{"empty explanation", func(q *Question) { q.Explanation = "" }},
		{"short explanation", func(q *Question) { q.Explanation = "Too short." }},
		{"short option", func(q *Question) { q.Options[2] = "x" }},
		{"case-insensitive duplicate options", func(q *Question) { q.Options[3] = "RUN SIDE EFFECTS" }},
		{"correct index negative", func(q *Question) { q.CorrectIndex = -1 }},
		{"correct index too large", func(q *Question) { q.CorrectIndex = 4 }},
		{"no lead word and no question mark", func(q *Question) { q.Text = "The useEffect hook runs side effects." }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := wellFormed()
			tt.mutate(&q)
			if ValidQuestion(q) {
				t.Errorf("expected rejection for %s", tt.name)
			}
		})
	}
}

func TestValidQuestionLeadWordWithoutQuestionMark(t *testing.T) {
	q := wellFormed()
	q.Text = "Explain how the useEffect cleanup function works"
	if !ValidQuestion(q) {
		t.Error("imperative lead word should satisfy the format rule without a question mark")
	}
}

func TestValidQuestionQuestionMarkWithoutLeadWord(t *testing.T) {
	q := wellFormed()
	q.Text = "The useEffect hook runs after render, true or false?"
	if !ValidQuestion(q) {
		t.Error("a question mark should satisfy the format rule without a lead word")
	}
}
