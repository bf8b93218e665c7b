// Package quizgen turns an unreliable LLM into a source of validated,
// non-duplicate, answer-randomized multiple-choice study questions.
package quizgen

// NoAnswer is the UserAnswer value of a question the user has not
// answered yet.
const NoAnswer = -1

// Question is one validated multiple-choice question.
type Question struct {
	// Text is the question prompt.
	Text string

	// Options holds exactly 4 case-insensitively distinct answers.
	Options []string

	// CorrectIndex is the position of the correct option, 0-3.
	// Randomized at generation time; the model always returns the
	// correct answer first.
	CorrectIndex int

	// Explanation says why the correct answer is right.
	Explanation string

	// UserAnswer is set by the quiz-taking flow, never by generation.
	// NoAnswer until then.
	UserAnswer int
}

// Mode distinguishes scored tests from practice runs.
type Mode string

const (
	ModeTest     Mode = "test"
	ModePractice Mode = "practice"
)

// GenerateInput identifies what to generate a question for.
type GenerateInput struct {
	Topic      string
	Difficulty string
	Mode       Mode

	// Existing holds the questions already accepted this session.
	// New questions must not duplicate any of them.
	Existing []Question
}
