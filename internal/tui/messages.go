package tui

import "github.com/witsiq/witsiq/internal/quizgen"

// questionReadyMsg delivers the next generated question, or the error
// that prevented it.
type questionReadyMsg struct {
	Question *quizgen.Question
	Err      error
}

// resultSavedMsg reports the outcome of persisting the test result.
type resultSavedMsg struct {
	Err error
}
