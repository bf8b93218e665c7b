package quizgen

import (
	"errors"

	"github.com/witsiq/witsiq/internal/llm"
)

// GenerationError means no unique valid question could be assembled
// after a remote round. The caller retries or changes topic/difficulty.
type GenerationError struct {
	Reason string
}

func (e *GenerationError) Error() string {
	return e.Reason
}

// TopicError rejects a topic before generation is attempted. The message
// is shown to the user inline.
type TopicError struct {
	Message string
}

func (e *TopicError) Error() string {
	return e.Message
}

// UserMessage maps a generation failure to the message shown to the
// user, distinguishing rate limiting from everything else.
func UserMessage(err error) string {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return "Please try again in a moment."
	}

	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Reason
	}

	var topicErr *TopicError
	if errors.As(err, &topicErr) {
		return topicErr.Message
	}

	return "Couldn't generate questions."
}
