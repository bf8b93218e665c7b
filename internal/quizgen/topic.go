package quizgen

import (
	"regexp"
	"strings"
)

// commonTopics is the allow-list of technology terms that may carry
// characters (dots, pluses) the general topic pattern rejects.
var commonTopics = []string{
	"javascript", "python", "java", "c++", "react", "angular", "vue",
	"node.js", "express", "mongodb", "sql", "html", "css", "typescript",
}

var (
	allDigitsRe   = regexp.MustCompile(`^[0-9]+$`)
	noAlnumRe     = regexp.MustCompile(`^[^a-zA-Z0-9]+$`)
	lettersOnlyRe = regexp.MustCompile(`^[a-zA-Z\s]{3,}$`)
	topicCharsRe  = regexp.MustCompile(`^[\w\s-]{3,}$`)
)

// ValidateTopic checks a topic before any generation is attempted.
// Returns nil when the topic is acceptable, or a *TopicError carrying
// the inline message to show.
func ValidateTopic(topic string) error {
	trimmed := strings.TrimSpace(topic)

	if trimmed == "" {
		return &TopicError{Message: "Please enter a topic"}
	}
	if len(trimmed) < 3 {
		return &TopicError{Message: "Topic must be at least 3 characters long"}
	}
	if len(trimmed) > 100 {
		return &TopicError{Message: "Topic is too long"}
	}
	if allDigitsRe.MatchString(trimmed) {
		return &TopicError{Message: "Topic cannot be just numbers"}
	}
	if noAlnumRe.MatchString(trimmed) {
		return &TopicError{Message: "Topic must contain some letters or numbers"}
	}

	if !isCommonTopic(trimmed) && !lettersOnlyRe.MatchString(trimmed) {
		if !topicCharsRe.MatchString(trimmed) {
			return &TopicError{Message: "Topic contains invalid characters"}
		}
	}

	return nil
}

func isCommonTopic(topic string) bool {
	normalized := strings.ToLower(topic)
	for _, t := range commonTopics {
		if strings.Contains(normalized, t) || strings.Contains(t, normalized) {
			return true
		}
	}
	return false
}
