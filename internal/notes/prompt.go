package notes

import (
	"errors"
	"fmt"

	"github.com/witsiq/witsiq/internal/llm"
)

const notesSystemPrompt = `You are a study-notes author. You write concise, well-structured markdown guides that help someone revise a topic quickly.`

// NoteSchema is the structured-output contract for topic notes.
var NoteSchema = &llm.Schema{
	Name:        "topic-note",
	Description: "A concise markdown study guide for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"content": map[string]any{
				"type":        "string",
				"description": "The markdown guide",
			},
			"summary": map[string]any{
				"type":        "string",
				"description": "One-line summary of the topic",
			},
			"keywords": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Three key terms",
			},
		},
		"required":             []any{"content", "summary", "keywords"},
		"additionalProperties": false,
	},
}

func buildNotesUserMessage(topic string) string {
	return fmt.Sprintf(`Create a concise guide about %q. Format in Markdown:

# %s

## Key Points
[3-4 main concepts]

## Quick Examples
[1-2 practical examples]

## Remember
[2-3 important tips]

Keep it brief and focused.`, topic, topic)
}

// UserMessage maps a notes failure to the message shown to the user.
func UserMessage(err error) string {
	var rl *llm.ErrRateLimit
	if errors.As(err, &rl) {
		return "Please try again in a moment."
	}
	return "Couldn't generate notes."
}
