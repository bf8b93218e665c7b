package quizgen

import "github.com/witsiq/witsiq/internal/llm"

// BatchSchema is the JSON Schema for one generation call's response.
// correctAnswer is pinned to 0 by the prompt contract; randomization
// happens locally after decoding.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple-choice study questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "The generated questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text, properly phrased",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options. The first one is the correct answer.",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Always 0: the correct answer is the first option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct answer is right and the others are wrong",
						},
					},
					"required":             []any{"question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
