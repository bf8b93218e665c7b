package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/witsiq/witsiq/internal/llm"
)

// Generator produces a batch of candidate questions from the remote
// model. Returned questions are trimmed and answer-randomized but not
// yet validated or deduplicated.
type Generator interface {
	GenerateBatch(ctx context.Context, topic, difficulty string, count int) ([]Question, error)
}

// LLMGenerator implements Generator over an llm.Provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator creates an LLMGenerator.
func NewGenerator(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// rawQuestion is one model-authored question before processing.
type rawQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

type batchOutput struct {
	Questions []rawQuestion `json:"questions"`
}

// GenerateBatch requests count questions and randomizes each one's
// answer position as it is decoded. Randomization has to happen here,
// before anything is cached, so cached entries never leak the "correct
// answer first" prompt contract.
func (g *LLMGenerator) GenerateBatch(ctx context.Context, topic, difficulty string, count int) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "question-batch")

	req := llm.Request{
		System: questionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildBatchUserMessage(topic, difficulty, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("question generation failed: %w", err)
	}

	var out batchOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse question batch: %w", err)
	}

	questions := make([]Question, 0, len(out.Questions))
	for _, raw := range out.Questions {
		options, correctIndex := randomizeOptions(trimAll(raw.Options))
		questions = append(questions, Question{
			Text:         strings.TrimSpace(raw.Question),
			Options:      options,
			CorrectIndex: correctIndex,
			Explanation:  strings.TrimSpace(raw.Explanation),
			UserAnswer:   NoAnswer,
		})
	}

	return questions, nil
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
