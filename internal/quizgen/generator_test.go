package quizgen

import (
	"context"
	"errors"
	"testing"

	"github.com/witsiq/witsiq/internal/llm"
)

func TestGenerateBatchDecodesAndTrims(t *testing.T) {
	raw := rawQuestion{
		Question:      "  What does the defer statement do in Go?  ",
		Options:       []string{" Delays a call until return ", "Starts a goroutine", "Panics immediately", "Ignores errors"},
		CorrectAnswer: 0,
		Explanation:   "  defer schedules the call to run when the surrounding function returns.  ",
	}
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON(t, []rawQuestion{raw})},
	)
	gen := NewGenerator(mock, DefaultConfig())

	batch, err := gen.GenerateBatch(context.Background(), "go basics", "Basic", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(batch) != 1 {
		t.Fatalf("expected 1 question, got %d", len(batch))
	}

	q := batch[0]
	if q.Text != "What does the defer statement do in Go?" {
		t.Errorf("question text not trimmed: %q", q.Text)
	}
	if q.Explanation != "defer schedules the call to run when the surrounding function returns." {
		t.Errorf("explanation not trimmed: %q", q.Explanation)
	}
	if len(q.Options) != 4 {
		t.Fatalf("expected 4 options, got %d", len(q.Options))
	}
	if q.Options[q.CorrectIndex] != "Delays a call until return" {
		t.Errorf("correct index %d points at %q after shuffling", q.CorrectIndex, q.Options[q.CorrectIndex])
	}
	if q.UserAnswer != NoAnswer {
		t.Errorf("fresh question should be unanswered, got %d", q.UserAnswer)
	}
}

func TestGenerateBatchRequest(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: batchJSON(t, nil)},
	)
	cfg := DefaultConfig()
	gen := NewGenerator(mock, cfg)

	if _, err := gen.GenerateBatch(context.Background(), "sorting algorithms", "Advanced", 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.System != questionSystemPrompt {
		t.Error("system prompt not set")
	}
	if req.Schema.Name != BatchSchema.Name {
		t.Errorf("schema %q, want %q", req.Schema.Name, BatchSchema.Name)
	}
	if req.MaxTokens != cfg.MaxTokens || req.Temperature != cfg.Temperature {
		t.Errorf("tuning not passed through: MaxTokens=%d Temperature=%g", req.MaxTokens, req.Temperature)
	}
}

func TestGenerateBatchRejectsMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: []byte(`not json at all`)},
	)
	gen := NewGenerator(mock, DefaultConfig())

	if _, err := gen.GenerateBatch(context.Background(), "go basics", "Basic", 1); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestGenerateBatchWrapsProviderError(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("connection refused")}},
	)
	gen := NewGenerator(mock, DefaultConfig())

	_, err := gen.GenerateBatch(context.Background(), "go basics", "Basic", 1)
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected wrapped *ErrProviderUnavailable, got %v", err)
	}
}
