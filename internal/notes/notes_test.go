package notes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/witsiq/witsiq/internal/llm"
)

func noteJSON(t *testing.T, out noteOutput) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(out)
	if err != nil {
		t.Fatalf("marshal note: %v", err)
	}
	return data
}

func newTestService(t *testing.T, provider llm.Provider) *Service {
	t.Helper()
	svc := NewService(provider, DefaultConfig())
	t.Cleanup(svc.Close)
	return svc
}

func TestGenerateBuildsNote(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: noteJSON(t, noteOutput{
			Content:  `# Goroutines\n\n## Key Points\n- Lightweight threads`,
			Summary:  " Concurrency primitives in Go ",
			Keywords: []string{" goroutine ", "channel", "scheduler "},
		})},
	)
	svc := newTestService(t, mock)

	note, err := svc.Generate(context.Background(), "Goroutines")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if note.Title != "Goroutines" {
		t.Errorf("title %q, want the topic as typed", note.Title)
	}
	want := "# Goroutines\n\n## Key Points\n- Lightweight threads"
	if note.Content != want {
		t.Errorf("content %q, want %q", note.Content, want)
	}
	if note.Summary != "Concurrency primitives in Go" {
		t.Errorf("summary not trimmed: %q", note.Summary)
	}
	if len(note.Keywords) != 3 || note.Keywords[0] != "goroutine" {
		t.Errorf("keywords not trimmed: %v", note.Keywords)
	}
}

func TestGenerateServesFromCache(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: noteJSON(t, noteOutput{
			Content:  "# SQL Joins",
			Summary:  "Combining rows across tables",
			Keywords: []string{"inner", "outer", "cross"},
		})},
	)
	svc := newTestService(t, mock)

	if _, err := svc.Generate(context.Background(), "SQL Joins"); err != nil {
		t.Fatalf("first call: %v", err)
	}

	// Different casing and spacing, same cache key.
	note, err := svc.Generate(context.Background(), "  sql joins ")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if note.Content != "# SQL Joins" {
		t.Errorf("unexpected content: %q", note.Content)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected cache hit, got %d remote calls", mock.CallCount())
	}
}

func TestGenerateRejectsMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: []byte(`not json`)},
	)
	svc := newTestService(t, mock)

	if _, err := svc.Generate(context.Background(), "anything"); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestCleanContent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`line one\nline two`, "line one\nline two"},
		{`stray \backslash`, "stray backslash"},
		{"  already clean  ", "already clean"},
		{`# Title\n\n## Section\n- point`, "# Title\n\n## Section\n- point"},
	}

	for _, tt := range tests {
		if got := cleanContent(tt.in); got != tt.want {
			t.Errorf("cleanContent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUserMessage(t *testing.T) {
	rateLimited := &llm.ErrRateLimit{Err: errors.New("429")}
	if got := UserMessage(rateLimited); got != "Please try again in a moment." {
		t.Errorf("rate limit message: %q", got)
	}
	if got := UserMessage(errors.New("boom")); got != "Couldn't generate notes." {
		t.Errorf("generic message: %q", got)
	}
}
