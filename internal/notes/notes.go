// Package notes generates short markdown revision guides per topic.
package notes

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/witsiq/witsiq/internal/cache"
	"github.com/witsiq/witsiq/internal/llm"
)

// Note is a generated study guide for one topic.
type Note struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// Config tunes note generation.
type Config struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	CacheTTL    time.Duration
	CacheSize   int
}

// DefaultConfig returns the note generation defaults. Notes change far
// less often than question batches, so the cache lives a full day.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1000,
		Temperature: 0.7,
		Timeout:     30 * time.Second,
		CacheTTL:    24 * time.Hour,
		CacheSize:   100,
	}
}

// Service generates and caches topic notes.
type Service struct {
	provider llm.Provider
	notes    *cache.Cache[string, Note]
	config   Config

	stopSweeper func()
}

// NewService creates a notes Service.
func NewService(provider llm.Provider, cfg Config) *Service {
	notes := cache.New[string, Note](cfg.CacheTTL, cfg.CacheSize)
	return &Service{
		provider:    provider,
		notes:       notes,
		config:      cfg,
		stopSweeper: notes.StartSweeper(),
	}
}

// Close stops the cache sweeper.
func (s *Service) Close() {
	s.stopSweeper()
}

type noteOutput struct {
	Content  string   `json:"content"`
	Summary  string   `json:"summary"`
	Keywords []string `json:"keywords"`
}

// Generate returns the notes for a topic, serving from cache when a
// fresh entry exists. The note's title is the topic as the user typed
// it; the cache key is the normalized form.
func (s *Service) Generate(ctx context.Context, topic string) (*Note, error) {
	key := strings.ToLower(strings.TrimSpace(topic))

	if note, ok := s.notes.Get(key); ok {
		return &note, nil
	}

	if _, hasDeadline := ctx.Deadline(); !hasDeadline && s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}
	ctx = llm.WithPurpose(ctx, "topic-notes")

	req := llm.Request{
		System: notesSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildNotesUserMessage(topic)},
		},
		Schema:      NoteSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("notes generation failed: %w", err)
	}

	var out noteOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse notes: %w", err)
	}

	note := Note{
		Title:    topic,
		Content:  cleanContent(out.Content),
		Summary:  strings.TrimSpace(out.Summary),
		Keywords: trimAll(out.Keywords),
	}

	s.notes.Set(key, note)
	return &note, nil
}

// cleanContent undoes the double-escaping models sometimes apply to
// markdown inside JSON strings: literal \n sequences become real
// newlines and any stray backslashes are dropped.
func cleanContent(content string) string {
	content = strings.ReplaceAll(content, `\n`, "\n")
	content = strings.ReplaceAll(content, `\`, "")
	return strings.TrimSpace(content)
}

func trimAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.TrimSpace(s)
	}
	return out
}
