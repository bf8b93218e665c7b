// Package history persists finished test results and note searches.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/witsiq/witsiq/internal/quizgen"
)

const (
	testHistoryKey   = "witsiq.test-history"
	searchHistoryKey = "witsiq.search-history"

	// Both lists keep at most this many entries, newest first.
	maxEntries = 50

	// An identical test result within this window is a double-submit,
	// not a new test.
	testDupWindow = time.Minute

	// A repeat search for the same topic within this window is noise.
	searchDupWindow = time.Hour
)

// Storage is the KV collaborator history persists through.
type Storage interface {
	Read(ctx context.Context, key string) (value string, found bool, err error)
	Write(ctx context.Context, key, value string) error
}

// TestResult is one finished test.
type TestResult struct {
	ID             string             `json:"id"`
	Topic          string             `json:"topic"`
	Difficulty     string             `json:"difficulty"`
	Score          int                `json:"score"`
	QuestionsCount int                `json:"questionsCount"`
	CorrectAnswers int                `json:"correctAnswers"`
	TimeSpentSecs  int                `json:"timeSpent"`
	Questions      []quizgen.Question `json:"questions"`
	Timestamp      time.Time          `json:"timestamp"`
}

// SearchItem is one notes lookup.
type SearchItem struct {
	ID        string    `json:"id"`
	Topic     string    `json:"topic"`
	Summary   string    `json:"summary"`
	Keywords  []string  `json:"keywords"`
	Timestamp time.Time `json:"timestamp"`
}

// History reads and writes both lists. Unlike the session guard,
// history errors are surfaced: losing a test result silently would be
// worse than showing the user an error.
type History struct {
	storage Storage

	now func() time.Time
}

// New creates a History over the given storage.
func New(storage Storage) *History {
	return &History{storage: storage, now: time.Now}
}

// TestResults returns stored test results, newest first.
func (h *History) TestResults(ctx context.Context) ([]TestResult, error) {
	var results []TestResult
	if err := h.load(ctx, testHistoryKey, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// AddTestResult stores a result with a fresh ID and timestamp. A result
// with the same topic, score, and correct count recorded within the
// last minute is treated as a duplicate submit and dropped.
func (h *History) AddTestResult(ctx context.Context, result TestResult) error {
	results, err := h.TestResults(ctx)
	if err != nil {
		return err
	}

	now := h.now()
	for _, r := range results {
		if r.Topic == result.Topic &&
			r.Score == result.Score &&
			r.CorrectAnswers == result.CorrectAnswers &&
			now.Sub(r.Timestamp) < testDupWindow {
			return nil
		}
	}

	result.ID = uuid.NewString()
	result.Timestamp = now

	results = append([]TestResult{result}, results...)
	if len(results) > maxEntries {
		results = results[:maxEntries]
	}
	return h.save(ctx, testHistoryKey, results)
}

// ClearTestResults removes all stored test results.
func (h *History) ClearTestResults(ctx context.Context) error {
	return h.save(ctx, testHistoryKey, []TestResult{})
}

// Searches returns stored note searches, newest first.
func (h *History) Searches(ctx context.Context) ([]SearchItem, error) {
	var items []SearchItem
	if err := h.load(ctx, searchHistoryKey, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddSearch stores a search with a fresh ID and timestamp. A search for
// the same topic (case insensitive) within the last hour is dropped.
func (h *History) AddSearch(ctx context.Context, item SearchItem) error {
	items, err := h.Searches(ctx)
	if err != nil {
		return err
	}

	now := h.now()
	topic := strings.ToLower(item.Topic)
	for _, s := range items {
		if strings.ToLower(s.Topic) == topic && now.Sub(s.Timestamp) < searchDupWindow {
			return nil
		}
	}

	item.ID = uuid.NewString()
	item.Timestamp = now

	items = append([]SearchItem{item}, items...)
	if len(items) > maxEntries {
		items = items[:maxEntries]
	}
	return h.save(ctx, searchHistoryKey, items)
}

// RemoveSearch deletes one search by ID. Unknown IDs are a no-op.
func (h *History) RemoveSearch(ctx context.Context, id string) error {
	items, err := h.Searches(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, s := range items {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return h.save(ctx, searchHistoryKey, kept)
}

// ClearSearches removes all stored searches.
func (h *History) ClearSearches(ctx context.Context) error {
	return h.save(ctx, searchHistoryKey, []SearchItem{})
}

func (h *History) load(ctx context.Context, key string, out any) error {
	value, found, err := h.storage.Read(ctx, key)
	if err != nil {
		return fmt.Errorf("read %s: %w", key, err)
	}
	if !found {
		return nil
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (h *History) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := h.storage.Write(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
