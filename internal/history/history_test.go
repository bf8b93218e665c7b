package history

import (
	"context"
	"testing"
	"time"
)

type memStorage struct {
	data map[string]string
}

func newMemStorage() *memStorage {
	return &memStorage{data: make(map[string]string)}
}

func (m *memStorage) Read(_ context.Context, key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStorage) Write(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func newTestHistory(now time.Time) (*History, *time.Time) {
	clock := now
	h := New(newMemStorage())
	h.now = func() time.Time { return clock }
	return h, &clock
}

func result(topic string, score int) TestResult {
	return TestResult{
		Topic:          topic,
		Difficulty:     "Basic",
		Score:          score,
		QuestionsCount: 10,
		CorrectAnswers: score / 10,
		TimeSpentSecs:  120,
	}
}

func TestAddTestResultNewestFirst(t *testing.T) {
	h, clock := newTestHistory(time.Now())
	ctx := context.Background()

	if err := h.AddTestResult(ctx, result("go", 70)); err != nil {
		t.Fatal(err)
	}
	*clock = clock.Add(2 * time.Minute)
	if err := h.AddTestResult(ctx, result("sql", 90)); err != nil {
		t.Fatal(err)
	}

	results, err := h.TestResults(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Topic != "sql" || results[1].Topic != "go" {
		t.Errorf("results not newest first: %s, %s", results[0].Topic, results[1].Topic)
	}
	if results[0].ID == "" || results[0].ID == results[1].ID {
		t.Error("each result should get a distinct ID")
	}
}

func TestAddTestResultSuppressesDoubleSubmit(t *testing.T) {
	h, clock := newTestHistory(time.Now())
	ctx := context.Background()

	if err := h.AddTestResult(ctx, result("go", 70)); err != nil {
		t.Fatal(err)
	}
	*clock = clock.Add(30 * time.Second)
	if err := h.AddTestResult(ctx, result("go", 70)); err != nil {
		t.Fatal(err)
	}

	results, _ := h.TestResults(ctx)
	if len(results) != 1 {
		t.Fatalf("identical result within a minute should be dropped, got %d", len(results))
	}

	// Same result again after the window is a genuine retake.
	*clock = clock.Add(2 * time.Minute)
	if err := h.AddTestResult(ctx, result("go", 70)); err != nil {
		t.Fatal(err)
	}
	results, _ = h.TestResults(ctx)
	if len(results) != 2 {
		t.Fatalf("expected 2 results after the window, got %d", len(results))
	}
}

func TestAddTestResultDifferentScoreNotSuppressed(t *testing.T) {
	h, _ := newTestHistory(time.Now())
	ctx := context.Background()

	h.AddTestResult(ctx, result("go", 70))
	h.AddTestResult(ctx, result("go", 80))

	results, _ := h.TestResults(ctx)
	if len(results) != 2 {
		t.Fatalf("different scores are distinct results, got %d", len(results))
	}
}

func TestTestResultsCapped(t *testing.T) {
	h, clock := newTestHistory(time.Now())
	ctx := context.Background()

	for i := range maxEntries + 5 {
		*clock = clock.Add(2 * time.Minute)
		if err := h.AddTestResult(ctx, result("topic", i)); err != nil {
			t.Fatal(err)
		}
	}

	results, _ := h.TestResults(ctx)
	if len(results) != maxEntries {
		t.Fatalf("expected %d results, got %d", maxEntries, len(results))
	}
	if results[0].Score != maxEntries+4 {
		t.Errorf("newest result should survive the cap, got score %d", results[0].Score)
	}
}

func TestClearTestResults(t *testing.T) {
	h, _ := newTestHistory(time.Now())
	ctx := context.Background()

	h.AddTestResult(ctx, result("go", 70))
	if err := h.ClearTestResults(ctx); err != nil {
		t.Fatal(err)
	}

	results, _ := h.TestResults(ctx)
	if len(results) != 0 {
		t.Errorf("expected empty history, got %d results", len(results))
	}
}

func TestAddSearchSuppressesRecentTopic(t *testing.T) {
	h, clock := newTestHistory(time.Now())
	ctx := context.Background()

	if err := h.AddSearch(ctx, SearchItem{Topic: "React Hooks", Summary: "hooks"}); err != nil {
		t.Fatal(err)
	}
	*clock = clock.Add(30 * time.Minute)
	if err := h.AddSearch(ctx, SearchItem{Topic: "react hooks", Summary: "again"}); err != nil {
		t.Fatal(err)
	}

	items, _ := h.Searches(ctx)
	if len(items) != 1 {
		t.Fatalf("case-insensitive repeat within an hour should be dropped, got %d", len(items))
	}

	*clock = clock.Add(time.Hour)
	if err := h.AddSearch(ctx, SearchItem{Topic: "React Hooks", Summary: "later"}); err != nil {
		t.Fatal(err)
	}
	items, _ = h.Searches(ctx)
	if len(items) != 2 {
		t.Fatalf("expected 2 searches after the window, got %d", len(items))
	}
}

func TestRemoveSearch(t *testing.T) {
	h, clock := newTestHistory(time.Now())
	ctx := context.Background()

	h.AddSearch(ctx, SearchItem{Topic: "go"})
	*clock = clock.Add(2 * time.Hour)
	h.AddSearch(ctx, SearchItem{Topic: "sql"})

	items, _ := h.Searches(ctx)
	if len(items) != 2 {
		t.Fatalf("expected 2 searches, got %d", len(items))
	}

	if err := h.RemoveSearch(ctx, items[1].ID); err != nil {
		t.Fatal(err)
	}
	items, _ = h.Searches(ctx)
	if len(items) != 1 || items[0].Topic != "sql" {
		t.Errorf("expected only the sql search to remain, got %v", items)
	}

	// Unknown IDs are a no-op.
	if err := h.RemoveSearch(ctx, "no-such-id"); err != nil {
		t.Fatal(err)
	}
}
