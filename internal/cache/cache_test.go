package cache

import (
	"fmt"
	"testing"
	"time"
)

// fakeClock lets tests advance time without sleeping.
type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

func newTestCache(ttl time.Duration, capacity int) (*Cache[string, int], *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	c := New[string, int](ttl, capacity)
	c.now = clock.now
	return c, clock
}

func TestSetThenGet(t *testing.T) {
	c, _ := newTestCache(time.Hour, 10)

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit")
	}
	if got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestMissOnUnknownKey(t *testing.T) {
	c, _ := newTestCache(time.Hour, 10)

	if _, ok := c.Get("nope"); ok {
		t.Fatal("expected miss")
	}
}

func TestExpiredEntryIsMissButNotDeleted(t *testing.T) {
	c, clock := newTestCache(time.Hour, 10)

	c.Set("a", 1)
	clock.advance(time.Hour)

	if _, ok := c.Get("a"); ok {
		t.Fatal("expected expired entry to miss")
	}
	// Lazy expiry: the entry stays until a sweep.
	if c.Len() != 1 {
		t.Fatalf("expected entry to remain before sweep, len = %d", c.Len())
	}
}

func TestSweepRemovesExpired(t *testing.T) {
	c, clock := newTestCache(time.Hour, 10)

	c.Set("old", 1)
	clock.advance(30 * time.Minute)
	c.Set("fresh", 2)
	clock.advance(30 * time.Minute)

	c.Sweep()

	if c.Len() != 1 {
		t.Fatalf("expected 1 entry after sweep, got %d", c.Len())
	}
	if _, ok := c.Get("fresh"); !ok {
		t.Fatal("fresh entry should survive sweep")
	}
}

func TestCapacityEvictsOldest(t *testing.T) {
	c, clock := newTestCache(time.Hour, 3)

	for i := range 3 {
		c.Set(fmt.Sprintf("k%d", i), i)
		clock.advance(time.Minute)
	}

	c.Set("k3", 3)

	if c.Len() != 3 {
		t.Fatalf("cache exceeded capacity: len = %d", c.Len())
	}
	if _, ok := c.Get("k0"); ok {
		t.Fatal("expected oldest entry k0 to be evicted")
	}
	for i := 1; i <= 3; i++ {
		if _, ok := c.Get(fmt.Sprintf("k%d", i)); !ok {
			t.Fatalf("expected k%d to survive", i)
		}
	}
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c, clock := newTestCache(time.Hour, 2)

	c.Set("a", 1)
	clock.advance(time.Minute)
	c.Set("b", 2)
	clock.advance(time.Minute)

	// Same key: replace in place, no eviction needed.
	c.Set("a", 10)

	if c.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", c.Len())
	}
	got, ok := c.Get("a")
	if !ok || got != 10 {
		t.Fatalf("expected overwritten value 10, got %d (hit=%v)", got, ok)
	}
	if _, ok := c.Get("b"); !ok {
		t.Fatal("b should not have been evicted")
	}
}

func TestOverwriteRefreshesTimestamp(t *testing.T) {
	c, clock := newTestCache(time.Hour, 10)

	c.Set("a", 1)
	clock.advance(45 * time.Minute)
	c.Set("a", 2)
	clock.advance(30 * time.Minute)

	got, ok := c.Get("a")
	if !ok {
		t.Fatal("expected hit: overwrite should restart the TTL")
	}
	if got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
