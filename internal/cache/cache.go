// Package cache provides a small TTL cache with a capacity cap, used for
// generated question batches and topic notes.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	createdAt time.Time
}

// Cache is a key-value store where entries expire after a fixed TTL and
// the oldest entry is evicted when the capacity cap would be exceeded.
// Expiry is lazy on Get; Sweep removes expired entries in bulk and is run
// periodically by StartSweeper.
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	entries  map[K]entry[V]
	ttl      time.Duration
	capacity int

	now func() time.Time // overridable in tests
}

// New creates a Cache with the given TTL and capacity.
func New[K comparable, V any](ttl time.Duration, capacity int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:  make(map[K]entry[V]),
		ttl:      ttl,
		capacity: capacity,
		now:      time.Now,
	}
}

// Get returns the value under key. An entry at or past its TTL is a miss
// but is left in place for the sweeper.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.createdAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key. If the insert would push the cache past
// capacity, the single entry with the oldest createdAt is evicted first.
// Overwriting an existing key refreshes its timestamp.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = entry[V]{value: value, createdAt: c.now()}
}

// Len returns the number of entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Sweep removes every expired entry.
func (c *Cache[K, V]) Sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, e := range c.entries {
		if now.Sub(e.createdAt) >= c.ttl {
			delete(c.entries, k)
		}
	}
}

// StartSweeper runs Sweep every TTL interval until the returned stop
// function is called.
func (c *Cache[K, V]) StartSweeper() (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(c.ttl)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				c.Sweep()
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

// Linear scan is fine at the capacities used here (50 and 100 entries).
func (c *Cache[K, V]) evictOldestLocked() {
	var oldestKey K
	var oldestAt time.Time
	first := true
	for k, e := range c.entries {
		if first || e.createdAt.Before(oldestAt) {
			oldestKey = k
			oldestAt = e.createdAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}
