package cache

import (
	"context"
	"sync"
	"time"

	"github.com/okian/ludex/internal/domain/model"
	"github.com/okian/ludex/pkg/metrics"
)

// Default memory cache configuration constants.
const (
	defaultTTL        = 5 * time.Minute
	defaultMaxEntries = 4096
)

type memoryEntry struct {
	results   []model.ScoredRecord
	expiresAt time.Time
}

// Memory implements Cache with a concurrency-safe in-process map.
// Concurrent misses for the same key may each recompute; correctness only
// needs eventually-consistent population, so there is no single-flight.
type Memory struct {
	mu         sync.RWMutex
	entries    map[string]memoryEntry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

// MemoryOption applies a configuration option to the Memory cache.
type MemoryOption func(*Memory)

// WithTTL sets the entry lifetime. TTLs are minutes, not hours.
func WithTTL(ttl time.Duration) MemoryOption {
	return func(c *Memory) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithMaxEntries bounds the cache size; the entry closest to expiry is
// evicted when full.
func WithMaxEntries(n int) MemoryOption {
	return func(c *Memory) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}

// WithClock overrides the time source for tests.
func WithClock(now func() time.Time) MemoryOption {
	return func(c *Memory) {
		if now != nil {
			c.now = now
		}
	}
}

// NewMemory creates an in-memory cache.
func NewMemory(opts ...MemoryOption) *Memory {
	c := &Memory{
		entries:    make(map[string]memoryEntry),
		ttl:        defaultTTL,
		maxEntries: defaultMaxEntries,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get implements Cache. Expired entries are removed lazily.
func (c *Memory) Get(_ context.Context, key string) ([]model.ScoredRecord, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		c.mu.Lock()
		// Re-check under the write lock; another Put may have refreshed it.
		if cur, ok := c.entries[key]; ok && c.now().After(cur.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return nil, false
	}
	return e.results, true
}

// Put implements Cache.
func (c *Memory) Put(_ context.Context, key string, results []model.ScoredRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxEntries {
		c.evictSoonest()
	}
	c.entries[key] = memoryEntry{
		results:   results,
		expiresAt: c.now().Add(c.ttl),
	}
	metrics.UpdateCacheEntries(len(c.entries))
}

// Len implements Cache.
func (c *Memory) Len(_ context.Context) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// evictSoonest removes the entry closest to expiry. Must be called with
// c.mu held for writing.
func (c *Memory) evictSoonest() {
	var victim string
	var soonest time.Time
	for key, e := range c.entries {
		if victim == "" || e.expiresAt.Before(soonest) {
			victim = key
			soonest = e.expiresAt
		}
	}
	if victim != "" {
		delete(c.entries, victim)
	}
}
