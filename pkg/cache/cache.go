// Package cache provides a process-local TTL cache used by the feed fetcher
// and the content extractor. Entries are never evicted; staleness is decided
// at read time so callers can fall back to expired data when a refresh fails.
package cache

import (
	"sync"
	"time"
)

// entry associates cached data with its capture time
type entry[T any] struct {
	value    T
	captured time.Time
}

// Cache is a string-keyed TTL cache. A zero value is not usable, construct
// with New.
type Cache[T any] struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]entry[T]
	now     func() time.Time // injectable for tests
}

// New creates a cache with the given freshness window
func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		ttl:     ttl,
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

// Get returns the cached value for key. fresh reports whether the entry is
// within the TTL window, ok whether any entry exists at all. Stale entries
// are returned as-is, the caller decides whether to use them.
func (c *Cache[T]) Get(key string) (val T, fresh, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok {
		return val, false, false
	}
	return e.value, c.now().Sub(e.captured) < c.ttl, true
}

// Set stores a value under key, resetting its capture time. Concurrent
// writers on the same key race benignly, last writer wins.
func (c *Cache[T]) Set(key string, val T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: val, captured: c.now()}
}

// Len returns the number of entries, fresh or stale
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
