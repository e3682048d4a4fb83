// Package dedup guards against redelivered webhook messages. The platform
// retries aggressively on timeout, so the same message id can arrive more
// than once.
package dedup

import "sync"

// DefaultCapacity bounds the cache when no explicit capacity is given.
const DefaultCapacity = 10000

// Cache is a bounded membership set over message ids. When the number of
// recorded ids exceeds the capacity the whole set is dropped instead of
// evicting selectively, so a redelivery right after a reset can slip
// through. That window is accepted; the cache only has to catch the
// platform's short-interval retries.
type Cache struct {
	mu       sync.Mutex
	seen     map[string]struct{}
	capacity int
}

// NewCache creates a cache that resets after capacity entries. A capacity
// of zero or less falls back to DefaultCapacity.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Cache{
		seen:     make(map[string]struct{}),
		capacity: capacity,
	}
}

// Seen reports whether id was already recorded and records it if not.
// Test-and-set under one lock, so two concurrent deliveries of the same id
// cannot both pass. An empty id is never deduplicated.
func (c *Cache) Seen(id string) bool {
	if id == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.seen[id]; ok {
		return true
	}

	if len(c.seen) >= c.capacity {
		c.seen = make(map[string]struct{})
	}
	c.seen[id] = struct{}{}
	return false
}

// Len returns the current number of recorded ids.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}
