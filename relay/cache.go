package relay

import (
	"sync"
	"sync/atomic"
)

// Cache memoizes Transition costs. Safe for concurrent use.
//
// Entries are write-once: Put never replaces an existing value, so the first
// insertion for a key is final and later readers all see it. Nothing is ever
// evicted; the key space is |alphabet|²×(maxLevel+1).
type Cache struct {
	mu      sync.RWMutex
	entries map[Transition]int64

	hits   atomic.Uint64
	misses atomic.Uint64
}

// CacheStats is a point-in-time snapshot of a Cache.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Transition]int64)}
}

// Get returns the cached cost of t.
// Complexity: O(1).
func (c *Cache) Get(t Transition) (int64, bool) {
	c.mu.RLock()
	v, ok := c.entries[t]
	c.mu.RUnlock()
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// Put stores v for t unless t is already present, and returns the value
// that is now cached for t.
// Complexity: O(1).
func (c *Cache) Put(t Transition, v int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.entries[t]; ok {
		return old
	}
	c.entries[t] = v
	return v
}

// Len returns the number of cached transitions.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns entry and lookup counters.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Entries: c.Len(),
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
	}
}
