// File: cache.go
// Title: Compiled Pattern Cache
// Description: Bounded, thread-safe cache of compiled matchers keyed by
//              pattern and locale fingerprint. Entries expire after a TTL;
//              at capacity the oldest entry is evicted.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial implementation

package timex

import (
	"sync"
	"sync/atomic"
	"time"
)

type cacheEntry struct {
	matcher *Matcher
	created time.Time
}

// Cache stores compiled matchers. The zero value is not usable; use
// NewCache.
type Cache struct {
	mu       sync.RWMutex
	items    map[string]cacheEntry
	maxItems int
	ttl      time.Duration
	now      func() time.Time

	hits   atomic.Int64
	misses atomic.Int64
}

// CacheStats is a snapshot of cache counters
type CacheStats struct {
	Size   int
	Hits   int64
	Misses int64
}

// HitRate returns hits / (hits + misses), or 0 without lookups
func (s CacheStats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// NewCache creates a cache holding at most maxItems matchers for ttl each.
// A ttl of 0 keeps entries until they are evicted.
func NewCache(maxItems int, ttl time.Duration) *Cache {
	if maxItems <= 0 {
		maxItems = 128
	}
	return &Cache{
		items:    make(map[string]cacheEntry),
		maxItems: maxItems,
		ttl:      ttl,
		now:      time.Now,
	}
}

func cacheKey(pattern, fingerprint string) string {
	return pattern + "\x00" + fingerprint
}

// Get returns the matcher stored under key
func (c *Cache) Get(key string) (*Matcher, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()

	if !ok || c.expired(e) {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return e.matcher, true
}

// Put stores m under key
func (c *Cache) Put(key string, m *Matcher) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evictLocked()
	}
	c.items[key] = cacheEntry{matcher: m, created: c.now()}
}

// Clear removes every entry
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]cacheEntry)
}

// Stats returns the current counters
func (c *Cache) Stats() CacheStats {
	c.mu.RLock()
	size := len(c.items)
	c.mu.RUnlock()
	return CacheStats{Size: size, Hits: c.hits.Load(), Misses: c.misses.Load()}
}

func (c *Cache) expired(e cacheEntry) bool {
	return c.ttl > 0 && c.now().Sub(e.created) > c.ttl
}

// evictLocked drops expired entries, or the oldest one if none expired
func (c *Cache) evictLocked() {
	var oldestKey string
	var oldest time.Time
	removed := false
	for k, e := range c.items {
		if c.expired(e) {
			delete(c.items, k)
			removed = true
			continue
		}
		if oldestKey == "" || e.created.Before(oldest) {
			oldestKey, oldest = k, e.created
		}
	}
	if !removed && oldestKey != "" {
		delete(c.items, oldestKey)
	}
}
