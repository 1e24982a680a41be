// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cache provides a bounded LRU map for per-zoom resources such as
// font faces, which would otherwise accumulate one entry per zoom level.
package cache

// LRU maps keys to values, evicting the least recently used entry once
// more than limit entries are held. It is not safe for concurrent use.
//
// Recency is a use stamp per entry; eviction scans for the oldest stamp,
// which is linear in limit. Limits are expected to be small.
type LRU[K comparable, V any] struct {
	limit     int
	entries   map[K]*entry[V]
	clock     uint64
	evictions int
}

type entry[V any] struct {
	value V
	used  uint64
}

// New returns an LRU holding at most limit entries. A limit below 1 is
// treated as 1.
func New[K comparable, V any](limit int) *LRU[K, V] {
	if limit < 1 {
		limit = 1
	}
	return &LRU[K, V]{limit: limit, entries: make(map[K]*entry[V], limit+1)}
}

func (c *LRU[K, V]) tick() uint64 {
	c.clock++
	return c.clock
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	e.used = c.tick()
	return e.value, true
}

// GetOrCreate returns the cached value for key, calling create on a miss.
func (c *LRU[K, V]) GetOrCreate(key K, create func() V) V {
	if v, ok := c.Get(key); ok {
		return v
	}
	v := create()
	c.entries[key] = &entry[V]{value: v, used: c.tick()}
	for len(c.entries) > c.limit {
		c.evictOldest()
	}
	return v
}

func (c *LRU[K, V]) evictOldest() {
	var (
		oldest K
		stamp  uint64
		found  bool
	)
	for k, e := range c.entries {
		if !found || e.used < stamp {
			oldest, stamp, found = k, e.used, true
		}
	}
	if found {
		delete(c.entries, oldest)
		c.evictions++
	}
}

// Len returns the number of entries.
func (c *LRU[K, V]) Len() int { return len(c.entries) }

// Evictions returns how many entries were dropped for space.
func (c *LRU[K, V]) Evictions() int { return c.evictions }

// Clear drops every entry.
func (c *LRU[K, V]) Clear() { clear(c.entries) }
