// SPDX-License-Identifier: MIT
// memo.go: append-only memo tables.

package orlikterao

import (
	"sync"
	"sync/atomic"
)

// memo is a map guarded by a RWMutex with insert-if-absent semantics.
// Entries are never replaced or evicted.
type memo[K comparable, V any] struct {
	mu     sync.RWMutex
	m      map[K]V
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newMemo[K comparable, V any]() *memo[K, V] {
	return &memo[K, V]{m: make(map[K]V)}
}

// get looks k up and records a hit or a miss.
func (c *memo[K, V]) get(k K) (V, bool) {
	v, ok := c.peek(k)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

// peek looks k up without touching the counters.
func (c *memo[K, V]) peek(k K) (V, bool) {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	return v, ok
}

// putIfAbsent stores v unless k is present and returns the stored value.
func (c *memo[K, V]) putIfAbsent(k K, v V) V {
	c.mu.Lock()
	defer c.mu.Unlock()
	if old, ok := c.m[k]; ok {
		return old
	}
	c.m[k] = v
	return v
}

func (c *memo[K, V]) stats() CacheStats {
	c.mu.RLock()
	n := len(c.m)
	c.mu.RUnlock()
	return CacheStats{Entries: n, Hits: c.hits.Load(), Misses: c.misses.Load()}
}
