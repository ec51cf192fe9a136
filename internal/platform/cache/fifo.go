// Package cache provides a small bounded in-memory key value store with
// insertion-order eviction
package cache

import "sync"

// FIFO is a fixed-capacity store that evicts the oldest-inserted entry when
// full. Eviction order is insertion order, not recency of use: reading an
// entry never extends its life. Get/Put/Clear take an internal lock so a
// concurrent caller cannot interleave eviction and insertion
type FIFO[K comparable, V any] struct {
	mu    sync.Mutex
	cap   int
	vals  map[K]V
	order []K
}

// NewFIFO creates a cache holding at most capacity entries.
// A capacity below one is clamped to one
func NewFIFO[K comparable, V any](capacity int) *FIFO[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &FIFO[K, V]{
		cap:   capacity,
		vals:  make(map[K]V, capacity),
		order: make([]K, 0, capacity),
	}
}

// Get returns the cached value for k if present
func (c *FIFO[K, V]) Get(k K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.vals[k]
	return v, ok
}

// Put stores v under k. An existing key is overwritten in place and keeps its
// original insertion position. A new key evicts the oldest entry first when
// the cache is at capacity
func (c *FIFO[K, V]) Put(k K, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.vals[k]; ok {
		c.vals[k] = v
		return
	}
	if len(c.order) >= c.cap {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.vals, oldest)
	}
	c.vals[k] = v
	c.order = append(c.order, k)
}

// Len returns the number of cached entries
func (c *FIFO[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.vals)
}

// Clear empties the cache unconditionally
func (c *FIFO[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals = make(map[K]V, c.cap)
	c.order = c.order[:0]
}
