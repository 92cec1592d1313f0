// Package counter provides map increment helpers and a generic occurrence
// counter that remembers insertion order.
package counter

import (
	"cmp"
	"slices"
)

// Increment adds amount to m[key], starting from zero for a missing key.
// m must be non-nil.
func Increment[K comparable](m map[K]int, key K, amount int) {
	m[key] += amount
}

// Counter counts occurrences of keys. The zero value is ready to use.
// A Counter is not safe for concurrent use.
type Counter[K comparable] struct {
	counts map[K]int
	order  []K
}

// Entry is one key and its count.
type Entry[K comparable] struct {
	Key   K
	Count int
}

// New returns a Counter pre-loaded with one occurrence per element of keys.
func New[K comparable](keys ...K) *Counter[K] {
	c := &Counter[K]{}
	for _, k := range keys {
		c.Inc(k)
	}
	return c
}

// Add adds amount (possibly negative) to key's count.
func (c *Counter[K]) Add(key K, amount int) {
	if c.counts == nil {
		c.counts = make(map[K]int)
	}
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	Increment(c.counts, key, amount)
}

// Inc adds one to key's count.
func (c *Counter[K]) Inc(key K) {
	c.Add(key, 1)
}

// Get returns key's count, zero if it was never added.
func (c *Counter[K]) Get(key K) int {
	return c.counts[key]
}

// Len returns the number of distinct keys seen.
func (c *Counter[K]) Len() int {
	return len(c.order)
}

// Entries returns every key with its count, in first-insertion order.
func (c *Counter[K]) Entries() []Entry[K] {
	out := make([]Entry[K], len(c.order))
	for i, k := range c.order {
		out[i] = Entry[K]{Key: k, Count: c.counts[k]}
	}
	return out
}

// MostCommon returns the n entries with the highest counts, ties broken by
// first insertion. n < 0 returns every entry.
func (c *Counter[K]) MostCommon(n int) []Entry[K] {
	entries := c.Entries()
	slices.SortStableFunc(entries, func(a, b Entry[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if n >= 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
