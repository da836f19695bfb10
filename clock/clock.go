// Package clock implements a Lamport logical clock.
package clock

import "sync"

// Clock is a monotonically increasing logical clock safe for concurrent use.
// The zero value starts at 0, as required by the algorithm.
type Clock struct {
	mu sync.Mutex
	ts int64
}

// New returns a Clock starting at 0.
func New() *Clock {
	return &Clock{}
}

// Tick advances the clock for a local event and returns the new value.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ts++
	return c.ts
}

// Merge advances the clock on receipt of a message carrying remoteTs,
// per the Lamport rule: ts = max(ts, remoteTs) + 1. It returns the new value.
func (c *Clock) Merge(remoteTs int64) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if remoteTs > c.ts {
		c.ts = remoteTs
	}
	c.ts++
	return c.ts
}

// Peek returns the current value without advancing the clock.
func (c *Clock) Peek() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ts
}
