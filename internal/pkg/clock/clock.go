// Package clock provides time utilities for the application
package clock

import (
	"sync"
	"time"
)

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Stepped is a deterministic clock that advances by a fixed step on every call
type Stepped struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewStepped returns a clock starting at start and advancing step per Now call
func NewStepped(start time.Time, step time.Duration) *Stepped {
	return &Stepped{now: start, step: step}
}

// Now returns the current reading and advances the clock
func (c *Stepped) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now
	c.now = c.now.Add(c.step)
	return now
}
