package kernel

import (
	"sync"
	"time"
)

// Clock supplies timestamps so that tests can pin time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant until advanced. Safe for concurrent use.
type FixedClock struct {
	mu sync.Mutex
	at time.Time
}

func NewFixedClock(at time.Time) *FixedClock {
	return &FixedClock{at: at}
}

func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.at
}

// Advance moves the clock forward by d.
func (c *FixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.at = c.at.Add(d)
	c.mu.Unlock()
}
