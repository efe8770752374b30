package playfield

import "time"

// Clock is a monotonic tick source measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// MonotonicClock reads wall time elapsed since it was created.
type MonotonicClock struct {
	origin time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{origin: time.Now()}
}

func (c *MonotonicClock) Now() time.Duration {
	return time.Since(c.origin)
}

// ManualClock only moves when told to. Used by tests and headless runs.
type ManualClock struct {
	now time.Duration
}

func (c *ManualClock) Now() time.Duration {
	return c.now
}

// Advance moves the clock forward by d and returns the new reading.
func (c *ManualClock) Advance(d time.Duration) time.Duration {
	c.now += d
	return c.now
}

// Set jumps the clock to an absolute reading.
func (c *ManualClock) Set(now time.Duration) {
	c.now = now
}
