package cache

import "time"

// Clock abstracts time so entry expiry can be tested deterministically.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FakeClock implements Clock with a controllable time for tests.
type FakeClock struct {
	current time.Time
}

// NewFakeClock creates a FakeClock starting at the given time.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

// Now returns the fake's current time.
func (c *FakeClock) Now() time.Time { return c.current }

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }
