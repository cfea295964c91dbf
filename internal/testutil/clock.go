// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"sync"
	"time"
)

type (
	// Clock abstracts time reads for deterministic testing.
	// Production code uses RealClock; tests use FakeClock.
	Clock interface {
		// Now returns the current time.
		Now() time.Time
	}

	// RealClock implements Clock using actual system time.
	// This is the default for production code.
	RealClock struct{}

	// FakeClock implements Clock with manually controlled time for testing.
	// Time only advances when Advance() or Set() is called.
	FakeClock struct {
		mu      sync.Mutex
		current time.Time
	}
)

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// NewFakeClock creates a FakeClock initialized to the given time.
// If initial is zero, defaults to a fixed reference time for reproducibility.
func NewFakeClock(initial time.Time) *FakeClock {
	if initial.IsZero() {
		initial = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	}
	return &FakeClock{current: initial}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Advance moves the fake time forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

// Set sets the fake time to t.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}
