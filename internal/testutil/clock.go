// Package testutil provides deterministic helpers for tests: a fixed clock
// and scripted console input.
package testutil

import "time"

// FixedClock is a store.Clock that always reports the same instant, so sale
// dates are stable across test runs and golden files.
type FixedClock struct {
	instant time.Time
}

// NewFixedClock creates a clock pinned to the given instant.
func NewFixedClock(instant time.Time) *FixedClock {
	return &FixedClock{instant: instant}
}

// NewFixedDate creates a clock pinned to midnight UTC of the given date.
func NewFixedDate(year int, month time.Month, day int) *FixedClock {
	return &FixedClock{instant: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Now returns the pinned instant.
func (c *FixedClock) Now() time.Time { return c.instant }
