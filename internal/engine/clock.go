package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Navigator reads it on every rebuild to decide which cell is "today".
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the host's local wall clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
// It backs the -print mode tests and any caller that wants a frozen "today".
type FixedClock time.Time

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
