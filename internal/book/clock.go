package book

import "time"

// Clock supplies "today" to the upcoming birthdays query.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system wall clock.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant. It backs the -today flag.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
