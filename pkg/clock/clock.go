package clock

import "time"

// Clock supplies the current time to services so tests can pin it.
type Clock interface {
	// Now is the current instant.
	Now() time.Time
	// Today is the current calendar date, truncated to midnight UTC.
	Today() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

func (systemClock) Today() time.Time {
	return Midnight(time.Now().UTC())
}

// System is the real wall clock.
func System() Clock {
	return systemClock{}
}

// Midnight truncates t to the start of its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Fixed is a clock pinned to a single instant, for tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Today() time.Time {
	return Midnight(f.Instant)
}
