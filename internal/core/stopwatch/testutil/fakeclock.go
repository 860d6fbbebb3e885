package testutil

import (
	"time"

	"timelog/internal/core/stopwatch"
)

// FakeClock is a manually advanced clock.
type FakeClock struct {
	current time.Time
}

var _ stopwatch.Clock = new(FakeClock)

// NewFakeClock returns a clock reading start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{current: start}
}

func (f *FakeClock) Now() time.Time { return f.current }

// Advance moves the clock forward by d.
func (f *FakeClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
