package stopwatch

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Breakdown is an elapsed duration split into days, hours, minutes and seconds.
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose truncates elapsed to whole seconds and splits it using fixed
// 24-hour days. Negative durations decompose to zero.
func Decompose(elapsed time.Duration) Breakdown {
	if elapsed < 0 {
		elapsed = 0
	}
	total := int64(elapsed / time.Second)
	return Breakdown{
		Days:    total / secondsPerDay,
		Hours:   total / secondsPerHour % 24,
		Minutes: total / secondsPerMinute % 60,
		Seconds: total % 60,
	}
}

// IsZero reports whether every field is zero.
func (breakdown Breakdown) IsZero() bool {
	return breakdown == Breakdown{}
}

// String renders the breakdown as "1d 02:03:04".
func (breakdown Breakdown) String() string {
	return fmt.Sprintf("%dd %02d:%02d:%02d", breakdown.Days, breakdown.Hours, breakdown.Minutes, breakdown.Seconds)
}
