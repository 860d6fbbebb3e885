package stopwatch

import "time"

// State represents whether the stopwatch is accumulating time.
type State string

const (
	StateStopped State = "stopped"
	StateRunning State = "running"
)

// Clock supplies the current time. Readings must carry a monotonic component.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Handle identifies a scheduled callback.
type Handle interface {
	// Cancel prevents the callback from running. Once Cancel returns on the
	// event loop the callback is never invoked.
	Cancel()
}

// Scheduler runs callbacks on the event loop after a delay.
type Scheduler interface {
	After(delay time.Duration, callback func()) Handle
}

// Display shows the latest decomposed duration.
type Display interface {
	SetTime(Breakdown)
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(Breakdown)

// SetTime calls fn.
func (fn DisplayFunc) SetTime(breakdown Breakdown) { fn(breakdown) }

// StateListener is notified after start, stop and reset.
type StateListener func(state State, elapsed time.Duration)
