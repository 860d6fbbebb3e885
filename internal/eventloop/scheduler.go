package eventloop

import (
	"time"

	"timelog/internal/core/stopwatch"

	"fyne.io/fyne/v2"
)

// Dispatcher runs fn on the event loop goroutine.
type Dispatcher func(fn func())

// Scheduler delivers delayed callbacks on the event loop. Timers fire on
// their own goroutines and are hopped back through the dispatcher.
type Scheduler struct {
	dispatch Dispatcher
}

var _ stopwatch.Scheduler = (*Scheduler)(nil)

// New returns a Scheduler using dispatch, or fyne.Do when dispatch is nil.
func New(dispatch Dispatcher) *Scheduler {
	if dispatch == nil {
		dispatch = fyne.Do
	}
	return &Scheduler{dispatch: dispatch}
}

// After schedules callback to run on the event loop once delay has passed.
func (scheduler *Scheduler) After(delay time.Duration, callback func()) stopwatch.Handle {
	handle := &handle{}
	handle.timer = time.AfterFunc(delay, func() {
		scheduler.dispatch(func() {
			if handle.cancelled {
				return
			}
			handle.cancelled = true
			callback()
		})
	})
	return handle
}

// handle is only touched on the event loop, so a callback already queued
// with the dispatcher still observes a Cancel made before it runs.
type handle struct {
	timer     *time.Timer
	cancelled bool
}

func (handle *handle) Cancel() {
	handle.cancelled = true
	handle.timer.Stop()
}
