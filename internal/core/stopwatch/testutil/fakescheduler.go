package testutil

import (
	"time"

	"timelog/internal/core/stopwatch"
)

// FakeScheduler queues callbacks until a test fires them. It is not safe for
// concurrent use, matching the single event loop it stands in for.
type FakeScheduler struct {
	queue     []*FakeHandle
	scheduled int
}

var _ stopwatch.Scheduler = new(FakeScheduler)

// FakeHandle is a callback queued on a FakeScheduler.
type FakeHandle struct {
	Delay     time.Duration
	callback  func()
	cancelled bool
	owner     *FakeScheduler
}

func (f *FakeScheduler) After(delay time.Duration, callback func()) stopwatch.Handle {
	handle := &FakeHandle{Delay: delay, callback: callback, owner: f}
	f.queue = append(f.queue, handle)
	f.scheduled++
	return handle
}

// Cancel removes the handle from its scheduler's queue.
func (h *FakeHandle) Cancel() {
	if h.cancelled {
		return
	}
	h.cancelled = true
	h.owner.remove(h)
}

// Cancelled reports whether Cancel was called.
func (h *FakeHandle) Cancelled() bool {
	return h.cancelled
}

// Pending returns the number of queued callbacks.
func (f *FakeScheduler) Pending() int {
	return len(f.queue)
}

// Scheduled returns how many callbacks were ever queued.
func (f *FakeScheduler) Scheduled() int {
	return f.scheduled
}

// Next returns the oldest queued handle, or nil.
func (f *FakeScheduler) Next() *FakeHandle {
	if len(f.queue) == 0 {
		return nil
	}
	return f.queue[0]
}

// Fire runs the oldest queued callback and reports whether one ran.
func (f *FakeScheduler) Fire() bool {
	handle := f.Next()
	if handle == nil {
		return false
	}
	f.remove(handle)
	handle.callback()
	return true
}

// Run fires callbacks in order, advancing clock by each delay, until elapsed
// has been covered or the queue drains.
func (f *FakeScheduler) Run(clock *FakeClock, elapsed time.Duration) {
	for elapsed > 0 {
		handle := f.Next()
		if handle == nil {
			clock.Advance(elapsed)
			return
		}
		step := handle.Delay
		if step > elapsed {
			clock.Advance(elapsed)
			return
		}
		clock.Advance(step)
		elapsed -= step
		f.Fire()
	}
}

func (f *FakeScheduler) remove(handle *FakeHandle) {
	for i, queued := range f.queue {
		if queued == handle {
			f.queue = append(f.queue[:i], f.queue[i+1:]...)
			return
		}
	}
}
