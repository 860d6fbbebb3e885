package eventloop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loop is a single-goroutine stand-in for the UI thread: the test goroutine
// drains queued work.
type loop struct {
	queue chan func()
}

func newLoop() *loop {
	return &loop{queue: make(chan func(), 16)}
}

func (l *loop) dispatch(fn func()) {
	l.queue <- fn
}

func (l *loop) runOne(t *testing.T) {
	t.Helper()
	select {
	case fn := <-l.queue:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatal("no callback delivered")
	}
}

func TestAfterDeliversOnLoop(t *testing.T) {
	l := newLoop()
	scheduler := New(l.dispatch)

	calls := 0
	scheduler.After(time.Millisecond, func() { calls++ })

	l.runOne(t)
	assert.Equal(t, 1, calls)
}

func TestCancelBeforeExpiry(t *testing.T) {
	l := newLoop()
	scheduler := New(l.dispatch)

	calls := 0
	handle := scheduler.After(50*time.Millisecond, func() { calls++ })
	handle.Cancel()

	select {
	case fn := <-l.queue:
		fn()
	case <-time.After(150 * time.Millisecond):
	}
	assert.Zero(t, calls)
}

func TestCancelDiscardsQueuedCallback(t *testing.T) {
	l := newLoop()
	scheduler := New(l.dispatch)

	calls := 0
	handle := scheduler.After(time.Millisecond, func() { calls++ })

	var queued func()
	select {
	case queued = <-l.queue:
	case <-time.After(2 * time.Second):
		t.Fatal("timer never fired")
	}
	handle.Cancel()
	queued()

	assert.Zero(t, calls)
}

func TestCallbacksRunInScheduleOrder(t *testing.T) {
	l := newLoop()
	scheduler := New(l.dispatch)

	var order []int
	scheduler.After(time.Millisecond, func() { order = append(order, 1) })
	scheduler.After(40*time.Millisecond, func() { order = append(order, 2) })

	l.runOne(t)
	l.runOne(t)
	require.Len(t, order, 2)
	assert.Equal(t, []int{1, 2}, order)
}
