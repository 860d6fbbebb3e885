package stopwatch

import (
	"io"
	"time"

	"timelog/internal/core/model"

	"github.com/sirupsen/logrus"
)

// ElapsedTimer is a start/stop/reset stopwatch that redraws a Display while
// running and records transitions to a log.
//
// All methods, including the scheduled tick, must be called from the same
// event loop goroutine.
type ElapsedTimer struct {
	config    model.StopwatchConfig
	clock     Clock
	scheduler Scheduler
	display   Display
	log       logrus.FieldLogger
	listeners []StateListener

	running        bool
	startReference time.Time
	elapsed        time.Duration
	pending        Handle
}

// New creates a stopped ElapsedTimer with zero elapsed time. The scheduler is
// required; a nil clock, display or log falls back to the system clock, no
// display and a discarding logger.
func New(config model.StopwatchConfig, clock Clock, scheduler Scheduler, display Display, log logrus.FieldLogger) *ElapsedTimer {
	if scheduler == nil {
		panic("stopwatch: nil Scheduler")
	}
	if config.TickInterval <= 0 {
		config.TickInterval = model.DefaultTickInterval
	}
	if clock == nil {
		clock = SystemClock{}
	}
	if display == nil {
		display = DisplayFunc(func(Breakdown) {})
	}
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	return &ElapsedTimer{
		config:    config,
		clock:     clock,
		scheduler: scheduler,
		display:   display,
		log:       log,
	}
}

// OnStateChange registers a listener for start, stop and reset.
func (timer *ElapsedTimer) OnStateChange(listener StateListener) {
	timer.listeners = append(timer.listeners, listener)
}

// Running reports whether the timer is accumulating time.
func (timer *ElapsedTimer) Running() bool {
	return timer.running
}

// Elapsed returns the last computed elapsed duration.
func (timer *ElapsedTimer) Elapsed() time.Duration {
	return timer.elapsed
}

// Breakdown returns the last computed elapsed duration decomposed.
func (timer *ElapsedTimer) Breakdown() Breakdown {
	return Decompose(timer.elapsed)
}

// Start resumes accumulating from the current elapsed value. It is ignored
// while running.
func (timer *ElapsedTimer) Start() {
	if timer.running {
		return
	}
	timer.startReference = timer.clock.Now().Add(-timer.elapsed)
	timer.running = true
	timer.tick()

	timer.log.Info("Started.")
	timer.notify(StateRunning)
}

// Stop freezes the elapsed value. It is ignored while stopped.
func (timer *ElapsedTimer) Stop() {
	if !timer.running {
		return
	}
	timer.pending.Cancel()
	timer.pending = nil

	timer.elapsed = timer.sinceStart()
	breakdown := Decompose(timer.elapsed)
	timer.display.SetTime(breakdown)
	timer.running = false

	timer.log.Info("Stopped.")
	timer.log.WithFields(logrus.Fields{
		"days":    breakdown.Days,
		"hours":   breakdown.Hours,
		"minutes": breakdown.Minutes,
		"seconds": breakdown.Seconds,
	}).Info("Elapsed")
	timer.notify(StateStopped)
}

// Reset zeroes a stopped timer. It is ignored while running or when no time
// has been accumulated.
func (timer *ElapsedTimer) Reset() {
	if timer.running || timer.elapsed == 0 {
		return
	}
	timer.elapsed = 0
	timer.display.SetTime(Breakdown{})

	timer.log.Info("Reset.")
	timer.notify(StateStopped)
}

func (timer *ElapsedTimer) tick() {
	if !timer.running {
		return
	}
	timer.elapsed = timer.sinceStart()
	timer.display.SetTime(Decompose(timer.elapsed))
	timer.pending = timer.scheduler.After(timer.config.TickInterval, timer.tick)
}

func (timer *ElapsedTimer) sinceStart() time.Duration {
	elapsed := timer.clock.Now().Sub(timer.startReference)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

func (timer *ElapsedTimer) notify(state State) {
	for _, listener := range timer.listeners {
		listener(state, timer.elapsed)
	}
}
