package model

import "time"

// DefaultTickInterval is the redraw period of a running stopwatch.
const DefaultTickInterval = 50 * time.Millisecond

// StopwatchConfig contains runtime settings for the elapsed timer.
type StopwatchConfig struct {
	TickInterval time.Duration
}

// LogConfig describes the append-only event log.
type LogConfig struct {
	Path            string
	TimestampFormat string
}
