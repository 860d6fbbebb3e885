package main

import (
	"testing"
	"time"

	"timelog/internal/core/model"
	"timelog/internal/core/stopwatch"
	"timelog/internal/core/stopwatch/testutil"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLifecycle struct {
	onStopped func()
}

func (f *fakeLifecycle) SetOnStopped(fn func()) { f.onStopped = fn }

func TestRecordOnExitStopsRunningTimer(t *testing.T) {
	clock := testutil.NewFakeClock(time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
	scheduler := &testutil.FakeScheduler{}
	logger, hook := logtest.NewNullLogger()
	timer := stopwatch.New(model.StopwatchConfig{}, clock, scheduler, nil, logger)
	events := &fakeLifecycle{}

	recordOnExit(events, timer)
	timer.Start()
	clock.Advance(5 * time.Second)

	require.NotNil(t, events.onStopped)
	events.onStopped()

	assert.False(t, timer.Running())
	assert.Zero(t, scheduler.Pending())
	require.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, "Stopped.", hook.AllEntries()[1].Message)
	assert.Equal(t, int64(5), hook.LastEntry().Data["seconds"])
}

func TestRecordOnExitWhenStopped(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	timer := stopwatch.New(model.StopwatchConfig{}, nil, &testutil.FakeScheduler{}, nil, logger)
	events := &fakeLifecycle{}

	recordOnExit(events, timer)
	events.onStopped()

	assert.Empty(t, hook.AllEntries())
}
