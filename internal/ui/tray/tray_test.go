package tray

import (
	"testing"
	"time"

	"timelog/internal/core/stopwatch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	menu  *fyne.Menu
	icons []fyne.Resource
}

func (host *fakeHost) SetSystemTrayMenu(menu *fyne.Menu)    { host.menu = menu }
func (host *fakeHost) SetSystemTrayIcon(icon fyne.Resource) { host.icons = append(host.icons, icon) }

func itemByLabel(menu *fyne.Menu, label string) *fyne.MenuItem {
	for _, item := range menu.Items {
		if item.Label == label {
			return item
		}
	}
	return nil
}

func newHost(t *testing.T) *fakeHost {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	return &fakeHost{}
}

func TestMenuInvokesCallbacks(t *testing.T) {
	host := newHost(t)
	var calls []string
	New(host, Callbacks{
		OnShow:  func() { calls = append(calls, "show") },
		OnStart: func() { calls = append(calls, "start") },
		OnStop:  func() { calls = append(calls, "stop") },
		OnReset: func() { calls = append(calls, "reset") },
		OnQuit:  func() { calls = append(calls, "quit") },
	})
	require.NotNil(t, host.menu)

	for _, label := range []string{"Show", "Start", "Stop", "Reset", "Quit"} {
		item := itemByLabel(host.menu, label)
		require.NotNil(t, item, label)
		item.Action()
	}

	assert.Equal(t, []string{"show", "start", "stop", "reset", "quit"}, calls)
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	host := newHost(t)
	New(host, Callbacks{})

	assert.NotPanics(t, func() {
		itemByLabel(host.menu, "Start").Action()
	})
}

func TestSetState(t *testing.T) {
	host := newHost(t)
	manager := New(host, Callbacks{})

	start := itemByLabel(host.menu, "Start")
	stop := itemByLabel(host.menu, "Stop")
	reset := itemByLabel(host.menu, "Reset")

	assert.Equal(t, "Status: stopped at 0d 00:00:00", manager.Menu().Items[0].Label)
	assert.False(t, start.Disabled)
	assert.True(t, stop.Disabled)
	assert.True(t, reset.Disabled)

	manager.SetState(stopwatch.StateRunning, 0)
	assert.Equal(t, "Status: running", manager.Menu().Items[0].Label)
	assert.True(t, start.Disabled)
	assert.False(t, stop.Disabled)

	manager.SetState(stopwatch.StateStopped, 90061*time.Second)
	assert.Equal(t, "Status: stopped at 1d 01:01:01", manager.Menu().Items[0].Label)
	assert.False(t, reset.Disabled)
	assert.Len(t, host.icons, 3)
}
