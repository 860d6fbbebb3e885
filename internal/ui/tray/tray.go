package tray

import (
	"fmt"
	"time"

	"timelog/internal/core/stopwatch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Host is the part of desktop.App the tray needs.
type Host interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow  func()
	OnStart func()
	OnStop  func()
	OnReset func()
	OnQuit  func()
}

// Manager handles system tray state.
type Manager struct {
	host       Host
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
	resetItem  *fyne.MenuItem
	menu       *fyne.Menu
	running    bool
}

// New creates a tray manager with the provided callbacks.
func New(host Host, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.startItem = fyne.NewMenuItem("Start", invoke(callbacks.OnStart))
	manager.stopItem = fyne.NewMenuItem("Stop", invoke(callbacks.OnStop))
	manager.resetItem = fyne.NewMenuItem("Reset", invoke(callbacks.OnReset))

	manager.menu = fyne.NewMenu("TimeLogger",
		manager.statusItem,
		fyne.NewMenuItem("Show", invoke(callbacks.OnShow)),
		fyne.NewMenuItemSeparator(),
		manager.startItem,
		manager.stopItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", invoke(callbacks.OnQuit)),
	)
	manager.SetState(stopwatch.StateStopped, 0)

	return manager
}

// SetState updates the status line, icon and enabled items.
func (manager *Manager) SetState(state stopwatch.State, elapsed time.Duration) {
	manager.running = state == stopwatch.StateRunning
	manager.statusItem.Label = statusLabel(state, elapsed)
	manager.startItem.Disabled = manager.running
	manager.stopItem.Disabled = !manager.running
	manager.resetItem.Disabled = manager.running || elapsed == 0

	if manager.running {
		manager.host.SetSystemTrayIcon(theme.MediaPlayIcon())
	} else {
		manager.host.SetSystemTrayIcon(theme.MediaPauseIcon())
	}
	manager.host.SetSystemTrayMenu(manager.menu)
}

// Menu returns the tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

func statusLabel(state stopwatch.State, elapsed time.Duration) string {
	breakdown := stopwatch.Decompose(elapsed)
	if state == stopwatch.StateRunning {
		return "Status: running"
	}
	return fmt.Sprintf("Status: stopped at %s", breakdown)
}

func invoke(handler func()) func() {
	return func() {
		if handler != nil {
			handler()
		}
	}
}
