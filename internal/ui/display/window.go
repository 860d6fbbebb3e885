package display

import (
	"strconv"
	"time"

	"timelog/internal/core/stopwatch"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Callbacks defines control handlers.
type Callbacks struct {
	OnStart func()
	OnStop  func()
	OnReset func()
	OnClose func()
}

type field struct {
	name  string
	value func(stopwatch.Breakdown) int64
}

// fields lists the displayed units left to right.
var fields = []field{
	{"Days", func(b stopwatch.Breakdown) int64 { return b.Days }},
	{"Hours", func(b stopwatch.Breakdown) int64 { return b.Hours }},
	{"Minutes", func(b stopwatch.Breakdown) int64 { return b.Minutes }},
	{"Seconds", func(b stopwatch.Breakdown) int64 { return b.Seconds }},
}

// Window shows the elapsed time and the Start, Stop and Reset controls.
type Window struct {
	window      fyne.Window
	values      []*widget.Label
	startButton *widget.Button
	stopButton  *widget.Button
	resetButton *widget.Button
	callbacks   Callbacks
}

var _ stopwatch.Display = (*Window)(nil)

// New creates the stopwatch window.
func New(app fyne.App, title string, callbacks Callbacks) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	display := &Window{
		window:    window,
		callbacks: callbacks,
	}

	row := container.NewHBox()
	for _, field := range fields {
		value := widget.NewLabelWithStyle("0", fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
		display.values = append(display.values, value)
		row.Add(widget.NewLabel(field.name + ": "))
		row.Add(value)
	}

	display.startButton = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), display.start)
	display.stopButton = widget.NewButtonWithIcon("Stop", theme.MediaStopIcon(), display.stop)
	display.resetButton = widget.NewButtonWithIcon("Reset", theme.MediaReplayIcon(), display.reset)
	row.Add(display.startButton)
	row.Add(display.stopButton)
	row.Add(display.resetButton)

	window.SetContent(container.NewPadded(row))
	window.SetFixedSize(true)
	window.Canvas().SetOnTypedRune(display.handleRune)
	window.SetCloseIntercept(func() {
		if display.callbacks.OnClose != nil {
			display.callbacks.OnClose()
			return
		}
		window.Close()
	})

	display.SetState(stopwatch.StateStopped, 0)
	return display
}

// Show displays the window.
func (display *Window) Show() {
	display.window.Show()
	display.window.RequestFocus()
}

// Hide hides the window without stopping the timer.
func (display *Window) Hide() {
	display.window.Hide()
}

// SetTime updates the four fields.
func (display *Window) SetTime(breakdown stopwatch.Breakdown) {
	for i, field := range fields {
		display.values[i].SetText(strconv.FormatInt(field.value(breakdown), 10))
	}
}

// SetState enables only the controls that would have an effect.
func (display *Window) SetState(state stopwatch.State, elapsed time.Duration) {
	running := state == stopwatch.StateRunning
	setEnabled(display.startButton, !running)
	setEnabled(display.stopButton, running)
	setEnabled(display.resetButton, !running && elapsed != 0)
}

// Text returns the rendered value of the named field, or "" when unknown.
func (display *Window) Text(name string) string {
	for i, field := range fields {
		if field.name == name {
			return display.values[i].Text
		}
	}
	return ""
}

func (display *Window) start() {
	if display.callbacks.OnStart != nil {
		display.callbacks.OnStart()
	}
}

func (display *Window) stop() {
	if display.callbacks.OnStop != nil {
		display.callbacks.OnStop()
	}
}

func (display *Window) reset() {
	if display.callbacks.OnReset != nil {
		display.callbacks.OnReset()
	}
}

func (display *Window) handleRune(r rune) {
	switch r {
	case 's', 'S':
		display.start()
	case 'p', 'P':
		display.stop()
	case 'r', 'R':
		display.reset()
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
