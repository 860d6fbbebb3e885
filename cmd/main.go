package main

import (
	"log"

	"timelog/internal/core/stopwatch"
	"timelog/internal/eventloop"
	"timelog/internal/logging"
	"timelog/internal/platform"
	"timelog/internal/storage"
	"timelog/internal/ui/display"
	"timelog/internal/ui/preferences"
	"timelog/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "TimeLogger"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings := loadSettings()

	eventLog, err := logging.Open(settings.LogConfig())
	if err != nil {
		log.Printf("open log: %v", err)
		return
	}
	defer func() {
		if err := eventLog.Close(); err != nil {
			log.Printf("close log: %v", err)
		}
	}()

	fyneApp := app.NewWithID("com.timelogger.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	desktopApp, hasTray := fyneApp.(desktop.App)
	hasTray = hasTray && settings.TrayEnabled

	var (
		timer  *stopwatch.ElapsedTimer
		window *display.Window
	)
	quit := func() {
		// Record the final elapsed time before the log closes.
		timer.Stop()
		fyneApp.Quit()
	}
	closeWindow := quit
	if hasTray {
		closeWindow = func() { window.Hide() }
	}

	window = display.New(fyneApp, appName, display.Callbacks{
		OnStart: func() { timer.Start() },
		OnStop:  func() { timer.Stop() },
		OnReset: func() { timer.Reset() },
		OnClose: closeWindow,
	})

	timer = stopwatch.New(settings.StopwatchConfig(), stopwatch.SystemClock{}, eventloop.New(fyne.Do), window, eventLog)
	timer.OnStateChange(window.SetState)
	recordOnExit(fyneApp.Lifecycle(), timer)

	if hasTray {
		trayManager := tray.New(desktopApp, tray.Callbacks{
			OnShow:  window.Show,
			OnStart: timer.Start,
			OnStop:  timer.Stop,
			OnReset: timer.Reset,
			OnQuit:  quit,
		})
		timer.OnStateChange(trayManager.SetState)
	}

	window.Show()
	fyneApp.Run()
}

func loadSettings() preferences.Settings {
	settings, found, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
		return settings
	}
	if !found {
		if err := storage.SaveSettings(appName, settings); err != nil {
			log.Printf("save default settings: %v", err)
		}
	}
	return settings
}

// lifecycle is the part of fyne.Lifecycle used to hook application exit.
type lifecycle interface {
	SetOnStopped(func())
}

// recordOnExit stops a running timer when the app stops by any path, so the
// final elapsed time is logged before the log file closes.
func recordOnExit(events lifecycle, timer *stopwatch.ElapsedTimer) {
	events.SetOnStopped(timer.Stop)
}
