package preferences

import (
	"timelog/internal/core/model"
	"timelog/internal/logging"
)

// Settings defines user preferences stored on disk.
type Settings struct {
	LogFile     string
	TrayEnabled bool
}

// DefaultSettings returns default settings for TimeLogger.
func DefaultSettings() Settings {
	return Settings{
		LogFile:     "timelog.log",
		TrayEnabled: true,
	}
}

// LogConfig converts settings to the log sink configuration.
func (settings Settings) LogConfig() model.LogConfig {
	return model.LogConfig{
		Path:            settings.LogFile,
		TimestampFormat: logging.TimestampFormat,
	}
}

// StopwatchConfig returns the timer configuration. The tick interval is fixed.
func (settings Settings) StopwatchConfig() model.StopwatchConfig {
	return model.StopwatchConfig{TickInterval: model.DefaultTickInterval}
}
