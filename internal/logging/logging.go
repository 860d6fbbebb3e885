package logging

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"timelog/internal/core/model"

	"github.com/sirupsen/logrus"
)

// TimestampFormat renders times as 03/01/2024 09:05:00 AM.
const TimestampFormat = "01/02/2006 03:04:05 PM"

// ErrNoLogFile indicates the log configuration has no path.
var ErrNoLogFile = errors.New("log file path is empty")

// File is a logger appending to a log file.
type File struct {
	*logrus.Logger
	file *os.File
}

// Open creates the log file if needed and returns a logger appending to it.
// Verbosity is fixed at info so every stopwatch transition is recorded.
func Open(config model.LogConfig) (*File, error) {
	if config.Path == "" {
		return nil, ErrNoLogFile
	}

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}

	file, err := os.OpenFile(config.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(file)
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(NewLineFormatter(config.TimestampFormat))

	return &File{Logger: logger, file: file}, nil
}

// Close flushes and closes the log file.
func (log *File) Close() error {
	if log == nil || log.file == nil {
		return nil
	}
	if err := log.file.Sync(); err != nil {
		_ = log.file.Close()
		return fmt.Errorf("sync log file: %w", err)
	}
	return log.file.Close()
}
