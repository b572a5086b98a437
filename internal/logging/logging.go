// Package logging provides the structured file logger shared by the whole
// process plus an in-memory ring of recent records for the logs screen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	clog "github.com/charmbracelet/log"
)

const defaultLogFile = "strum.log"

var (
	mu      sync.Mutex
	clogger = clog.NewWithOptions(io.Discard, clog.Options{})
	file    *os.File
)

// Config controls logger construction.
type Config struct {
	Level    string
	FilePath string
}

// Configure opens the log file and installs the process logger. Empty paths
// fall back to the default file in the working directory. Directories are
// created when missing.
func Configure(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	path := strings.TrimSpace(cfg.FilePath)
	if path == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if file != nil {
		file.Close()
	}
	file = f

	l := clog.NewWithOptions(f, clog.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           ParseLevel(cfg.Level),
	})
	l.SetFormatter(clog.JSONFormatter)
	clogger = l
	return nil
}

// ParseLevel maps a config string onto a charmbracelet/log level. Unknown
// values default to info.
func ParseLevel(level string) clog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return clog.DebugLevel
	case "info", "":
		return clog.InfoLevel
	case "warn", "warning":
		return clog.WarnLevel
	case "error":
		return clog.ErrorLevel
	default:
		return clog.InfoLevel
	}
}

// Close flushes and releases the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		file.Close()
		file = nil
	}
	clogger = clog.NewWithOptions(io.Discard, clog.Options{})
}

func emit(level clog.Level, msg string, args ...any) {
	mu.Lock()
	l := clogger
	mu.Unlock()
	switch level {
	case clog.DebugLevel:
		l.Debug(msg, args...)
	case clog.WarnLevel:
		l.Warn(msg, args...)
	case clog.ErrorLevel:
		l.Error(msg, args...)
	default:
		l.Info(msg, args...)
	}
	record(level, msg, args)
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { emit(clog.DebugLevel, msg, args...) }

// Info logs an informational message.
func Info(msg string, args ...any) { emit(clog.InfoLevel, msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { emit(clog.WarnLevel, msg, args...) }

// Error logs an error with optional key-value context.
func Error(err error, args ...any) {
	if err == nil {
		return
	}
	emit(clog.ErrorLevel, err.Error(), args...)
}

// Trace appends a structured debug entry for the given event name.
func Trace(event string, payload map[string]interface{}) {
	args := make([]any, 0, len(payload)*2)
	for k, v := range payload {
		args = append(args, k, v)
	}
	emit(clog.DebugLevel, event, args...)
}
