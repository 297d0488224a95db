package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// NewMultiLogger creates a logger that writes to multiple outputs
func NewMultiLogger(writers ...io.Writer) *Logger {
	w := io.MultiWriter(writers...)
	return New(w)
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// DocumentParsed logs a successful parse
func (l *Logger) DocumentParsed(path string, concepts int, duration time.Duration) {
	l.Info("document parsed",
		"path", path,
		"concepts", concepts,
		"duration", duration.Round(time.Millisecond))
}

// ParseFailed logs a failed parse
func (l *Logger) ParseFailed(path string, err error) {
	l.Error("parse failed",
		"path", path,
		"error", err)
}

// ExportWritten logs a completed export
func (l *Logger) ExportWritten(path, format string, size int) {
	l.Info("export written",
		"path", path,
		"format", format,
		"bytes", size)
}

// NavigatorStarted logs the start of an interactive session
func (l *Logger) NavigatorStarted(path string, concepts int) {
	l.Info("navigator started",
		"path", path,
		"concepts", concepts)
}

// SearchPerformed logs a navigator search
func (l *Logger) SearchPerformed(query string, matches int) {
	l.Debug("search performed",
		"query", query,
		"matches", matches)
}

// DocumentReloaded logs a navigator reload
func (l *Logger) DocumentReloaded(path string, concepts int) {
	l.Debug("document reloaded",
		"path", path,
		"concepts", concepts)
}

// FileError logs an error for a specific file
func (l *Logger) FileError(file string, err error) {
	l.Error("file error",
		"file", file,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(path, defaultFormat string) {
	l.Debug("config loaded",
		"path", path,
		"default_format", defaultFormat)
}
