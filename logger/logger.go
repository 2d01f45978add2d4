// Package logger wraps charmbracelet/log with the printf-style, nil-safe API
// the rest of the module uses.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Level enumerates severity tiers.
type Level = log.Level

const (
	DEBUG = log.DebugLevel
	INFO  = log.InfoLevel
	WARN  = log.WarnLevel
	ERROR = log.ErrorLevel
)

const timeFormat = "2006-01-02 15:04:05.000"

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	case "error":
		return ERROR, nil
	}
	return INFO, fmt.Errorf("unknown log level %q", s)
}

// Logger is a levelled logger. A nil *Logger discards everything, so
// components can take one without checking.
type Logger struct {
	mu    sync.Mutex
	inner *log.Logger
	file  *os.File
}

// New writes to w at or above minLevel.
func New(w io.Writer, minLevel Level) *Logger {
	return &Logger{
		inner: log.NewWithOptions(w, log.Options{
			Level:           minLevel,
			ReportTimestamp: true,
			TimeFormat:      timeFormat,
		}),
	}
}

// Open writes to stderr and, when path is set, appends to that file too.
func Open(minLevel Level, path string) (*Logger, error) {
	if path == "" {
		return New(os.Stderr, minLevel), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	l := New(io.MultiWriter(os.Stderr, f), minLevel)
	l.file = f
	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func (l *Logger) Debug(f string, a ...any) {
	if l != nil {
		l.inner.Debugf(f, a...)
	}
}

func (l *Logger) Info(f string, a ...any) {
	if l != nil {
		l.inner.Infof(f, a...)
	}
}

func (l *Logger) Warn(f string, a ...any) {
	if l != nil {
		l.inner.Warnf(f, a...)
	}
}

func (l *Logger) Error(f string, a ...any) {
	if l != nil {
		l.inner.Errorf(f, a...)
	}
}
