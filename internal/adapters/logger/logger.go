// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/tsconf/internal/core/ports"
)

// messager describes an error that can report its own message without the chain.
// This matches the Message() method provided by zerr.Error (go.trai.ch/zerr v0.3.0+).
// If zerr's API changes, errors will gracefully fall back to standard error handling.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	level    *slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger instance.
func New() ports.Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	handler := NewPrettyHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and preserves the current JSON mode and level settings.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
// The output destination is preserved from SetOutput calls.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetLevel updates the minimum level that gets logged.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// rebuild recreates the underlying handler from the current settings.
// Callers must hold l.mu.
func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: l.level})
	} else {
		handler = NewPrettyHandler(w, &slog.HandlerOptions{Level: l.level})
	}
	l.logger = slog.New(handler)
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message, rendering zerr chains hierarchically.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	entries := collectErrorEntries(err)
	l.logger.Error(formatErrorEntries(entries))
}

// errorEntry is one link of an error chain prepared for rendering.
type errorEntry struct {
	Message string
}

// collectErrorEntries traverses the error chain programmatically, taking the
// raw per-link message for zerr errors and the full Error() text otherwise.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry
	current := err

	for current != nil {
		if m, ok := current.(messager); ok {
			entries = append(entries, errorEntry{Message: m.Message()})
			current = errors.Unwrap(current)
		} else {
			entries = append(entries, errorEntry{Message: current.Error()})
			break
		}
	}

	return entries
}

// formatErrorEntries renders the collected chain with a "Caused by:" section.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.Message, "\n")

		if i == 0 {
			lines = append(lines, "Error: "+msgLines[0])
			for _, line := range msgLines[1:] {
				lines = append(lines, "       "+line)
			}
			continue
		}

		if i == 1 {
			lines = append(lines, "", "  Caused by:")
		}
		lines = append(lines, "    → "+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, "      "+line)
		}
	}

	return strings.Join(lines, "\n")
}
