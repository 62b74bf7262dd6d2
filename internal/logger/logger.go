// Package logger implements the command line logger on top of log/slog.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
)

// messager describes an error that can report its own message without the
// messages of the errors it wraps. zerr errors implement it.
type messager interface {
	Message() string
}

// Logger writes leveled records as text or JSON.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	level    slog.LevelVar
	jsonMode bool
	output   io.Writer
}

// New returns a text Logger writing to w at level Info. If w is nil,
// os.Stderr is used.
func New(w io.Writer) *Logger {
	l := &Logger{}
	l.level.Set(slog.LevelInfo)
	l.SetOutput(w)
	return l
}

// SetOutput changes the destination of the logger, keeping its format.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and text records.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug records.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// rebuild replaces the handler. The caller holds l.mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: &l.level}
	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = slog.NewTextHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Debug logs a debug message with optional key value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message with optional key value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Error logs err. The message of the outermost error becomes the record
// message and every error it wraps is added as a numbered cause attribute.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	messages := chain(err)

	attrs := make([]any, 0, len(messages)-1)
	for i, msg := range messages[1:] {
		attrs = append(attrs, slog.String(fmt.Sprintf("cause%d", i+1), msg))
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(messages[0], attrs...)
}

// chain returns the messages of err and the errors it wraps, outermost
// first. The walk stops at the first error that cannot report its own
// message, whose full text ends the list.
func chain(err error) []string {
	var messages []string
	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			messages = append(messages, current.Error())
			break
		}
		messages = append(messages, m.Message())
		current = errors.Unwrap(current)
	}
	return messages
}
