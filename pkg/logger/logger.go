package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"
)

// Logger is the logging interface used by the orchestrator and the CLI.
type Logger interface {
	Info(msg string, obj any)
	Warn(msg string, obj any)
	Debug(msg string, obj any)
	Error(msg string, obj any)
}

// NopLogger discards all log messages.
type NopLogger struct{}

func (NopLogger) Info(string, any)  {}
func (NopLogger) Warn(string, any)  {}
func (NopLogger) Debug(string, any) {}
func (NopLogger) Error(string, any) {}

type writerLogger struct {
	mu    *sync.Mutex
	w     io.Writer
	debug bool
	now   func() time.Time
}

func (l writerLogger) write(level, msg string, obj any) {
	if l.w == nil {
		return
	}

	ts := l.now().Format(time.RFC3339)
	line := fmt.Sprintf("%s %-5s %s", ts, level, msg)
	if obj != nil {
		if err, ok := obj.(error); ok {
			obj = map[string]any{"error": err.Error()}
		}
		b, err := json.Marshal(obj)
		if err != nil {
			line += fmt.Sprintf(" obj=%q", fmt.Sprintf("%+v", obj))
		} else {
			line += " obj=" + string(b)
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintln(l.w, line)
}

// NewWriterLogger builds a logger that writes to an io.Writer.
// Debug lines are dropped unless debug is true.
func NewWriterLogger(w io.Writer, debug bool) Logger {
	return writerLogger{mu: &sync.Mutex{}, w: w, debug: debug, now: time.Now}
}

func (l writerLogger) Info(msg string, obj any) { l.write("INFO", msg, obj) }
func (l writerLogger) Warn(msg string, obj any) { l.write("WARN", msg, obj) }
func (l writerLogger) Debug(msg string, obj any) {
	if l.debug {
		l.write("DEBUG", msg, obj)
	}
}
func (l writerLogger) Error(msg string, obj any) { l.write("ERROR", msg, obj) }

// Debug writes a debug log when enabled and logger is non-nil.
func Debug(enabled bool, logger Logger, msg string, obj any) {
	if !enabled || logger == nil {
		return
	}
	logger.Debug(msg, obj)
}

// Info writes an info log when logger is non-nil.
func Info(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Info(msg, obj)
}

// Warn writes a warning log when logger is non-nil.
func Warn(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Warn(msg, obj)
}

// Error writes an error log when logger is non-nil.
func Error(logger Logger, msg string, obj any) {
	if logger == nil {
		return
	}
	logger.Error(msg, obj)
}
