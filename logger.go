package cglog

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/asimation/cglog/severity"
)

// Logger is a named logger with a mutable severity threshold and a fixed set
// of handlers attached at construction. Safe for concurrent use.
type Logger struct {
	name     string
	mu       sync.Mutex
	level    severity.Level
	handlers []Handler
	now      func() time.Time
}

// Name returns the logger's registry name.
func (l *Logger) Name() string { return l.name }

// Level returns the current severity threshold.
func (l *Logger) Level() severity.Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetLevel replaces the severity threshold. It returns ErrInvalidLevel for
// unrecognized levels and takes effect for all subsequent calls on this
// logger only.
func (l *Logger) SetLevel(level severity.Level) error {
	if err := level.Validate(); err != nil {
		return err
	}
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	return nil
}

// Debug logs a message at DEBUG. Arguments are formatted with fmt.Sprintf
// when present.
func (l *Logger) Debug(format string, args ...any) { l.log(severity.Debug, format, args...) }

// Info logs a message at INFO.
func (l *Logger) Info(format string, args ...any) { l.log(severity.Info, format, args...) }

// Warning logs a message at WARNING.
func (l *Logger) Warning(format string, args ...any) { l.log(severity.Warning, format, args...) }

// Error logs a message at ERROR.
func (l *Logger) Error(format string, args ...any) { l.log(severity.Error, format, args...) }

// Critical logs a message at CRITICAL. Inside a supported host this also
// raises a modal warning dialog.
func (l *Logger) Critical(format string, args ...any) { l.log(severity.Critical, format, args...) }

// Fatal logs a message at CRITICAL. It does not terminate the process:
// callers are expected to log and then propagate their error.
func (l *Logger) Fatal(format string, args ...any) { l.log(severity.Critical, format, args...) }

// Log logs a message at an arbitrary level. It returns ErrInvalidLevel for
// unrecognized levels.
func (l *Logger) Log(level severity.Level, format string, args ...any) error {
	if err := level.Validate(); err != nil {
		return err
	}
	l.log(level, format, args...)
	return nil
}

// log applies the threshold filter, formats the record once, and hands it to
// every handler in attachment order. Handler failures are recorded and
// swallowed so a dialog problem never disturbs the caller.
func (l *Logger) log(level severity.Level, format string, args ...any) {
	l.mu.Lock()
	threshold := l.level
	handlers := l.handlers
	now := l.now
	l.mu.Unlock()

	if level < threshold {
		recordFiltered(l.name)
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	rec := Record{Time: now(), Level: level, Logger: l.name, Message: msg}
	recordEmit(l.name, level)

	for _, h := range handlers {
		if err := h.Emit(rec); err != nil {
			recordHandlerError(l.name)
			slog.Debug("log handler failed", "logger", l.name, "error", err)
		}
	}
}
