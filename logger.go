package localstore

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger defines an interface for logging operations.
// Implementations should be safe for concurrent use.
type Logger interface {
	// Info logs informational messages
	Info(ctx context.Context, format string, args ...interface{})

	// Warn logs warning messages
	Warn(ctx context.Context, format string, args ...interface{})

	// Error logs error messages
	Error(ctx context.Context, format string, args ...interface{})

	// Debug logs debug messages
	Debug(ctx context.Context, format string, args ...interface{})
}

// noopLogger is a Logger that does nothing.
type noopLogger struct{}

func (noopLogger) Info(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Warn(ctx context.Context, format string, args ...interface{})  {}
func (noopLogger) Error(ctx context.Context, format string, args ...interface{}) {}
func (noopLogger) Debug(ctx context.Context, format string, args ...interface{}) {}

var defaultLogger Logger = noopLogger{}

// logrusLogger adapts a logrus.Logger to the Logger interface.
type logrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger wraps a logrus logger for use with WithLogger.
// Passing nil uses logrus.StandardLogger().
func NewLogrusLogger(l *logrus.Logger) Logger {
	if l == nil {
		l = logrus.StandardLogger()
	}
	return &logrusLogger{l: l}
}

func (a *logrusLogger) Info(ctx context.Context, format string, args ...interface{}) {
	a.l.WithContext(ctx).Infof(format, args...)
}

func (a *logrusLogger) Warn(ctx context.Context, format string, args ...interface{}) {
	a.l.WithContext(ctx).Warnf(format, args...)
}

func (a *logrusLogger) Error(ctx context.Context, format string, args ...interface{}) {
	a.l.WithContext(ctx).Errorf(format, args...)
}

func (a *logrusLogger) Debug(ctx context.Context, format string, args ...interface{}) {
	a.l.WithContext(ctx).Debugf(format, args...)
}
