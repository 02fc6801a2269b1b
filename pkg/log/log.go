// Package log provides the leveled, structured logger used across langproc, built on logrus.
package log

import "context"

type ctxKey byte

const loggerContextKey ctxKey = iota

var std = New()

// Default returns the process-wide logger. Commands should prefer the logger of their options.
func Default() Logger {
	return std
}

// ContextWithLogger returns a copy of ctx carrying logger.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, logger)
}

// LoggerFromContext returns the logger stored in ctx, or Default.
func LoggerFromContext(ctx context.Context) Logger {
	if logger, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return logger
	}

	return std
}
