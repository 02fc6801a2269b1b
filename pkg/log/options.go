package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option changes a setting of a logger, see Logger.SetOptions.
type Option func(base *logrus.Logger)

// WithLevel sets the lowest level that is written.
func WithLevel(level Level) Option {
	return func(base *logrus.Logger) {
		base.SetLevel(level.ToLogrusLevel())
	}
}

// WithOutput sets where entries are written.
func WithOutput(output io.Writer) Option {
	return func(base *logrus.Logger) {
		base.SetOutput(output)
	}
}

// WithFormatter sets how entries are rendered.
func WithFormatter(formatter logrus.Formatter) Option {
	return func(base *logrus.Logger) {
		base.SetFormatter(formatter)
	}
}
