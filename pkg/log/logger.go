package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the leveled, structured logger handed to every langproc component.
// Loggers derived with WithField share the output, level and formatter of their parent;
// Clone detaches them.
type Logger interface {
	// Clone returns an independent logger with the same settings and fields.
	Clone() Logger

	// SetOptions applies opts to the logger and every logger derived from it.
	SetOptions(opts ...Option)

	Level() Level

	// SetLevel parses str with ParseLevel and applies it.
	SetLevel(str string) error

	WithField(key string, value any) Logger
	WithFields(fields Fields) Logger

	Logf(level Level, format string, args ...any)
	Log(level Level, args ...any)

	Tracef(format string, args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	Trace(args ...any)
	Error(args ...any)
}

type logger struct {
	base   *logrus.Logger
	fields Fields
}

// New returns a logger writing pretty formatted entries to stderr at info level, adjusted by opts.
func New(opts ...Option) Logger {
	base := logrus.New()
	base.SetFormatter(NewPrettyFormatter())
	base.SetLevel(InfoLevel.ToLogrusLevel())

	logger := newLogger(base, nil)
	logger.SetOptions(opts...)

	return logger
}

func newLogger(base *logrus.Logger, fields Fields) *logger {
	return &logger{base: base, fields: fields}
}

func (logger *logger) Clone() Logger {
	base := logrus.New()
	base.SetOutput(logger.base.Out)
	base.SetLevel(logger.base.GetLevel())
	base.SetFormatter(logger.base.Formatter)

	return newLogger(base, logger.withFields(nil))
}

func (logger *logger) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(logger.base)
	}
}

func (logger *logger) Level() Level {
	return FromLogrusLevel(logger.base.GetLevel())
}

func (logger *logger) SetLevel(str string) error {
	level, err := ParseLevel(str)
	if err != nil {
		return err
	}

	logger.base.SetLevel(level.ToLogrusLevel())

	return nil
}

func (logger *logger) WithField(key string, value any) Logger {
	return logger.WithFields(Fields{key: value})
}

func (logger *logger) WithFields(fields Fields) Logger {
	return newLogger(logger.base, logger.withFields(fields))
}

func (logger *logger) Logf(level Level, format string, args ...any) {
	logger.entry().Logf(level.ToLogrusLevel(), format, args...)
}

func (logger *logger) Log(level Level, args ...any) {
	logger.entry().Log(level.ToLogrusLevel(), args...)
}

func (logger *logger) Tracef(format string, args ...any) { logger.Logf(TraceLevel, format, args...) }
func (logger *logger) Debugf(format string, args ...any) { logger.Logf(DebugLevel, format, args...) }
func (logger *logger) Infof(format string, args ...any) { logger.Logf(InfoLevel, format, args...) }
func (logger *logger) Warnf(format string, args ...any) { logger.Logf(WarnLevel, format, args...) }
func (logger *logger) Errorf(format string, args ...any) { logger.Logf(ErrorLevel, format, args...) }

func (logger *logger) Trace(args ...any) { logger.Log(TraceLevel, args...) }
func (logger *logger) Error(args ...any) { logger.Log(ErrorLevel, args...) }

// withFields returns a copy of the logger's fields with extra merged in.
func (logger *logger) withFields(extra Fields) Fields {
	merged := make(Fields, len(logger.fields)+len(extra))

	for key, val := range logger.fields {
		merged[key] = val
	}

	for key, val := range extra {
		merged[key] = val
	}

	return merged
}

func (logger *logger) entry() *logrus.Entry {
	return logrus.NewEntry(logger.base).WithFields(logrus.Fields(logger.fields))
}
