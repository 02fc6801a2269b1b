// Package errors wraps go-errors so every error leaving a langproc package carries the
// stack trace of the place it was created, and collects multiple errors into one.
package errors

import (
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// New turns val into an error with a stack trace. Errors that already carry a trace are
// returned unchanged; strings and other values are converted first.
func New(val any) error {
	var err error

	switch val := val.(type) {
	case nil:
		return nil
	case error:
		if ContainsStackTrace(val) {
			return val
		}

		err = val
	case string:
		err = errors.New(val)
	default:
		err = fmt.Errorf("%v", val) //nolint:err113
	}

	return goerrors.Wrap(err, 1)
}

// Errorf formats an error and attaches a stack trace to it.
func Errorf(format string, args ...any) error {
	return goerrors.Wrap(fmt.Errorf(format, args...), 1) //nolint:err113
}

// WithStackTrace attaches a stack trace to err. Nil stays nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// WithStackTraceAndPrefix is WithStackTrace with a formatted prefix in front of the message.
func WithStackTraceAndPrefix(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}

	return goerrors.WrapPrefix(err, fmt.Sprintf(format, args...), 1)
}

// Recover, deferred, turns a panic into an error with a stack trace and hands it to onPanic.
func Recover(onPanic func(cause error)) {
	rec := recover()
	if rec == nil {
		return
	}

	err, ok := rec.(error)
	if !ok {
		err = fmt.Errorf("%v", rec) //nolint:err113
	}

	onPanic(goerrors.Wrap(err, 2))
}
