package errors

import "errors"

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool { return errors.As(err, target) }

// Is is errors.Is.
func Is(err, target error) bool { return errors.Is(err, target) }

// Join is errors.Join.
func Join(errs ...error) error { return errors.Join(errs...) }
