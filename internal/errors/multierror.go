package errors

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// MultiError accumulates errors, e.g. from workers or from closing several sinks.
// The zero value and a nil pointer are both empty.
type MultiError struct {
	inner *multierror.Error
}

// Append returns a MultiError with appendErrs added after the existing errors.
// Nil errors are skipped.
func (errs *MultiError) Append(appendErrs ...error) *MultiError {
	var inner *multierror.Error
	if errs != nil {
		inner = errs.inner
	}

	inner = multierror.Append(inner, appendErrs...)
	inner.ErrorFormat = formatList

	return &MultiError{inner: inner}
}

// ErrorOrNil returns the receiver as an error, or nil when it holds no errors.
func (errs *MultiError) ErrorOrNil() error {
	if errs.Len() == 0 {
		return nil
	}

	return errs
}

// Len returns the number of collected errors.
func (errs *MultiError) Len() int {
	return len(errs.WrappedErrors())
}

// WrappedErrors returns the collected errors.
func (errs *MultiError) WrappedErrors() []error {
	if errs == nil || errs.inner == nil {
		return nil
	}

	return errs.inner.WrappedErrors()
}

func (errs *MultiError) Unwrap() []error {
	return errs.WrappedErrors()
}

func (errs *MultiError) Error() string {
	return formatList(Leaves(errs))
}

// formatList renders errs as a bulleted list, continuation lines indented under their bullet.
func formatList(errs []error) string {
	items := make([]string, len(errs))

	for i, err := range errs {
		text := strings.ReplaceAll(err.Error(), "\r\n", "\n")
		items[i] = "* " + strings.ReplaceAll(text, "\n", "\n  ")
	}

	header := "error occurred"
	if len(errs) != 1 {
		header = fmt.Sprintf("%d errors occurred", len(errs))
	}

	return header + ":\n\n" + strings.Join(items, "\n\n") + "\n"
}
