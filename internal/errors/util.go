package errors

import (
	"errors"
	"strings"
)

type stackTracer interface {
	ErrorStack() string
}

// Leaves flattens err into the errors it joins. Any error in the chain that wraps
// several errors, such as a MultiError or the result of Join, is replaced by its members.
func Leaves(err error) []error {
	for cur := err; cur != nil; cur = errors.Unwrap(cur) {
		joined, ok := cur.(interface{ Unwrap() []error })
		if !ok {
			continue
		}

		var leaves []error
		for _, member := range joined.Unwrap() {
			leaves = append(leaves, Leaves(member)...)
		}

		return leaves
	}

	return []error{err}
}

// stacks collects the stack traces found along the chains of the leaves of err.
func stacks(err error) []string {
	var found []string

	for _, leaf := range Leaves(err) {
		for cur := leaf; cur != nil; cur = errors.Unwrap(cur) {
			if tracer, ok := cur.(stackTracer); ok {
				found = append(found, tracer.ErrorStack())
			}
		}
	}

	return found
}

// ErrorStack returns the stack traces carried by err, one after another.
func ErrorStack(err error) string {
	return strings.Join(stacks(err), "\n")
}

// ContainsStackTrace reports whether err already carries a stack trace.
func ContainsStackTrace(err error) bool {
	return err != nil && len(stacks(err)) > 0
}
