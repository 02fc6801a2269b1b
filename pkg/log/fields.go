package log

import (
	"maps"
	"slices"
)

// Field keys with a meaning to the formatters.
const (
	// FieldKeyPrefix is rendered in brackets before the message by the pretty formatter.
	FieldKeyPrefix = "prefix"
	FieldKeyRunID  = "run-id"
)

// Fields are the structured key/value pairs attached to log entries.
type Fields map[string]any

// Keys returns the field names in sorted order, leaving out the given keys.
func (fields Fields) Keys(without ...string) []string {
	keys := slices.Sorted(maps.Keys(fields))

	return slices.DeleteFunc(keys, func(key string) bool {
		return slices.Contains(without, key)
	})
}
