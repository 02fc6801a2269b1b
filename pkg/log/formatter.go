package log

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/mgutz/ansi"
	"github.com/sirupsen/logrus"
)

const (
	PrettyFormatName = "pretty"
	BareFormatName   = "bare"
	JSONFormatName   = "json"

	defaultTimestampFormat = "15:04:05.000"
)

var levelStyles = map[Level]string{
	ErrorLevel: "red",
	WarnLevel:  "yellow",
	InfoLevel:  "green",
	DebugLevel: "blue+h",
	TraceLevel: "white",
}

const (
	timestampStyle = "black+h"
	prefixStyle    = "cyan"
)

// PrettyFormatter renders `15:04:05.000 INFO   [prefix] message key=value`.
type PrettyFormatter struct {
	// TimestampFormat is used when DisableTimestamp is false.
	TimestampFormat string

	// DisableTimestamp omits the leading timestamp.
	DisableTimestamp bool

	// DisableColors forces plain output, e.g. when the writer is not a terminal.
	DisableColors bool
}

// NewPrettyFormatter returns a new PrettyFormatter instance with default values.
func NewPrettyFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		TimestampFormat: defaultTimestampFormat,
	}
}

// NewBareFormatter returns a PrettyFormatter without timestamps and colors.
func NewBareFormatter() *PrettyFormatter {
	return &PrettyFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	}
}

// Format implements logrus.Formatter
func (formatter *PrettyFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	buf := entry.Buffer
	if buf == nil {
		buf = new(bytes.Buffer)
	}

	level := FromLogrusLevel(entry.Level)
	levelText := strings.ToUpper(fmt.Sprintf("%-6s ", level))

	var (
		prefix    string
		timestamp string
		fields    = Fields(entry.Data)
	)

	if val, ok := fields[FieldKeyPrefix].(string); ok && val != "" {
		prefix = fmt.Sprintf("[%s] ", val)
	}

	if !formatter.DisableTimestamp && formatter.TimestampFormat != "" {
		timestamp = entry.Time.Format(formatter.TimestampFormat) + " "
	}

	if !formatter.DisableColors {
		levelText = ansi.Color(levelText, levelStyles[level])
		timestamp = ansi.Color(timestamp, timestampStyle)

		if prefix != "" {
			prefix = ansi.Color(prefix, prefixStyle)
		}
	}

	if _, err := fmt.Fprintf(buf, "%s%s%s%s", timestamp, levelText, prefix, entry.Message); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	for _, key := range fields.Keys(FieldKeyPrefix) {
		if _, err := fmt.Fprintf(buf, " %s=%v", key, fields[key]); err != nil {
			return nil, errors.WithStackTrace(err)
		}
	}

	if err := buf.WriteByte('\n'); err != nil {
		return nil, errors.WithStackTrace(err)
	}

	return buf.Bytes(), nil
}

// ParseFormat returns the formatter registered under the given name.
// The pretty formatter drops colors when disableColors is set.
func ParseFormat(name string, disableColors bool) (logrus.Formatter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case PrettyFormatName, "":
		formatter := NewPrettyFormatter()
		formatter.DisableColors = disableColors

		return formatter, nil
	case BareFormatName:
		return NewBareFormatter(), nil
	case JSONFormatName:
		return &logrus.JSONFormatter{}, nil
	}

	return nil, errors.Errorf("invalid format %q, supported formats: %s", name, strings.Join([]string{PrettyFormatName, BareFormatName, JSONFormatName}, ", "))
}
