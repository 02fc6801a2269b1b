package log

import (
	"strings"

	"github.com/gruntwork-io/go-commons/errors"
	"github.com/sirupsen/logrus"
)

// Level is the severity of a log entry. Lower values are more severe.
type Level uint32

const (
	ErrorLevel Level = iota
	// WarnLevel is used for problems langproc recovers from, such as skipped grammar lines.
	WarnLevel
	InfoLevel
	// DebugLevel adds run settings and derivation statistics.
	DebugLevel
	TraceLevel
)

// AllLevels lists the levels from the most to the least severe.
var AllLevels = Levels{ErrorLevel, WarnLevel, InfoLevel, DebugLevel, TraceLevel}

var levels = [...]struct {
	name   string
	logrus logrus.Level
}{
	ErrorLevel: {"error", logrus.ErrorLevel},
	WarnLevel:  {"warn", logrus.WarnLevel},
	InfoLevel:  {"info", logrus.InfoLevel},
	DebugLevel: {"debug", logrus.DebugLevel},
	TraceLevel: {"trace", logrus.TraceLevel},
}

// ParseLevel returns the level named str, ignoring case.
func ParseLevel(str string) (Level, error) {
	for _, level := range AllLevels {
		if strings.EqualFold(levels[level].name, strings.TrimSpace(str)) {
			return level, nil
		}
	}

	return ErrorLevel, errors.Errorf("invalid level %q, supported levels: %s", str, AllLevels)
}

func (level Level) String() string {
	if int(level) >= len(levels) {
		return ""
	}

	return levels[level].name
}

// ToLogrusLevel maps the level onto logrus. Unknown levels map to info.
func (level Level) ToLogrusLevel() logrus.Level {
	if int(level) >= len(levels) {
		return logrus.InfoLevel
	}

	return levels[level].logrus
}

// FromLogrusLevel is the inverse of ToLogrusLevel. Panic and fatal collapse into ErrorLevel,
// logrus levels finer than trace into TraceLevel.
func FromLogrusLevel(lvl logrus.Level) Level {
	for _, level := range AllLevels {
		if levels[level].logrus >= lvl {
			return level
		}
	}

	return TraceLevel
}

// Levels is an ordered list of levels.
type Levels []Level

// String joins the level names with commas.
func (list Levels) String() string {
	names := make([]string, len(list))
	for i, level := range list {
		names[i] = level.String()
	}

	return strings.Join(names, ", ")
}
