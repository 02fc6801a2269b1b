package log_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/langproc/langproc/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		str      string
		expected log.Level
		wantErr  bool
	}{
		{"info", log.InfoLevel, false},
		{"DEBUG", log.DebugLevel, false},
		{"trace", log.TraceLevel, false},
		{"warn", log.WarnLevel, false},
		{"loud", log.Level(0), true},
	}

	for _, tc := range testCases {
		t.Run(tc.str, func(t *testing.T) {
			t.Parallel()

			level, err := log.ParseLevel(tc.str)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, level)
		})
	}
}

func TestBareFormatterWritesFields(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.New(log.WithOutput(&buf), log.WithFormatter(log.NewBareFormatter()), log.WithLevel(log.DebugLevel))
	logger.WithField(log.FieldKeyPrefix, "generate").WithField("words", 2).Debugf("run finished")

	assert.Equal(t, "DEBUG  [generate] run finished words=2\n", buf.String())
}

func TestLevelFiltersEntries(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := log.New(log.WithOutput(&buf), log.WithFormatter(log.NewBareFormatter()), log.WithLevel(log.WarnLevel))
	logger.Infof("hidden")
	logger.Warnf("shown")

	assert.Equal(t, "WARN   shown\n", buf.String())
}

func TestCloneDoesNotAffectParent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	parent := log.New(log.WithOutput(&buf), log.WithFormatter(log.NewBareFormatter()), log.WithLevel(log.InfoLevel))
	child := parent.Clone()
	require.NoError(t, child.SetLevel("error"))

	parent.Infof("parent")
	child.Infof("child")

	assert.Equal(t, log.InfoLevel, parent.Level())
	assert.Equal(t, log.ErrorLevel, child.Level())
	assert.Equal(t, "INFO   parent\n", buf.String())
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()

	logger := log.New()
	ctx := log.ContextWithLogger(context.Background(), logger)

	assert.Same(t, logger, log.LoggerFromContext(ctx))
	assert.Equal(t, log.Default(), log.LoggerFromContext(context.Background()))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	_, err := log.ParseFormat("json", false)
	require.NoError(t, err)

	_, err = log.ParseFormat("xml", false)
	require.Error(t, err)
}

func TestDerivedLoggersShareSettings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	parent := log.New(log.WithOutput(&buf), log.WithFormatter(log.NewBareFormatter()), log.WithLevel(log.InfoLevel))
	child := parent.WithField(log.FieldKeyRunID, "42")

	parent.SetOptions(log.WithLevel(log.DebugLevel))
	child.Debugf("expanded %d", 3)
	parent.Debugf("plain")

	assert.Equal(t, "DEBUG  expanded 3 run-id=42\nDEBUG  plain\n", buf.String())
}

func TestFieldsKeys(t *testing.T) {
	t.Parallel()

	fields := log.Fields{"b": 1, log.FieldKeyPrefix: "x", "a": 2}

	assert.Equal(t, []string{"a", "b"}, fields.Keys(log.FieldKeyPrefix))
	assert.Equal(t, []string{"a", "b", log.FieldKeyPrefix}, fields.Keys())
}
