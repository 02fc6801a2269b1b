package generate

import (
	"bytes"
	"testing"
	"time"

	"github.com/langproc/langproc/internal/derive"
	"github.com/langproc/langproc/internal/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressReporterDrawsAndClearsStatus(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	console := sink.NewConsole(&buf, false)
	reporter := &progressReporter{
		startTime: time.Now(),
		console:   console,
		counter:   sink.NewCounter(console),
		explorer:  derive.NewSequential(),
		interval:  5 * time.Millisecond,
	}

	done := make(chan struct{})
	errCh := make(chan error, 1)

	go func() {
		errCh <- reporter.run(done)
	}()

	time.Sleep(50 * time.Millisecond)
	close(done)

	require.NoError(t, <-errCh)

	output := buf.String()
	assert.Contains(t, output, initialStatus+"\r")
	assert.Contains(t, output, "Processing: Found 0 words in ")
	assert.Contains(t, output, "[using 0 units]\r")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte(" \r")), output)
}

func TestProgressReporterNonPositiveInterval(t *testing.T) {
	t.Parallel()

	for _, interval := range []time.Duration{0, -time.Second} {
		var buf bytes.Buffer

		console := sink.NewConsole(&buf, false)
		reporter := &progressReporter{
			startTime: time.Now(),
			console:   console,
			counter:   sink.NewCounter(console),
			explorer:  derive.NewSequential(),
			interval:  interval,
		}

		done := make(chan struct{})
		close(done)

		assert.NotPanics(t, func() {
			require.NoError(t, reporter.run(done))
		}, interval)
		assert.Contains(t, buf.String(), initialStatus, interval)
	}
}
