package generate

import (
	"fmt"
	"time"

	"github.com/langproc/langproc/internal/derive"
	"github.com/langproc/langproc/internal/sink"
	"github.com/langproc/langproc/options"
)

const initialStatus = "Processing..."

// progressReporter keeps a status line with the number of words found, the elapsed
// time and the number of derivation strings waiting to be expanded.
type progressReporter struct {
	startTime time.Time
	console   *sink.Console
	counter   *sink.Counter
	explorer  derive.Explorer
	interval  time.Duration
}

// run refreshes the status line every interval until done is closed, then removes it.
// A non-positive interval falls back to options.DefaultProgressInterval.
func (reporter *progressReporter) run(done <-chan struct{}) error {
	interval := reporter.interval
	if interval <= 0 {
		interval = options.DefaultProgressInterval
	}

	if err := reporter.console.SetStatus(initialStatus); err != nil {
		return err
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return reporter.console.ClearStatus()
		case <-ticker.C:
			if err := reporter.console.SetStatus(reporter.status()); err != nil {
				return err
			}
		}
	}
}

func (reporter *progressReporter) status() string {
	return fmt.Sprintf("Processing: Found %d words in %s [using %d units]",
		reporter.counter.Count(),
		time.Since(reporter.startTime).Round(time.Millisecond),
		reporter.explorer.InFlight(),
	)
}
