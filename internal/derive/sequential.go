package derive

import (
	"context"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/grammar"
)

// Sequential explores the derivation space generation by generation in the calling goroutine.
// Words are emitted in stage, then input, then rule order: every rule is applied to one input
// before the next input of the stage is expanded.
type Sequential struct {
	counters counters
	opts     Options
}

// NewSequential returns a sequential explorer.
func NewSequential(opts ...Option) *Sequential {
	return &Sequential{opts: newOptions(opts...)}
}

// InFlight implements Explorer.
func (explorer *Sequential) InFlight() int64 {
	return explorer.counters.inFlight.Load()
}

// Stats implements Explorer.
func (explorer *Sequential) Stats() Stats {
	return explorer.counters.snapshot()
}

// Run implements Explorer. A panic raised by onWord is returned as an error.
func (explorer *Sequential) Run(ctx context.Context, g *grammar.Grammar, start string, onWord WordFunc) (err error) {
	d, err := newDerivation(g, onWord, explorer.opts.margin, &explorer.counters)
	if err != nil {
		return errors.New(err)
	}

	logger := explorer.opts.loggerFor(ctx)

	defer errors.Recover(func(cause error) {
		explorer.counters.inFlight.Store(0)
		err = cause
	})

	d.seen.Add(start)
	explorer.counters.inFlight.Add(1)

	frontier := []string{start}

	for stage := 0; len(frontier) > 0; stage++ {
		current := frontier
		frontier = nil

		logger.Debugf("Stage %d: expanding %d derivation strings", stage, len(current))

		for _, input := range current {
			d.expand(input, func(str string) {
				frontier = append(frontier, str)
			})

			explorer.counters.inFlight.Add(-1)
		}
	}

	logger.Debugf("Sequential derivation done: %d strings expanded, %d words", explorer.counters.expanded.Load(), explorer.counters.words.Load())

	return nil
}
