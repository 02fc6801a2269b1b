package derive

import (
	"context"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/grammar"
	"github.com/langproc/langproc/internal/worker"
)

// Concurrent expands derivation strings on a bounded worker pool. Each live
// derivation string is one unit of work; a unit schedules a child unit for every
// first-seen continue string and finishes without waiting for its children.
// Run returns once the whole tree of units has completed.
type Concurrent struct {
	counters counters
	opts     Options
}

// NewConcurrent returns a concurrent explorer.
func NewConcurrent(opts ...Option) *Concurrent {
	return &Concurrent{opts: newOptions(opts...)}
}

// InFlight implements Explorer.
func (explorer *Concurrent) InFlight() int64 {
	return explorer.counters.inFlight.Load()
}

// Stats implements Explorer.
func (explorer *Concurrent) Stats() Stats {
	return explorer.counters.snapshot()
}

// Parallelism returns the number of workers a run uses.
func (explorer *Concurrent) Parallelism() int {
	return explorer.opts.parallelism
}

// unit is one schedulable expansion of a single derivation string.
type unit struct {
	derivation *derivation
	pool       *worker.Pool
	input      string
}

func (u unit) execute() error {
	defer u.derivation.counters.inFlight.Add(-1)

	u.derivation.expand(u.input, u.spawn)

	return nil
}

func (u unit) spawn(str string) {
	child := unit{derivation: u.derivation, pool: u.pool, input: str}
	u.pool.Submit(child.execute)
}

// Run implements Explorer. onWord is invoked concurrently from the workers.
// Panics raised while expanding a unit are collected and returned once the run completes.
func (explorer *Concurrent) Run(ctx context.Context, g *grammar.Grammar, start string, onWord WordFunc) error {
	d, err := newDerivation(g, onWord, explorer.opts.margin, &explorer.counters)
	if err != nil {
		return errors.New(err)
	}

	logger := explorer.opts.loggerFor(ctx)
	logger.Debugf("Concurrent derivation: starting with %d workers", explorer.opts.parallelism)

	pool := worker.NewWorkerPool(explorer.opts.parallelism)

	d.seen.Add(start)
	explorer.counters.inFlight.Add(1)

	root := unit{derivation: d, pool: pool, input: start}
	pool.Submit(root.execute)

	if err := pool.GracefulStop(); err != nil {
		explorer.counters.inFlight.Store(0)
		return errors.New(err)
	}

	logger.Debugf("Concurrent derivation done: %d strings expanded, %d words", explorer.counters.expanded.Load(), explorer.counters.words.Load())

	return nil
}
