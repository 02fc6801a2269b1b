// Package derive enumerates the words of a string-rewriting grammar.
//
// Starting from a start string, every rule is applied to every live derivation
// string and each result is classified (see grammar.Classifier): words are handed
// to a callback, strings that still hold a non-terminal are scheduled once, and
// everything else is dropped. Two strategies are provided: Sequential, a staged
// breadth-first traversal with a deterministic emission order, and Concurrent,
// which expands derivation strings on a bounded worker pool. For the same grammar
// and start string both produce the same set of words.
package derive

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/grammar"
	"github.com/langproc/langproc/pkg/log"
)

// DefaultStart is the conventional start symbol.
const DefaultStart = "S"

// Strategy selects how the derivation space is traversed.
type Strategy string

const (
	// StrategySequential traverses stage by stage in the calling goroutine.
	StrategySequential Strategy = "sequential"
	// StrategyConcurrent expands derivation strings on a worker pool.
	StrategyConcurrent Strategy = "concurrent"
)

// AllStrategies lists the supported strategies.
var AllStrategies = []Strategy{StrategySequential, StrategyConcurrent}

var (
	// ErrNilGrammar is returned by Run when no grammar is given.
	ErrNilGrammar = errors.New("grammar is not set")
	// ErrNilCallback is returned by Run when no word callback is given.
	ErrNilCallback = errors.New("word callback is not set")
)

// ParseStrategy returns the strategy with the given name.
func ParseStrategy(str string) (Strategy, error) {
	for _, strategy := range AllStrategies {
		if strings.EqualFold(string(strategy), str) {
			return strategy, nil
		}
	}

	return "", errors.Errorf("invalid strategy %q, supported strategies: %s, %s", str, StrategySequential, StrategyConcurrent)
}

// WordFunc is invoked once for every word found. Under StrategyConcurrent it is
// called from several goroutines at once and must be safe for concurrent use.
type WordFunc func(word string)

// Explorer enumerates the words derivable from a start string.
// An Explorer runs one derivation at a time; InFlight and Stats may be read
// from other goroutines while Run executes.
type Explorer interface {
	// Run blocks until the bounded derivation space is exhausted.
	Run(ctx context.Context, g *grammar.Grammar, start string, onWord WordFunc) error
	// InFlight returns the number of derivation strings scheduled but not yet expanded.
	InFlight() int64
	// Stats returns a snapshot of the counters of the current or last run.
	Stats() Stats
}

// Options holds the tunables shared by both strategies.
type Options struct {
	logger      log.Logger
	margin      int
	parallelism int
}

// Option configures an Explorer.
type Option func(*Options)

// WithMargin overrides grammar.DefaultMargin.
func WithMargin(margin int) Option {
	return func(opts *Options) {
		opts.margin = margin
	}
}

// WithParallelism sets the number of workers used by StrategyConcurrent.
func WithParallelism(parallelism int) Option {
	return func(opts *Options) {
		if parallelism <= 0 {
			parallelism = runtime.GOMAXPROCS(0)
		}

		opts.parallelism = parallelism
	}
}

// WithLogger sets the logger. By default the logger is taken from the run context.
func WithLogger(logger log.Logger) Option {
	return func(opts *Options) {
		opts.logger = logger
	}
}

func newOptions(opts ...Option) Options {
	options := Options{
		margin:      grammar.DefaultMargin,
		parallelism: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

func (opts *Options) loggerFor(ctx context.Context) log.Logger {
	if opts.logger != nil {
		return opts.logger
	}

	return log.LoggerFromContext(ctx)
}

// New returns an explorer implementing the given strategy.
func New(strategy Strategy, opts ...Option) (Explorer, error) {
	switch strategy {
	case StrategySequential:
		return NewSequential(opts...), nil
	case StrategyConcurrent:
		return NewConcurrent(opts...), nil
	}

	return nil, errors.Errorf("invalid strategy %q", strategy)
}

// Run enumerates the words of g derivable from start with the given strategy.
func Run(ctx context.Context, g *grammar.Grammar, start string, onWord WordFunc, strategy Strategy, opts ...Option) error {
	explorer, err := New(strategy, opts...)
	if err != nil {
		return err
	}

	return explorer.Run(ctx, g, start, onWord)
}

// Collect runs the derivation and returns every word found, in emission order.
func Collect(ctx context.Context, g *grammar.Grammar, start string, strategy Strategy, opts ...Option) ([]string, error) {
	var (
		words []string
		mu    sync.Mutex
	)

	err := Run(ctx, g, start, func(word string) {
		mu.Lock()
		defer mu.Unlock()

		words = append(words, word)
	}, strategy, opts...)

	return words, err
}

// derivation is the state shared by all expansions of one run.
type derivation struct {
	classifier *grammar.Classifier
	seen       *SeenSet
	counters   *counters
	onWord     WordFunc
	rules      []*grammar.Rule
}

func newDerivation(g *grammar.Grammar, onWord WordFunc, margin int, c *counters) (*derivation, error) {
	if g == nil {
		return nil, ErrNilGrammar
	}

	if onWord == nil {
		return nil, ErrNilCallback
	}

	c.reset()

	return &derivation{
		classifier: grammar.NewClassifier(g, margin),
		seen:       NewSeenSet(),
		counters:   c,
		onWord:     onWord,
		rules:      g.Rules(),
	}, nil
}

// expand applies every rule to input in declaration order. Words go to the callback,
// first-seen continue strings go to schedule.
func (d *derivation) expand(input string, schedule func(str string)) {
	for _, rule := range d.rules {
		output := rule.Apply(input)

		switch d.classifier.Classify(input, output) {
		case grammar.Word:
			d.counters.words.Add(1)
			d.onWord(output)
		case grammar.Continue:
			if !d.seen.Add(output) {
				d.counters.duplicates.Add(1)
				continue
			}

			d.counters.inFlight.Add(1)
			schedule(output)
		case grammar.Discard:
			d.counters.discarded.Add(1)
		case grammar.NoOp:
		}
	}

	d.counters.expanded.Add(1)
}
