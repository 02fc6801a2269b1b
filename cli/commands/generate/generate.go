package generate

import (
	"context"
	"time"

	"github.com/langproc/langproc/cli/commands/rules"
	"github.com/langproc/langproc/config"
	"github.com/langproc/langproc/internal/derive"
	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/sink"
	"github.com/langproc/langproc/options"
	"github.com/langproc/langproc/pkg/log"
	"github.com/langproc/langproc/telemetry"
	"golang.org/x/sync/errgroup"
)

const telemetryName = "generate"

// Run loads the grammar file and derives its words, printing them to the console
// and/or writing them to the output file.
func Run(ctx context.Context, opts *options.LangprocOptions) error {
	logger := opts.Logger.WithField(log.FieldKeyRunID, opts.RunID)

	file, err := config.LoadFile(logger, opts.GrammarPath)
	if err != nil {
		return err
	}

	for _, warning := range file.Warnings {
		logger.Warnf("%s: %v", file.Path, warning)
	}

	console := sink.NewConsole(opts.Writer, !opts.DisableColors && sink.IsTerminal(opts.Writer))

	if opts.Verbose {
		if err := rules.PrintRules(console, file.Grammar); err != nil {
			return err
		}
	}

	explorer, err := derive.New(opts.Strategy(), opts.DeriveOptions()...)
	if err != nil {
		return err
	}

	output, err := openSinks(opts, console)
	if err != nil {
		return err
	}

	counter := sink.NewCounter(output)
	recorder := sink.NewRecorder(counter)

	attrs := map[string]any{
		"grammar":    file.Path,
		"strategy":   string(opts.Strategy()),
		"start":      opts.Start,
		"max_length": file.Grammar.MaxLength(),
		"run_id":     opts.RunID,
	}

	tlm := telemetry.TelemeterFromContext(ctx)
	startTime := time.Now()

	var elapsed time.Duration

	runErr := tlm.Collect(ctx, telemetryName, attrs, func(ctx context.Context) error {
		group, ctx := errgroup.WithContext(ctx)
		done := make(chan struct{})

		group.Go(func() error {
			defer close(done)

			err := explorer.Run(ctx, file.Grammar, opts.Start, recorder.OnWord)
			elapsed = time.Since(startTime)

			return err
		})

		if opts.Verbose && sink.IsTerminal(opts.Writer) {
			reporter := &progressReporter{
				startTime: startTime,
				console:   console,
				counter:   counter,
				explorer:  explorer,
				interval:  opts.ProgressInterval,
			}

			group.Go(func() error {
				return reporter.run(done)
			})
		}

		return group.Wait()
	})

	closeErr := counter.Close()

	if runErr != nil {
		return runErr
	}

	if err := recorder.Err(); err != nil {
		return err
	}

	if closeErr != nil {
		return closeErr
	}

	tlm.Count(ctx, "words", counter.Count(), attrs)

	stats := explorer.Stats()
	logger.Debugf("Derivation finished: %d strings expanded, %d words, %d discarded, %d duplicates", stats.Expanded, stats.Words, stats.Discarded, stats.Duplicates)

	return printSummary(console, opts, elapsed, counter.Count())
}

func openSinks(opts *options.LangprocOptions, console *sink.Console) (sink.Sink, error) {
	var sinks sink.Multi

	if !opts.NoDisplay {
		sinks = append(sinks, console)
	}

	if opts.OutputFile != "" {
		file, err := sink.OpenFile(opts.OutputFile)
		if err != nil {
			return nil, err
		}

		opts.Logger.Debugf("Writing words to %s", file.Path())

		sinks = append(sinks, file)
	}

	if len(sinks) == 0 {
		return sink.Discard{}, nil
	}

	return sinks, nil
}

func printSummary(console *sink.Console, opts *options.LangprocOptions, elapsed time.Duration, words int64) error {
	switch {
	case opts.Verbose:
		return errors.Join(
			console.Printf("\nProcessing done, took %s.\n", elapsed),
			console.Printf("Found %d entries.\n", words),
		)
	case opts.ShowTime:
		return console.Printf("Processing done, took %s.\n", elapsed)
	}

	return nil
}
