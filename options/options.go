// Package options provides the set of options that configure a langproc run.
package options

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-version"
	"github.com/langproc/langproc/internal/derive"
	"github.com/langproc/langproc/internal/grammar"
	"github.com/langproc/langproc/pkg/log"
	"github.com/langproc/langproc/telemetry"
)

const ContextKey ctxKey = iota

const (
	// DefaultProgressInterval is how often the verbose progress line is refreshed.
	DefaultProgressInterval = 500 * time.Millisecond

	defaultLogLevel = log.InfoLevel
)

type ctxKey byte

// LangprocOptions holds everything a command needs: where the grammar comes from,
// how the derivation runs and where its output goes.
type LangprocOptions struct {
	Writer    io.Writer
	ErrWriter io.Writer
	Logger    log.Logger

	// Version of langproc
	LangprocVersion *version.Version

	Telemetry *telemetry.Options

	// Path to the grammar file, text or HCL.
	GrammarPath string
	// If set, every word is appended to this file.
	OutputFile string
	// The string the derivation starts from.
	Start string
	// Log level name, parsed into the logger during setup.
	LogLevelStr string
	// Log format name: pretty, bare or json.
	LogFormat string
	// Unique id of this run, attached to log entries and spans.
	RunID string

	LogLevel log.Level

	// Number of workers used by the concurrent strategy. Zero or less means GOMAXPROCS.
	Parallelism int
	// Extra length a derivation string may exceed the bound by before it is discarded.
	Margin int

	ProgressInterval time.Duration

	// Do not print words to Writer.
	NoDisplay bool
	// Print the elapsed time when done.
	ShowTime bool
	// Print the rules, a progress line and a summary.
	Verbose bool
	// Use the sequential strategy.
	Single bool

	DisableColors bool
}

// NewLangprocOptions creates a new LangprocOptions object with reasonable defaults for real usage.
func NewLangprocOptions() *LangprocOptions {
	return NewLangprocOptionsWithWriters(os.Stdout, os.Stderr)
}

// NewLangprocOptionsWithWriters creates options that write words to stdout and logs to stderr.
func NewLangprocOptionsWithWriters(stdout, stderr io.Writer) *LangprocOptions {
	return &LangprocOptions{
		Writer:           stdout,
		ErrWriter:        stderr,
		Logger:           log.New(log.WithOutput(stderr), log.WithLevel(defaultLogLevel)),
		LogLevel:         defaultLogLevel,
		LogLevelStr:      defaultLogLevel.String(),
		LogFormat:        log.PrettyFormatName,
		Start:            derive.DefaultStart,
		Margin:           grammar.DefaultMargin,
		ProgressInterval: DefaultProgressInterval,
		Telemetry:        &telemetry.Options{},
	}
}

// NewLangprocOptionsForTest creates options with debug logging that write to the given buffers.
func NewLangprocOptionsForTest(stdout, stderr io.Writer) *LangprocOptions {
	opts := NewLangprocOptionsWithWriters(stdout, stderr)
	opts.Logger.SetOptions(log.WithLevel(log.DebugLevel), log.WithFormatter(log.NewBareFormatter()))
	opts.LogLevel = log.DebugLevel
	opts.LogLevelStr = log.DebugLevel.String()

	return opts
}

// OptionsFromContext tries to retrieve options from context, otherwise, returns its own instance.
func (opts *LangprocOptions) OptionsFromContext(ctx context.Context) *LangprocOptions {
	if val := ctx.Value(ContextKey); val != nil {
		if opts, ok := val.(*LangprocOptions); ok {
			return opts
		}
	}

	return opts
}

// Strategy returns the derivation strategy selected by the Single flag.
func (opts *LangprocOptions) Strategy() derive.Strategy {
	if opts.Single {
		return derive.StrategySequential
	}

	return derive.StrategyConcurrent
}

// DeriveOptions translates the options into explorer options.
func (opts *LangprocOptions) DeriveOptions() []derive.Option {
	return []derive.Option{
		derive.WithMargin(opts.Margin),
		derive.WithParallelism(opts.Parallelism),
		derive.WithLogger(opts.Logger),
	}
}
