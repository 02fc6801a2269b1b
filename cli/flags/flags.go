// Package flags defines the command line flags and binds them to options.LangprocOptions.
package flags

import (
	"fmt"
	"strings"
	"time"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/options"
	"github.com/langproc/langproc/pkg/log"
	"github.com/urfave/cli/v2"
)

// EnvVarPrefix is prepended to every flag's environment variable.
const EnvVarPrefix = "LANGPROC_"

const (
	// Logs related flags.

	LogLevelFlagName  = "log-level"
	LogFormatFlagName = "log-format"
	NoColorFlagName   = "no-color"

	// Telemetry flags.

	TelemetryTraceExporterFlagName                  = "telemetry-trace-exporter"
	TelemetryTraceExporterHTTPEndpointFlagName      = "telemetry-trace-exporter-http-endpoint"
	TelemetryTraceExporterInsecureEndpointFlagName  = "telemetry-trace-exporter-insecure-endpoint"
	TelemetryMetricExporterFlagName                 = "telemetry-metric-exporter"
	TelemetryMetricExporterInsecureEndpointFlagName = "telemetry-metric-exporter-insecure-endpoint"
	TraceparentFlagName                             = "traceparent"

	// Generate flags.

	OutputFileFlagName       = "output-file"
	NoDisplayFlagName        = "no-display"
	StartFlagName            = "start"
	TimeFlagName             = "time"
	VerboseFlagName          = "verbose"
	SingleFlagName           = "single"
	ParallelismFlagName      = "parallelism"
	MarginFlagName           = "margin"
	ProgressIntervalFlagName = "progress-interval"
)

// InvalidFlagValueError is returned when a flag is given a value it cannot use.
type InvalidFlagValueError struct {
	Flag   string
	Value  string
	Reason string
}

func (err InvalidFlagValueError) Error() string {
	return fmt.Sprintf("invalid value %q for flag --%s: %s", err.Value, err.Flag, err.Reason)
}

// EnvVars returns the environment variable names of the flag with the given name.
func EnvVars(name string) []string {
	return []string{EnvVarPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

// NewGlobalFlags creates the flags shared by all commands.
func NewGlobalFlags(opts *options.LangprocOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        LogLevelFlagName,
			EnvVars:     EnvVars(LogLevelFlagName),
			Usage:       "Sets the logging level: " + log.AllLevels.String() + ".",
			Value:       opts.LogLevelStr,
			Destination: &opts.LogLevelStr,
		},
		&cli.StringFlag{
			Name:        LogFormatFlagName,
			EnvVars:     EnvVars(LogFormatFlagName),
			Usage:       "Sets the log format: " + strings.Join([]string{log.PrettyFormatName, log.BareFormatName, log.JSONFormatName}, ", ") + ".",
			Value:       opts.LogFormat,
			Destination: &opts.LogFormat,
		},
		&cli.BoolFlag{
			Name:        NoColorFlagName,
			EnvVars:     EnvVars(NoColorFlagName),
			Usage:       "Disables colors in the output.",
			Destination: &opts.DisableColors,
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterFlagName,
			EnvVars:     EnvVars(TelemetryTraceExporterFlagName),
			Usage:       "Enables trace export: none, console, otlpHttp, otlpGrpc or http.",
			Destination: &opts.Telemetry.TraceExporter,
		},
		&cli.StringFlag{
			Name:        TelemetryTraceExporterHTTPEndpointFlagName,
			EnvVars:     EnvVars(TelemetryTraceExporterHTTPEndpointFlagName),
			Usage:       "Endpoint of the http trace exporter.",
			Destination: &opts.Telemetry.TraceExporterHTTPEndpoint,
		},
		&cli.BoolFlag{
			Name:        TelemetryTraceExporterInsecureEndpointFlagName,
			EnvVars:     EnvVars(TelemetryTraceExporterInsecureEndpointFlagName),
			Usage:       "Exports traces over an insecure connection.",
			Destination: &opts.Telemetry.TraceExporterInsecureEndpoint,
		},
		&cli.StringFlag{
			Name:        TelemetryMetricExporterFlagName,
			EnvVars:     EnvVars(TelemetryMetricExporterFlagName),
			Usage:       "Enables metric export: none, console, otlpHttp or otlpGrpc.",
			Destination: &opts.Telemetry.MetricExporter,
		},
		&cli.BoolFlag{
			Name:        TelemetryMetricExporterInsecureEndpointFlagName,
			EnvVars:     EnvVars(TelemetryMetricExporterInsecureEndpointFlagName),
			Usage:       "Exports metrics over an insecure connection.",
			Destination: &opts.Telemetry.MetricExporterInsecureEndpoint,
		},
		&cli.StringFlag{
			Name:        TraceparentFlagName,
			EnvVars:     append(EnvVars(TraceparentFlagName), "TRACEPARENT"),
			Usage:       "W3C traceparent the spans of this run are attached to.",
			Destination: &opts.Telemetry.TraceParent,
		},
	}
}

// NewGenerateFlags creates the flags of the generate command.
func NewGenerateFlags(opts *options.LangprocOptions) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        OutputFileFlagName,
			EnvVars:     EnvVars(OutputFileFlagName),
			Usage:       "Writes the found words to the given file.",
			Destination: &opts.OutputFile,
		},
		&cli.BoolFlag{
			Name:        NoDisplayFlagName,
			EnvVars:     EnvVars(NoDisplayFlagName),
			Usage:       "Does not print the words on the console.",
			Destination: &opts.NoDisplay,
		},
		&cli.StringFlag{
			Name:        StartFlagName,
			EnvVars:     EnvVars(StartFlagName),
			Usage:       "The string the derivation starts with.",
			Value:       opts.Start,
			Destination: &opts.Start,
		},
		&cli.BoolFlag{
			Name:        TimeFlagName,
			EnvVars:     EnvVars(TimeFlagName),
			Usage:       "Prints the processing time.",
			Destination: &opts.ShowTime,
		},
		&cli.BoolFlag{
			Name:        VerboseFlagName,
			EnvVars:     EnvVars(VerboseFlagName),
			Usage:       "Prints the rules, a progress line and a summary.",
			Destination: &opts.Verbose,
		},
		&cli.BoolFlag{
			Name:        SingleFlagName,
			EnvVars:     EnvVars(SingleFlagName),
			Usage:       "Derives in a single goroutine, printing words in a deterministic order.",
			Destination: &opts.Single,
		},
		&cli.IntFlag{
			Name:        ParallelismFlagName,
			EnvVars:     EnvVars(ParallelismFlagName),
			Usage:       "Number of workers of the concurrent derivation. Defaults to the number of CPUs.",
			Destination: &opts.Parallelism,
		},
		&cli.IntFlag{
			Name:        MarginFlagName,
			EnvVars:     EnvVars(MarginFlagName),
			Usage:       "How many characters a derivation string may exceed the length bound by before it is dropped.",
			Value:       opts.Margin,
			Destination: &opts.Margin,
		},
		&cli.DurationFlag{
			Name:        ProgressIntervalFlagName,
			EnvVars:     EnvVars(ProgressIntervalFlagName),
			Usage:       "How often the verbose progress line is refreshed.",
			Value:       opts.ProgressInterval,
			Destination: &opts.ProgressInterval,
			Hidden:      true,
			Action: func(_ *cli.Context, interval time.Duration) error {
				if interval <= 0 {
					return errors.New(InvalidFlagValueError{Flag: ProgressIntervalFlagName, Value: interval.String(), Reason: "must be positive"})
				}

				return nil
			},
		},
	}
}
