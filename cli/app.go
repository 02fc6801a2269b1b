// Package cli assembles the langproc command line application.
package cli

import (
	"context"

	"github.com/google/uuid"
	"github.com/gruntwork-io/go-commons/version"
	hashicorpversion "github.com/hashicorp/go-version"
	"github.com/langproc/langproc/cli/commands/generate"
	"github.com/langproc/langproc/cli/commands/rules"
	"github.com/langproc/langproc/cli/flags"
	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/sink"
	"github.com/langproc/langproc/options"
	"github.com/langproc/langproc/pkg/log"
	"github.com/langproc/langproc/telemetry"
	"github.com/urfave/cli/v2"
)

const (
	AppName  = "langproc"
	AppUsage = "Enumerates the words of a string-rewriting grammar up to a bounded length."
)

// NewApp creates the langproc CLI App.
func NewApp(opts *options.LangprocOptions) *cli.App {
	var tlm *telemetry.Telemeter

	app := cli.NewApp()
	app.Name = AppName
	app.Usage = AppUsage
	app.UsageText = "langproc [global options] [command] [command options] <grammar-file>"
	app.Version = version.GetVersion()
	app.Writer = opts.Writer
	app.ErrWriter = opts.ErrWriter
	// Generate flags are accepted at the root too, so `langproc [flags] <grammar-file>` works.
	app.Flags = append(flags.NewGlobalFlags(opts), flags.NewGenerateFlags(opts)...)
	app.Commands = []*cli.Command{
		generate.NewCommand(opts),
		rules.NewCommand(opts),
	}
	app.Action = generate.Action(opts)
	app.Before = func(ctx *cli.Context) error {
		if err := initialSetup(ctx, opts); err != nil {
			return err
		}

		var err error

		tlm, err = telemetry.NewTelemeter(ctx.Context, AppName, ctx.App.Version, opts.ErrWriter, opts.Telemetry)
		if err != nil {
			return err
		}

		ctx.Context = telemetry.ContextWithTelemeter(ctx.Context, tlm)
		ctx.Context = log.ContextWithLogger(ctx.Context, opts.Logger)
		ctx.Context = context.WithValue(ctx.Context, options.ContextKey, opts)

		return nil
	}
	app.After = func(ctx *cli.Context) error {
		if tlm == nil {
			return nil
		}

		return tlm.Shutdown(ctx.Context)
	}
	// Errors are reported by the caller, which also picks the exit code.
	app.ExitErrHandler = func(*cli.Context, error) {}

	return app
}

func initialSetup(ctx *cli.Context, opts *options.LangprocOptions) error {
	level, err := log.ParseLevel(opts.LogLevelStr)
	if err != nil {
		return errors.New(err)
	}

	formatter, err := log.ParseFormat(opts.LogFormat, opts.DisableColors || !sink.IsTerminal(opts.ErrWriter))
	if err != nil {
		return err
	}

	opts.LogLevel = level
	opts.Logger.SetOptions(log.WithLevel(level), log.WithFormatter(formatter))

	langprocVersion, err := hashicorpversion.NewVersion(ctx.App.Version)
	if err != nil {
		// Malformed version, e.g. a development build; set the version to 0.0
		if langprocVersion, err = hashicorpversion.NewVersion("0.0"); err != nil {
			return errors.New(err)
		}
	}

	opts.LangprocVersion = langprocVersion
	opts.Logger.Debugf("Langproc version: %s", opts.LangprocVersion)

	if opts.RunID == "" {
		opts.RunID = uuid.NewString()
	}

	return nil
}
