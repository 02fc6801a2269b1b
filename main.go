package main

import (
	"context"
	"os"

	"github.com/langproc/langproc/cli"
	"github.com/langproc/langproc/cli/flags"
	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/options"
	"github.com/langproc/langproc/pkg/log"
	urfave "github.com/urfave/cli/v2"
)

// The main entrypoint for langproc
func main() {
	opts := options.NewLangprocOptions()

	// Apply `LANGPROC_LOG_LEVEL` right away, so setup problems are logged at the requested level.
	for _, name := range flags.EnvVars(flags.LogLevelFlagName) {
		if level, ok := os.LookupEnv(name); ok {
			if err := opts.Logger.SetLevel(level); err != nil {
				opts.Logger.Error(err.Error())
				os.Exit(1)
			}
		}
	}

	defer errors.Recover(checkForErrorsAndExit(opts.Logger))

	app := cli.NewApp(opts)

	ctx := log.ContextWithLogger(context.Background(), opts.Logger)
	err := app.RunContext(ctx, os.Args)

	checkForErrorsAndExit(opts.Logger)(err)
}

// If there is an error, display it in the console and exit with a non-zero exit code. Otherwise, exit 0.
func checkForErrorsAndExit(logger log.Logger) func(error) {
	return func(err error) {
		if err == nil {
			os.Exit(0)
		}

		logger.Error(err.Error())

		if errStack := errors.ErrorStack(err); errStack != "" {
			logger.Trace(errStack)
		}

		exitCode := 1

		var exitCoder urfave.ExitCoder
		if errors.As(err, &exitCoder) {
			exitCode = exitCoder.ExitCode()
		}

		os.Exit(exitCode)
	}
}
