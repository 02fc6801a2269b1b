// Package generate implements the command that enumerates and prints the words of a grammar.
package generate

import (
	"github.com/langproc/langproc/cli/commands"
	"github.com/langproc/langproc/cli/flags"
	"github.com/langproc/langproc/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "generate"
)

// NewCommand creates the generate command.
func NewCommand(opts *options.LangprocOptions) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Derive every word of the grammar up to its length bound.",
		ArgsUsage: "<grammar-file>",
		Flags:     flags.NewGenerateFlags(opts),
		Action:    Action(opts),
	}
}

// Action reads the grammar path argument and runs the generation.
func Action(opts *options.LangprocOptions) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		opts := opts.OptionsFromContext(ctx.Context)

		path, err := commands.GrammarPathArg(ctx)
		if err != nil {
			return err
		}

		opts.GrammarPath = path

		return Run(ctx.Context, opts)
	}
}
