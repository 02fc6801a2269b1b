// Package rules implements the command that prints a grammar file as it was understood.
package rules

import (
	"github.com/langproc/langproc/cli/commands"
	"github.com/langproc/langproc/options"
	"github.com/urfave/cli/v2"
)

const (
	CommandName = "rules"
)

// NewCommand creates the rules command.
func NewCommand(opts *options.LangprocOptions) *cli.Command {
	return &cli.Command{
		Name:      CommandName,
		Usage:     "Print the length bound, terminals and rules of a grammar file.",
		ArgsUsage: "<grammar-file>",
		Action: func(ctx *cli.Context) error {
			opts := opts.OptionsFromContext(ctx.Context)

			path, err := commands.GrammarPathArg(ctx)
			if err != nil {
				return err
			}

			opts.GrammarPath = path

			return Run(ctx.Context, opts)
		},
	}
}
