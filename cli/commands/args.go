package commands

import (
	"github.com/langproc/langproc/internal/errors"
	"github.com/urfave/cli/v2"
)

// GrammarPathArg returns the single positional grammar file argument of a command.
// On a usage error the command help is printed.
func GrammarPathArg(ctx *cli.Context) (string, error) {
	switch ctx.NArg() {
	case 0:
		showHelp(ctx)
		return "", errors.New(MissingGrammarPathError{Command: commandName(ctx)})
	case 1:
		return ctx.Args().First(), nil
	}

	return "", errors.New(TooManyArgsError{Command: commandName(ctx), Args: ctx.Args().Slice()})
}

// isRoot reports whether the action runs as the app's own action rather than a subcommand.
func isRoot(ctx *cli.Context) bool {
	return ctx.Command == nil || ctx.Command.Name == "" || ctx.Command.Name == ctx.App.Name
}

func commandName(ctx *cli.Context) string {
	if isRoot(ctx) {
		return ctx.App.Name
	}

	return ctx.Command.Name
}

func showHelp(ctx *cli.Context) {
	if isRoot(ctx) {
		_ = cli.ShowAppHelp(ctx)
		return
	}

	_ = cli.ShowCommandHelp(ctx, ctx.Command.Name)
}
