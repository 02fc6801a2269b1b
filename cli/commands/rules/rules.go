package rules

import (
	"context"
	"strings"

	"github.com/langproc/langproc/config"
	"github.com/langproc/langproc/internal/grammar"
	"github.com/langproc/langproc/internal/sink"
	"github.com/langproc/langproc/options"
	"github.com/langproc/langproc/pkg/log"
)

// Run loads the grammar file, logs its warnings and prints the grammar.
func Run(ctx context.Context, opts *options.LangprocOptions) error {
	logger := opts.Logger.WithField(log.FieldKeyRunID, opts.RunID)

	file, err := config.LoadFile(logger, opts.GrammarPath)
	if err != nil {
		return err
	}

	for _, warning := range file.Warnings {
		logger.Warnf("%s: %v", file.Path, warning)
	}

	console := sink.NewConsole(opts.Writer, false)

	return PrintGrammar(console, file.Grammar)
}

// PrintGrammar prints the length bound and the terminals of g, followed by its rules.
func PrintGrammar(console *sink.Console, g *grammar.Grammar) error {
	terminals := make([]string, 0, len(g.Terminals()))
	for _, r := range g.Terminals() {
		terminals = append(terminals, string(r))
	}

	if err := console.Printf("n = %d\nL = {%s}\n", g.MaxLength(), strings.Join(terminals, ", ")); err != nil {
		return err
	}

	return PrintRules(console, g)
}

// PrintRules lists the rules of g, one per line.
func PrintRules(console *sink.Console, g *grammar.Grammar) error {
	if err := console.Printf("Grammar rules:\n"); err != nil {
		return err
	}

	for _, rule := range g.Rules() {
		if err := console.Printf("\t%s\n", rule); err != nil {
			return err
		}
	}

	return console.Printf("\n")
}
