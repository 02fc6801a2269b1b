// Package commands holds what the langproc commands share.
package commands

import "fmt"

// UsageExitCode is the exit code of a command invoked with wrong arguments.
const UsageExitCode = 2

// MissingGrammarPathError is returned when a command is invoked without a grammar file.
type MissingGrammarPathError struct {
	Command string
}

func (err MissingGrammarPathError) Error() string {
	return fmt.Sprintf("%s: the path to a grammar file is required", err.Command)
}

// ExitCode implements cli.ExitCoder.
func (err MissingGrammarPathError) ExitCode() int {
	return UsageExitCode
}

// TooManyArgsError is returned when a command is invoked with more than one grammar file.
type TooManyArgsError struct {
	Command string
	Args    []string
}

func (err TooManyArgsError) Error() string {
	return fmt.Sprintf("%s: expected a single grammar file, got %q", err.Command, err.Args)
}

// ExitCode implements cli.ExitCoder.
func (err TooManyArgsError) ExitCode() int {
	return UsageExitCode
}
