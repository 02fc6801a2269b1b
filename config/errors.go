package config

import "fmt"

// Loader warnings. None of them stops a grammar file from loading: the offending line or
// attribute is skipped and the warning is recorded on GrammarFile.Warnings.

// at prefixes a warning with its line number. Line 0 means unknown.
func at(line int) string {
	if line <= 0 {
		return ""
	}

	return fmt.Sprintf("line %d: ", line)
}

// UnknownVariableError is reported for a setting other than n and L.
type UnknownVariableError struct {
	Name string
	Line int
}

func (err UnknownVariableError) Error() string {
	return at(err.Line) + fmt.Sprintf("unknown variable %q in grammar file, ignoring", err.Name)
}

// InvalidValueError is reported when a setting has a value that cannot be used.
type InvalidValueError struct {
	Name   string
	Value  string
	Reason string
	Line   int
}

func (err InvalidValueError) Error() string {
	return at(err.Line) + fmt.Sprintf("invalid value %q for %s: %s, ignoring", err.Value, err.Name, err.Reason)
}

// RuleSyntaxError is reported for a rule line that is not of the form Left -> Right.
type RuleSyntaxError struct {
	Text string
	Line int
}

func (err RuleSyntaxError) Error() string {
	return at(err.Line) + fmt.Sprintf("syntax error in rule %q, needs to be in format \"Left -> Right\", ignoring", err.Text)
}

// LineSyntaxError is reported for a line that is neither a rule nor a setting.
type LineSyntaxError struct {
	Text string
	Line int
}

func (err LineSyntaxError) Error() string {
	return at(err.Line) + fmt.Sprintf("syntax error in %q, neither a rule nor a setting, ignoring", err.Text)
}

// UnknownBlockError is reported for an HCL block the grammar format does not define.
type UnknownBlockError struct {
	Type string
	Line int
}

func (err UnknownBlockError) Error() string {
	return at(err.Line) + fmt.Sprintf("unknown block %q in grammar file, ignoring", err.Type)
}

// GrammarFileNotFoundError is returned when the grammar file does not exist.
type GrammarFileNotFoundError struct {
	Path string
}

func (err GrammarFileNotFoundError) Error() string {
	return fmt.Sprintf("grammar file %s does not exist", err.Path)
}

// GrammarPathIsDirError is returned when the grammar path points to a directory.
type GrammarPathIsDirError struct {
	Path string
}

func (err GrammarPathIsDirError) Error() string {
	return fmt.Sprintf("grammar path %s is a directory, expected a file", err.Path)
}

// PanicWhileParsingGrammarError is returned when the HCL decoder panics.
type PanicWhileParsingGrammarError struct {
	RecoveredValue any
	Path           string
}

func (err PanicWhileParsingGrammarError) Error() string {
	return fmt.Sprintf("recovering panic while parsing %s: %v", err.Path, err.RecoveredValue)
}
