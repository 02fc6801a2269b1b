// Package grammar holds the immutable description of a string-rewriting grammar
// and the policy that decides what becomes of a rewritten string.
package grammar

import (
	"slices"
	"unicode/utf8"
)

// Grammar bundles the word length bound, the terminal alphabet and the ordered rules.
// It is never modified after New and is safe for concurrent reads.
type Grammar struct {
	terminals map[rune]struct{}
	rules     []*Rule
	maxLength int
}

// New creates a grammar. Rules keep the given order, which is the order they are applied in.
func New(maxLength int, terminals []rune, rules []*Rule) *Grammar {
	set := make(map[rune]struct{}, len(terminals))
	for _, r := range terminals {
		set[r] = struct{}{}
	}

	return &Grammar{
		maxLength: maxLength,
		terminals: set,
		rules:     slices.Clone(rules),
	}
}

// MaxLength is the longest word, in characters, that may be emitted.
func (g *Grammar) MaxLength() int {
	return g.maxLength
}

// Terminals returns the terminal alphabet in ascending order.
func (g *Grammar) Terminals() []rune {
	terminals := make([]rune, 0, len(g.terminals))
	for r := range g.terminals {
		terminals = append(terminals, r)
	}

	slices.Sort(terminals)

	return terminals
}

// Rules returns a copy of the rules in declaration order.
func (g *Grammar) Rules() []*Rule {
	return slices.Clone(g.rules)
}

// IsTerminal reports whether r belongs to the terminal alphabet.
func (g *Grammar) IsTerminal(r rune) bool {
	_, ok := g.terminals[r]
	return ok
}

// IsTerminalString reports whether every character of s is terminal.
func (g *Grammar) IsTerminalString(s string) bool {
	for _, r := range s {
		if !g.IsTerminal(r) {
			return false
		}
	}

	return true
}

// Length returns the length of a derivation string in characters.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}
