package grammar

import (
	"strings"

	"github.com/langproc/langproc/internal/errors"
)

// EmptyMarker is how an epsilon right-hand side is rendered.
const EmptyMarker = "<empty>"

// ErrEmptyLeftSide is returned by NewRule when the pattern is empty.
var ErrEmptyLeftSide = errors.New("rule pattern must not be empty")

// Rule is a whole-string substitution `Left -> Right`. An empty Right is an epsilon production.
type Rule struct {
	left  string
	right string
}

// NewRule creates a rule. The left side must not be empty.
func NewRule(left, right string) (*Rule, error) {
	if left == "" {
		return nil, ErrEmptyLeftSide
	}

	return &Rule{left: left, right: right}, nil
}

// MustRule is like NewRule but panics on an empty left side. Intended for tests and literals.
func MustRule(left, right string) *Rule {
	rule, err := NewRule(left, right)
	if err != nil {
		panic(err)
	}

	return rule
}

// Left returns the pattern.
func (rule *Rule) Left() string {
	return rule.left
}

// Right returns the replacement, empty for epsilon.
func (rule *Rule) Right() string {
	return rule.right
}

// IsEpsilon reports whether the rule removes its pattern.
func (rule *Rule) IsEpsilon() bool {
	return rule.right == ""
}

// Apply replaces every non-overlapping occurrence of the pattern in one left-to-right pass.
// When the pattern does not occur the input is returned unchanged.
func (rule *Rule) Apply(input string) string {
	return strings.ReplaceAll(input, rule.left, rule.right)
}

// String renders the rule as `left -> right`.
func (rule *Rule) String() string {
	right := rule.right
	if right == "" {
		right = EmptyMarker
	}

	return rule.left + " -> " + right
}
