package grammar

// DefaultMargin is how many characters a derivation string may exceed the
// word bound by and still be expanded, leaving room for later rules to shrink it.
const DefaultMargin = 3

// Verdict is the outcome of classifying a rewritten string.
type Verdict byte

const (
	// NoOp means the rule did not change the input.
	NoOp Verdict = iota
	// Discard means the string is dropped: too long, or all terminal but over the bound.
	Discard
	// Word means the string is all terminal and within the bound.
	Word
	// Continue means the string still holds a non-terminal and may be expanded.
	Continue
)

var verdictNames = map[Verdict]string{
	NoOp:     "no-op",
	Discard:  "discard",
	Word:     "word",
	Continue: "continue",
}

func (verdict Verdict) String() string {
	return verdictNames[verdict]
}

// Classifier applies the word/continue/discard policy of one grammar.
type Classifier struct {
	grammar *Grammar
	margin  int
}

// NewClassifier returns a classifier for g. A negative margin is treated as zero.
func NewClassifier(g *Grammar, margin int) *Classifier {
	if margin < 0 {
		margin = 0
	}

	return &Classifier{grammar: g, margin: margin}
}

// Margin returns the overrun allowance in use.
func (classifier *Classifier) Margin() int {
	return classifier.margin
}

// Classify decides what becomes of output, produced by applying a rule to input.
func (classifier *Classifier) Classify(input, output string) Verdict {
	if output == input {
		return NoOp
	}

	length := Length(output)
	maxLength := classifier.grammar.MaxLength()

	if length > maxLength+classifier.margin {
		return Discard
	}

	terminal := classifier.grammar.IsTerminalString(output)

	switch {
	case terminal && length <= maxLength:
		return Word
	case !terminal:
		return Continue
	default:
		return Discard
	}
}
