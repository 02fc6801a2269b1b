package config

import (
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/grammar"
)

const (
	maxLengthAttr = "max_length"
	terminalsAttr = "terminals"
	rightAttr     = "right"
	ruleBlock     = "rule"
)

// hclGrammar is the HCL shape of a grammar file. The remain bodies only keep
// unknown attributes from failing the decode; they are reported by warnUnknown.
type hclGrammar struct {
	MaxLength *int      `hcl:"max_length,optional"`
	Remain    hcl.Body  `hcl:",remain"`
	Terminals []string  `hcl:"terminals,optional"`
	Rules     []hclRule `hcl:"rule,block"`
}

type hclRule struct {
	Remain hcl.Body `hcl:",remain"`
	Left   string   `hcl:"left,label"`
	Right  []string `hcl:"right"`
}

// ParseHCL parses a grammar in the HCL format. HCL syntax errors and wrongly typed
// attributes are returned as errors; unknown attributes and unusable values are warnings.
func ParseHCL(path string, content []byte) (file *GrammarFile, err error) {
	// The HCL decoder and cty conversions may panic on malformed input.
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.New(PanicWhileParsingGrammarError{RecoveredValue: recovered, Path: path})
		}
	}()

	hclFile, diags := hclparse.NewParser().ParseHCL(content, path)
	if diags.HasErrors() {
		return nil, errors.New(diags)
	}

	var decoded hclGrammar

	if diags := gohcl.DecodeBody(hclFile.Body, nil, &decoded); diags.HasErrors() {
		return nil, errors.New(diags)
	}

	body, ok := hclFile.Body.(*hclsyntax.Body)
	if !ok {
		return nil, errors.Errorf("%s: not a native HCL syntax body", path)
	}

	file = &GrammarFile{Path: path}
	file.warnUnknown(body, []string{maxLengthAttr, terminalsAttr}, ruleBlock)

	var ruleBodies []*hclsyntax.Body

	for _, block := range body.Blocks {
		if block.Type == ruleBlock {
			ruleBodies = append(ruleBodies, block.Body)
		}
	}

	maxLength := DefaultMaxLength

	if decoded.MaxLength != nil {
		if *decoded.MaxLength <= 0 {
			file.warn(InvalidValueError{Name: maxLengthAttr, Value: strconv.Itoa(*decoded.MaxLength), Reason: "must be a positive integer"})
		} else {
			maxLength = *decoded.MaxLength
		}
	}

	var terminals []rune
	for _, terminal := range decoded.Terminals {
		terminals = append(terminals, []rune(terminal)...)
	}

	var rules []*grammar.Rule

	for i, block := range decoded.Rules {
		file.warnUnknown(ruleBodies[i], []string{rightAttr})

		for _, right := range block.Right {
			rule, err := grammar.NewRule(block.Left, rightSide(right))
			if err != nil {
				file.warn(RuleSyntaxError{Text: block.Left + " -> " + right})
				continue
			}

			rules = append(rules, rule)
		}
	}

	file.Grammar = grammar.New(maxLength, terminals, rules)

	return file, nil
}

// warnUnknown records the attributes of body not named in attrs, in source order,
// followed by the blocks whose type is not one of blocks.
func (file *GrammarFile) warnUnknown(body *hclsyntax.Body, attrs []string, blocks ...string) {
	var unknown []*hclsyntax.Attribute

	for name, attr := range body.Attributes {
		if !slices.Contains(attrs, name) {
			unknown = append(unknown, attr)
		}
	}

	slices.SortFunc(unknown, func(a, b *hclsyntax.Attribute) int {
		return a.SrcRange.Start.Byte - b.SrcRange.Start.Byte
	})

	for _, attr := range unknown {
		file.warn(UnknownVariableError{Name: attr.Name, Line: attr.SrcRange.Start.Line})
	}

	for _, block := range body.Blocks {
		if !slices.Contains(blocks, block.Type) {
			file.warn(UnknownBlockError{Type: block.Type, Line: block.TypeRange.Start.Line})
		}
	}
}
