package config

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/grammar"
)

const (
	commentPrefix = "#"
	ruleArrow     = "->"
	altRuleArrow  = "=>"
	alternatives  = "|"
	assignment    = "="

	maxLengthVar = "n"
	terminalsVar = "L"
)

// ParseText parses a grammar in the text format. Only read errors are returned;
// everything wrong with the content ends up in GrammarFile.Warnings.
func ParseText(path string, reader io.Reader) (*GrammarFile, error) {
	var (
		file      = &GrammarFile{Path: path}
		maxLength = DefaultMaxLength
		terminals []rune
		rules     []*grammar.Rule
	)

	scanner := bufio.NewScanner(reader)

	for lineNum := 1; scanner.Scan(); lineNum++ {
		line, _, _ := strings.Cut(scanner.Text(), commentPrefix)

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Rules first: "=>" contains the assignment sign.
		if strings.Contains(line, ruleArrow) || strings.Contains(line, altRuleArrow) {
			rules = append(rules, file.parseRule(line, lineNum)...)
			continue
		}

		if name, value, ok := strings.Cut(line, assignment); ok {
			name = strings.TrimSpace(name)
			value = strings.TrimSpace(value)

			switch name {
			case maxLengthVar:
				if n, err := strconv.Atoi(value); err != nil || n <= 0 {
					file.warn(InvalidValueError{Name: name, Value: value, Reason: "must be a positive integer", Line: lineNum})
				} else {
					maxLength = n
				}
			case terminalsVar:
				terminals = letters(value)
				if len(terminals) == 0 {
					file.warn(InvalidValueError{Name: name, Value: value, Reason: "contains no letters", Line: lineNum})
				}
			default:
				file.warn(UnknownVariableError{Name: name, Line: lineNum})
			}

			continue
		}

		file.warn(LineSyntaxError{Text: line, Line: lineNum})
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.New(err)
	}

	file.Grammar = grammar.New(maxLength, terminals, rules)

	return file, nil
}

// parseRule turns "Left -> R1 | R2" into one rule per alternative.
func (file *GrammarFile) parseRule(line string, lineNum int) []*grammar.Rule {
	parts := strings.Split(strings.ReplaceAll(line, altRuleArrow, ruleArrow), ruleArrow)
	if len(parts) != 2 {
		file.warn(RuleSyntaxError{Text: line, Line: lineNum})
		return nil
	}

	left := strings.TrimSpace(parts[0])

	alts := strings.Split(parts[1], alternatives)
	rules := make([]*grammar.Rule, 0, len(alts))

	for _, alt := range alts {
		rule, err := grammar.NewRule(left, rightSide(strings.TrimSpace(alt)))
		if err != nil {
			file.warn(RuleSyntaxError{Text: line, Line: lineNum})
			return nil
		}

		rules = append(rules, rule)
	}

	return rules
}

// letters picks every letter out of a terminal alphabet declaration such as "{a, b, c}".
func letters(value string) []rune {
	var runes []rune

	for _, r := range value {
		if unicode.IsLetter(r) {
			runes = append(runes, r)
		}
	}

	return runes
}
