// Package config loads grammar files.
//
// Two formats are understood. The line-oriented text format:
//
//	# comment
//	n = 5
//	L = {a, b}
//	S -> aSb | ab
//
// and, for files ending in .hcl, an HCL rendition of the same content:
//
//	max_length = 5
//	terminals  = ["a", "b"]
//
//	rule "S" {
//	  right = ["aSb", "ab"]
//	}
//
// Problems with the content never fail a load. They are collected as warnings
// and the offending line or attribute is skipped.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/langproc/langproc/internal/errors"
	"github.com/langproc/langproc/internal/grammar"
	"github.com/langproc/langproc/pkg/log"
	"github.com/mitchellh/go-homedir"
)

const (
	// DefaultMaxLength applies when a grammar file does not set the length bound.
	DefaultMaxLength = 5

	// HCLExtension selects the HCL format.
	HCLExtension = ".hcl"

	// EmptyMarker and EpsilonMarker denote the empty string on a right-hand side.
	EmptyMarker   = "{empty}"
	EpsilonMarker = "ε"
)

var epsilonReplacer = strings.NewReplacer(EmptyMarker, "", EpsilonMarker, "")

// GrammarFile is a loaded grammar file.
type GrammarFile struct {
	Grammar *grammar.Grammar
	Path    string
	// Warnings holds the non-fatal problems found in the file, in file order.
	Warnings []error
}

// LoadFile reads and parses the grammar file at path. A leading ~ is expanded to the home directory.
func LoadFile(logger log.Logger, path string) (*GrammarFile, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, errors.New(err)
	}

	info, err := os.Stat(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(GrammarFileNotFoundError{Path: expandedPath})
		}

		return nil, errors.New(err)
	}

	if info.IsDir() {
		return nil, errors.New(GrammarPathIsDirError{Path: expandedPath})
	}

	content, err := os.ReadFile(expandedPath)
	if err != nil {
		return nil, errors.New(err)
	}

	var file *GrammarFile

	if strings.EqualFold(filepath.Ext(expandedPath), HCLExtension) {
		file, err = ParseHCL(expandedPath, content)
	} else {
		file, err = ParseText(expandedPath, bytes.NewReader(content))
	}

	if err != nil {
		return nil, err
	}

	logger.Debugf("Loaded grammar file %s: %d rules, max length %d, %d warnings", expandedPath, len(file.Grammar.Rules()), file.Grammar.MaxLength(), len(file.Warnings))

	return file, nil
}

func (file *GrammarFile) warn(err error) {
	file.Warnings = append(file.Warnings, err)
}

// rightSide resolves the epsilon markers of a right-hand side.
func rightSide(right string) string {
	return epsilonReplacer.Replace(right)
}
