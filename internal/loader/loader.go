// Package loader reads a resume file from disk into the generic value tree
// the validator works on.
package loader

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML resume file. The result is the untyped tree
// yaml produces for documents of unknown shape: nested map[string]any,
// []any, and scalars. Unreadable or malformed input is a hard failure; shape
// problems are the validator's concern, not the loader's.
func Load(path string) (any, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Cause: err}
	}

	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	return doc, nil
}
