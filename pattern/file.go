package pattern

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk pattern set format: a YAML document with an ordered
// list of token definitions. A list is used rather than a map so that
// definition order survives the round trip.
//
//	tokens:
//	  - name: NUMBER
//	    pattern: "[0-9]+"
//	  - name: ASSIGN
//	    pattern: "="
type File struct {
	Tokens []Pattern `yaml:"tokens"`
}

var ErrNoTokens = errors.New("pattern: file defines no tokens")

// Parse decodes a YAML pattern file. Duplicate names follow Set semantics
// (last definition wins); the names of replaced entries are returned so the
// caller can surface a warning.
func Parse(data []byte) (*Set, []string, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, fmt.Errorf("pattern: parse file: %w", err)
	}
	if len(f.Tokens) == 0 {
		return nil, nil, ErrNoTokens
	}

	set := NewSet()
	var replaced []string
	for _, p := range f.Tokens {
		if p.Name == "" {
			return nil, nil, fmt.Errorf("pattern: token with pattern %q has no name", p.Expr)
		}
		if set.Add(p.Name, p.Expr) {
			replaced = append(replaced, p.Name)
		}
	}
	return set, replaced, nil
}

// LoadFile reads and decodes a YAML pattern file from disk.
func LoadFile(path string) (*Set, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("pattern: read %s: %w", path, err)
	}
	return Parse(data)
}
