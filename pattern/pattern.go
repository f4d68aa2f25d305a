// Package pattern holds named token patterns, the input to the NFA compiler.
package pattern

// Pattern is a single named token definition. Expr is a restricted regular
// expression: literal characters, bracket character classes, backslash
// escapes, and the postfix quantifiers + * ? applied to the preceding atom.
type Pattern struct {
	Name string `yaml:"name" json:"name"`
	Expr string `yaml:"pattern" json:"pattern"`
}

// Set is an ordered collection of patterns. Names are unique within a set:
// re-adding a name replaces the earlier definition in place, keeping its
// original position. Definition order is significant downstream (the lexer
// breaks match ties by it).
type Set struct {
	patterns []Pattern
	index    map[string]int
}

// NewSet creates an empty pattern set.
func NewSet() *Set {
	return &Set{index: make(map[string]int)}
}

// Add registers a pattern. Returns true if an existing definition with the
// same name was replaced.
func (s *Set) Add(name, expr string) bool {
	if i, ok := s.index[name]; ok {
		s.patterns[i].Expr = expr
		return true
	}
	s.index[name] = len(s.patterns)
	s.patterns = append(s.patterns, Pattern{Name: name, Expr: expr})
	return false
}

// Get returns the pattern registered under name.
func (s *Set) Get(name string) (Pattern, bool) {
	i, ok := s.index[name]
	if !ok {
		return Pattern{}, false
	}
	return s.patterns[i], true
}

// Patterns returns the definitions in registration order.
func (s *Set) Patterns() []Pattern {
	out := make([]Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}

// Names returns the pattern names in registration order.
func (s *Set) Names() []string {
	names := make([]string, len(s.patterns))
	for i, p := range s.patterns {
		names[i] = p.Name
	}
	return names
}

// Len returns the number of distinct patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}
