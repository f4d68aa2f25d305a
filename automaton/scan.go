package automaton

import (
	"strings"
	"unicode/utf8"
)

// atom is one scanned regex element before any quantifier is applied.
type atom struct {
	// label is the collapsed form: the class body for a bracket class, the
	// escaped character for an escape, the character itself otherwise.
	// "_Read" state names derive from it.
	label string
	// symbol is the transition and alphabet form of the label: identical to
	// label except that a literal backslash keeps its escape doubled.
	symbol string
	// width is the number of bytes consumed from the expression.
	width int
}

// scanAtom recognizes the atom starting at expr[pos], trying rules in
// order: bracket character class, backslash escape, single literal.
// Alternation and grouping metacharacters are rejected rather than silently
// compiled into a structurally wrong automaton.
func scanAtom(name, expr string, pos int) (atom, error) {
	switch expr[pos] {
	case '[':
		// Non-greedy match: first closing bracket after at least one body
		// character. The body is kept verbatim as one opaque symbol.
		if pos+2 < len(expr) {
			if rel := strings.IndexByte(expr[pos+2:], ']'); rel >= 0 {
				body := expr[pos+1 : pos+2+rel]
				return atom{label: body, symbol: escapeSymbol(body), width: len(body) + 2}, nil
			}
		}
		return atom{}, &CompileError{Pattern: name, Pos: pos, Msg: "unmatched '[' in character class"}
	case '\\':
		if pos+1 >= len(expr) {
			return atom{}, &CompileError{Pattern: name, Pos: pos, Msg: "trailing backslash"}
		}
		r, size := utf8.DecodeRuneInString(expr[pos+1:])
		label := string(r)
		return atom{label: label, symbol: escapeSymbol(label), width: 1 + size}, nil
	case '|':
		return atom{}, &CompileError{Pattern: name, Pos: pos, Msg: "alternation is not supported"}
	case '(', ')':
		return atom{}, &CompileError{Pattern: name, Pos: pos, Msg: "grouping is not supported"}
	default:
		r, size := utf8.DecodeRuneInString(expr[pos:])
		label := string(r)
		return atom{label: label, symbol: label, width: size}, nil
	}
}

// escapeSymbol doubles backslashes so an escaped backslash survives the
// round trip to renderer-safe output. For any other escaped character the
// collapsed label contains no backslash and passes through unchanged.
func escapeSymbol(label string) string {
	return strings.ReplaceAll(label, `\`, `\\`)
}

// isQuantifier reports whether c is a postfix quantifier character.
func isQuantifier(c byte) bool {
	return c == '+' || c == '*' || c == '?'
}
