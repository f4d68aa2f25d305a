// Package lexer tokenizes source text by simulating the compiled NFA.
//
// The automaton model keeps bracket character classes as opaque alphabet
// symbols; only here, at match time, is a class body interpreted (literal
// members, ranges, optional leading ^ negation). Matching is longest-match,
// with ties broken by pattern definition order.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dslsketch/go-dslsketch/automaton"
	"github.com/dslsketch/go-dslsketch/semantic"
)

// Token is a single lexeme classified by the pattern that matched it.
type Token struct {
	Kind  string
	Value string
	Pos   int // byte offset in the input
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d", t.Kind, t.Value, t.Pos)
}

// Error reports input the automaton cannot tokenize.
type Error struct {
	Pos int
	Ch  rune
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer: no pattern matches %q at position %d", e.Ch, e.Pos)
}

// Lexer runs one compiled automaton over input strings. It is stateless and
// safe for concurrent use.
type Lexer struct {
	a        *automaton.Automaton
	priority map[string]int
}

// New creates a lexer for a compiled automaton. names is the pattern
// definition order used to break ties when several accepting states are
// reachable on the same longest match.
func New(a *automaton.Automaton, names []string) *Lexer {
	priority := make(map[string]int, len(names))
	for i, n := range names {
		priority[n] = i
	}
	return &Lexer{a: a, priority: priority}
}

// Scan tokenizes the whole input. Runs of spaces, tabs, and newlines
// separate tokens and are discarded.
func (l *Lexer) Scan(input string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(input) {
		r, size := utf8.DecodeRuneInString(input[pos:])
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			pos += size
			continue
		}
		tok, width, ok := l.match(input, pos)
		if !ok {
			return tokens, &Error{Pos: pos, Ch: r}
		}
		tokens = append(tokens, tok)
		pos += width
	}
	return tokens, nil
}

// match finds the longest token starting at pos.
func (l *Lexer) match(input string, pos int) (Token, int, bool) {
	current := l.a.EpsilonClosure(automaton.NewSet(l.a.Initial))
	bestWidth := -1
	bestKind := ""

	for i := pos; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		next := automaton.NewSet()
		for state := range current {
			for symbol, targets := range l.a.Transitions[state] {
				if symbol == automaton.Epsilon || !symbolMatches(symbol, r) {
					continue
				}
				for t := range targets {
					next.Add(t)
				}
			}
		}
		if len(next) == 0 {
			break
		}
		current = l.a.EpsilonClosure(next)
		i += size

		if kind, ok := l.acceptedKind(current); ok {
			bestWidth = i - pos
			bestKind = kind
		}
	}

	if bestWidth < 0 {
		return Token{}, 0, false
	}
	return Token{Kind: bestKind, Value: input[pos : pos+bestWidth], Pos: pos}, bestWidth, true
}

// acceptedKind returns the highest-priority accepting state in the set.
func (l *Lexer) acceptedKind(states automaton.Set) (string, bool) {
	best := ""
	bestPriority := -1
	for s := range states {
		if !l.a.Accepting.Contains(s) {
			continue
		}
		p, ok := l.priority[s]
		if !ok {
			continue
		}
		if bestPriority < 0 || p < bestPriority {
			best = s
			bestPriority = p
		}
	}
	return best, bestPriority >= 0
}

// Kinds builds the value-to-kind lookup the semantic analyzer consumes.
// Each token contributes one pair; the last writer wins on duplicates.
func Kinds(tokens []Token) *semantic.KindTable {
	kinds := semantic.NewKindTable()
	for _, t := range tokens {
		kinds.Put(t.Value, t.Kind)
	}
	return kinds
}

// symbolMatches reports whether an alphabet symbol accepts the rune. A
// single-rune symbol matches itself; a longer symbol is a character class
// body. Escaped backslashes in the symbol are collapsed before comparison.
func symbolMatches(symbol string, r rune) bool {
	symbol = strings.ReplaceAll(symbol, `\\`, `\`)
	if utf8.RuneCountInString(symbol) == 1 {
		sr, _ := utf8.DecodeRuneInString(symbol)
		return sr == r
	}
	return classMatches(symbol, r)
}

// classMatches interprets a bracket class body: literal members, a-z style
// ranges, backslash escapes, and a leading ^ for negation.
func classMatches(body string, r rune) bool {
	runes := []rune(body)
	negate := false
	if len(runes) > 0 && runes[0] == '^' {
		negate = true
		runes = runes[1:]
	}

	matched := false
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			i++
			c = runes[i]
		} else if i+2 < len(runes) && runes[i+1] == '-' {
			lo, hi := c, runes[i+2]
			if lo <= r && r <= hi {
				matched = true
				break
			}
			i += 2
			continue
		}
		if c == r {
			matched = true
			break
		}
	}
	return matched != negate
}
