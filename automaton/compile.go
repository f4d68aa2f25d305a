package automaton

import (
	"fmt"

	"github.com/dslsketch/go-dslsketch/pattern"
)

// CompileError reports a pattern the compiler cannot translate, naming the
// offending pattern and the byte position of the problem.
type CompileError struct {
	Pattern string
	Pos     int
	Msg     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("automaton: pattern %q: %s at position %d", e.Pattern, e.Msg, e.Pos)
}

// Compile translates an ordered pattern set into a single NFA. All patterns
// share the entry state; each contributes its own accepting state named
// after the token. Compilation is a full rebuild every time, deterministic
// given the input order.
//
// Accepting-state names equal pattern names, so two distinct names can never
// collide. A name reused across calls to Set.Add has already collapsed to
// one definition before Compile sees it.
func Compile(set *pattern.Set) (*Automaton, error) {
	a := New()
	for _, p := range set.Patterns() {
		if err := a.compilePattern(p); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// compilePattern walks the expression left to right, maintaining a current
// state cursor that starts at the shared entry state.
func (a *Automaton) compilePattern(p pattern.Pattern) error {
	if p.Expr == "" {
		return &CompileError{Pattern: p.Name, Pos: 0, Msg: "empty pattern"}
	}

	a.States.Add(p.Name)
	a.Accepting.Add(p.Name)

	current := StartState
	for i := 0; i < len(p.Expr); {
		at, err := scanAtom(p.Name, p.Expr, i)
		if err != nil {
			return err
		}
		i += at.width

		read := at.label + "_Read"
		a.States.Add(read)
		a.Alphabet.Add(at.symbol)
		a.addEdge(current, at.symbol, read)

		if i < len(p.Expr) && isQuantifier(p.Expr[i]) {
			switch p.Expr[i] {
			case '+':
				// One-or-more: the mandatory first match already happened,
				// repetition is a self-loop.
				a.addEdge(read, at.symbol, read)
			case '*':
				a.addEdge(read, at.symbol, read)
				a.addEdge(read, Epsilon, current)
				a.addEdge(read, Epsilon, p.Name)
				// Zero repetitions: accept without consuming the atom.
				a.addEdge(current, Epsilon, p.Name)
			case '?':
				a.addEdge(current, Epsilon, read)
			}
			i++
		}

		current = read
	}

	// The trailing epsilon into the token's own name is what marks
	// acceptance. After a final *, this duplicates an edge added above;
	// the relation is a set, so it collapses.
	a.addEdge(current, Epsilon, p.Name)
	return nil
}
