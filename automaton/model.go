// Package automaton implements the non-deterministic finite automaton built
// from a set of token patterns, and the compiler that builds it.
//
// The automaton is plain data: states, an alphabet, a transition relation,
// an initial state, and accepting states. Every token pattern contributes a
// private chain of "<atom>_Read" states off the shared entry state plus one
// accepting state named after the token itself. Bracket character classes
// stay opaque single symbols in the alphabet; they are never expanded into
// per-character alternation.
package automaton

import (
	"fmt"
	"sort"
)

// Epsilon is the empty-string symbol. Epsilon transitions are taken without
// consuming input.
const Epsilon = ""

// StartState is the shared entry state for all token patterns.
const StartState = "Start"

// Set is an unordered collection of state or symbol names.
type Set map[string]struct{}

// NewSet creates a set holding the given values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts a value into the set.
func (s Set) Add(v string) {
	s[v] = struct{}{}
}

// Contains reports whether v is in the set.
func (s Set) Contains(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members in sorted order.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Edge is one (from-state, symbol, to-state) triple of the transition
// relation. Symbol may be Epsilon.
type Edge struct {
	From   string
	Symbol string
	To     string
}

// Automaton is a compiled NFA.
type Automaton struct {
	States      Set
	Alphabet    Set
	Transitions map[string]map[string]Set
	Initial     string
	Accepting   Set
}

// New creates an empty automaton containing only the shared entry state.
func New() *Automaton {
	return &Automaton{
		States:      NewSet(StartState),
		Alphabet:    NewSet(),
		Transitions: map[string]map[string]Set{StartState: {}},
		Initial:     StartState,
		Accepting:   NewSet(),
	}
}

// addEdge records a transition. Duplicate edges collapse; the relation is a
// set per (state, symbol) pair.
func (a *Automaton) addEdge(from, symbol, to string) {
	byms, ok := a.Transitions[from]
	if !ok {
		byms = make(map[string]Set)
		a.Transitions[from] = byms
	}
	targets, ok := byms[symbol]
	if !ok {
		targets = NewSet()
		byms[symbol] = targets
	}
	targets.Add(to)
}

// Next returns the states reachable from state consuming symbol. The result
// may be nil when no such transition exists.
func (a *Automaton) Next(state, symbol string) Set {
	return a.Transitions[state][symbol]
}

// Edges returns the full transition relation as sorted triples, for
// deterministic rendering and export.
func (a *Automaton) Edges() []Edge {
	var edges []Edge
	for from, bySym := range a.Transitions {
		for symbol, targets := range bySym {
			for to := range targets {
				edges = append(edges, Edge{From: from, Symbol: symbol, To: to})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		if edges[i].Symbol != edges[j].Symbol {
			return edges[i].Symbol < edges[j].Symbol
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// EpsilonClosure returns the set of states reachable from the given states
// via epsilon transitions alone, including the states themselves.
func (a *Automaton) EpsilonClosure(states Set) Set {
	closure := NewSet()
	stack := make([]string, 0, len(states))
	for s := range states {
		closure.Add(s)
		stack = append(stack, s)
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for t := range a.Next(s, Epsilon) {
			if !closure.Contains(t) {
				closure.Add(t)
				stack = append(stack, t)
			}
		}
	}
	return closure
}

// Validate checks structural integrity: the initial state, every accepting
// state, and every endpoint of the transition relation must belong to
// States. A compiled automaton always passes; a hand-assembled one may not.
func (a *Automaton) Validate() error {
	if !a.States.Contains(a.Initial) {
		return fmt.Errorf("automaton: initial state %q not in state set", a.Initial)
	}
	for s := range a.Accepting {
		if !a.States.Contains(s) {
			return fmt.Errorf("automaton: accepting state %q not in state set", s)
		}
	}
	for from, bySym := range a.Transitions {
		if !a.States.Contains(from) {
			return fmt.Errorf("automaton: transition source %q not in state set", from)
		}
		for symbol, targets := range bySym {
			for to := range targets {
				if !a.States.Contains(to) {
					return fmt.Errorf("automaton: transition %q --%q--> %q ends outside state set", from, symbol, to)
				}
			}
		}
	}
	return nil
}
