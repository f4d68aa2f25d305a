package automaton

import (
	"encoding/json"
	"fmt"
)

// jsonModel is the interchange form consumed by external renderers:
// sets as sorted arrays, the transition relation keyed state -> symbol ->
// target list. The epsilon symbol is the empty string.
type jsonModel struct {
	States      []string                       `json:"states"`
	Alphabet    []string                       `json:"alphabet"`
	Transitions map[string]map[string][]string `json:"transitions"`
	Initial     string                         `json:"initial"`
	Accepting   []string                       `json:"accepting"`
}

// ToJSON encodes the automaton in interchange form with deterministic
// ordering.
func (a *Automaton) ToJSON() ([]byte, error) {
	m := jsonModel{
		States:      a.States.Values(),
		Alphabet:    a.Alphabet.Values(),
		Transitions: make(map[string]map[string][]string, len(a.Transitions)),
		Initial:     a.Initial,
		Accepting:   a.Accepting.Values(),
	}
	for from, bySym := range a.Transitions {
		out := make(map[string][]string, len(bySym))
		for symbol, targets := range bySym {
			out[symbol] = targets.Values()
		}
		m.Transitions[from] = out
	}
	return json.MarshalIndent(m, "", "  ")
}

// FromJSON decodes an automaton from interchange form and checks its
// structural integrity.
func FromJSON(data []byte) (*Automaton, error) {
	var m jsonModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("automaton: invalid JSON: %w", err)
	}

	a := &Automaton{
		States:      NewSet(m.States...),
		Alphabet:    NewSet(m.Alphabet...),
		Transitions: make(map[string]map[string]Set, len(m.Transitions)),
		Initial:     m.Initial,
		Accepting:   NewSet(m.Accepting...),
	}
	for from, bySym := range m.Transitions {
		out := make(map[string]Set, len(bySym))
		for symbol, targets := range bySym {
			out[symbol] = NewSet(targets...)
		}
		a.Transitions[from] = out
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}
