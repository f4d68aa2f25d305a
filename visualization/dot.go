package visualization

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/dslsketch/go-dslsketch/automaton"
)

// RenderDOT exports an automaton as Graphviz DOT text for an external
// renderer. The initial state receives an incoming edge from an anonymous
// invisible node, accepting states use the doublecircle shape, and epsilon
// edges carry an empty label.
func RenderDOT(a *automaton.Automaton) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph nfa {\n")
	buf.WriteString("\trankdir=LR;\n")

	for _, s := range a.States.Values() {
		shape := "circle"
		if a.Accepting.Contains(s) {
			shape = "doublecircle"
		}
		buf.WriteString(fmt.Sprintf("\t%s [shape=%s];\n", quoteDOT(s), shape))
	}

	buf.WriteString("\t\"\" [style=invisible];\n")
	buf.WriteString(fmt.Sprintf("\t\"\" -> %s;\n", quoteDOT(a.Initial)))

	// Symbols are stored in renderer-safe form already (escape backslashes
	// doubled at compile time), so labels are quoted without re-escaping.
	for _, e := range a.Edges() {
		buf.WriteString(fmt.Sprintf("\t%s -> %s [label=%s];\n",
			quoteDOT(e.From), quoteDOT(e.To), labelDOT(e.Symbol)))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

// SaveDOT exports an automaton as DOT and writes it to a file.
func SaveDOT(a *automaton.Automaton, filename string) error {
	dot, err := RenderDOT(a)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(dot), 0644)
}

func quoteDOT(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}

func labelDOT(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
