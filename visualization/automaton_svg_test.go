package visualization

import (
	"strings"
	"testing"

	"github.com/dslsketch/go-dslsketch/automaton"
	"github.com/dslsketch/go-dslsketch/pattern"
)

func compiled(t *testing.T) *automaton.Automaton {
	t.Helper()
	set := pattern.NewSet()
	set.Add("ID", "[a-z]+")
	set.Add("ASSIGN", "=")
	a, err := automaton.Compile(set)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return a
}

func TestRenderAutomatonSVG(t *testing.T) {
	opts := DefaultAutomatonSVGOptions()
	opts.Title = "Token NFA"
	svg, err := RenderAutomatonSVG(compiled(t), opts)
	if err != nil {
		t.Fatalf("RenderAutomatonSVG failed: %v", err)
	}

	if !strings.HasPrefix(svg, "<svg") {
		t.Error("SVG should start with <svg tag")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("SVG should end with </svg> tag")
	}
	for _, name := range []string{"Start", "ID", "ASSIGN", "a-z_Read", "=_Read"} {
		if !strings.Contains(svg, ">"+name+"<") {
			t.Errorf("SVG should label state %q", name)
		}
	}
	if !strings.Contains(svg, "state-accepting-ring") {
		t.Error("accepting states need their distinguishing double ring")
	}
	if !strings.Contains(svg, "edge-epsilon") {
		t.Error("epsilon edges should be rendered")
	}
	if !strings.Contains(svg, "Token NFA") {
		t.Error("SVG should contain the title")
	}
}

func TestRenderAutomatonSVG_Invalid(t *testing.T) {
	a := automaton.New()
	a.Accepting.Add("ghost")
	if _, err := RenderAutomatonSVG(a, nil); err == nil {
		t.Error("expected an error for a structurally invalid automaton")
	}
}

func TestRenderDOT(t *testing.T) {
	dot, err := RenderDOT(compiled(t))
	if err != nil {
		t.Fatalf("RenderDOT failed: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph nfa {") {
		t.Error("DOT should open a digraph")
	}
	if !strings.Contains(dot, `"ID" [shape=doublecircle];`) {
		t.Error("accepting states should use doublecircle")
	}
	if !strings.Contains(dot, `"Start" [shape=circle];`) {
		t.Error("ordinary states should use circle")
	}
	if !strings.Contains(dot, `"" [style=invisible];`) || !strings.Contains(dot, `"" -> "Start";`) {
		t.Error("the entry edge should come from an invisible anonymous node")
	}
	if !strings.Contains(dot, `[label=""]`) {
		t.Error("epsilon edges should carry an empty label")
	}
	if !strings.Contains(dot, `"a-z_Read" -> "a-z_Read" [label="a-z"];`) {
		t.Error("self-loop edge missing")
	}
}
