// Package visualization renders compiled automata and syntax trees as SVG,
// and exports automata as Graphviz DOT text for external renderers.
package visualization

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/dslsketch/go-dslsketch/automaton"
)

// AutomatonSVGOptions controls automaton rendering.
type AutomatonSVGOptions struct {
	StateRadius float64
	SpacingX    float64
	SpacingY    float64
	Padding     float64
	Title       string
}

// DefaultAutomatonSVGOptions returns sensible defaults.
func DefaultAutomatonSVGOptions() *AutomatonSVGOptions {
	return &AutomatonSVGOptions{
		StateRadius: 26,
		SpacingX:    160,
		SpacingY:    90,
		Padding:     60,
	}
}

type point struct {
	x, y float64
}

// RenderAutomatonSVG converts an automaton to SVG. The initial state gets an
// incoming arrow from an anonymous entry point, accepting states are drawn
// as double circles, and every (from, symbol, to) triple becomes one
// labelled edge. Epsilon edges are dashed and unlabelled.
func RenderAutomatonSVG(a *automaton.Automaton, opts *AutomatonSVGOptions) (string, error) {
	if opts == nil {
		opts = DefaultAutomatonSVGOptions()
	}
	if err := a.Validate(); err != nil {
		return "", err
	}

	positions := layoutAutomaton(a, opts)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range positions {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	minX -= opts.Padding + opts.SpacingX/2 // room for the entry arrow
	minY -= opts.Padding
	maxX += opts.Padding
	maxY += opts.Padding

	width := maxX - minX
	height := maxY - minY
	if width < 200 {
		width = 200
	}
	if height < 100 {
		height = 100
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`,
		minX, minY, width, height, width, height))
	buf.WriteString("\n")

	buf.WriteString(`<defs>`)
	buf.WriteString(`<style>`)
	buf.WriteString(`.state { fill: #e3f2fd; stroke: #1976d2; stroke-width: 2; }`)
	buf.WriteString(`.state-accepting-ring { fill: none; stroke: #1976d2; stroke-width: 2; }`)
	buf.WriteString(`.edge { stroke: #666; stroke-width: 1.5; fill: none; }`)
	buf.WriteString(`.edge-epsilon { stroke: #999; stroke-dasharray: 4,3; }`)
	buf.WriteString(`.arrowhead { fill: #666; }`)
	buf.WriteString(`.state-label { font-family: system-ui, Arial; font-size: 11px; fill: #333; text-anchor: middle; dominant-baseline: middle; }`)
	buf.WriteString(`.edge-label { font-family: system-ui, Arial; font-size: 10px; fill: #444; text-anchor: middle; }`)
	buf.WriteString(`.title { font-family: system-ui, Arial; font-size: 14px; font-weight: bold; fill: #333; }`)
	buf.WriteString(`</style>`)
	buf.WriteString(`<marker id="nfa-arrowhead" markerWidth="10" markerHeight="7" refX="9" refY="3.5" orient="auto">`)
	buf.WriteString(`<polygon points="0 0, 10 3.5, 0 7" class="arrowhead"/>`)
	buf.WriteString(`</marker>`)
	buf.WriteString(`</defs>`)
	buf.WriteString("\n")

	if opts.Title != "" {
		buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="title">%s</text>`,
			minX+10, minY+20, escapeXML(opts.Title)))
		buf.WriteString("\n")
	}

	// Edges first so states draw on top.
	for _, e := range a.Edges() {
		drawAutomatonEdge(&buf, e, positions, opts)
	}

	// Entry arrow into the initial state from an anonymous point.
	if p, ok := positions[a.Initial]; ok {
		buf.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="edge" marker-end="url(#nfa-arrowhead)"/>`,
			p.x-opts.SpacingX/2, p.y, p.x-opts.StateRadius-2, p.y))
		buf.WriteString("\n")
	}

	for _, name := range a.States.Values() {
		p := positions[name]
		buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" class="state"/>`,
			p.x, p.y, opts.StateRadius))
		if a.Accepting.Contains(name) {
			buf.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" class="state-accepting-ring"/>`,
				p.x, p.y, opts.StateRadius-4))
		}
		buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="state-label">%s</text>`,
			p.x, p.y, escapeXML(name)))
		buf.WriteString("\n")
	}

	buf.WriteString("</svg>\n")
	return buf.String(), nil
}

// SaveAutomatonSVG renders an automaton and writes the SVG to a file.
func SaveAutomatonSVG(a *automaton.Automaton, filename string, opts *AutomatonSVGOptions) error {
	svg, err := RenderAutomatonSVG(a, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(svg), 0644)
}

// layoutAutomaton assigns positions by breadth-first level from the initial
// state: levels become columns, states within a level stack vertically in
// name order. Unreachable states (possible in hand-built automata) go in a
// trailing column.
func layoutAutomaton(a *automaton.Automaton, opts *AutomatonSVGOptions) map[string]point {
	level := map[string]int{a.Initial: 0}
	queue := []string{a.Initial}
	maxLevel := 0
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		next := make([]string, 0)
		for _, targets := range a.Transitions[s] {
			for t := range targets {
				if _, seen := level[t]; !seen {
					level[t] = level[s] + 1
					next = append(next, t)
				}
			}
		}
		sort.Strings(next)
		queue = append(queue, next...)
		if level[s] > maxLevel {
			maxLevel = level[s]
		}
	}
	for _, s := range a.States.Values() {
		if _, seen := level[s]; !seen {
			level[s] = maxLevel + 1
		}
	}

	byLevel := make(map[int][]string)
	for s, l := range level {
		byLevel[l] = append(byLevel[l], s)
	}
	positions := make(map[string]point, len(level))
	for l, states := range byLevel {
		sort.Strings(states)
		for row, s := range states {
			positions[s] = point{
				x: float64(l) * opts.SpacingX,
				y: float64(row) * opts.SpacingY,
			}
		}
	}
	return positions
}

func drawAutomatonEdge(buf *bytes.Buffer, e automaton.Edge, positions map[string]point, opts *AutomatonSVGOptions) {
	from, ok1 := positions[e.From]
	to, ok2 := positions[e.To]
	if !ok1 || !ok2 {
		return
	}

	class := "edge"
	label := e.Symbol
	if e.Symbol == automaton.Epsilon {
		class = "edge edge-epsilon"
		label = ""
	}

	if e.From == e.To {
		// Self-loop: arc above the state.
		r := opts.StateRadius
		buf.WriteString(fmt.Sprintf(`<path d="M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f" class="%s" marker-end="url(#nfa-arrowhead)"/>`,
			from.x-r/2, from.y-r+4, from.x-r, from.y-2.2*r, from.x+r, from.y-2.2*r, from.x+r/2, from.y-r+4, class))
		if label != "" {
			buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="edge-label">%s</text>`,
				from.x, from.y-2*r, escapeXML(label)))
		}
		buf.WriteString("\n")
		return
	}

	dx, dy := to.x-from.x, to.y-from.y
	dist := math.Hypot(dx, dy)
	if dist < 1 {
		dist = 1
	}
	// Trim both ends back to the circle borders.
	ux, uy := dx/dist, dy/dist
	x1, y1 := from.x+ux*opts.StateRadius, from.y+uy*opts.StateRadius
	x2, y2 := to.x-ux*(opts.StateRadius+2), to.y-uy*(opts.StateRadius+2)

	// Bow the edge slightly so a reverse edge does not overlap it.
	mx, my := (x1+x2)/2, (y1+y2)/2
	cx, cy := mx-uy*14, my+ux*14

	buf.WriteString(fmt.Sprintf(`<path d="M %.1f %.1f Q %.1f %.1f %.1f %.1f" class="%s" marker-end="url(#nfa-arrowhead)"/>`,
		x1, y1, cx, cy, x2, y2, class))
	if label != "" {
		buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="edge-label">%s</text>`,
			cx, cy-4, escapeXML(label)))
	}
	buf.WriteString("\n")
}

func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
