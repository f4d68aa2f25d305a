package visualization

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dslsketch/go-dslsketch/ast"
)

// ASTSVGOptions controls syntax tree rendering.
type ASTSVGOptions struct {
	NodeWidth  float64
	NodeHeight float64
	SpacingX   float64
	SpacingY   float64
	Padding    float64
	Title      string
}

// DefaultASTSVGOptions returns sensible defaults.
func DefaultASTSVGOptions() *ASTSVGOptions {
	return &ASTSVGOptions{
		NodeWidth:  72,
		NodeHeight: 30,
		SpacingX:   16,
		SpacingY:   70,
		Padding:    40,
		Title:      "Program",
	}
}

// drawnNode is a laid-out tree node ready for drawing. An interior node
// whose first child is a leaf takes that leaf's value as its own label and
// keeps the remaining children as subtrees; an interior whose first child is
// another interior is transparent and splices its children into the parent.
type drawnNode struct {
	label    string
	children []*drawnNode
	x, y     float64
	width    float64 // subtree width
}

// RenderASTSVG converts a syntax tree to SVG.
func RenderASTSVG(root ast.Node, opts *ASTSVGOptions) (string, error) {
	if opts == nil {
		opts = DefaultASTSVGOptions()
	}

	top := &drawnNode{label: opts.Title}
	attachSubtree(top, root)
	measure(top, opts)
	place(top, 0, 0, opts)

	width := top.width + 2*opts.Padding
	height := (float64(depth(top))*opts.SpacingY + opts.NodeHeight) + 2*opts.Padding
	if width < 200 {
		width = 200
	}

	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`,
		-opts.Padding, -opts.Padding, width, height, width, height))
	buf.WriteString("\n")
	buf.WriteString(`<defs><style>`)
	buf.WriteString(`.node { fill: #e8f5e9; stroke: #388e3c; stroke-width: 2; rx: 6; }`)
	buf.WriteString(`.node-label { font-family: system-ui, Arial; font-size: 11px; fill: #333; text-anchor: middle; dominant-baseline: middle; }`)
	buf.WriteString(`.branch { stroke: #666; stroke-width: 1.5; fill: none; }`)
	buf.WriteString(`</style></defs>`)
	buf.WriteString("\n")

	drawTree(&buf, top, opts)
	buf.WriteString("</svg>\n")
	return buf.String(), nil
}

// SaveASTSVG renders a syntax tree and writes the SVG to a file.
func SaveASTSVG(root ast.Node, filename string, opts *ASTSVGOptions) error {
	svg, err := RenderASTSVG(root, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, []byte(svg), 0644)
}

// attachSubtree converts an ast.Node into drawn nodes under parent.
func attachSubtree(parent *drawnNode, n ast.Node) {
	switch t := n.(type) {
	case *ast.Leaf:
		parent.children = append(parent.children, &drawnNode{label: t.Value})
	case *ast.Interior:
		if len(t.Children) == 0 {
			return
		}
		if head, ok := t.Children[0].(*ast.Leaf); ok {
			node := &drawnNode{label: head.Value}
			for _, c := range t.Children[1:] {
				attachSubtree(node, c)
			}
			parent.children = append(parent.children, node)
			return
		}
		// Headless sequence: splice the children into the parent.
		for _, c := range t.Children {
			attachSubtree(parent, c)
		}
	}
}

func measure(n *drawnNode, opts *ASTSVGOptions) {
	if len(n.children) == 0 {
		n.width = opts.NodeWidth + opts.SpacingX
		return
	}
	total := 0.0
	for _, c := range n.children {
		measure(c, opts)
		total += c.width
	}
	n.width = total
	if n.width < opts.NodeWidth+opts.SpacingX {
		n.width = opts.NodeWidth + opts.SpacingX
	}
}

func place(n *drawnNode, left, row float64, opts *ASTSVGOptions) {
	n.x = left + n.width/2
	n.y = row*opts.SpacingY + opts.NodeHeight/2
	childLeft := left
	if len(n.children) > 0 {
		// Center narrow child rows under the parent.
		total := 0.0
		for _, c := range n.children {
			total += c.width
		}
		childLeft = left + (n.width-total)/2
	}
	for _, c := range n.children {
		place(c, childLeft, row+1, opts)
		childLeft += c.width
	}
}

func depth(n *drawnNode) int {
	max := 0
	for _, c := range n.children {
		if d := depth(c); d > max {
			max = d
		}
	}
	return max + 1
}

func drawTree(buf *bytes.Buffer, n *drawnNode, opts *ASTSVGOptions) {
	for _, c := range n.children {
		buf.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" class="branch"/>`,
			n.x, n.y+opts.NodeHeight/2, c.x, c.y-opts.NodeHeight/2))
		buf.WriteString("\n")
	}
	buf.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" class="node"/>`,
		n.x-opts.NodeWidth/2, n.y-opts.NodeHeight/2, opts.NodeWidth, opts.NodeHeight))
	buf.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" class="node-label">%s</text>`,
		n.x, n.y, escapeXML(n.label)))
	buf.WriteString("\n")
	for _, c := range n.children {
		drawTree(buf, c, opts)
	}
}
