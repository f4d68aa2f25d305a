package visualization

import (
	"strings"
	"testing"

	"github.com/dslsketch/go-dslsketch/ast"
)

func TestRenderASTSVG(t *testing.T) {
	tree := ast.N(
		ast.N(ast.L("="), ast.L("x"), ast.L("5")),
		ast.N(ast.L("print"), ast.L("x")),
	)

	svg, err := RenderASTSVG(tree, nil)
	if err != nil {
		t.Fatalf("RenderASTSVG failed: %v", err)
	}

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("malformed SVG envelope")
	}
	if !strings.Contains(svg, ">Program<") {
		t.Error("root should carry the default title")
	}
	// The statement head becomes the node label, its operands the children.
	for _, label := range []string{"=", "x", "5", "print"} {
		if !strings.Contains(svg, ">"+label+"<") {
			t.Errorf("SVG should contain node label %q", label)
		}
	}
}

func TestRenderASTSVG_HeadlessSequenceSplices(t *testing.T) {
	// A sequence whose first child is itself interior contributes its
	// children directly to the parent.
	tree := ast.N(
		ast.N(ast.N(ast.L("a")), ast.N(ast.L("b"))),
	)

	svg, err := RenderASTSVG(tree, nil)
	if err != nil {
		t.Fatalf("RenderASTSVG failed: %v", err)
	}
	if !strings.Contains(svg, ">a<") || !strings.Contains(svg, ">b<") {
		t.Error("spliced children missing")
	}
}

func TestRenderASTSVG_LeafRoot(t *testing.T) {
	svg, err := RenderASTSVG(ast.L("x"), nil)
	if err != nil {
		t.Fatalf("RenderASTSVG failed: %v", err)
	}
	if !strings.Contains(svg, ">x<") {
		t.Error("leaf root should render under the program node")
	}
}

func TestRenderASTSVG_EscapesMarkup(t *testing.T) {
	svg, err := RenderASTSVG(ast.N(ast.L("<")), nil)
	if err != nil {
		t.Fatalf("RenderASTSVG failed: %v", err)
	}
	if strings.Contains(svg, "><<") {
		t.Error("markup characters must be escaped")
	}
	if !strings.Contains(svg, "&lt;") {
		t.Error("expected escaped label")
	}
}
