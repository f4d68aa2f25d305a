// Package semantic checks a parsed program's variable usage for two
// elementary errors: re-declaration and use before declaration.
//
// The check is deliberately not a scope analysis. A leaf whose value maps to
// the identifier kind is classified as a declaration or a use solely by
// inspecting its immediately preceding sibling: a preceding assignment
// marker makes it a declaration attempt, anything else a use. Declarations
// recorded in one subtree remain visible in all subsequently visited
// subtrees; the symbol table is global to the whole pass.
package semantic

import "github.com/dslsketch/go-dslsketch/ast"

// The two findings the analyzer reports. The messages are part of the
// surface contract of the tool and are compared verbatim downstream.
const (
	MsgRedeclared     = "Variable has already been defined"
	MsgUsedBeforeDecl = "Variable used before being defined"
)

// Error is one semantic finding. Findings are never fatal; the analyzer
// collects them and keeps walking.
type Error struct {
	Symbol  string
	Message string
}

// SymbolTable is the insertion-ordered set of declared symbols, grown
// monotonically during one analysis pass.
type SymbolTable struct {
	names []string
	seen  map[string]struct{}
}

// NewSymbolTable creates an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{seen: make(map[string]struct{})}
}

// Add inserts a symbol unless already present.
func (t *SymbolTable) Add(name string) {
	if _, ok := t.seen[name]; ok {
		return
	}
	t.seen[name] = struct{}{}
	t.names = append(t.names, name)
}

// Contains reports whether name has been declared.
func (t *SymbolTable) Contains(name string) bool {
	_, ok := t.seen[name]
	return ok
}

// Names returns the declared symbols in insertion order.
func (t *SymbolTable) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Len returns the number of declared symbols.
func (t *SymbolTable) Len() int {
	return len(t.names)
}

// Analyze walks the tree depth-first in pre-order and returns the declared
// symbols and the findings, both in discovery order. Each call owns fresh
// accumulators; repeated calls on the same inputs produce identical output,
// and independent calls are safe from separate goroutines.
//
// assignKind and identKind name the token kinds that denote assignment and
// identifiers; kinds is the value-to-kind lookup filled in by the lexer.
// A leaf root yields an empty table and no findings, as does a tree with no
// identifier-kind leaves.
func Analyze(root ast.Node, assignKind, identKind string, kinds *KindTable) (*SymbolTable, []Error) {
	a := &analysis{
		assignValue: kinds.ValueOf(assignKind),
		identKind:   identKind,
		kinds:       kinds,
		symbols:     NewSymbolTable(),
	}
	if n, ok := root.(*ast.Interior); ok {
		a.walk(n)
	}
	return a.symbols, a.errors
}

type analysis struct {
	assignValue string
	identKind   string
	kinds       *KindTable
	symbols     *SymbolTable
	errors      []Error
}

func (a *analysis) walk(node *ast.Interior) {
	for i, child := range node.Children {
		switch c := child.(type) {
		case *ast.Interior:
			a.walk(c)
		case *ast.Leaf:
			if a.kinds.KindOf(c.Value) != a.identKind {
				continue
			}
			a.classify(node, i, c.Value)
		}
	}
}

// classify applies the sibling-relative declaration rule to the identifier
// leaf at child position i.
func (a *analysis) classify(parent *ast.Interior, i int, symbol string) {
	assigned := i > 0 && a.isAssignMarker(parent.Children[i-1])

	if a.symbols.Contains(symbol) {
		if assigned {
			a.errors = append(a.errors, Error{Symbol: symbol, Message: MsgRedeclared})
		}
		// An ordinary re-use of a declared symbol is not an error.
		return
	}
	if assigned {
		a.symbols.Add(symbol)
		return
	}
	a.errors = append(a.errors, Error{Symbol: symbol, Message: MsgUsedBeforeDecl})
}

// isAssignMarker reports whether the node is a leaf carrying the assignment
// token's value. An interior sibling never counts as a marker.
func (a *analysis) isAssignMarker(n ast.Node) bool {
	leaf, ok := n.(*ast.Leaf)
	return ok && a.assignValue != "" && leaf.Value == a.assignValue
}
