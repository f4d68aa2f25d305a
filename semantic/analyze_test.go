package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dslsketch/go-dslsketch/ast"
)

// kindsFor builds the lookup a lexer pass would produce for a tiny language
// with "=" as the assignment token and lower-case names as identifiers.
func kindsFor(idents ...string) *KindTable {
	kinds := NewKindTable()
	kinds.Put("=", "ASSIGN")
	for _, id := range idents {
		kinds.Put(id, "ID")
	}
	return kinds
}

func TestAnalyze_Declaration(t *testing.T) {
	tree := ast.N(ast.N(ast.L("="), ast.L("x")))

	symbols, errs := Analyze(tree, "ASSIGN", "ID", kindsFor("x"))
	assert.Equal(t, []string{"x"}, symbols.Names())
	assert.Empty(t, errs)
}

func TestAnalyze_Redeclaration(t *testing.T) {
	tree := ast.N(
		ast.N(ast.L("="), ast.L("x")),
		ast.N(ast.L("="), ast.L("x")),
	)

	symbols, errs := Analyze(tree, "ASSIGN", "ID", kindsFor("x"))
	assert.Equal(t, []string{"x"}, symbols.Names())
	assert.Equal(t, []Error{{Symbol: "x", Message: MsgRedeclared}}, errs)
}

func TestAnalyze_UseBeforeDeclaration(t *testing.T) {
	// A bare identifier as the first child has no preceding sibling and can
	// never be a declaration.
	tree := ast.N(ast.N(ast.L("y")))

	symbols, errs := Analyze(tree, "ASSIGN", "ID", kindsFor("y"))
	assert.Zero(t, symbols.Len())
	assert.Equal(t, []Error{{Symbol: "y", Message: MsgUsedBeforeDecl}}, errs)
}

func TestAnalyze_OrdinaryReuseIsNotAnError(t *testing.T) {
	kinds := kindsFor("x")
	kinds.Put("print", "PRINT")
	tree := ast.N(
		ast.N(ast.L("="), ast.L("x")),
		ast.N(ast.L("print"), ast.L("x")),
	)

	symbols, errs := Analyze(tree, "ASSIGN", "ID", kinds)
	assert.Equal(t, []string{"x"}, symbols.Names())
	assert.Empty(t, errs)
}

func TestAnalyze_DeclarationVisibleInLaterSubtrees(t *testing.T) {
	kinds := kindsFor("x")
	kinds.Put("+", "PLUS")
	tree := ast.N(
		ast.N(ast.L("="), ast.L("x")),
		ast.N(ast.N(ast.L("+"), ast.L("x"))),
	)

	_, errs := Analyze(tree, "ASSIGN", "ID", kinds)
	assert.Empty(t, errs, "the symbol table is global to the pass")
}

func TestAnalyze_InteriorSiblingIsNotAMarker(t *testing.T) {
	tree := ast.N(
		ast.N(ast.L("="), ast.L("x")),
		ast.N(ast.N(ast.L("="), ast.L("x")), ast.L("z")),
	)

	_, errs := Analyze(tree, "ASSIGN", "ID", kindsFor("x", "z"))
	// z follows an interior node, not an assignment leaf, and is undeclared.
	assert.Equal(t, []Error{
		{Symbol: "x", Message: MsgRedeclared},
		{Symbol: "z", Message: MsgUsedBeforeDecl},
	}, errs)
}

func TestAnalyze_DiscoveryOrder(t *testing.T) {
	tree := ast.N(
		ast.N(ast.L("a")),
		ast.N(ast.L("="), ast.L("b")),
		ast.N(ast.L("c")),
	)

	symbols, errs := Analyze(tree, "ASSIGN", "ID", kindsFor("a", "b", "c"))
	assert.Equal(t, []string{"b"}, symbols.Names())
	assert.Equal(t, []Error{
		{Symbol: "a", Message: MsgUsedBeforeDecl},
		{Symbol: "c", Message: MsgUsedBeforeDecl},
	}, errs)
}

func TestAnalyze_NoIdentifiers(t *testing.T) {
	kinds := NewKindTable()
	kinds.Put("7", "NUMBER")
	tree := ast.N(ast.L("7"), ast.L("7"))

	symbols, errs := Analyze(tree, "ASSIGN", "ID", kinds)
	assert.Zero(t, symbols.Len())
	assert.Empty(t, errs)
}

func TestAnalyze_LeafRoot(t *testing.T) {
	symbols, errs := Analyze(ast.L("x"), "ASSIGN", "ID", kindsFor("x"))
	assert.Zero(t, symbols.Len())
	assert.Empty(t, errs)
}

func TestAnalyze_Idempotent(t *testing.T) {
	kinds := kindsFor("x", "y")
	tree := ast.N(
		ast.N(ast.L("="), ast.L("x")),
		ast.N(ast.L("y")),
		ast.N(ast.L("="), ast.L("x")),
	)

	s1, e1 := Analyze(tree, "ASSIGN", "ID", kinds)
	s2, e2 := Analyze(tree, "ASSIGN", "ID", kinds)
	assert.Equal(t, s1.Names(), s2.Names())
	assert.Equal(t, e1, e2)
}

func TestKindTable_LastWriterWins(t *testing.T) {
	kinds := NewKindTable()
	kinds.Put("x", "ID")
	kinds.Put("x", "KEYWORD")
	assert.Equal(t, "KEYWORD", kinds.KindOf("x"))

	kinds.Put("=", "ASSIGN")
	kinds.Put(":=", "ASSIGN")
	assert.Equal(t, ":=", kinds.ValueOf("ASSIGN"))
	assert.Equal(t, 3, kinds.Len())
}
