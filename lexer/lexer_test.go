package lexer

import (
	"errors"
	"testing"

	"github.com/dslsketch/go-dslsketch/automaton"
	"github.com/dslsketch/go-dslsketch/pattern"
)

func testLexer(t *testing.T, defs [][2]string) *Lexer {
	t.Helper()
	set := pattern.NewSet()
	for _, d := range defs {
		set.Add(d[0], d[1])
	}
	a, err := automaton.Compile(set)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	return New(a, set.Names())
}

func TestScan_SimpleProgram(t *testing.T) {
	l := testLexer(t, [][2]string{
		{"ID", "[a-z]+"},
		{"ASSIGN", "="},
		{"NUMBER", "[0-9]+"},
	})

	toks, err := l.Scan("x = 42\ny = x")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []Token{
		{Kind: "ID", Value: "x", Pos: 0},
		{Kind: "ASSIGN", Value: "=", Pos: 2},
		{Kind: "NUMBER", Value: "42", Pos: 4},
		{Kind: "ID", Value: "y", Pos: 7},
		{Kind: "ASSIGN", Value: "=", Pos: 9},
		{Kind: "ID", Value: "x", Pos: 11},
	}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, w := range want {
		if toks[i] != w {
			t.Errorf("token %d: expected %v, got %v", i, w, toks[i])
		}
	}
}

func TestScan_LongestMatch(t *testing.T) {
	l := testLexer(t, [][2]string{{"ID", "[a-z]+"}})

	toks, err := l.Scan("abc")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(toks) != 1 || toks[0].Value != "abc" {
		t.Errorf("expected one token 'abc', got %v", toks)
	}
}

func TestScan_TieBreakByDefinitionOrder(t *testing.T) {
	l := testLexer(t, [][2]string{
		{"FIRST", "x"},
		{"SECOND", "x"},
	})

	toks, err := l.Scan("x")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != "FIRST" {
		t.Errorf("expected FIRST to win the tie, got %v", toks)
	}
}

func TestScan_Quantifiers(t *testing.T) {
	l := testLexer(t, [][2]string{{"FLOAT", `[0-9]+\.[0-9]*`}})

	for _, input := range []string{"1.", "1.5", "123.456"} {
		toks, err := l.Scan(input)
		if err != nil {
			t.Fatalf("Scan(%q) failed: %v", input, err)
		}
		if len(toks) != 1 || toks[0].Kind != "FLOAT" || toks[0].Value != input {
			t.Errorf("Scan(%q): got %v", input, toks)
		}
	}
}

func TestScan_Optional(t *testing.T) {
	l := testLexer(t, [][2]string{{"SIGNED", "-?[0-9]+"}})

	for _, input := range []string{"7", "-7"} {
		toks, err := l.Scan(input)
		if err != nil {
			t.Fatalf("Scan(%q) failed: %v", input, err)
		}
		if len(toks) != 1 || toks[0].Value != input {
			t.Errorf("Scan(%q): got %v", input, toks)
		}
	}
}

func TestScan_UnrecognizedCharacter(t *testing.T) {
	l := testLexer(t, [][2]string{{"ID", "[a-z]+"}})

	_, err := l.Scan("ab !")
	if err == nil {
		t.Fatal("expected an error for unmatched input")
	}
	var lerr *Error
	if !errors.As(err, &lerr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if lerr.Pos != 3 || lerr.Ch != '!' {
		t.Errorf("unexpected error detail: %+v", lerr)
	}
}

func TestScan_NegatedClass(t *testing.T) {
	l := testLexer(t, [][2]string{{"REST", "[^=]+"}})

	toks, err := l.Scan("abc")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(toks) != 1 || toks[0].Value != "abc" {
		t.Errorf("got %v", toks)
	}
	if _, err := l.Scan("="); err == nil {
		t.Error("negated class should not match its member")
	}
}

func TestKinds(t *testing.T) {
	toks := []Token{
		{Kind: "ID", Value: "x"},
		{Kind: "ASSIGN", Value: "="},
		{Kind: "KEYWORD", Value: "x"},
	}
	kinds := Kinds(toks)
	if got := kinds.KindOf("x"); got != "KEYWORD" {
		t.Errorf("last writer should win, got %q", got)
	}
	if got := kinds.KindOf("="); got != "ASSIGN" {
		t.Errorf("got %q", got)
	}
	if got := kinds.ValueOf("ASSIGN"); got != "=" {
		t.Errorf("reverse lookup: got %q", got)
	}
}
