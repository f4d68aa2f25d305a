package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dslsketch/go-dslsketch/ast"
	"github.com/dslsketch/go-dslsketch/history"
	"github.com/dslsketch/go-dslsketch/lexer"
	"github.com/dslsketch/go-dslsketch/semantic"
)

func check(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	assignKind := fs.String("assign", "", "Token kind used for variable assignment (required)")
	identKind := fs.String("ident", "", "Token kind used for variable names (required)")
	dbFile := fs.String("db", "", "Record the analysis in a history database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dslsketch check <patterns.yaml> <source-file> <tree.json> [options]

Run the variable-usage checks: compile the patterns, tokenize the source to
learn each token's kind, load the parse tree, and report re-declared and
use-before-declaration symbols.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 3 {
		fs.Usage()
		return fmt.Errorf("missing pattern file, source file, or tree file")
	}
	if *assignKind == "" || *identKind == "" {
		return fmt.Errorf("both --assign and --ident must be set")
	}

	set, auto, err := compileFile(fs.Arg(0))
	if err != nil {
		return err
	}
	source, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	treeData, err := os.ReadFile(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("read tree: %w", err)
	}

	toks, err := lexer.New(auto, set.Names()).Scan(string(source))
	if err != nil {
		return err
	}
	tree, err := ast.FromJSON(treeData)
	if err != nil {
		return err
	}

	kinds := lexer.Kinds(toks)
	symbols, findings := semantic.Analyze(tree, *assignKind, *identKind, kinds)

	fmt.Println("Symbol Table (Variables)")
	for _, name := range symbols.Names() {
		fmt.Printf("  %s\n", name)
	}
	if symbols.Len() == 0 {
		fmt.Println("  (none)")
	}

	fmt.Printf("\n%-12s %s\n", "Variable", "Error")
	if len(findings) == 0 {
		fmt.Printf("%-12s %s\n", "None", "None")
	}
	for _, f := range findings {
		fmt.Printf("%-12s %s\n", f.Symbol, f.Message)
	}

	if *dbFile != "" {
		store, err := history.Open(*dbFile)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.RecordCheck("", *assignKind, *identKind, symbols, findings)
		if err != nil {
			return err
		}
		fmt.Printf("\nRecorded check %s\n", id)
	}
	return nil
}
