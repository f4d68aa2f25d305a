package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dslsketch/go-dslsketch/lexer"
)

func tokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dslsketch tokens <patterns.yaml> <source-file>

Tokenize a source file with the compiled pattern set and print the token
type / token value table.
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		fs.Usage()
		return fmt.Errorf("missing pattern file or source file")
	}

	set, auto, err := compileFile(fs.Arg(0))
	if err != nil {
		return err
	}
	source, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	toks, err := lexer.New(auto, set.Names()).Scan(string(source))
	printTokenTable(toks)
	return err
}

func printTokenTable(toks []lexer.Token) {
	fmt.Printf("%-16s %s\n", "Token Type", "Token Value")
	for _, t := range toks {
		fmt.Printf("%-16s %s\n", t.Kind, t.Value)
	}
}
