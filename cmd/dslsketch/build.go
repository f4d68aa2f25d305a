package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dslsketch/go-dslsketch/automaton"
	"github.com/dslsketch/go-dslsketch/history"
	"github.com/dslsketch/go-dslsketch/pattern"
	"github.com/dslsketch/go-dslsketch/visualization"
)

func build(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	svgFile := fs.String("svg", "", "Write automaton SVG to file")
	dotFile := fs.String("dot", "", "Write Graphviz DOT to file")
	jsonFile := fs.String("json", "", "Write automaton JSON to file")
	dbFile := fs.String("db", "", "Record the build in a history database")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dslsketch build <patterns.yaml> [options]

Compile a token pattern file into a single NFA and print a summary.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing pattern file")
	}

	set, auto, err := compileFile(fs.Arg(0))
	if err != nil {
		return err
	}

	fmt.Printf("Compiled %d patterns: %s\n", set.Len(), strings.Join(set.Names(), ", "))
	fmt.Printf("States:    %d\n", len(auto.States))
	fmt.Printf("Alphabet:  %d (%s)\n", len(auto.Alphabet), strings.Join(auto.Alphabet.Values(), " "))
	fmt.Printf("Edges:     %d\n", len(auto.Edges()))
	fmt.Printf("Accepting: %s\n", strings.Join(auto.Accepting.Values(), ", "))

	if *svgFile != "" {
		if err := visualization.SaveAutomatonSVG(auto, *svgFile, nil); err != nil {
			return err
		}
		fmt.Printf("SVG written to %s\n", *svgFile)
	}
	if *dotFile != "" {
		if err := visualization.SaveDOT(auto, *dotFile); err != nil {
			return err
		}
		fmt.Printf("DOT written to %s\n", *dotFile)
	}
	if *jsonFile != "" {
		data, err := auto.ToJSON()
		if err != nil {
			return err
		}
		if err := os.WriteFile(*jsonFile, data, 0644); err != nil {
			return err
		}
		fmt.Printf("JSON written to %s\n", *jsonFile)
	}
	if *dbFile != "" {
		store, err := history.Open(*dbFile)
		if err != nil {
			return err
		}
		defer store.Close()
		id, err := store.RecordBuild(auto, set.Len())
		if err != nil {
			return err
		}
		fmt.Printf("Recorded build %s\n", id)
	}
	return nil
}

// compileFile loads a pattern file, compiles it, and verifies the result.
// Replaced duplicate names are surfaced as warnings.
func compileFile(path string) (*pattern.Set, *automaton.Automaton, error) {
	set, replaced, err := pattern.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	for _, name := range replaced {
		fmt.Fprintf(os.Stderr, "Warning: pattern %q defined more than once; the last definition wins\n", name)
	}

	auto, err := automaton.Compile(set)
	if err != nil {
		return nil, nil, err
	}
	if err := auto.Validate(); err != nil {
		return nil, nil, err
	}
	return set, auto, nil
}
