package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dslsketch/go-dslsketch/ast"
	"github.com/dslsketch/go-dslsketch/automaton"
	"github.com/dslsketch/go-dslsketch/visualization"
)

func visualize(args []string) error {
	fs := flag.NewFlagSet("visualize", flag.ExitOnError)
	astFile := fs.String("ast", "", "Render a parse tree from this JSON file instead of an automaton")
	modelFile := fs.String("model", "", "Render an automaton from this JSON file instead of compiling patterns")
	output := fs.String("output", "", "Output SVG file (required)")
	title := fs.String("title", "", "Diagram title")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dslsketch visualize [<patterns.yaml>] [options]

Generate an SVG diagram. By default the pattern file is compiled and the
resulting automaton rendered; --model renders a previously exported
automaton, --ast renders a parse tree.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *output == "" {
		fs.Usage()
		return fmt.Errorf("missing --output file")
	}

	if *astFile != "" {
		data, err := os.ReadFile(*astFile)
		if err != nil {
			return fmt.Errorf("read tree: %w", err)
		}
		tree, err := ast.FromJSON(data)
		if err != nil {
			return err
		}
		opts := visualization.DefaultASTSVGOptions()
		if *title != "" {
			opts.Title = *title
		}
		if err := visualization.SaveASTSVG(tree, *output, opts); err != nil {
			return err
		}
		fmt.Printf("SVG written to %s\n", *output)
		return nil
	}

	var auto *automaton.Automaton
	switch {
	case *modelFile != "":
		data, err := os.ReadFile(*modelFile)
		if err != nil {
			return fmt.Errorf("read model: %w", err)
		}
		auto, err = automaton.FromJSON(data)
		if err != nil {
			return err
		}
	case fs.NArg() >= 1:
		_, compiled, err := compileFile(fs.Arg(0))
		if err != nil {
			return err
		}
		auto = compiled
	default:
		fs.Usage()
		return fmt.Errorf("nothing to render: pass a pattern file, --model, or --ast")
	}

	opts := visualization.DefaultAutomatonSVGOptions()
	opts.Title = *title
	if err := visualization.SaveAutomatonSVG(auto, *output, opts); err != nil {
		return err
	}
	fmt.Printf("SVG written to %s\n", *output)
	return nil
}
