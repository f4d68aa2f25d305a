package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "build":
		if err := build(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "tokens":
		if err := tokens(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "check":
		if err := check(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "visualize":
		if err := visualize(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "history":
		if err := historyCmd(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Println("dslsketch version 1.0.0")
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`dslsketch - sketch a token language, inspect its recognizer, check variable usage

Usage:
  dslsketch <command> [options]

Commands:
  build      Compile token patterns into an NFA
  tokens     Tokenize source text with a compiled pattern set
  check      Run the semantic checks over a parsed program
  visualize  Generate SVG for an automaton or a syntax tree
  history    Show recorded compile and analysis runs
  help       Show this help message
  version    Show version information

Examples:
  # Compile patterns and inspect the automaton
  dslsketch build patterns.yaml

  # Save the automaton as SVG and DOT
  dslsketch build patterns.yaml --svg nfa.svg --dot nfa.dot

  # Tokenize a source file
  dslsketch tokens patterns.yaml program.src

  # Semantic checks over a parse tree
  dslsketch check patterns.yaml program.src tree.json --assign ASSIGN --ident ID

  # Render a parse tree
  dslsketch visualize --ast tree.json --output ast.svg

For command-specific help, run:
  dslsketch <command> --help`)
}
