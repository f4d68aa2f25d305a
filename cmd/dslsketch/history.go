package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dslsketch/go-dslsketch/history"
)

func historyCmd(args []string) error {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	limit := fs.Int("limit", 20, "Maximum number of runs to show")
	showChecks := fs.Bool("checks", false, "Show analysis runs instead of builds")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `Usage: dslsketch history <runs.db> [options]

List recorded compile runs (or analysis runs with --checks), most recent
first.

Options:
`)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("missing database file")
	}

	store, err := history.Open(fs.Arg(0))
	if err != nil {
		return err
	}
	defer store.Close()

	if *showChecks {
		checks, err := store.Checks(*limit)
		if err != nil {
			return err
		}
		fmt.Printf("%-36s %-20s %-10s %-10s %-9s %s\n", "ID", "Created", "Assign", "Ident", "Declared", "Errors")
		for _, c := range checks {
			fmt.Printf("%-36s %-20s %-10s %-10s %-9d %d\n",
				c.ID, c.CreatedAt.Format("2006-01-02 15:04:05"), c.AssignKind, c.IdentKind, c.Declared, c.Errors)
		}
		return nil
	}

	builds, err := store.Builds(*limit)
	if err != nil {
		return err
	}
	fmt.Printf("%-36s %-20s %-9s %-7s %-8s %s\n", "ID", "Created", "Patterns", "States", "Symbols", "Accepting")
	for _, b := range builds {
		fmt.Printf("%-36s %-20s %-9d %-7d %-8d %d\n",
			b.ID, b.CreatedAt.Format("2006-01-02 15:04:05"), b.Patterns, b.States, b.Symbols, b.Accepting)
	}
	if len(builds) == 0 {
		fmt.Fprintln(os.Stderr, "No builds recorded")
	}
	return nil
}
