package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	entries, err := deps.Entries.FindEntries(deps.Ctx, docindex.EntryFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found. Use 'docindex build' to scan modules.")
		return nil
	}

	return docindex.WriteIndex(deps.Stdout, docindex.NewTree(entries))
}
