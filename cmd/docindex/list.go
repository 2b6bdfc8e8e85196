package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/docindex"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := docindex.EntryFilter{Roots: c.Roots}
	if c.Parent != "" {
		filter.Parent = &c.Parent
	}
	if c.Module != "" {
		filter.Module = &c.Module
	}

	entries, err := deps.Entries.FindEntries(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No entries found.")
		return nil
	}

	docindex.SortEntries(entries)
	for _, e := range entries {
		indent := strings.Repeat("  ", max(e.Level(), 0))
		fmt.Fprintf(deps.Stdout, "%s  %s%s  %s\n", e.Order, indent, e.Name, e.Description)
	}

	return nil
}
