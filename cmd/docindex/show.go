package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	entry, err := deps.Entries.FindEntryByName(deps.Ctx, c.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	module, err := deps.Modules.FindModuleByName(deps.Ctx, entry.Module)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	parent := entry.Parent
	if entry.IsRoot() {
		parent = "(root)"
	}

	fmt.Fprintf(deps.Stdout, "Name:        %s\n", entry.Name)
	fmt.Fprintf(deps.Stdout, "Description: %s\n", entry.Description)
	fmt.Fprintf(deps.Stdout, "Order:       %s\n", entry.Order)
	fmt.Fprintf(deps.Stdout, "Level:       %d\n", entry.Level())
	fmt.Fprintf(deps.Stdout, "Parent:      %s\n", parent)
	fmt.Fprintf(deps.Stdout, "Module:      %s\n", entry.Module)
	fmt.Fprintf(deps.Stdout, "File:        %s\n", module.FilePath(entry.Name))
	if url := entry.GitURL(module); url != "" {
		fmt.Fprintf(deps.Stdout, "URL:         %s\n", url)
	}

	return nil
}
