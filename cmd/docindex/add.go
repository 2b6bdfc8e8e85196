package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	module := &docindex.Module{
		Name:       c.Name,
		SourcePath: c.Path,
		SourceURL:  c.URL,
	}

	if err := deps.Modules.CreateModule(deps.Ctx, module); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added module %q (%s)\n", module.Name, module.DocPath())

	if deps.Builder != nil {
		result, err := deps.Builder.Build(deps.Ctx, []*docindex.Module{module})
		if result != nil {
			printProblems(deps, result)
			fmt.Fprintf(deps.Stdout, "  Indexed %d new entries\n", result.Created)
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
			return err
		}
	}

	return nil
}
