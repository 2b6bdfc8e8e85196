package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the modules command.
func (c *ModulesCmd) Run(deps *Dependencies) error {
	modules, err := deps.Modules.FindModules(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if len(modules) == 0 {
		fmt.Fprintln(deps.Stdout, "No modules found. Use 'docindex add' to register one.")
		return nil
	}

	for _, m := range modules {
		if m.SourceURL != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", m.Name, m.SourcePath, m.SourceURL)
		} else {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", m.Name, m.SourcePath)
		}
	}

	return nil
}
