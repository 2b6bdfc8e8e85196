package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/docindex"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	result, err := deps.Index.Rebuild(deps.Ctx, c.Force)
	if result == nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	if result.Skipped {
		fmt.Fprintf(deps.Stdout, "Index is up to date (%d entries, generated %s)\n",
			result.Entries, result.GeneratedAt.Local().Format(time.DateTime))
		return nil
	}

	printProblems(deps, result)
	fmt.Fprintf(deps.Stdout, "Indexed %d entries (%d new)\n", result.Entries, result.Created)
	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "  Wrote %s\n", c.Out)
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}
	return nil
}

// printProblems reports the per-file problems of a build pass.
func printProblems(deps *Dependencies, result *docindex.Build) {
	for _, p := range result.Problems {
		fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", p.Name, problemMessage(p))
	}
}

func problemMessage(p *docindex.Problem) string {
	if p.Code() == docindex.EINTERNAL {
		return p.Err.Error()
	}
	return docindex.ErrorMessage(p.Err)
}
