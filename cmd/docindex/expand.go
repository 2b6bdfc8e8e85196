package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
)

// Run executes the expand command.
func (c *ExpandCmd) Run(deps *Dependencies) error {
	content, err := deps.Topics.ExpandTopic(deps.Ctx, c.Name, docindex.Format(c.Format))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docindex.ErrorMessage(err))
		return err
	}

	_, err = fmt.Fprint(deps.Stdout, content)
	return err
}
