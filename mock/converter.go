package mock

import "github.com/fwojciec/docindex"

var _ docindex.Converter = (*Converter)(nil)

// Converter is a mock implementation of docindex.Converter.
type Converter struct {
	ConvertFn func(markdown string) (string, error)
}

func (c *Converter) Convert(markdown string) (string, error) {
	return c.ConvertFn(markdown)
}
