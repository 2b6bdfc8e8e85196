// Package glamour renders Markdown topics for display in a terminal.
package glamour

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
	"github.com/fwojciec/docindex"
)

// DefaultWidth is the word wrap width used when none is given.
const DefaultWidth = 80

// Ensure Converter implements docindex.Converter at compile time.
var _ docindex.Converter = (*Converter)(nil)

// Converter wraps a glamour renderer to convert Markdown to styled
// terminal output.
type Converter struct {
	renderer *glamour.TermRenderer
}

// NewConverter creates a new Converter using the named glamour style. An
// empty style picks one based on the terminal.
func NewConverter(style string, width int) (*Converter, error) {
	if style == "" {
		style = styles.AutoStyle
	}
	if width <= 0 {
		width = DefaultWidth
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	return &Converter{renderer: renderer}, nil
}

// Convert renders Markdown content for the terminal.
func (c *Converter) Convert(markdown string) (string, error) {
	return c.renderer.Render(markdown)
}
