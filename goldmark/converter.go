// Package goldmark converts Markdown topics to HTML.
package goldmark

import (
	"bytes"

	"github.com/fwojciec/docindex"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Ensure Converter implements docindex.Converter at compile time.
var _ docindex.Converter = (*Converter)(nil)

// Converter wraps goldmark to convert GitHub flavored Markdown to HTML. Raw
// HTML in the source is not passed through.
type Converter struct {
	md goldmark.Markdown
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	)
	return &Converter{md: md}
}

// Convert transforms Markdown content into HTML.
func (c *Converter) Convert(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
