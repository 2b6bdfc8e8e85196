package docindex

import (
	"fmt"
	"io"
	"strings"
)

// MaxIndexLevel is the deepest level whose children are still listed in the
// full index.
const MaxIndexLevel = 3

const indexPreamble = "_Autogenerated, do not edit!_\n"

// welcomeLink points from the generated index, which lives in the doc
// directory, back to the project README.
const welcomeLink = "# [Project Welcome Page](../README.md)\n"

// RenderIndex renders the table of contents of tree as markdown.
func RenderIndex(tree *Tree) string {
	var b strings.Builder

	b.WriteString(indexPreamble)
	b.WriteString("\n" + welcomeLink)
	b.WriteString("\n# Table of Contents\n\n")
	for _, e := range tree.Roots() {
		fmt.Fprintf(&b, "  1. %s\n", indexLink(e))
	}

	b.WriteString("\n# Documentation Full Index\n\n")
	for _, e := range tree.Roots() {
		writeIndexEntry(&b, tree, e)
	}

	return b.String()
}

// WriteIndex writes the rendered table of contents of tree to w.
func WriteIndex(w io.Writer, tree *Tree) error {
	_, err := io.WriteString(w, RenderIndex(tree))
	return err
}

func writeIndexEntry(b *strings.Builder, tree *Tree, e *Entry) {
	level := max(e.Level(), 0)
	fmt.Fprintf(b, "%s1. %s\n", strings.Repeat("  ", level), indexLink(e))
	if e.Level() >= MaxIndexLevel {
		return
	}
	for _, c := range tree.Children(e.Name) {
		writeIndexEntry(b, tree, c)
	}
}

func indexLink(e *Entry) string {
	return fmt.Sprintf("[%s](./%s)", e.Description, e.Name)
}
