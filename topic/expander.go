// Package topic renders an entry together with all of its descendants as a
// single document.
package topic

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"strings"

	"github.com/fwojciec/docindex"
)

// Ensure Expander implements docindex.TopicService at compile time.
var _ docindex.TopicService = (*Expander)(nil)

// Expander concatenates the files of a topic's descendants depth first.
type Expander struct {
	Entries docindex.EntryService
	Modules docindex.ModuleService
	Source  docindex.Source

	// Converters maps output formats other than markdown to their
	// converter. Markdown is passed through unchanged.
	Converters map[docindex.Format]docindex.Converter
}

// NewExpander creates a new Expander that only produces markdown.
func NewExpander(entries docindex.EntryService, modules docindex.ModuleService, source docindex.Source) *Expander {
	return &Expander{
		Entries:    entries,
		Modules:    modules,
		Source:     source,
		Converters: make(map[docindex.Format]docindex.Converter),
	}
}

// ExpandTopic returns the content of every descendant of the named entry.
// Children are visited in index order and each child is followed by its own
// descendants. Files that no longer exist are skipped together with their
// subtree.
func (x *Expander) ExpandTopic(ctx context.Context, name string, format docindex.Format) (string, error) {
	var conv docindex.Converter
	if format != docindex.FormatMarkdown {
		var ok bool
		if conv, ok = x.Converters[format]; !ok {
			return "", docindex.Errorf(docindex.EINVALID, "unsupported format %q", format)
		}
	}

	entry, err := x.Entries.FindEntryByName(ctx, name)
	if err != nil {
		return "", err
	}

	e := &expansion{
		ctx:     ctx,
		x:       x,
		conv:    conv,
		modules: make(map[string]*docindex.Module),
	}
	e.b.WriteString("\n")
	if err := e.expand(entry.Name); err != nil {
		return "", err
	}
	return e.b.String(), nil
}

// expansion holds the state of one ExpandTopic call.
type expansion struct {
	ctx     context.Context
	x       *Expander
	conv    docindex.Converter
	modules map[string]*docindex.Module
	b       strings.Builder
}

func (e *expansion) expand(parent string) error {
	children, err := e.x.Entries.FindEntries(e.ctx, docindex.EntryFilter{Parent: &parent})
	if err != nil {
		return err
	}
	docindex.SortEntries(children)

	for _, child := range children {
		m, err := e.module(child.Module)
		if err != nil {
			return err
		}

		data, err := e.x.Source.ReadFile(m.FilePath(child.Name))
		if errors.Is(err, iofs.ErrNotExist) {
			continue
		} else if err != nil {
			return fmt.Errorf("read %s: %w", child.Name, err)
		}

		content := string(data)
		if e.conv != nil {
			if content, err = e.conv.Convert(content); err != nil {
				return fmt.Errorf("convert %s: %w", child.Name, err)
			}
		}
		e.b.WriteString(content)

		if err := e.expand(child.Name); err != nil {
			return err
		}
	}
	return nil
}

func (e *expansion) module(name string) (*docindex.Module, error) {
	if m, ok := e.modules[name]; ok {
		return m, nil
	}
	m, err := e.x.Modules.FindModuleByName(e.ctx, name)
	if err != nil {
		return nil, err
	}
	e.modules[name] = m
	return m, nil
}
