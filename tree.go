package docindex

import (
	"slices"
	"strings"
)

// CompareEntries orders entries by order key, then by name. Entries with a
// malformed order key sort after all others.
func CompareEntries(a, b *Entry) int {
	if ae, be := a.Order == ErrorOrder, b.Order == ErrorOrder; ae != be {
		if ae {
			return 1
		}
		return -1
	}
	if c := strings.Compare(a.Order, b.Order); c != 0 {
		return c
	}
	return strings.Compare(a.Name, b.Name)
}

// SortEntries sorts entries in place using CompareEntries.
func SortEntries(entries []*Entry) {
	slices.SortStableFunc(entries, CompareEntries)
}

// Tree is a read-only view over a set of entries with the parent/child
// relation resolved once.
type Tree struct {
	entries  map[string]*Entry
	children map[string][]*Entry
	roots    []*Entry
}

// NewTree indexes entries by name and groups them under their parents.
// Children and roots are sorted with CompareEntries.
func NewTree(entries []*Entry) *Tree {
	t := &Tree{
		entries:  make(map[string]*Entry, len(entries)),
		children: make(map[string][]*Entry),
	}
	for _, e := range entries {
		t.entries[e.Name] = e
		if e.IsRoot() {
			t.roots = append(t.roots, e)
		} else {
			t.children[e.Parent] = append(t.children[e.Parent], e)
		}
	}

	SortEntries(t.roots)
	for _, c := range t.children {
		SortEntries(c)
	}
	return t
}

// Len returns the number of entries in the tree.
func (t *Tree) Len() int {
	return len(t.entries)
}

// Entry returns the entry with the given name.
func (t *Tree) Entry(name string) (*Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Roots returns the entries without a parent.
func (t *Tree) Roots() []*Entry {
	return t.roots
}

// Children returns the direct children of the named entry.
func (t *Tree) Children(name string) []*Entry {
	return t.children[name]
}
