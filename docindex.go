// Package docindex builds a navigable documentation index from the doc/
// trees shipped with independently released modules. It infers the
// parent/child hierarchy from file paths and naming conventions alone,
// orders entries deterministically, and renders a nested table of contents
// plus expanded topic views.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, fs/, goldmark/).
package docindex
