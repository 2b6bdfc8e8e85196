package docindex

import "context"

// Scanner discovers documentation files of a module.
type Scanner interface {
	// Scan returns doc-root relative paths, each starting with "/". Index
	// documents are listed first, then all markdown files; each group is
	// sorted ascending. A module without a doc directory yields no paths.
	Scan(ctx context.Context, module *Module) ([]string, error)
}

// Source reads the files backing entries.
type Source interface {
	// Exists reports whether the file at path is present.
	Exists(path string) bool

	// FirstLine returns the first line of the file without its line ending.
	FirstLine(path string) (string, error)

	// ReadFile returns the full file content.
	ReadFile(path string) ([]byte, error)
}

// Format names an output format for topic expansion.
type Format string

// Format constants for TopicService.
const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatTerminal Format = "terminal"
)

// Converter converts Markdown to another output format.
type Converter interface {
	// Convert transforms Markdown source into the converter's format.
	Convert(markdown string) (string, error)
}

// TopicService renders a topic together with all of its descendants.
type TopicService interface {
	// ExpandTopic concatenates the content of every descendant of the named
	// entry, depth first, converted to format.
	// Returns ENOTFOUND if entry does not exist.
	ExpandTopic(ctx context.Context, name string, format Format) (string, error)
}

// IndexStore persists the rendered index artifact.
type IndexStore interface {
	// Save replaces the artifact with content.
	Save(ctx context.Context, content string) error
}
