package docindex

import "strings"

// MaxTitleLength is the maximum number of characters kept from a heading.
const MaxTitleLength = 120

// ParseTitle extracts a title from the first line of a document. Only lines
// starting with '#' are headings; anything else is content and yields no
// title.
func ParseTitle(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}

	title := strings.TrimSpace(line)
	title = strings.TrimLeft(title, "#")
	title = strings.TrimRight(title, "#")
	title = strings.TrimSpace(title)
	if title == "" {
		return "", false
	}

	if r := []rune(title); len(r) > MaxTitleLength {
		title = strings.TrimSpace(string(r[:MaxTitleLength]))
	}
	return title, true
}
