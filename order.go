package docindex

import (
	"path"
	"regexp"
	"strconv"
)

// Order keys.
const (
	// DefaultOrder sorts unnumbered entries after numbered ones.
	DefaultOrder = "009999"

	// ErrorOrder marks an entry whose numeric prefix could not be parsed.
	ErrorOrder = "!error"

	orderWidth = 6
)

var orderPrefixRe = regexp.MustCompile(`^([0-9]+)_`)

// ResolveOrder derives the sort key from the final doc-relative segment of
// name. For an index document the final segment is its directory, so
// "01_intro/README.md" orders like the "01_intro" section it describes. The
// module name never contributes, so a doc root index gets DefaultOrder.
//
// A malformed prefix yields ErrorOrder together with an EORDER error; the
// key is still usable.
func ResolveOrder(name string) (string, error) {
	_, rel := SplitName(name)
	segment := path.Base(rel)
	if IsIndexName(name) {
		dir := path.Dir(rel)
		if dir == "/" {
			return DefaultOrder, nil
		}
		segment = path.Base(dir)
	}

	m := orderPrefixRe.FindStringSubmatch(segment)
	if m == nil {
		return DefaultOrder, nil
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return ErrorOrder, Errorf(EORDER, "invalid order prefix %q in %q", m[1], name)
	}
	key := strconv.FormatUint(n, 10)
	if len(key) > orderWidth {
		return ErrorOrder, Errorf(EORDER, "order prefix %q in %q exceeds %d digits", m[1], name, orderWidth)
	}
	for len(key) < orderWidth {
		key = "0" + key
	}
	return key, nil
}

// ValidOrder reports whether key is a well-formed order key.
func ValidOrder(key string) bool {
	if key == ErrorOrder {
		return true
	}
	if len(key) != orderWidth {
		return false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return false
		}
	}
	return true
}
