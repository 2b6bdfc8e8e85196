package docindex

import (
	"path"
	"strings"
)

// ParentName returns the canonical name of the entry's parent. An index
// document belongs to the index of the section above its own; a content
// document belongs to the index of its own directory. There is no parent
// once the candidate would leave the module's doc root.
func ParentName(name string) (string, bool) {
	module, rel := SplitName(name)
	dir := path.Dir(strings.TrimPrefix(rel, "/"))

	var candidate string
	if IsIndexName(name) {
		candidate = path.Join(dir, "..", IndexFile)
	} else {
		candidate = path.Join(dir, IndexFile)
	}

	if candidate == ".." || strings.HasPrefix(candidate, "../") {
		return "", false
	}
	return module + "/" + candidate, true
}

// AncestorChain returns name preceded by all of its ancestors, root first.
// The walk is bounded by the name's level: every step moves at least one
// directory towards the doc root, except the single step from a content
// document to its own directory's index.
func AncestorChain(name string) ([]string, error) {
	limit := Level(name) + 1
	chain := []string{name}
	for cur := name; ; {
		parent, ok := ParentName(cur)
		if !ok {
			break
		}
		if len(chain) > limit {
			return nil, Errorf(EINTERNAL, "ancestor chain of %q exceeds %d steps", name, limit)
		}
		chain = append(chain, parent)
		cur = parent
	}

	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain, nil
}
