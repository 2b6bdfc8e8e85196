package build

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
)

// DefaultInterval is the age after which a generated index is rebuilt.
const DefaultInterval = 300 * time.Second

// Ensure Indexer implements docindex.IndexService at compile time.
var _ docindex.IndexService = (*Indexer)(nil)

// Indexer regenerates the entry hierarchy and the rendered index. Rescans
// are rate limited by Interval because every pass walks all module trees.
type Indexer struct {
	Builder *Builder
	Modules docindex.ModuleService
	Entries docindex.EntryService
	Builds  docindex.BuildService

	// Store receives the rendered index. Optional.
	Store docindex.IndexStore

	// Interval is the maximum age of the last build. Defaults to
	// DefaultInterval.
	Interval time.Duration

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	mu sync.Mutex
}

// NeedsRebuild reports whether a new pass is due. The check compares the
// last generation time with now and is not atomic; running a pass twice is
// harmless.
func NeedsRebuild(force bool, entries int, lastGenerated, now time.Time, interval time.Duration) bool {
	if force || entries == 0 || lastGenerated.IsZero() {
		return true
	}
	return now.Sub(lastGenerated) > interval
}

// Rebuild runs a pass when one is due and records it. Name collisions are
// returned as an ECONFLICT error alongside the recorded build.
func (idx *Indexer) Rebuild(ctx context.Context, force bool) (*docindex.Build, error) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	n, err := idx.Entries.CountEntries(ctx)
	if err != nil {
		return nil, err
	}

	latest, err := idx.Builds.FindLatestBuild(ctx)
	if err != nil && docindex.ErrorCode(err) != docindex.ENOTFOUND {
		return nil, err
	}
	var lastGenerated time.Time
	if latest != nil {
		lastGenerated = latest.GeneratedAt
	}

	if !NeedsRebuild(force, n, lastGenerated, idx.now(), idx.interval()) {
		latest.Skipped = true
		return latest, nil
	}

	modules, err := idx.Modules.FindModules(ctx)
	if err != nil {
		return nil, err
	}

	build, buildErr := idx.Builder.Build(ctx, modules)
	if buildErr != nil && docindex.ErrorCode(buildErr) != docindex.ECONFLICT {
		return nil, buildErr
	}

	entries, err := idx.Entries.FindEntries(ctx, docindex.EntryFilter{})
	if err != nil {
		return nil, err
	}
	content := docindex.RenderIndex(docindex.NewTree(entries))

	build.Entries = len(entries)
	build.IndexHash = hashContent(content)
	build.GeneratedAt = idx.now()

	if idx.Store != nil {
		if err := idx.Store.Save(ctx, content); err != nil {
			return nil, err
		}
	}
	if err := idx.Builds.CreateBuild(ctx, build); err != nil {
		return nil, err
	}

	return build, buildErr
}

func (idx *Indexer) now() time.Time {
	if idx.Now != nil {
		return idx.Now()
	}
	return time.Now()
}

func (idx *Indexer) interval() time.Duration {
	if idx.Interval > 0 {
		return idx.Interval
	}
	return DefaultInterval
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}
