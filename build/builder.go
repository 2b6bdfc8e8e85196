// Package build discovers module documentation and maintains the entry
// hierarchy derived from it.
package build

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/bloom"
	"golang.org/x/sync/errgroup"
)

// Builder configuration.
const (
	// defaultConcurrency is the number of modules scanned at once.
	defaultConcurrency = 4
	// knownFalsePositiveRate is the acceptable false positive rate of the
	// existing-name filter. A false positive only costs one lookup.
	knownFalsePositiveRate = 0.01
	// knownPageSize is the number of stored entries read per query while
	// loading the existing-name filter.
	knownPageSize = 500
)

// Builder turns discovered documentation files into entries. A pass first
// plans the ancestor chain of every file without touching storage, then
// inserts the chains root first from a single goroutine.
type Builder struct {
	Scanner docindex.Scanner
	Source  docindex.Source
	Entries docindex.EntryService

	// Modules resolves the module of names passed to Ensure without one.
	Modules docindex.ModuleService

	// Concurrency limits the number of modules scanned at once.
	Concurrency int

	mu sync.Mutex
}

// candidate is one name of a planned chain.
type candidate struct {
	name       string
	module     *docindex.Module
	discovered bool
}

// modulePlan holds the chains of one module in discovery order.
type modulePlan struct {
	chains   [][]candidate
	problems []*docindex.Problem
}

// Build runs a discovery and build pass over modules. Per-file problems are
// recorded on the returned build and never stop the pass. When names
// collide, the build is returned together with an ECONFLICT error.
func (b *Builder) Build(ctx context.Context, modules []*docindex.Module) (*docindex.Build, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	plans, err := b.plan(ctx, modules)
	if err != nil {
		return nil, err
	}

	p, err := b.newPass(ctx)
	if err != nil {
		return nil, err
	}
	for _, plan := range plans {
		p.build.Problems = append(p.build.Problems, plan.problems...)
		for _, chain := range plan.chains {
			if _, err := p.ensureChain(chain); err != nil {
				return nil, err
			}
		}
	}

	if p.build.Entries, err = b.Entries.CountEntries(ctx); err != nil {
		return nil, err
	}

	if conflicts := p.build.Conflicts(); len(conflicts) > 0 {
		names := make([]string, 0, len(conflicts))
		for _, c := range conflicts {
			names = append(names, c.Name)
		}
		return p.build, docindex.Errorf(docindex.ECONFLICT, "ambiguous documentation names: %s", strings.Join(names, ", "))
	}
	return p.build, nil
}

// Ensure creates the named entry of module together with its missing
// ancestors and returns it. An existing entry is returned unchanged. A file
// that vanished or has no heading yields an EMISSING or EUNTITLED error.
//
// A nil module is inherited from the stored parent entry, or else taken
// from the module prefix of name. EINVALID is returned when neither names a
// registered module.
func (b *Builder) Ensure(ctx context.Context, module *docindex.Module, name string) (*docindex.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	chain, err := docindex.AncestorChain(name)
	if err != nil {
		return nil, err
	}
	if module == nil {
		if module, err = b.resolveModule(ctx, name); err != nil {
			return nil, err
		}
	}

	p, err := b.newPass(ctx)
	if err != nil {
		return nil, err
	}
	candidates := make([]candidate, len(chain))
	for i, n := range chain {
		candidates[i] = candidate{name: n, module: module, discovered: i == len(chain)-1}
	}

	entry, err := p.ensureChain(candidates)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		for _, prob := range p.build.Problems {
			if strings.EqualFold(prob.Name, name) {
				return nil, prob.Err
			}
		}
		return nil, docindex.Errorf(docindex.EMISSING, "entry %q could not be created", name)
	}
	return entry, nil
}

// resolveModule finds the module an entry without one belongs to.
func (b *Builder) resolveModule(ctx context.Context, name string) (*docindex.Module, error) {
	moduleName, _ := docindex.SplitName(name)
	if parentName, ok := docindex.ParentName(name); ok {
		parent, err := b.Entries.FindEntryByName(ctx, parentName)
		if err == nil && parent.Module != "" {
			moduleName = parent.Module
		} else if err != nil && docindex.ErrorCode(err) != docindex.ENOTFOUND {
			return nil, err
		}
	}

	if b.Modules == nil {
		return nil, docindex.Errorf(docindex.EINVALID, "module of %q is unknown", name)
	}
	module, err := b.Modules.FindModuleByName(ctx, moduleName)
	if docindex.ErrorCode(err) == docindex.ENOTFOUND {
		return nil, docindex.Errorf(docindex.EINVALID, "module %q of %q is not registered", moduleName, name)
	} else if err != nil {
		return nil, err
	}
	return module, nil
}

// plan scans modules concurrently and computes the ancestor chains of every
// discovered file. Plans are returned in module order.
func (b *Builder) plan(ctx context.Context, modules []*docindex.Module) ([]*modulePlan, error) {
	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	plans := make([]*modulePlan, len(modules))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, m := range modules {
		g.Go(func() error {
			plan, err := b.planModule(gctx, m)
			if err != nil {
				return err
			}
			plans[i] = plan
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return plans, nil
}

func (b *Builder) planModule(ctx context.Context, m *docindex.Module) (*modulePlan, error) {
	plan := &modulePlan{}

	paths, err := b.Scanner.Scan(ctx, m)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		plan.problems = append(plan.problems, &docindex.Problem{
			Name: m.Name,
			Path: m.DocPath(),
			Err:  err,
		})
		return plan, nil
	}

	// Discovered names by folded key. The first path wins a collision.
	discovered := make(map[string]string, len(paths))
	var ordered []string
	for _, rel := range paths {
		name := docindex.CanonicalName(m.Name, rel)
		key := strings.ToLower(name)
		if prev, ok := discovered[key]; ok {
			if prev != name {
				plan.problems = append(plan.problems, &docindex.Problem{
					Name: name,
					Path: m.FilePath(name),
					Err:  docindex.Errorf(docindex.ECONFLICT, "%q and %q map to the same entry name", prev, name),
				})
			}
			continue
		}
		discovered[key] = name
		ordered = append(ordered, name)
	}

	for _, name := range ordered {
		chain, err := docindex.AncestorChain(name)
		if err != nil {
			plan.problems = append(plan.problems, &docindex.Problem{Name: name, Path: m.FilePath(name), Err: err})
			continue
		}

		candidates := make([]candidate, len(chain))
		for i, n := range chain {
			// Ancestors resolve to the spelling of a discovered file.
			if actual, ok := discovered[strings.ToLower(n)]; ok {
				n = actual
			}
			candidates[i] = candidate{name: n, module: m, discovered: i == len(chain)-1}
		}
		plan.chains = append(plan.chains, candidates)
	}

	return plan, nil
}

// pass holds the state of one apply phase.
type pass struct {
	ctx     context.Context
	b       *Builder
	build   *docindex.Build
	known   *bloom.Filter
	results map[string]*docindex.Entry
}

func (b *Builder) newPass(ctx context.Context) (*pass, error) {
	n, err := b.Entries.CountEntries(ctx)
	if err != nil {
		return nil, err
	}

	// Stored names are streamed page by page so that only the filter stays
	// in memory.
	known := bloom.NewFilter(uint(n)*2, knownFalsePositiveRate)
	for offset := 0; ; offset += knownPageSize {
		page, err := b.Entries.FindEntries(ctx, docindex.EntryFilter{Limit: knownPageSize, Offset: offset})
		if err != nil {
			return nil, err
		}
		for _, e := range page {
			known.Add(e.Name)
		}
		if len(page) < knownPageSize {
			break
		}
	}

	return &pass{
		ctx:     ctx,
		b:       b,
		build:   &docindex.Build{},
		known:   known,
		results: make(map[string]*docindex.Entry),
	}, nil
}

// ensureChain ensures every name of chain, root first, and returns the
// entry of the last name. A name whose parent could not be created becomes
// a root.
func (p *pass) ensureChain(chain []candidate) (*docindex.Entry, error) {
	var parent *docindex.Entry
	for _, c := range chain {
		entry, err := p.ensure(c, parent)
		if err != nil {
			return nil, err
		}
		parent = entry
	}
	return parent, nil
}

// ensure returns the entry for c, creating it when needed. It returns a nil
// entry for skipped files and an error only when storage fails.
func (p *pass) ensure(c candidate, parent *docindex.Entry) (*docindex.Entry, error) {
	key := strings.ToLower(c.name)
	if entry, ok := p.results[key]; ok {
		return entry, nil
	}

	entry, err := p.existing(c)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry, err = p.create(c, parent)
		if err != nil {
			return nil, err
		}
	}

	p.results[key] = entry
	return entry, nil
}

// existing looks up a stored entry for c. The filter rules out most names
// that were never stored without a query.
func (p *pass) existing(c candidate) (*docindex.Entry, error) {
	if !p.known.Test(c.name) {
		return nil, nil
	}

	entry, err := p.b.Entries.FindEntryByName(p.ctx, c.name)
	if docindex.ErrorCode(err) == docindex.ENOTFOUND {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if c.discovered && (entry.Name != c.name || entry.Module != c.module.Name) {
		p.problem(c, docindex.Errorf(docindex.ECONFLICT, "%q collides with existing entry %q of module %q", c.name, entry.Name, entry.Module))
	}
	return entry, nil
}

func (p *pass) create(c candidate, parent *docindex.Entry) (*docindex.Entry, error) {
	path := c.module.FilePath(c.name)
	if !p.b.Source.Exists(path) {
		p.problem(c, docindex.Errorf(docindex.EMISSING, "file %s does not exist", path))
		return nil, nil
	}

	line, err := p.b.Source.FirstLine(path)
	if err != nil {
		p.problem(c, docindex.Errorf(docindex.EUNTITLED, "cannot read title of %s: %s", path, err))
		return nil, nil
	}
	title, ok := docindex.ParseTitle(line)
	if !ok {
		p.problem(c, docindex.Errorf(docindex.EUNTITLED, "%s does not start with a heading", path))
		return nil, nil
	}

	order, err := docindex.ResolveOrder(c.name)
	if err != nil {
		p.problem(c, err)
	}

	entry := &docindex.Entry{
		Name:        c.name,
		Description: title,
		Order:       order,
		Module:      c.module.Name,
	}
	if parent != nil {
		entry.Parent = parent.Name
	}

	if err := p.b.Entries.CreateEntry(p.ctx, entry); err != nil {
		var e *docindex.Error
		if errors.As(err, &e) && e.Code == docindex.ECONFLICT {
			p.problem(c, err)
			return nil, nil
		}
		return nil, err
	}

	p.known.Add(entry.Name)
	p.build.Created++
	return entry, nil
}

func (p *pass) problem(c candidate, err error) {
	p.build.Problems = append(p.build.Problems, &docindex.Problem{
		Name: c.name,
		Path: c.module.FilePath(c.name),
		Err:  err,
	})
}
