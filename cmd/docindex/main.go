package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/build"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/glamour"
	"github.com/fwojciec/docindex/goldmark"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/sqlite"
	"github.com/fwojciec/docindex/topic"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(). The --db flag takes
	// precedence.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docindex"),
		kong.Description("Build a nested index of module documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set DOCINDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	var logger *slog.Logger
	if cli.Verbose {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	var entries docindex.EntryService = sqlite.NewEntryService(m.DB)
	if logger != nil {
		entries = docslog.NewLoggingEntryService(entries, logger)
	}
	deps.DB = m.DB
	deps.Modules = sqlite.NewModuleService(m.DB)
	deps.Entries = entries
	deps.Builds = sqlite.NewBuildService(m.DB)

	source := fs.NewSource()
	builder := &build.Builder{
		Scanner:     fs.NewScanner(),
		Source:      source,
		Entries:     entries,
		Modules:     deps.Modules,
		Concurrency: cli.Build.Concurrency,
	}
	indexer := &build.Indexer{
		Builder:  builder,
		Modules:  deps.Modules,
		Entries:  entries,
		Builds:   deps.Builds,
		Interval: cli.Build.Interval,
	}
	if cli.Build.Out != "" {
		indexer.Store = fs.NewIndexFile(cli.Build.Out)
	}
	deps.Builder = builder
	deps.Index = indexer

	expander := topic.NewExpander(entries, deps.Modules, source)
	expander.Converters[docindex.FormatHTML] = goldmark.NewConverter()
	if strings.HasPrefix(kongCtx.Command(), "expand") && docindex.Format(cli.Expand.Format) == docindex.FormatTerminal {
		conv, err := glamour.NewConverter(cli.Expand.Style, cli.Expand.Width)
		if err != nil {
			return fmt.Errorf("failed to create terminal renderer: %w", err)
		}
		expander.Converters[docindex.FormatTerminal] = conv
	}
	deps.Topics = expander

	if logger != nil {
		deps.Index = docslog.NewLoggingIndexService(deps.Index, logger)
		deps.Topics = docslog.NewLoggingTopicService(deps.Topics, logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "docindex.db"
	}
	dir := filepath.Join(home, ".docindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "docindex.db")
}
