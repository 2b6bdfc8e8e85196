package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/build"
	"github.com/fwojciec/docindex/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DB      *sqlite.DB
	Modules docindex.ModuleService
	Entries docindex.EntryService
	Builds  docindex.BuildService
	Builder *build.Builder
	Index   docindex.IndexService
	Topics  docindex.TopicService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB      string `name:"db" env:"DOCINDEX_DB" help:"Database path (default ~/.docindex/docindex.db)"`
	Verbose bool   `short:"v" help:"Log service calls to stderr"`

	Add     AddCmd     `cmd:"" help:"Register a module and index its documentation"`
	Modules ModulesCmd `cmd:"" help:"List registered modules"`
	Build   BuildCmd   `cmd:"" help:"Rescan all modules and regenerate the index"`
	Index   IndexCmd   `cmd:"" help:"Print the documentation index"`
	List    ListCmd    `cmd:"" help:"List documentation entries"`
	Show    ShowCmd    `cmd:"" help:"Show a single entry"`
	Expand  ExpandCmd  `cmd:"" help:"Print a topic with all of its descendants"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name string `arg:"" help:"Module name"`
	Path string `arg:"" type:"path" help:"Module source directory containing doc/"`
	URL  string `help:"Repository URL used for source links"`
}

// ModulesCmd is the "modules" subcommand.
type ModulesCmd struct{}

// BuildCmd is the "build" subcommand.
type BuildCmd struct {
	Force       bool          `short:"f" help:"Rebuild even if the index is fresh"`
	Interval    time.Duration `default:"5m" env:"DOCINDEX_INTERVAL" help:"Maximum age of the index before it is rebuilt"`
	Out         string        `short:"o" type:"path" env:"DOCINDEX_OUT" help:"Write the rendered index to this file"`
	Concurrency int           `short:"c" default:"4" help:"Modules scanned concurrently"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Roots  bool   `help:"Only list root entries"`
	Parent string `help:"Only list children of this entry"`
	Module string `short:"m" help:"Only list entries of this module"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Name string `arg:"" help:"Entry name"`
}

// ExpandCmd is the "expand" subcommand.
type ExpandCmd struct {
	Name   string `arg:"" help:"Entry name"`
	Format string `short:"F" enum:"markdown,html,terminal" default:"markdown" help:"Output format (markdown, html, terminal)"`
	Style  string `help:"Terminal style (auto, dark, light, notty)"`
	Width  int    `default:"80" help:"Terminal word wrap width"`
}
