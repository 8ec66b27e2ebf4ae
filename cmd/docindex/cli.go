package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docindex"
	dihttp "github.com/fwojciec/docindex/http"
	"github.com/fwojciec/docindex/yaml"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Build   BuildCmd   `cmd:"" help:"Build the search index into the output directory"`
	Dev     DevCmd     `cmd:"" help:"Rebuild the index on change and serve it for development"`
	Collect CollectCmd `cmd:"" help:"Print the document manifest without running the indexer"`
}

// Globals are the flags shared by every command. They mirror
// docindex.Options and override values from the config file.
type Globals struct {
	Config  string `short:"c" env:"DOCINDEX_CONFIG" help:"YAML config file (default: ${config_file} if present)"`
	Verbose bool   `short:"v" env:"DOCINDEX_VERBOSE" help:"Enable debug logging"`

	DocsDir         string   `name:"docs-dir" env:"DOCINDEX_DOCS_DIR" help:"Markdown source directory (default: docs)"`
	OutDir          string   `name:"out-dir" env:"DOCINDEX_OUT_DIR" help:"Site output directory (default: <docs-dir>/.vitepress/dist)"`
	IndexDir        string   `name:"index-dir" env:"DOCINDEX_INDEX_DIR" help:"Index output directory (default: <out-dir>/docfind)"`
	DevIndexDir     string   `name:"dev-index-dir" env:"DOCINDEX_DEV_INDEX_DIR" help:"Dev index directory (default: <docs-dir>/.vitepress/cache/docfind)"`
	Base            string   `name:"base" env:"DOCINDEX_BASE" help:"Public base path of the site"`
	HTMLURLs        bool     `name:"html-urls" env:"DOCINDEX_HTML_URLS" help:"Link to /page.html instead of /page/"`
	Include         []string `name:"include" env:"DOCINDEX_INCLUDE" help:"Glob of files to index (repeatable)"`
	Exclude         []string `name:"exclude" env:"DOCINDEX_EXCLUDE" help:"Glob of files to skip (repeatable)"`
	DefaultCategory string   `name:"default-category" env:"DOCINDEX_DEFAULT_CATEGORY" help:"Category for documents without one"`
	Indexer         string   `name:"indexer" env:"DOCINDEX_INDEXER" help:"Indexer executable (default: docfind)"`
}

// BuildCmd is the "build" subcommand.
type BuildCmd struct{}

// DevCmd is the "dev" subcommand.
type DevCmd struct {
	Addr string `default:"${dev_addr}" env:"DOCINDEX_ADDR" help:"Listen address for the dev server"`
}

// CollectCmd is the "collect" subcommand.
type CollectCmd struct{}

// vars are the interpolated values used in struct tags.
var vars = map[string]string{
	"config_file": yaml.DefaultConfigFile,
	"dev_addr":    dihttp.DefaultAddr,
}

// Options loads the config file and applies flag values on top.
func (g *Globals) Options() (docindex.Options, error) {
	var opts docindex.Options

	path := g.Config
	if path == "" {
		path = yaml.DefaultConfigFile
	}
	fileOpts, err := yaml.LoadOptions(path)
	switch {
	case err == nil:
		opts = fileOpts
	case docindex.ErrorCode(err) == docindex.ENOTFOUND && g.Config == "":
		// The default config file is optional.
	default:
		return opts, err
	}

	flags := docindex.Options{
		DocsDir:         g.DocsDir,
		OutDir:          g.OutDir,
		IndexDir:        g.IndexDir,
		DevIndexDir:     g.DevIndexDir,
		Base:            g.Base,
		Include:         g.Include,
		Exclude:         g.Exclude,
		DefaultCategory: g.DefaultCategory,
		Indexer:         g.Indexer,
	}
	if g.HTMLURLs {
		clean := false
		flags.CleanURLs = &clean
	}
	return opts.Merge(flags), nil
}

// BuildOptions resolves the effective configuration.
func (g *Globals) BuildOptions() (*docindex.BuildOptions, error) {
	opts, err := g.Options()
	if err != nil {
		return nil, err
	}
	return docindex.ResolveOptions(opts)
}

// Logger returns a text logger writing to w.
func (g *Globals) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if g.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
