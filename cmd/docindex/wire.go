package main

import (
	"io"
	"log/slog"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/build"
	"github.com/fwojciec/docindex/exec"
	"github.com/fwojciec/docindex/flock"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/lru"
	dislog "github.com/fwojciec/docindex/slog"
	"github.com/fwojciec/docindex/yaml"
)

// newCollector wires the extractor chain and the file system collector.
func newCollector(opts *docindex.BuildOptions, logger *slog.Logger) (docindex.Collector, error) {
	extractor, err := lru.NewCachingExtractor(
		yaml.NewExtractor(yaml.WithDefaultCategory(opts.DefaultCategory)),
		lru.DefaultSize,
	)
	if err != nil {
		return nil, err
	}
	return dislog.NewLoggingCollector(fs.NewCollector(opts, extractor), logger), nil
}

// newIndexBuilder wires a locked build pipeline. The indexer's own output
// goes to stdout and stderr.
func newIndexBuilder(opts *docindex.BuildOptions, logger *slog.Logger, stdout, stderr io.Writer) (docindex.IndexBuilder, error) {
	collector, err := newCollector(opts, logger)
	if err != nil {
		return nil, err
	}

	indexer := exec.NewIndexer(opts.Indexer, exec.WithOutput(stdout, stderr))
	builder := &build.Builder{
		Collector:   collector,
		Manifests:   fs.NewManifestWriter(),
		Indexer:     dislog.NewLoggingIndexer(indexer, logger),
		IndexerName: opts.Indexer,
	}
	return flock.NewLockingIndexBuilder(builder), nil
}
