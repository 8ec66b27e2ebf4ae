// Package build orchestrates index builds: collecting the corpus, writing
// the manifest and running the indexer, plus the coalescing rebuild loop
// used during development.
package build

import (
	"context"
	"fmt"

	"github.com/fwojciec/docindex"
)

// Ensure Builder implements docindex.IndexBuilder at compile time.
var _ docindex.IndexBuilder = (*Builder)(nil)

// Builder runs one complete index build.
type Builder struct {
	Collector docindex.Collector
	Manifests docindex.ManifestWriter
	Indexer   docindex.Indexer

	// IndexerName is used in error messages. Defaults to "docfind".
	IndexerName string
}

// BuildIndex collects the corpus, writes it to targetDir and runs the
// indexer against it. A nonzero indexer exit returns EEXTERNAL with the
// exit code in the message.
func (b *Builder) BuildIndex(ctx context.Context, targetDir string) error {
	docs, err := b.Collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect documents: %w", err)
	}

	manifestPath, err := b.Manifests.WriteManifest(ctx, targetDir, docs)
	if err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	result, err := b.Indexer.Index(ctx, manifestPath, targetDir)
	if err != nil {
		return err
	}
	if !result.Succeeded() {
		return docindex.Errorf(docindex.EEXTERNAL, "%s exited with code %d", b.indexerName(), result.ExitCode)
	}
	return nil
}

func (b *Builder) indexerName() string {
	if b.IndexerName == "" {
		return docindex.DefaultIndexer
	}
	return b.IndexerName
}
