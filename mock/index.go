package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

// Compile-time interface verification.
var (
	_ docindex.ManifestWriter = (*ManifestWriter)(nil)
	_ docindex.Indexer        = (*Indexer)(nil)
	_ docindex.IndexBuilder   = (*IndexBuilder)(nil)
)

// ManifestWriter is a mock implementation of docindex.ManifestWriter.
type ManifestWriter struct {
	WriteManifestFn func(ctx context.Context, dir string, docs []*docindex.Document) (string, error)
}

func (w *ManifestWriter) WriteManifest(ctx context.Context, dir string, docs []*docindex.Document) (string, error) {
	return w.WriteManifestFn(ctx, dir, docs)
}

// Indexer is a mock implementation of docindex.Indexer.
type Indexer struct {
	IndexFn func(ctx context.Context, manifestPath, targetDir string) (*docindex.IndexResult, error)
}

func (i *Indexer) Index(ctx context.Context, manifestPath, targetDir string) (*docindex.IndexResult, error) {
	return i.IndexFn(ctx, manifestPath, targetDir)
}

// IndexBuilder is a mock implementation of docindex.IndexBuilder.
type IndexBuilder struct {
	BuildIndexFn func(ctx context.Context, targetDir string) error
}

func (b *IndexBuilder) BuildIndex(ctx context.Context, targetDir string) error {
	return b.BuildIndexFn(ctx, targetDir)
}
