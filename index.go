package docindex

import "context"

// ManifestFilename is the name of the corpus file written into the
// target directory before every indexer run.
const ManifestFilename = "documents.json"

// ManifestWriter serializes a corpus into a target directory.
type ManifestWriter interface {
	// WriteManifest writes docs to dir/ManifestFilename, creating dir if
	// needed, and returns the manifest path.
	WriteManifest(ctx context.Context, dir string, docs []*Document) (string, error)
}

// IndexResult is the outcome of an indexer run that started successfully.
type IndexResult struct {
	ExitCode int
}

// Succeeded reports whether the indexer exited with status 0.
func (r *IndexResult) Succeeded() bool {
	return r.ExitCode == 0
}

// Indexer runs the external index generator against a manifest.
type Indexer interface {
	// Index runs the indexer with manifestPath and targetDir. A nonzero exit
	// is reported through IndexResult; the error is reserved for failures
	// to launch the indexer at all.
	Index(ctx context.Context, manifestPath, targetDir string) (*IndexResult, error)
}

// IndexBuilder produces index artifacts in a target directory.
type IndexBuilder interface {
	BuildIndex(ctx context.Context, targetDir string) error
}
