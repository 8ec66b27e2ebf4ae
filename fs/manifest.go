package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// Ensure ManifestWriter implements docindex.ManifestWriter at compile time.
var _ docindex.ManifestWriter = (*ManifestWriter)(nil)

// ManifestWriter writes the corpus as pretty-printed JSON.
// The manifest is written to a temporary file first and renamed into place,
// so the indexer never reads a partial manifest.
type ManifestWriter struct{}

// NewManifestWriter creates a new ManifestWriter.
func NewManifestWriter() *ManifestWriter {
	return &ManifestWriter{}
}

func (w *ManifestWriter) WriteManifest(ctx context.Context, dir string, docs []*docindex.Document) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	tmp, err := os.CreateTemp(dir, ".documents-*.json.tmp")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return "", err
	}

	if err := EncodeManifest(tmp, docs); err != nil {
		tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	path := filepath.Join(dir, docindex.ManifestFilename)
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", err
	}
	return path, nil
}

// EncodeManifest writes docs to w in manifest format: a two-space indented
// JSON array with HTML left unescaped. A nil corpus encodes as [].
func EncodeManifest(w io.Writer, docs []*docindex.Document) error {
	if docs == nil {
		docs = []*docindex.Document{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}
