package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/fs"
	"github.com/fwojciec/docindex/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Writing the manifest
//
// Before every indexer run the corpus is written to documents.json in the
// target directory. The indexer is the only reader.

func TestManifestWriter_CreatesTargetDirectory(t *testing.T) {
	t.Parallel()

	// Given a target directory that does not exist yet
	target := filepath.Join(t.TempDir(), "dist", "docfind")

	// When I write a manifest
	path, err := fs.NewManifestWriter().WriteManifest(context.Background(), target, []*docindex.Document{
		{Title: "Home", Href: "/", Body: "Welcome"},
	})

	// Then the directory and file exist
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(target, "documents.json"), path)
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestManifestWriter_PrettyPrintsAndOmitsAbsentCategory(t *testing.T) {
	t.Parallel()

	target := t.TempDir()
	category := "guides"

	path, err := fs.NewManifestWriter().WriteManifest(context.Background(), target, []*docindex.Document{
		{Title: "Guide", Category: &category, Href: "/guide/", Body: "<Badge /> & more"},
		{Title: "Home", Href: "/", Body: "Welcome"},
	})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "[\n  {\n    \"title\": \"Guide\","), content)
	assert.Contains(t, content, `"category": "guides"`)
	assert.Contains(t, content, `<Badge /> & more`)
	assert.Equal(t, 1, strings.Count(content, `"category"`))
}

func TestManifestWriter_EmptyCorpus(t *testing.T) {
	t.Parallel()

	path, err := fs.NewManifestWriter().WriteManifest(context.Background(), t.TempDir(), nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))
}

func TestManifestWriter_OverwritesPreviousManifest(t *testing.T) {
	t.Parallel()

	target := t.TempDir()
	w := fs.NewManifestWriter()
	_, err := w.WriteManifest(context.Background(), target, []*docindex.Document{{Title: "Old", Href: "/old/"}})
	require.NoError(t, err)

	path, err := w.WriteManifest(context.Background(), target, []*docindex.Document{{Title: "New", Href: "/new/"}})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Old")
	assert.Contains(t, string(data), "New")

	// And no temporary files are left behind
	entries, err := os.ReadDir(target)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestManifest_RoundTripsCollectedCorpus(t *testing.T) {
	t.Parallel()

	// Given a collected corpus
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"index.md":    "# Home\n\nWelcome.",
		"guide.md":    "---\ncategory: guides\n---\n# Guide\n\nSteps & <tips>.",
		"untitled.md": "plain text",
	})
	opts := resolve(t, docindex.Options{DocsDir: root})
	docs, err := fs.NewCollector(opts, yaml.NewExtractor()).Collect(context.Background())
	require.NoError(t, err)

	// When I write and re-parse the manifest
	path, err := fs.NewManifestWriter().WriteManifest(context.Background(), t.TempDir(), docs)
	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var parsed []*docindex.Document
	require.NoError(t, json.Unmarshal(data, &parsed))

	// Then the records equal the in-memory corpus
	assert.Equal(t, docs, parsed)
}
