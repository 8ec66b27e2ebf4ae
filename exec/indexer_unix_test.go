//go:build unix

package exec_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Running the external indexer
//
// The indexer is an opaque executable. It receives the manifest path and
// the target directory, writes its own artifacts, and reports success
// through its exit status.
//
// These tests write and execute scripts, so they do not run in parallel:
// a concurrent fork can hold the script open for writing (ETXTBSY).

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docfind")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755))
	return path
}

func TestIndexer_PassesArgumentsAndOutput(t *testing.T) {
	// Given an indexer that echoes its arguments and writes an artifact
	script := writeScript(t, `echo "manifest=$1 target=$2"; echo "warn" >&2; touch "$2/docfind.js"`)
	target := t.TempDir()
	var stdout, stderr bytes.Buffer
	indexer := exec.NewIndexer(script, exec.WithOutput(&stdout, &stderr))

	// When I run it
	result, err := indexer.Index(context.Background(), filepath.Join(target, "documents.json"), target)

	// Then it succeeds with both positional arguments and passthrough output
	require.NoError(t, err)
	assert.True(t, result.Succeeded())
	assert.Contains(t, stdout.String(), "manifest="+filepath.Join(target, "documents.json"))
	assert.Contains(t, stdout.String(), "target="+target)
	assert.Contains(t, stderr.String(), "warn")
	_, err = os.Stat(filepath.Join(target, "docfind.js"))
	assert.NoError(t, err)
}

func TestIndexer_ReportsNonzeroExit(t *testing.T) {
	script := writeScript(t, "exit 3")
	indexer := exec.NewIndexer(script, exec.WithOutput(&bytes.Buffer{}, &bytes.Buffer{}))

	result, err := indexer.Index(context.Background(), "manifest.json", t.TempDir())

	require.NoError(t, err)
	assert.False(t, result.Succeeded())
	assert.Equal(t, 3, result.ExitCode)
}

func TestIndexer_LaunchFailure(t *testing.T) {
	indexer := exec.NewIndexer(filepath.Join(t.TempDir(), "not-installed"))

	result, err := indexer.Index(context.Background(), "manifest.json", t.TempDir())

	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, docindex.EEXTERNAL, docindex.ErrorCode(err))
	assert.Contains(t, docindex.ErrorMessage(err), "not-installed")
}
