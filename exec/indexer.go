// Package exec runs the external docfind indexer as a subprocess.
package exec

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/fwojciec/docindex"
)

// Ensure Indexer implements docindex.Indexer at compile time.
var _ docindex.Indexer = (*Indexer)(nil)

// Indexer invokes `<path> <manifestPath> <targetDir>` and passes the
// child's output through. No timeout is applied; the run ends when the
// process exits or ctx is canceled.
type Indexer struct {
	path   string
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Indexer.
type Option func(*Indexer)

// WithOutput sets where the indexer's stdout and stderr are written.
// Defaults to the current process's standard streams.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(i *Indexer) {
		i.stdout = stdout
		i.stderr = stderr
	}
}

// NewIndexer creates an Indexer for the executable at path (looked up in
// PATH when it has no separator).
func NewIndexer(path string, opts ...Option) *Indexer {
	i := &Indexer{
		path:   path,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Index runs the indexer. A process that starts and exits is reported
// through the result, whatever its status; failure to start returns EEXTERNAL.
func (i *Indexer) Index(ctx context.Context, manifestPath, targetDir string) (*docindex.IndexResult, error) {
	cmd := exec.CommandContext(ctx, i.path, manifestPath, targetDir)
	cmd.Stdout = i.stdout
	cmd.Stderr = i.stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return &docindex.IndexResult{ExitCode: 0}, nil
	case errors.As(err, &exitErr):
		return &docindex.IndexResult{ExitCode: exitErr.ExitCode()}, nil
	default:
		return nil, docindex.Errorf(docindex.EEXTERNAL, "failed to launch %s: %v", i.path, err)
	}
}
