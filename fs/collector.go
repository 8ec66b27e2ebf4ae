// Package fs provides file-based collection and storage of the document
// corpus.
package fs

import (
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/docindex"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of files read in parallel.
const DefaultConcurrency = 16

// Ensure Collector implements docindex.Collector at compile time.
var _ docindex.Collector = (*Collector)(nil)

// Collector reads Markdown sources from the docs directory and turns them
// into documents.
type Collector struct {
	opts        *docindex.BuildOptions
	extractor   docindex.Extractor
	concurrency int
}

// CollectorOption configures a Collector.
type CollectorOption func(*Collector)

// WithConcurrency sets how many files are read in parallel.
func WithConcurrency(n int) CollectorOption {
	return func(c *Collector) {
		c.concurrency = n
	}
}

// NewCollector creates a new Collector.
func NewCollector(opts *docindex.BuildOptions, extractor docindex.Extractor, options ...CollectorOption) *Collector {
	c := &Collector{
		opts:        opts,
		extractor:   extractor,
		concurrency: DefaultConcurrency,
	}
	for _, o := range options {
		o(c)
	}
	if c.concurrency <= 0 {
		c.concurrency = DefaultConcurrency
	}
	return c
}

// Collect returns the documents of every matching source, in enumeration
// order. The first failing file aborts the collection.
func (c *Collector) Collect(ctx context.Context) ([]*docindex.Document, error) {
	paths, err := c.Match()
	if err != nil {
		return nil, err
	}

	docs := make([]*docindex.Document, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)
	for i, rel := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			doc, err := c.collectFile(rel)
			if err != nil {
				return fileError(rel, err)
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Drop skipped files while keeping order
	return lo.Filter(docs, func(doc *docindex.Document, _ int) bool {
		return doc != nil
	}), nil
}

// Match returns the slash-separated paths, relative to the docs directory,
// of all files selected by the include and exclude globs.
func (c *Collector) Match() ([]string, error) {
	info, err := os.Stat(c.opts.DocsDir)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, docindex.Errorf(docindex.ENOTFOUND, "docs directory %q not found", c.opts.DocsDir)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, docindex.Errorf(docindex.EINVALID, "docs path %q is not a directory", c.opts.DocsDir)
	}

	fsys := os.DirFS(c.opts.DocsDir)
	seen := make(map[string]bool)
	var paths []string

	for _, pattern := range c.opts.Include {
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
			if d.IsDir() || seen[path] || isHidden(path) || c.excluded(path) {
				return nil
			}
			seen[path] = true
			paths = append(paths, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("match %q: %w", pattern, err)
		}
	}

	return paths, nil
}

func (c *Collector) collectFile(rel string) (*docindex.Document, error) {
	data, err := os.ReadFile(filepath.Join(c.opts.DocsDir, filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}

	result, err := c.extractor.Extract(strings.ToValidUTF8(string(data), "\uFFFD"))
	if err != nil {
		return nil, err
	}
	if result.Skip {
		return nil, nil
	}

	doc := &docindex.Document{
		Title:    result.Title,
		Category: result.Category,
		Href:     docindex.FileToHref(rel, c.opts.Base, c.opts.CleanURLs),
		Body:     result.Body,
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func (c *Collector) excluded(path string) bool {
	for _, pattern := range c.opts.Exclude {
		if ok, _ := doublestar.Match(pattern, path); ok {
			return true
		}
	}
	return false
}

// isHidden reports whether any segment of path starts with a dot.
func isHidden(path string) bool {
	for _, segment := range strings.Split(path, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}

// fileError attaches the failing source path to err.
func fileError(rel string, err error) error {
	code := docindex.ErrorCode(err)
	msg := docindex.ErrorMessage(err)
	switch {
	case errors.Is(err, iofs.ErrNotExist):
		code, msg = docindex.ENOTFOUND, err.Error()
	case code == docindex.EINTERNAL:
		msg = err.Error()
	}
	return &docindex.Error{Code: code, Message: fmt.Sprintf("%s: %s", rel, msg)}
}
