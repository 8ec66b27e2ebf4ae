package docindex

import (
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// Option defaults.
const (
	DefaultDocsDir = "docs"
	DefaultIndexer = "docfind"

	// MountDir is the URL segment under the base path where index
	// artifacts are served, and the default index directory name.
	MountDir = "docfind"
)

// DefaultInclude and DefaultExclude are the glob sets used when none are
// configured.
var (
	DefaultInclude = []string{"**/*.md"}
	DefaultExclude = []string{"**/node_modules/**", "**/.vitepress/**"}
)

// Options is the partial, user-supplied configuration. Zero values mean
// "use the default".
type Options struct {
	DocsDir         string   `yaml:"docsDir"`
	OutDir          string   `yaml:"outDir"`
	IndexDir        string   `yaml:"indexDir"`
	DevIndexDir     string   `yaml:"devIndexDir"`
	Base            string   `yaml:"base"`
	CleanURLs       *bool    `yaml:"cleanUrls"`
	Include         []string `yaml:"include"`
	Exclude         []string `yaml:"exclude"`
	DefaultCategory string   `yaml:"defaultCategory"`
	Indexer         string   `yaml:"indexer"`
}

// Merge returns a copy of o with every non-zero field of other applied on top.
func (o Options) Merge(other Options) Options {
	if other.DocsDir != "" {
		o.DocsDir = other.DocsDir
	}
	if other.OutDir != "" {
		o.OutDir = other.OutDir
	}
	if other.IndexDir != "" {
		o.IndexDir = other.IndexDir
	}
	if other.DevIndexDir != "" {
		o.DevIndexDir = other.DevIndexDir
	}
	if other.Base != "" {
		o.Base = other.Base
	}
	if other.CleanURLs != nil {
		o.CleanURLs = other.CleanURLs
	}
	if len(other.Include) > 0 {
		o.Include = other.Include
	}
	if len(other.Exclude) > 0 {
		o.Exclude = other.Exclude
	}
	if other.DefaultCategory != "" {
		o.DefaultCategory = other.DefaultCategory
	}
	if other.Indexer != "" {
		o.Indexer = other.Indexer
	}
	return o
}

// BuildOptions is the fully-resolved configuration. It is produced once by
// ResolveOptions and treated as read-only afterwards.
type BuildOptions struct {
	DocsDir         string
	OutDir          string
	IndexDir        string
	DevIndexDir     string
	Base            string
	CleanURLs       bool
	Include         []string
	Exclude         []string
	DefaultCategory string
	Indexer         string
}

// MountPrefix returns the URL prefix under which dev index artifacts are
// served, e.g. "/docs/docfind/".
func (o *BuildOptions) MountPrefix() string {
	return o.Base + "/" + MountDir + "/"
}

// ResolveOptions applies defaults to opts and makes all directories absolute.
// Returns EINVALID for malformed globs or unresolvable paths.
func ResolveOptions(opts Options) (*BuildOptions, error) {
	docsDir := opts.DocsDir
	if docsDir == "" {
		docsDir = DefaultDocsDir
	}
	docsDir, err := filepath.Abs(docsDir)
	if err != nil {
		return nil, Errorf(EINVALID, "resolve docs directory %q: %v", opts.DocsDir, err)
	}

	outDir, err := resolveDir(opts.OutDir, filepath.Join(docsDir, ".vitepress", "dist"))
	if err != nil {
		return nil, err
	}
	indexDir, err := resolveDir(opts.IndexDir, filepath.Join(outDir, MountDir))
	if err != nil {
		return nil, err
	}
	devIndexDir, err := resolveDir(opts.DevIndexDir, filepath.Join(docsDir, ".vitepress", "cache", MountDir))
	if err != nil {
		return nil, err
	}

	cleanURLs := true
	if opts.CleanURLs != nil {
		cleanURLs = *opts.CleanURLs
	}

	include := opts.Include
	if len(include) == 0 {
		include = DefaultInclude
	}
	exclude := opts.Exclude
	if len(exclude) == 0 {
		exclude = DefaultExclude
	}
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, Errorf(EINVALID, "invalid glob pattern %q", pattern)
		}
	}

	indexer := opts.Indexer
	if indexer == "" {
		indexer = DefaultIndexer
	}

	return &BuildOptions{
		DocsDir:         docsDir,
		OutDir:          outDir,
		IndexDir:        indexDir,
		DevIndexDir:     devIndexDir,
		Base:            ResolveBase(opts.Base),
		CleanURLs:       cleanURLs,
		Include:         append([]string(nil), include...),
		Exclude:         append([]string(nil), exclude...),
		DefaultCategory: opts.DefaultCategory,
		Indexer:         indexer,
	}, nil
}

func resolveDir(dir, fallback string) (string, error) {
	if dir == "" {
		return fallback, nil
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", Errorf(EINVALID, "resolve directory %q: %v", dir, err)
	}
	return abs, nil
}
