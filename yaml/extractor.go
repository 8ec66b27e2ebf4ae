// Package yaml implements docindex.Extractor for Markdown sources with a
// YAML front-matter block, and loads docindex.Options from YAML config files.
package yaml

import (
	"regexp"
	"strings"

	"github.com/fwojciec/docindex"
	"gopkg.in/yaml.v3"
)

// Ensure Extractor implements docindex.Extractor at compile time.
var _ docindex.Extractor = (*Extractor)(nil)

// Matches a leading front-matter block: ---\n...\n---
var frontMatterRe = regexp.MustCompile(`(?s)^---[ \t]*\r?\n(?:(.*?)\r?\n)?---[ \t]*(?:\r?\n|$)`)

// Extractor splits front-matter from the body and derives title and category.
type Extractor struct {
	defaultCategory string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithDefaultCategory sets the category used when the front-matter has none.
// An empty category leaves the document without one.
func WithDefaultCategory(category string) Option {
	return func(e *Extractor) {
		e.defaultCategory = category
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses content. Malformed front-matter returns EINVALID.
func (e *Extractor) Extract(content string) (*docindex.ExtractResult, error) {
	meta, body, err := SplitFrontMatter(content)
	if err != nil {
		return nil, err
	}

	if search, ok := meta["search"].(bool); ok && !search {
		return &docindex.ExtractResult{Skip: true}, nil
	}

	title, _ := meta["title"].(string)
	if title == "" {
		title = docindex.FirstHeading(body)
	}
	if title == "" {
		title = docindex.UntitledTitle
	}

	var category *string
	if c, ok := meta["category"].(string); ok && c != "" {
		category = &c
	} else if e.defaultCategory != "" {
		c := e.defaultCategory
		category = &c
	}

	return &docindex.ExtractResult{
		Title:    title,
		Category: category,
		Body:     strings.TrimSpace(body),
	}, nil
}

// SplitFrontMatter separates a leading YAML block from the rest of content.
// Without a block, the metadata is empty and body is content unchanged.
func SplitFrontMatter(content string) (meta map[string]any, body string, err error) {
	content = strings.TrimPrefix(content, "\ufeff")

	match := frontMatterRe.FindStringSubmatchIndex(content)
	if match == nil {
		return map[string]any{}, content, nil
	}

	var raw string
	if match[2] >= 0 {
		raw = content[match[2]:match[3]]
	}
	meta = map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, "", docindex.Errorf(docindex.EINVALID, "malformed front-matter: %v", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}

	return meta, content[match[1]:], nil
}
