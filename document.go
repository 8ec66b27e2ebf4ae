package docindex

import "context"

// UntitledTitle is used when a document has neither a title in its
// front-matter nor an H1 heading.
const UntitledTitle = "Untitled"

// Document represents one searchable page of the corpus.
// Documents are built once by a Collector and never modified afterwards.
type Document struct {
	Title    string  `json:"title"`
	Category *string `json:"category,omitempty"`
	Href     string  `json:"href"`
	Body     string  `json:"body"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Href == "" || d.Href[0] != '/' {
		return Errorf(EINVALID, "document href must start with /: %q", d.Href)
	}
	return nil
}

// ExtractResult holds the content extracted from one Markdown source.
type ExtractResult struct {
	// Title is the front-matter title, the first H1 heading, or UntitledTitle.
	Title string

	// Category is nil when neither the front-matter nor the configuration
	// provides one.
	Category *string

	// Body is the source with front-matter removed and whitespace trimmed.
	Body string

	// Skip is set when the front-matter opts the file out of search.
	Skip bool
}

// Extractor turns Markdown source text into an ExtractResult.
type Extractor interface {
	// Extract parses content. Implementations return an EINVALID error
	// for malformed front-matter.
	Extract(content string) (*ExtractResult, error)
}

// Collector gathers the document corpus from the source tree.
type Collector interface {
	// Collect returns all searchable documents. A failure on any single
	// file fails the whole collection.
	Collect(ctx context.Context) ([]*Document, error)
}
