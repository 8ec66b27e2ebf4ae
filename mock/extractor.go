package mock

import "github.com/fwojciec/docindex"

var _ docindex.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of docindex.Extractor.
type Extractor struct {
	ExtractFn func(content string) (*docindex.ExtractResult, error)
}

func (e *Extractor) Extract(content string) (*docindex.ExtractResult, error) {
	return e.ExtractFn(content)
}
