// Package lru provides an in-memory cache for extraction results so that
// repeated dev rebuilds only re-parse files whose content changed.
package lru

import (
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docindex"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is the number of extraction results kept in memory.
const DefaultSize = 4096

// Ensure CachingExtractor implements docindex.Extractor at compile time.
var _ docindex.Extractor = (*CachingExtractor)(nil)

// CachingExtractor wraps an Extractor with an LRU cache keyed by a hash of
// the source content. Failed extractions are not cached.
type CachingExtractor struct {
	next  docindex.Extractor
	cache *lru.Cache[uint64, *docindex.ExtractResult]
}

// NewCachingExtractor creates a CachingExtractor holding up to size results.
// A non-positive size uses DefaultSize.
func NewCachingExtractor(next docindex.Extractor, size int) (*CachingExtractor, error) {
	if size <= 0 {
		size = DefaultSize
	}
	cache, err := lru.New[uint64, *docindex.ExtractResult](size)
	if err != nil {
		return nil, err
	}
	return &CachingExtractor{next: next, cache: cache}, nil
}

// Extract returns the cached result for content or delegates to the wrapped
// extractor.
func (e *CachingExtractor) Extract(content string) (*docindex.ExtractResult, error) {
	key := xxhash.Sum64String(content)
	if result, ok := e.cache.Get(key); ok {
		return result, nil
	}

	result, err := e.next.Extract(content)
	if err != nil {
		return nil, err
	}
	e.cache.Add(key, result)
	return result, nil
}

// Len returns the number of cached results.
func (e *CachingExtractor) Len() int {
	return e.cache.Len()
}
