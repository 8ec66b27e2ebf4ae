package lru_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/lru"
	"github.com/fwojciec/docindex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Unchanged files are not re-parsed
//
// During a dev session every rebuild re-reads the whole tree. The cache
// keys results by content hash so only edited files reach the parser.

func TestCachingExtractor_ReusesResultForSameContent(t *testing.T) {
	t.Parallel()

	// Given an extractor that counts calls
	calls := 0
	inner := &mock.Extractor{
		ExtractFn: func(content string) (*docindex.ExtractResult, error) {
			calls++
			return &docindex.ExtractResult{Title: "T", Body: content}, nil
		},
	}
	extractor, err := lru.NewCachingExtractor(inner, 8)
	require.NoError(t, err)

	// When I extract the same content twice
	first, err := extractor.Extract("# T\nbody")
	require.NoError(t, err)
	second, err := extractor.Extract("# T\nbody")
	require.NoError(t, err)

	// Then the inner extractor runs once
	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, extractor.Len())
}

func TestCachingExtractor_ReparsesChangedContent(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mock.Extractor{
		ExtractFn: func(content string) (*docindex.ExtractResult, error) {
			calls++
			return &docindex.ExtractResult{Body: content}, nil
		},
	}
	extractor, err := lru.NewCachingExtractor(inner, 8)
	require.NoError(t, err)

	_, err = extractor.Extract("v1")
	require.NoError(t, err)
	result, err := extractor.Extract("v2")
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
	assert.Equal(t, "v2", result.Body)
}

func TestCachingExtractor_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mock.Extractor{
		ExtractFn: func(content string) (*docindex.ExtractResult, error) {
			calls++
			return nil, errors.New("bad front-matter")
		},
	}
	extractor, err := lru.NewCachingExtractor(inner, 0)
	require.NoError(t, err)

	_, err = extractor.Extract("---\n[\n---")
	require.Error(t, err)
	_, err = extractor.Extract("---\n[\n---")
	require.Error(t, err)

	assert.Equal(t, 2, calls)
	assert.Zero(t, extractor.Len())
}
