package docindex_test

import (
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/stretchr/testify/assert"
)

func TestFirstHeading(t *testing.T) {
	t.Parallel()

	t.Run("returns first H1", func(t *testing.T) {
		t.Parallel()

		markdown := "Intro text\n\n# Getting Started\n\n# Second"

		assert.Equal(t, "Getting Started", docindex.FirstHeading(markdown))
	})

	t.Run("ignores deeper headings", func(t *testing.T) {
		t.Parallel()

		markdown := "## Not this\n### Nor this\n# This one"

		assert.Equal(t, "This one", docindex.FirstHeading(markdown))
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Title", docindex.FirstHeading("#   Title   \r\n"))
	})

	t.Run("requires space after marker", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docindex.FirstHeading("#hashtag\nbody"))
	})

	t.Run("returns empty when no heading", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, docindex.FirstHeading("just text"))
		assert.Empty(t, docindex.FirstHeading(""))
	})
}
