package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkWritesPerCategoryFiles(t *testing.T) {
	dir := t.TempDir()

	sink, err := NewFileSink(dir)
	require.NoError(t, err)

	sink.Record(CategoryLowCampus, "small-thing, 2")
	sink.Record(CategoryLowCampus, "tiny-thing, 1")
	sink.Record(CategoryForbiddenKeyword, "old-stuff, forbidden keyword")
	require.NoError(t, sink.Close())

	low, err := os.ReadFile(filepath.Join(dir, "low_campus.txt"))
	require.NoError(t, err)
	assert.Equal(t, "small-thing, 2\ntiny-thing, 1\n", string(low))

	forbidden, err := os.ReadFile(filepath.Join(dir, "forbidden_keyword.txt"))
	require.NoError(t, err)
	assert.Equal(t, "old-stuff, forbidden keyword\n", string(forbidden))

	// Untouched categories still get their (empty) report file
	beta, err := os.ReadFile(filepath.Join(dir, "maybe_beta.txt"))
	require.NoError(t, err)
	assert.Empty(t, beta)
}

func TestFileSinkIgnoresUnknownCategory(t *testing.T) {
	sink, err := NewFileSink(t.TempDir())
	require.NoError(t, err)
	defer sink.Close()

	assert.NotPanics(t, func() {
		sink.Record(Category("unknown"), "line")
	})
}
