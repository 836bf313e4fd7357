package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobench/kernel"
)

func TestParseVariant(t *testing.T) {
	t.Parallel()

	for _, v := range kernel.Variants() {
		got, err := kernel.ParseVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	for _, bad := range []string{"", "Naive", "blocked", "recursive "} {
		_, err := kernel.ParseVariant(bad)
		assert.ErrorIs(t, err, kernel.ErrInvalidArgument, "token %q", bad)
	}
}

func TestVariantNames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"naive", "transposed", "recursive", "tiled"}, kernel.VariantNames())
	assert.Equal(t, "Variant(9)", kernel.Variant(9).String())
}

func TestWithTilePanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { kernel.WithTile(0) })
	assert.Panics(t, func() { kernel.WithThreshold(0) })
	assert.Panics(t, func() { kernel.WithWorkers(-1) })
}
