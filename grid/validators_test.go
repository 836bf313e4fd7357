package grid_test

import (
	"testing"

	"github.com/katalvlaran/cobench/grid"
	"github.com/stretchr/testify/require"
)

func TestValidatePowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, 2048} {
		require.NoError(t, grid.ValidatePowerOfTwo(n), "n=%d", n)
	}
	require.ErrorIs(t, grid.ValidatePowerOfTwo(0), grid.ErrBadSide)
	require.ErrorIs(t, grid.ValidatePowerOfTwo(-8), grid.ErrBadSide)
	require.ErrorIs(t, grid.ValidatePowerOfTwo(6), grid.ErrNotPowerOfTwo)
	require.ErrorIs(t, grid.ValidatePowerOfTwo(1000), grid.ErrNotPowerOfTwo)
}

func TestValidateThreshold(t *testing.T) {
	require.NoError(t, grid.ValidateThreshold(8, 1))
	require.NoError(t, grid.ValidateThreshold(8, 2))
	require.NoError(t, grid.ValidateThreshold(8, 8))

	for _, tc := range []int{0, 3, 16, -2} {
		require.ErrorIs(t, grid.ValidateThreshold(8, tc), grid.ErrBadThreshold, "t=%d", tc)
	}
}

func TestValidateBlock(t *testing.T) {
	require.NoError(t, grid.ValidateBlock(4, grid.Block{Side: 2, Row: 2, Col: 2}))
	require.ErrorIs(t, grid.ValidateBlock(4, grid.Block{Side: 4, Row: 1}), grid.ErrOutOfRange)
}

func TestValidateSameSide(t *testing.T) {
	a, _ := grid.New[int32](4)
	b, _ := grid.New[int32](4)
	c, _ := grid.New[int32](2)

	n, err := grid.ValidateSameSide(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, err = grid.ValidateSameSide(a, c)
	require.ErrorIs(t, err, grid.ErrDimensionMismatch)

	_, err = grid.ValidateSameSide(a, nil)
	require.ErrorIs(t, err, grid.ErrNilMatrix)
}

func TestLog2(t *testing.T) {
	require.Equal(t, -1, grid.Log2(0))
	require.Equal(t, 0, grid.Log2(1))
	require.Equal(t, 10, grid.Log2(1024))
	require.Equal(t, 2, grid.Log2(5))
}
