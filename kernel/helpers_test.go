package kernel_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/cobench/grid"
	"github.com/katalvlaran/cobench/workload"
)

const inf = int32(workload.DefaultInf)

// mustRandom returns a seeded n×n matrix with values in [-20, 20].
func mustRandom(tb testing.TB, n int, seed int64) *grid.Dense[int32] {
	tb.Helper()
	m, err := workload.Random[int32](n, workload.WithSeed(seed))
	require.NoError(tb, err)

	return m
}

// mustZero returns an n×n zero matrix.
func mustZero(tb testing.TB, n int) *grid.Dense[int32] {
	tb.Helper()
	m, err := grid.New[int32](n)
	require.NoError(tb, err)

	return m
}

// mustSparse returns a seeded distance matrix with weights in [1, 100].
func mustSparse(tb testing.TB, n int, p float64, seed int64) *grid.Dense[int32] {
	tb.Helper()
	m, err := workload.RandomSparse[int32](n, p,
		workload.WithSeed(seed), workload.WithWeightFn(workload.UniformWeight(1, 100)))
	require.NoError(tb, err)

	return m
}

// toGonum copies m into a float64 gonum matrix. Small integer entries are
// exact in float64, so gonum results convert back without rounding.
func toGonum(m *grid.Dense[int32]) *mat.Dense {
	n := m.Side()
	data := make([]float64, n*n)
	for i, v := range m.Data() {
		data[i] = float64(v)
	}

	return mat.NewDense(n, n, data)
}

// fromGonum converts a square gonum matrix back to int32.
func fromGonum(tb testing.TB, g mat.Matrix) *grid.Dense[int32] {
	tb.Helper()
	r, c := g.Dims()
	require.Equal(tb, r, c)
	out := mustZero(tb, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(tb, out.Set(i, j, int32(g.At(i, j))))
		}
	}

	return out
}
