// Package workload_test covers the generators: topology, determinism,
// option panics and sentinel errors.
package workload_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cobench/workload"
)

const inf = int32(workload.DefaultInf)

// at reads w[i][j] through the bounds-checked accessor.
func at(t *testing.T, data []int32, n, i, j int) int32 {
	t.Helper()
	require.Less(t, i*n+j, len(data))

	return data[i*n+j]
}

func TestRandom_RangeAndDeterminism(t *testing.T) {
	t.Parallel()

	a, err := workload.Random[int32](16, workload.WithSeed(3))
	require.NoError(t, err)
	b, err := workload.Random[int32](16, workload.WithSeed(3))
	require.NoError(t, err)
	if diff := cmp.Diff(a.Data(), b.Data()); diff != "" {
		t.Fatalf("same seed produced different matrices (-a +b):\n%s", diff)
	}

	for _, v := range a.Data() {
		assert.GreaterOrEqual(t, int64(v), workload.DefaultLow)
		assert.LessOrEqual(t, int64(v), workload.DefaultHigh)
	}

	c, err := workload.Random[int32](16, workload.WithSeed(4))
	require.NoError(t, err)
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestRandom_CustomRange(t *testing.T) {
	t.Parallel()

	m, err := workload.Random[int64](8, workload.WithSeed(1), workload.WithRange(5, 5))
	require.NoError(t, err)
	for _, v := range m.Data() {
		require.Equal(t, int64(5), v)
	}
}

func TestRandom_Errors(t *testing.T) {
	t.Parallel()

	_, err := workload.Random[int32](0, workload.WithSeed(1))
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)

	_, err = workload.Random[int32](4)
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)

	_, err = workload.Random[int32](4, workload.WithSeed(1), workload.WithRange(0, math.MaxInt32+1))
	assert.ErrorIs(t, err, workload.ErrValueRange)
}

func TestCycle_Topology(t *testing.T) {
	t.Parallel()

	const n = 5
	m, err := workload.Cycle[int32](n)
	require.NoError(t, err)
	data := m.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch {
			case i == j:
				assert.Equal(t, int32(0), at(t, data, n, i, j))
			case j == (i+1)%n:
				assert.Equal(t, int32(1), at(t, data, n, i, j))
			default:
				assert.Equal(t, inf, at(t, data, n, i, j), "(%d,%d)", i, j)
			}
		}
	}

	_, err = workload.Cycle[int32](2)
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)
}

func TestCycle_UndirectedMirrors(t *testing.T) {
	t.Parallel()

	const n = 4
	m, err := workload.Cycle[int32](n, workload.WithUndirected(), workload.WithSeed(9),
		workload.WithWeightFn(workload.UniformWeight(1, 50)))
	require.NoError(t, err)
	data := m.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.Equal(t, at(t, data, n, i, j), at(t, data, n, j, i))
		}
	}
}

func TestPath_Topology(t *testing.T) {
	t.Parallel()

	m, err := workload.Path[int64](3, workload.WithWeightFn(workload.ConstantWeight(7)))
	require.NoError(t, err)
	want := []int64{
		0, 7, workload.DefaultInf,
		workload.DefaultInf, 0, 7,
		workload.DefaultInf, workload.DefaultInf, 0,
	}
	if diff := cmp.Diff(want, m.Data()); diff != "" {
		t.Fatalf("path mismatch (-want +got):\n%s", diff)
	}

	_, err = workload.Path[int64](1)
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)
}

func TestComplete_NoInfOffDiagonal(t *testing.T) {
	t.Parallel()

	const n = 6
	m, err := workload.Complete[int32](n, workload.WithSeed(2),
		workload.WithWeightFn(workload.UniformWeight(1, 9)))
	require.NoError(t, err)
	data := m.Data()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := at(t, data, n, i, j)
			if i == j {
				assert.Equal(t, int32(0), v)
				continue
			}
			assert.True(t, v >= 1 && v <= 9, "(%d,%d)=%d", i, j, v)
		}
	}

	one, err := workload.Complete[int32](1)
	require.NoError(t, err)
	assert.Equal(t, []int32{0}, one.Data())
}

func TestGrid_Topology(t *testing.T) {
	t.Parallel()

	// 2×3 lattice:
	//   0 - 1 - 2
	//   |   |   |
	//   3 - 4 - 5
	m, err := workload.Grid[int32](2, 3)
	require.NoError(t, err)
	require.Equal(t, 6, m.Side())

	edges := map[[2]int]bool{
		{0, 1}: true, {1, 2}: true, {3, 4}: true, {4, 5}: true,
		{0, 3}: true, {1, 4}: true, {2, 5}: true,
	}
	data := m.Data()
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			v := at(t, data, 6, i, j)
			switch {
			case i == j:
				assert.Equal(t, int32(0), v)
			case edges[[2]int{i, j}] || edges[[2]int{j, i}]:
				assert.Equal(t, int32(1), v, "(%d,%d)", i, j)
			default:
				assert.Equal(t, inf, v, "(%d,%d)", i, j)
			}
		}
	}

	_, err = workload.Grid[int32](0, 3)
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)
}

func TestRandomSparse_Extremes(t *testing.T) {
	t.Parallel()

	empty, err := workload.RandomSparse[int32](4, 0)
	require.NoError(t, err)
	full, err := workload.RandomSparse[int32](4, 1)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i == j {
				continue
			}
			assert.Equal(t, inf, at(t, empty.Data(), 4, i, j))
			assert.Equal(t, int32(1), at(t, full.Data(), 4, i, j))
		}
	}
}

func TestRandomSparse_DeterministicAndValidated(t *testing.T) {
	t.Parallel()

	opts := []workload.Option{workload.WithSeed(11), workload.WithWeightFn(workload.UniformWeight(1, 100))}
	a, err := workload.RandomSparse[int32](32, 0.2, opts...)
	require.NoError(t, err)
	b, err := workload.RandomSparse[int32](32, 0.2, opts...)
	require.NoError(t, err)
	// opts share one WithSeed per call, so each call reseeds.
	if diff := cmp.Diff(a.Data(), b.Data()); diff != "" {
		t.Fatalf("RandomSparse not deterministic (-a +b):\n%s", diff)
	}

	_, err = workload.RandomSparse[int32](4, 0.5)
	assert.ErrorIs(t, err, workload.ErrNeedRandSource)
	_, err = workload.RandomSparse[int32](4, 1.5, workload.WithSeed(1))
	assert.ErrorIs(t, err, workload.ErrInvalidProbability)
	_, err = workload.RandomSparse[int32](0, 0.5, workload.WithSeed(1))
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)
}

func TestWithInf_AndValueRange(t *testing.T) {
	t.Parallel()

	m, err := workload.Path[int32](2, workload.WithInf(999))
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 999, 0}, m.Data())

	_, err = workload.Path[int32](2, workload.WithInf(math.MaxInt32+1))
	assert.ErrorIs(t, err, workload.ErrValueRange)

	_, err = workload.Path[int32](2, workload.WithWeightFn(workload.ConstantWeight(math.MaxInt32+1)))
	assert.ErrorIs(t, err, workload.ErrValueRange)
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { workload.WithRand(nil) })
	assert.Panics(t, func() { workload.WithWeightFn(nil) })
	assert.Panics(t, func() { workload.WithInf(0) })
	assert.Panics(t, func() { workload.WithRange(2, 1) })
	assert.Panics(t, func() { workload.UniformWeight(3, 2) })
	assert.Panics(t, func() { workload.UniformWeight(math.MinInt64, math.MaxInt64) })
	assert.Panics(t, func() { workload.WithRange(-5e18, 5e18) })
}

func TestValidRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		lo, hi int64
		want   bool
	}{
		{"single value", 7, 7, true},
		{"default", workload.DefaultLow, workload.DefaultHigh, true},
		{"reversed", 2, 1, false},
		{"widest representable", -(1 << 62), 1<<62 - 2, true},
		{"width overflows", -5e18, 5e18, false},
		{"full int64", math.MinInt64, math.MaxInt64, false},
		{"span is MaxInt64", 0, math.MaxInt64, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, workload.ValidRange(tc.lo, tc.hi))
		})
	}
}

func TestUniformWeight(t *testing.T) {
	t.Parallel()

	fn := workload.UniformWeight(-2, 2)
	assert.Equal(t, int64(-2), fn(nil))

	rng := rand.New(rand.NewSource(5))
	seen := map[int64]bool{}
	for i := 0; i < 500; i++ {
		v := fn(rng)
		require.True(t, v >= -2 && v <= 2)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}
