package matroid_test

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

var q = ring.Rationals()

func vecs(rg ring.Ring[*big.Rat], rows ...[]int64) [][]*big.Rat {
	out := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		out[i] = make([]*big.Rat, len(r))
		for j, v := range r {
			out[i][j] = rg.FromInt64(v)
		}
	}
	return out
}

// wheel3 is the rank-3 wheel: spokes e0,e1,e2 and rim e3,e4,e5.
func wheel3(t *testing.T) *matroid.Linear[*big.Rat] {
	t.Helper()
	m, err := matroid.NewLinear(q, vecs(q,
		[]int64{1, 0, 0}, []int64{0, 1, 0}, []int64{0, 0, 1},
		[]int64{1, -1, 0}, []int64{0, 1, -1}, []int64{-1, 0, 1},
	), matroid.WithName("Wheel(3)"))
	require.NoError(t, err)
	return m
}

func sets(ss ...[]int) []subset.Set {
	out := make([]subset.Set, len(ss))
	for i, s := range ss {
		out[i] = subset.Of(s...)
	}
	return out
}

func TestLinear_Basics(t *testing.T) {
	t.Parallel()
	m := wheel3(t)
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, 3, m.Degree())
	assert.Equal(t, 3, m.FullRank())
	assert.Equal(t, "Wheel(3): Linear matroid of rank 3 on 6 elements", m.String())
	assert.Equal(t, "4", m.Label(4))
	assert.True(t, m.IsIndependent(subset.Of(0, 1, 2)))
	assert.False(t, m.IsIndependent(subset.Of(0, 1, 3)))
	assert.False(t, m.IsIndependent(subset.Of(0, 9)))
	assert.Equal(t, subset.Of(0, 1, 3), m.Closure(subset.Of(0, 1)))
	assert.Equal(t, subset.Range(6), m.Closure(subset.Of(0, 1, 2)))
	assert.Equal(t, subset.Empty, m.Closure(subset.Empty))
	assert.Equal(t, 2, m.Rank(subset.Of(3, 4, 5)))
}

func TestLinear_ConstructionErrors(t *testing.T) {
	t.Parallel()
	_, err := matroid.NewLinear(q, vecs(q, []int64{1, 0}, []int64{1}))
	require.ErrorIs(t, err, matroid.ErrDimensionMismatch)

	_, err = matroid.NewLinear(q, vecs(q, []int64{1}, []int64{2}), matroid.WithLabels([]string{"a"}))
	require.ErrorIs(t, err, matroid.ErrDimensionMismatch)

	_, err = matroid.NewLinear(q, vecs(q, []int64{1}, []int64{2}), matroid.WithLabels([]string{"a", "a"}))
	require.ErrorIs(t, err, matroid.ErrDuplicateLabel)

	_, err = matroid.FromMatrix[*big.Rat](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	assert.Panics(t, func() { _, _ = matroid.NewLinear(q, nil, nil) })
}

func TestLinear_Labels(t *testing.T) {
	t.Parallel()
	m, err := matroid.NewLinear(q, vecs(q, []int64{1, 0}, []int64{0, 1}, []int64{1, 1}),
		matroid.WithLabels([]string{"x", "y", "x+y"}))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "x+y"}, m.Labels())
	e, err := m.ElementByLabel("x+y")
	require.NoError(t, err)
	assert.Equal(t, 2, e)
	_, err = m.ElementByLabel("z")
	require.ErrorIs(t, err, matroid.ErrUnknownLabel)
	assert.Equal(t, "Linear matroid of rank 2 on 3 elements", m.String())
}

func TestLinear_FromMatrixMatchesColumns(t *testing.T) {
	t.Parallel()
	a, err := matrix.FromRows(q, 3, vecs(q, []int64{1, 0, 1}, []int64{0, 1, 1}))
	require.NoError(t, err)
	m, err := matroid.FromMatrix(a)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Degree())
	assert.Equal(t, sets([]int{0, 1, 2}), m.Circuits())
}

func TestLinear_Circuits(t *testing.T) {
	t.Parallel()
	m := wheel3(t)
	want := sets(
		[]int{0, 1, 3}, []int{0, 2, 5}, []int{1, 2, 4}, []int{3, 4, 5},
		[]int{0, 1, 4, 5}, []int{0, 2, 3, 4}, []int{1, 2, 3, 5},
	)
	assert.Equal(t, want, m.Circuits())
	// the cached list is not aliased
	got := m.Circuits()
	got[0] = subset.Empty
	assert.Equal(t, want, m.Circuits())
}

func TestLinear_BrokenCircuits(t *testing.T) {
	t.Parallel()
	m := wheel3(t)
	bcs, err := m.BrokenCircuits(nil)
	require.NoError(t, err)
	assert.Equal(t, sets(
		[]int{1, 3}, []int{2, 4}, []int{2, 5}, []int{4, 5},
		[]int{1, 4, 5}, []int{2, 3, 4}, []int{2, 3, 5},
	), bcs)

	bcs, err = m.BrokenCircuits([]int{5, 4, 3, 2, 1, 0})
	require.NoError(t, err)
	assert.Equal(t, sets(
		[]int{0, 1}, []int{0, 2}, []int{1, 2}, []int{3, 4},
		[]int{0, 1, 4}, []int{0, 2, 3}, []int{1, 2, 3},
	), bcs)

	_, err = m.BrokenCircuits([]int{0, 1, 2})
	require.ErrorIs(t, err, matroid.ErrInvalidOrdering)
	_, err = m.BrokenCircuits([]int{0, 1, 2, 3, 4, 4})
	require.ErrorIs(t, err, matroid.ErrInvalidOrdering)
	_, err = m.BrokenCircuits([]int{0, 1, 2, 3, 4, 6})
	require.ErrorIs(t, err, matroid.ErrOutOfGroundSet)
}

func TestLinear_NoBrokenCircuitsSets(t *testing.T) {
	t.Parallel()
	m := wheel3(t)
	for _, ord := range [][]int{nil, {5, 4, 3, 2, 1, 0}, {3, 0, 5, 1, 4, 2}} {
		nbc, err := m.NoBrokenCircuitsSets(ord)
		require.NoError(t, err)
		// Poincaré polynomial (1+t)(1+2t)(1+3t)
		byDeg := map[int]int{}
		for _, s := range nbc {
			byDeg[s.Len()]++
			assert.True(t, m.IsIndependent(s), "NBC set %v must be independent", s)
		}
		assert.Equal(t, map[int]int{0: 1, 1: 6, 2: 11, 3: 6}, byDeg)
		assert.Equal(t, subset.Empty, nbc[0])
	}

	nbc, err := m.NoBrokenCircuitsSets(nil)
	require.NoError(t, err)
	assert.Equal(t, sets([]int{}, []int{0}, []int{1}, []int{2}, []int{3}, []int{4}, []int{5}), nbc[:7])
	assert.Equal(t, sets([]int{0, 1, 2}, []int{0, 1, 4}, []int{0, 1, 5}, []int{0, 2, 3}, []int{0, 3, 4}, []int{0, 3, 5}), nbc[18:])
}

func TestLinear_LoopKillsNBC(t *testing.T) {
	t.Parallel()
	m, err := matroid.NewLinear(q, vecs(q, []int64{1, 0}, []int64{0, 0}))
	require.NoError(t, err)
	assert.Equal(t, sets([]int{1}), m.Circuits())
	bcs, err := m.BrokenCircuits(nil)
	require.NoError(t, err)
	assert.Equal(t, []subset.Set{subset.Empty}, bcs)
	nbc, err := m.NoBrokenCircuitsSets(nil)
	require.NoError(t, err)
	assert.Empty(t, nbc)
}

func TestLinear_EmptyGroundSet(t *testing.T) {
	t.Parallel()
	m, err := matroid.NewLinear(q, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.Empty(t, m.Circuits())
	nbc, err := m.NoBrokenCircuitsSets(nil)
	require.NoError(t, err)
	assert.Equal(t, []subset.Set{subset.Empty}, nbc)
}

func TestLinear_Fingerprint(t *testing.T) {
	t.Parallel()
	a, b := wheel3(t), wheel3(t)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 64)

	c, err := matroid.NewLinear(ring.Integers(), a.RepresentationVectors())
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	d, err := matroid.NewLinear(q, a.RepresentationVectors(), matroid.WithLabels([]string{"a", "b", "c", "d", "e", "f"}))
	require.NoError(t, err)
	assert.NotEqual(t, a.Fingerprint(), d.Fingerprint())
}

func TestLinear_ConcurrentRank(t *testing.T) {
	t.Parallel()
	m := wheel3(t)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			subset.PowerSet(m.GroundSet(), func(s subset.Set) bool {
				_ = m.Rank(s)
				_ = m.Circuits()
				return true
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 3, m.FullRank())
}

func TestCheckOrdering(t *testing.T) {
	t.Parallel()
	require.NoError(t, matroid.CheckOrdering(3, []int{2, 0, 1}))
	require.NoError(t, matroid.CheckOrdering(0, []int{}))
	require.ErrorIs(t, matroid.CheckOrdering(3, []int{0, 1}), matroid.ErrInvalidOrdering)
	require.ErrorIs(t, matroid.CheckOrdering(2, []int{0, -1}), matroid.ErrOutOfGroundSet)
	require.ErrorIs(t, matroid.CheckOrdering(2, []int{0, -1}), matroid.ErrInvalidOrdering)
	require.ErrorIs(t, matroid.CheckOrdering(2, []int{0, 2}), matroid.ErrInvalidOrdering)
}

func TestSortSets(t *testing.T) {
	t.Parallel()
	ss := sets([]int{2, 3}, []int{0}, []int{0, 4}, []int{}, []int{1, 2, 3})
	matroid.SortSets(ss)
	assert.Equal(t, sets([]int{}, []int{0}, []int{0, 4}, []int{2, 3}, []int{1, 2, 3}), ss)
	assert.Equal(t, 3, matroid.MinByRank(subset.Of(1, 3, 5), []int{5, 4, 3, 0, 2, 1}))
}
