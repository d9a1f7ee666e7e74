package orlikterao_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/builder"
	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/orlikterao"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

var q = ring.Rationals()

var _ orlikterao.Matroid[*big.Rat] = (*matroid.Linear[*big.Rat])(nil)

func set(elems ...int) subset.Set { return subset.Of(elems...) }

func wheel3(t *testing.T) *matroid.Linear[*big.Rat] {
	t.Helper()
	m, err := builder.Wheel(q, 3)
	require.NoError(t, err)
	return m
}

// sixEdgeGraph is the graph with edges (1,2),(1,4),(2,3),(3,4),(3,5),(3,6),(5,6):
// a square and a triangle sharing vertex 3.
func sixEdgeGraph(t *testing.T) *matroid.Linear[*big.Rat] {
	t.Helper()
	m, err := matroid.NewGraphic(q, []matrix.Edge{
		{From: "1", To: "2"}, {From: "1", To: "4"}, {From: "2", To: "3"}, {From: "3", To: "4"},
		{From: "3", To: "5"}, {From: "3", To: "6"}, {From: "5", To: "6"},
	})
	require.NoError(t, err)
	return m
}

func graphic(t *testing.T, pairs ...[2]string) *matroid.Linear[*big.Rat] {
	t.Helper()
	edges := make([]matrix.Edge, len(pairs))
	for i, p := range pairs {
		edges[i] = matrix.Edge{From: p[0], To: p[1]}
	}
	m, err := matroid.NewGraphic(q, edges)
	require.NoError(t, err)
	return m
}

func linear(t *testing.T, rows ...[]int64) *matroid.Linear[*big.Rat] {
	t.Helper()
	vs := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		vs[i] = make([]*big.Rat, len(r))
		for j, v := range r {
			vs[i][j] = q.FromInt64(v)
		}
	}
	m, err := matroid.NewLinear(q, vs)
	require.NoError(t, err)
	return m
}

func mustNew[E any](t *testing.T, r ring.Ring[E], m orlikterao.Matroid[E], opts ...orlikterao.Option) *orlikterao.Algebra[E] {
	t.Helper()
	a, err := orlikterao.New(r, m, opts...)
	require.NoError(t, err)
	return a
}

func image[E any](t *testing.T, a *orlikterao.Algebra[E], elems ...int) orlikterao.Element[E] {
	t.Helper()
	x, err := a.SubsetImage(set(elems...))
	require.NoError(t, err)
	return x
}

func generators[E any](t *testing.T, a *orlikterao.Algebra[E]) []orlikterao.Element[E] {
	t.Helper()
	gs, err := a.Generators()
	require.NoError(t, err)
	return gs
}

func prod[E any](t *testing.T, a *orlikterao.Algebra[E], xs ...orlikterao.Element[E]) orlikterao.Element[E] {
	t.Helper()
	p, err := a.Prod(xs...)
	require.NoError(t, err)
	return p
}

// permutations calls fn with every permutation of xs.
func permutations(xs []int, fn func([]int)) {
	p := append([]int(nil), xs...)
	var rec func(k int)
	rec = func(k int) {
		if k == len(p) {
			fn(append([]int(nil), p...))
			return
		}
		for i := k; i < len(p); i++ {
			p[k], p[i] = p[i], p[k]
			rec(k + 1)
			p[k], p[i] = p[i], p[k]
		}
	}
	rec(0)
}
