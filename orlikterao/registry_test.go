package orlikterao_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/orlikterao"
	"github.com/katalvlaran/orlikterao/ring"
)

func TestRegistry_Canonical(t *testing.T) {
	t.Parallel()
	reg := orlikterao.NewRegistry()

	a, err := orlikterao.GetFrom(reg, q, wheel3(t))
	require.NoError(t, err)
	// a separately built but identical matroid
	b, err := orlikterao.GetFrom(reg, q, wheel3(t), orlikterao.WithOrdering([]int{0, 1, 2, 3, 4, 5}))
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, reg.Len())

	c, err := orlikterao.GetFrom(reg, q, wheel3(t), orlikterao.WithOrdering([]int{5, 4, 3, 2, 1, 0}))
	require.NoError(t, err)
	assert.NotSame(t, a, c)

	d, err := orlikterao.GetFrom(reg, ring.Integers(), wheel3(t))
	require.NoError(t, err)
	assert.NotSame(t, a, d)

	e, err := orlikterao.GetFrom(reg, q, wheel3(t), orlikterao.WithPrefix("e"))
	require.NoError(t, err)
	assert.NotSame(t, a, e)
	assert.Equal(t, 4, reg.Len())

	// caches are shared through the canonical instance
	_, err = a.SubsetImage(set(1, 3))
	require.NoError(t, err)
	assert.Equal(t, a.Stats(), b.Stats())
}

func TestRegistry_Errors(t *testing.T) {
	t.Parallel()
	reg := orlikterao.NewRegistry()
	_, err := orlikterao.GetFrom(reg, q, wheel3(t), orlikterao.WithOrdering([]int{0, 1, 2}))
	require.ErrorIs(t, err, orlikterao.ErrInvalidOrdering)
	_, err = orlikterao.GetFrom[*big.Rat](reg, q, nil)
	require.ErrorIs(t, err, orlikterao.ErrInvalidInput)
	assert.Zero(t, reg.Len())
}

func TestGet_Default(t *testing.T) {
	t.Parallel()
	m := linear(t, []int64{1, 0}, []int64{3, 5}, []int64{7, 11})
	a, err := orlikterao.Get(q, m)
	require.NoError(t, err)
	b, err := orlikterao.Get(q, m)
	require.NoError(t, err)
	assert.Same(t, a, b)
}
