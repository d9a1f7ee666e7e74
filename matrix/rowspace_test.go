package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/matrix"
)

func TestRowSpace_EchelonCoordinates(t *testing.T) {
	t.Parallel()
	// flat spanned by the first two wheel spokes and their difference
	s, err := matrix.NewRowSpace(q, 3, ratRows(t,
		[]string{"1", "0", "0"},
		[]string{"0", "1", "0"},
		[]string{"1", "-1", "0"},
	))
	require.NoError(t, err)
	assert.Equal(t, 2, s.Dim())
	assert.Equal(t, 3, s.Degree())
	assert.Equal(t, []int{0, 1}, s.Pivots())
	assert.Equal(t, [][]string{{"1", "0", "0"}, {"0", "1", "0"}}, formatRows(q, s.Basis()))

	c, err := s.Coordinates(ratRows(t, []string{"1", "-1", "0"})[0])
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "-1"}}, formatRows(q, [][]*big.Rat{c}))

	_, err = s.Coordinates(ratRows(t, []string{"0", "0", "1"})[0])
	require.ErrorIs(t, err, matrix.ErrNotInSpan)
	assert.False(t, s.Contains(ratRows(t, []string{"0", "0", "1"})[0]))

	_, err = s.Coordinates(ratRows(t, []string{"1", "0"})[0])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRowSpace_NonTrivialBasis(t *testing.T) {
	t.Parallel()
	// span{(2,2,0),(0,1,1)} has echelon basis (1,0,-1),(0,1,1)
	s, err := matrix.NewRowSpace(q, 3, ratRows(t, []string{"2", "2", "0"}, []string{"0", "1", "1"}))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "0", "-1"}, {"0", "1", "1"}}, formatRows(q, s.Basis()))

	c, err := s.Coordinates(ratRows(t, []string{"2", "2", "0"})[0])
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"2", "2"}}, formatRows(q, [][]*big.Rat{c}))
}

func TestRowSpace_ZeroSpace(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewRowSpace(q, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Dim())
	c, err := s.Coordinates(ratRows(t, []string{"0", "0"})[0])
	require.NoError(t, err)
	assert.Empty(t, c)
	assert.False(t, s.Contains(ratRows(t, []string{"0", "1"})[0]))

	// a zero generator adds nothing
	s, err = matrix.NewRowSpace(q, 2, ratRows(t, []string{"0", "0"}))
	require.NoError(t, err)
	assert.Equal(t, 0, s.Dim())
}
