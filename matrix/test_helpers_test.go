package matrix_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/ring"
)

// q is the ring most tests run over.
var q = ring.Rationals()

// ratRows parses a table of literals into ℚ rows.
func ratRows(t *testing.T, rows ...[]string) [][]*big.Rat {
	t.Helper()
	out := make([][]*big.Rat, len(rows))
	for i, r := range rows {
		vs, err := ring.ParseAll(q, r)
		require.NoError(t, err)
		out[i] = vs
	}
	return out
}

// ints builds a row of small integers over rg.
func ints[E any](rg ring.Ring[E], vs ...int64) []E {
	out := make([]E, len(vs))
	for i, v := range vs {
		out[i] = rg.FromInt64(v)
	}
	return out
}

// MustFromRows builds a matrix or fails the test.
func MustFromRows[E any](t *testing.T, rg ring.Ring[E], rows [][]E) *matrix.Dense[E] {
	t.Helper()
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m, err := matrix.FromRows(rg, cols, rows)
	require.NoError(t, err)
	return m
}

// MustAt reads an entry or fails the test.
func MustAt[E any](t *testing.T, m *matrix.Dense[E], i, j int) E {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)
	return v
}

// formatRows renders every entry with the ring's formatter.
func formatRows[E any](rg ring.Ring[E], rows [][]E) [][]string {
	out := make([][]string, len(rows))
	for i, r := range rows {
		out[i] = make([]string, len(r))
		for j, v := range r {
			out[i][j] = rg.Format(v)
		}
	}
	return out
}
