package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/matrix"
)

func TestIncidence_Signs(t *testing.T) {
	t.Parallel()
	m, err := matrix.Incidence(q, []string{"a", "b", "c"}, []matrix.Edge{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "c", To: "c"},
		{From: "a", To: "b"},
	})
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"-1", "1", "0"},
		{"0", "-1", "1"},
		{"0", "0", "0"},
		{"-1", "1", "0"},
	}, formatRows(q, m.Columns()))
}

func TestIncidence_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Incidence(q, []string{"a"}, []matrix.Edge{{From: "a", To: "z"}})
	require.ErrorIs(t, err, matrix.ErrUnknownVertex)

	_, err = matrix.Incidence(q, []string{"a", "a"}, nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
