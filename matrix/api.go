// SPDX-License-Identifier: MIT
// Package matrix: thin facades over the kernels for vector-list callers.

package matrix

import "github.com/katalvlaran/orlikterao/ring"

// DetOfRows returns det of the square matrix whose rows are rows.
// An empty row list is the 0×0 matrix (determinant One).
func DetOfRows[E any](rg ring.Ring[E], rows [][]E) (E, error) {
	m, err := FromRows(rg, len(rows), rows)
	if err != nil {
		var zero E
		return zero, matrixErrorf(opDet, err)
	}
	return Det(m)
}

// RankOfRows returns the rank of the span of vectors of the given degree.
func RankOfRows[E any](rg ring.Ring[E], degree int, vectors [][]E) (int, error) {
	m, err := FromRows(rg, degree, vectors)
	if err != nil {
		return 0, err
	}
	return Rank(m)
}

// IsIndependent reports whether vectors are linearly independent.
func IsIndependent[E any](rg ring.Ring[E], degree int, vectors [][]E) (bool, error) {
	r, err := RankOfRows(rg, degree, vectors)
	if err != nil {
		return false, err
	}
	return r == len(vectors), nil
}
