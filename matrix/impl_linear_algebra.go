// SPDX-License-Identifier: MIT
// Package matrix: exact linear-algebra kernels.
//
// Purpose:
//   - Mul/Transpose for composing representations.
//   - Det and RowReduce by fraction-field Gaussian elimination.
//
// Determinism:
//   - Pivot = first non-zero entry scanning rows top to bottom; no value-based
//     pivoting is needed because arithmetic is exact.
//   - Fixed loop orders (row → column) everywhere.

package matrix

import "fmt"

// Mul returns the product a × b.
// Complexity: O(r*n*c) ring operations; zero entries of a are skipped.
func Mul[E any](a, b *Dense[E]) (*Dense[E], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	rg := a.rg
	res, err := NewDense(rg, a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	for i := 0; i < a.r; i++ {
		for k := 0; k < a.c; k++ {
			av := a.data[i*a.c+k]
			if rg.IsZero(av) {
				continue
			}
			for j := 0; j < b.c; j++ {
				idx := i*b.c + j
				res.data[idx] = rg.Add(res.data[idx], rg.Mul(av, b.data[k*b.c+j]))
			}
		}
	}
	return res, nil
}

// Transpose returns mᵀ.
func Transpose[E any](m *Dense[E]) (*Dense[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(m.rg, m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}
	return res, nil
}

// Det returns the determinant of a square matrix, computed in the fraction
// field of m.Ring(). The caller decides whether to Coerce it into the base ring.
//
// Implementation:
//   - Stage 1: ValidateSquare; a 0×0 matrix has determinant One.
//   - Stage 2: forward elimination on a private copy; every row swap flips the
//     sign, the product of pivots is the determinant.
//   - Stage 3: a column without a pivot ⇒ the matrix is singular ⇒ Zero.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (wrapped with "Det").
//
// Complexity:
//   - O(n^3) ring operations, O(n^2) extra space.
func Det[E any](m *Dense[E]) (E, error) {
	if err := ValidateSquare(m); err != nil {
		var zero E
		return zero, matrixErrorf(opDet, err)
	}
	rg, n := m.rg, m.r
	a := m.Clone().data
	det := rg.One()
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !rg.IsZero(a[row*n+col]) {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return rg.Zero(), nil
		}
		if pivot != col {
			swapRows(a, n, pivot, col)
			det = rg.Neg(det)
		}
		p := a[col*n+col]
		det = rg.Mul(det, p)
		for row := col + 1; row < n; row++ {
			if rg.IsZero(a[row*n+col]) {
				continue
			}
			f, err := rg.Quo(a[row*n+col], p)
			if err != nil {
				var zero E
				return zero, matrixErrorf(opDet, err)
			}
			for k := col; k < n; k++ {
				a[row*n+k] = rg.Sub(a[row*n+k], rg.Mul(f, a[col*n+k]))
			}
		}
	}
	return det, nil
}

// Echelon is the reduced row echelon form of a matrix.
type Echelon[E any] struct {
	// Reduced has the same shape as the input; rows [0, Rank) are the
	// non-zero echelon rows, the rest are zero.
	Reduced *Dense[E]
	// Pivots[i] is the pivot column of row i, strictly increasing.
	Pivots []int
}

// Rank returns the number of pivots.
func (e *Echelon[E]) Rank() int { return len(e.Pivots) }

// RowReduce computes the reduced row echelon form of m.
//
// Implementation:
//   - Stage 1: copy m; walk columns left to right keeping a "next pivot row" r.
//   - Stage 2: choose the first row ≥ r with a non-zero entry in the column,
//     swap it into place, scale it to a leading One, clear the column in every
//     other row.
//
// Complexity: O(r*c*min(r,c)) ring operations.
func RowReduce[E any](m *Dense[E]) (*Echelon[E], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowReduce, err)
	}
	rg := m.rg
	out := m.Clone()
	a, rows, cols := out.data, out.r, out.c
	pivots := make([]int, 0, min(rows, cols))
	r := 0
	for col := 0; col < cols && r < rows; col++ {
		pivot := -1
		for row := r; row < rows; row++ {
			if !rg.IsZero(a[row*cols+col]) {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			continue
		}
		swapRows(a, cols, pivot, r)

		p := a[r*cols+col]
		for k := col; k < cols; k++ {
			v, err := rg.Quo(a[r*cols+k], p)
			if err != nil {
				return nil, matrixErrorf(opRowReduce, fmt.Errorf("normalize row %d: %w", r, err))
			}
			a[r*cols+k] = v
		}
		for row := 0; row < rows; row++ {
			if row == r || rg.IsZero(a[row*cols+col]) {
				continue
			}
			f := a[row*cols+col]
			for k := col; k < cols; k++ {
				a[row*cols+k] = rg.Sub(a[row*cols+k], rg.Mul(f, a[r*cols+k]))
			}
		}
		pivots = append(pivots, col)
		r++
	}
	return &Echelon[E]{Reduced: out, Pivots: pivots}, nil
}

// Rank returns the rank of m over the fraction field.
func Rank[E any](m *Dense[E]) (int, error) {
	e, err := RowReduce(m)
	if err != nil {
		return 0, err
	}
	return e.Rank(), nil
}

// swapRows exchanges rows i and j of a row-major slice with the given stride.
func swapRows[E any](a []E, stride, i, j int) {
	if i == j {
		return
	}
	for k := 0; k < stride; k++ {
		a[i*stride+k], a[j*stride+k] = a[j*stride+k], a[i*stride+k]
	}
}
