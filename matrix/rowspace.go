// SPDX-License-Identifier: MIT
// rowspace.go: echelon bases of spans and echelon coordinates.
//
// A RowSpace stores the non-zero rows of the RREF of its generators. Because
// each basis row has a leading One in its pivot column and zeros in every
// other pivot column, the coordinates of a vector v of the span are simply
// v[pivot_0], v[pivot_1], ...; Coordinates reads them off and then verifies
// membership by reconstructing v.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/ring"
)

// RowSpace is the span of a list of vectors of a fixed degree, with an echelon basis.
type RowSpace[E any] struct {
	rg     ring.Ring[E]
	degree int
	basis  [][]E
	pivots []int
}

// NewRowSpace returns the span of vectors, each of length degree.
// An empty vector list yields the zero space.
func NewRowSpace[E any](rg ring.Ring[E], degree int, vectors [][]E) (*RowSpace[E], error) {
	m, err := FromRows(rg, degree, vectors)
	if err != nil {
		return nil, matrixErrorf(opRowSpace, err)
	}
	ech, err := RowReduce(m)
	if err != nil {
		return nil, matrixErrorf(opRowSpace, err)
	}
	basis := make([][]E, ech.Rank())
	for i := range basis {
		basis[i] = ech.Reduced.Row(i)
	}
	return &RowSpace[E]{rg: rg, degree: degree, basis: basis, pivots: ech.Pivots}, nil
}

// Dim returns the dimension of the span.
func (s *RowSpace[E]) Dim() int { return len(s.basis) }

// Degree returns the length of the ambient vectors.
func (s *RowSpace[E]) Degree() int { return s.degree }

// Pivots returns a copy of the pivot columns of the echelon basis.
func (s *RowSpace[E]) Pivots() []int { return append([]int(nil), s.pivots...) }

// Basis returns a copy of the echelon basis rows.
func (s *RowSpace[E]) Basis() [][]E {
	out := make([][]E, len(s.basis))
	for i, row := range s.basis {
		out[i] = append([]E(nil), row...)
	}
	return out
}

// Coordinates expresses v in the echelon basis (a.k.a. echelon coordinates).
//
// Errors:
//   - ErrDimensionMismatch when len(v) != Degree().
//   - ErrNotInSpan when v is not a combination of the basis.
func (s *RowSpace[E]) Coordinates(v []E) ([]E, error) {
	if err := ValidateVecLen(v, s.degree); err != nil {
		return nil, matrixErrorf(opCoords, err)
	}
	rg := s.rg
	coords := make([]E, len(s.pivots))
	for i, p := range s.pivots {
		coords[i] = v[p]
	}
	// reconstruct and compare
	for k := 0; k < s.degree; k++ {
		acc := rg.Zero()
		for i, row := range s.basis {
			if rg.IsZero(coords[i]) || rg.IsZero(row[k]) {
				continue
			}
			acc = rg.Add(acc, rg.Mul(coords[i], row[k]))
		}
		if !rg.Equal(acc, v[k]) {
			return nil, matrixErrorf(opCoords, fmt.Errorf("component %d: %w", k, ErrNotInSpan))
		}
	}
	return coords, nil
}

// Contains reports whether v lies in the span (false on length mismatch).
func (s *RowSpace[E]) Contains(v []E) bool {
	_, err := s.Coordinates(v)
	return err == nil
}
