// SPDX-License-Identifier: MIT
// chi.go: flat bases and the χ coefficient.
//
// χ(X) for independent X: let F = cl(X) and B the echelon basis of span(F).
// Stack the B-coordinates of the vectors of X, taken in ascending order rank,
// into a square matrix; χ(X) is its determinant coerced into the base ring.
// χ(∅) = 1.

package orlikterao

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/subset"
)

// Chi returns χ(X).
//
// Errors: ErrInvalidInput if X leaves the ground set, ErrPrecondition if X is
// dependent, ring.ErrNotInRing if the determinant does not lie in the base ring.
func (a *Algebra[E]) Chi(X subset.Set) (E, error) {
	if v, ok := a.chis.get(X); ok {
		return v, nil
	}
	var zero E
	if !a.inGround(X) {
		return zero, otErrorf(opChi, fmt.Errorf("%v: %w", X, ErrInvalidInput))
	}
	if !a.m.IsIndependent(X) {
		return zero, otErrorf(opChi, fmt.Errorf("%v: %w", X, ErrPrecondition))
	}
	if X.IsEmpty() {
		return a.chis.putIfAbsent(X, a.rg.One()), nil
	}

	flat, err := a.flatBasis(a.m.Closure(X))
	if err != nil {
		return zero, otErrorf(opChi, err)
	}
	ordered := a.byRank(X)
	rows := make([][]E, len(ordered))
	for i, e := range ordered {
		if rows[i], err = flat.Coordinates(a.vectors[e]); err != nil {
			return zero, otErrorf(opChi, err)
		}
	}
	det, err := matrix.DetOfRows(a.rg, rows)
	if err != nil {
		return zero, otErrorf(opChi, err)
	}
	v, err := a.rg.Coerce(det)
	if err != nil {
		return zero, otErrorf(opChi, err)
	}
	return a.chis.putIfAbsent(X, v), nil
}

// flatBasis returns the memoized echelon basis of span(F).
func (a *Algebra[E]) flatBasis(F subset.Set) (*matrix.RowSpace[E], error) {
	if s, ok := a.flats.get(F); ok {
		return s, nil
	}
	elems := F.Elements()
	vs := make([][]E, len(elems))
	for i, e := range elems {
		vs[i] = a.vectors[e]
	}
	s, err := matrix.NewRowSpace(a.rg, a.m.Degree(), vs)
	if err != nil {
		return nil, otErrorf(opFlat, err)
	}
	stored := a.flats.putIfAbsent(F, s)
	a.log.Debug("flat basis cached", "flat", F.String(), "dim", stored.Dim())
	return stored, nil
}
