// SPDX-License-Identifier: MIT
// basis.go: the NBC basis, grading, unit and generators.

package orlikterao

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orlikterao/subset"
)

// Basis returns the NBC sets sorted by size, then lexicographically.
func (a *Algebra[E]) Basis() []subset.Set { return append([]subset.Set(nil), a.basis...) }

// Dimension returns the number of NBC sets.
func (a *Algebra[E]) Dimension() int { return len(a.basis) }

// IsBasis reports whether S indexes a basis element.
func (a *Algebra[E]) IsBasis(S subset.Set) bool {
	_, ok := a.isBasis[S]
	return ok
}

// DegreeOnBasis returns the degree |S| of the basis element e_S.
func (a *Algebra[E]) DegreeOnBasis(S subset.Set) int { return S.Len() }

// OneBasis returns ∅, the index of the unit.
func (a *Algebra[E]) OneBasis() subset.Set { return subset.Empty }

// One returns the unit e_∅; it is zero when the matroid has a loop.
func (a *Algebra[E]) One() Element[E] {
	if !a.IsBasis(subset.Empty) {
		return a.Zero()
	}
	return a.monomial(subset.Empty)
}

// Zero returns the zero element.
func (a *Algebra[E]) Zero() Element[E] { return Element[E]{alg: a} }

// Monomial returns the basis element e_S.
//
// Errors: ErrNotBasis when S is not NBC.
func (a *Algebra[E]) Monomial(S subset.Set) (Element[E], error) {
	if !a.IsBasis(S) {
		return Element[E]{}, otErrorf(opMonomial, fmt.Errorf("%v: %w", S, ErrNotBasis))
	}
	return a.monomial(S), nil
}

// Term returns c·e_S for an NBC set S.
func (a *Algebra[E]) Term(S subset.Set, c E) (Element[E], error) {
	m, err := a.Monomial(S)
	if err != nil {
		return Element[E]{}, err
	}
	return m.Scale(c), nil
}

// Generator returns the image of e_x.
//
// Errors: ErrInvalidInput for x outside the ground set.
func (a *Algebra[E]) Generator(x int) (Element[E], error) {
	if x < 0 || x >= a.n {
		return Element[E]{}, otErrorf(opGenerator, fmt.Errorf("element %d: %w", x, ErrInvalidInput))
	}
	return a.SubsetImage(subset.Of(x))
}

// Generators returns the images of e_0, ..., e_{n-1} in ascending element
// order. A generator need not be a basis monomial: a loop maps to zero and a
// parallel element to a multiple of its smaller partner.
func (a *Algebra[E]) Generators() ([]Element[E], error) {
	out := make([]Element[E], a.n)
	for x := range out {
		g, err := a.Generator(x)
		if err != nil {
			return nil, err
		}
		out[x] = g
	}
	return out, nil
}

func (a *Algebra[E]) monomial(S subset.Set) Element[E] {
	return Element[E]{alg: a, terms: map[subset.Set]E{S: a.rg.One()}}
}

// sortBasis orders sets by size, then lexicographically by ascending elements.
func sortBasis(sets []subset.Set) {
	sort.Slice(sets, func(i, j int) bool {
		x, y := sets[i], sets[j]
		if x.Len() != y.Len() {
			return x.Len() < y.Len()
		}
		return lexLess(x.Elements(), y.Elements())
	})
}

func lexLess(x, y []int) bool {
	for k := 0; k < len(x) && k < len(y); k++ {
		if x[k] != y[k] {
			return x[k] < y[k]
		}
	}
	return len(x) < len(y)
}
