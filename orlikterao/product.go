// SPDX-License-Identifier: MIT
// product.go: multiplication.

package orlikterao

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/subset"
)

// ProductOnBasis returns e_a · e_b for NBC sets a and b: e_b when a = ∅,
// e_a when b = ∅, zero when a ∩ b ≠ ∅, and SubsetImage(a ∪ b) otherwise.
//
// Errors: ErrNotBasis when a or b is not NBC.
func (a *Algebra[E]) ProductOnBasis(x, y subset.Set) (Element[E], error) {
	for _, s := range [2]subset.Set{x, y} {
		if !a.IsBasis(s) {
			return Element[E]{}, otErrorf(opProductOnBasis, fmt.Errorf("%v: %w", s, ErrNotBasis))
		}
	}
	switch {
	case x.IsEmpty():
		return a.monomial(y), nil
	case y.IsEmpty():
		return a.monomial(x), nil
	case x.Intersects(y):
		return a.Zero(), nil
	}
	return a.SubsetImage(x.Union(y))
}

// Product returns x · y, the bilinear extension of ProductOnBasis.
//
// Errors: ErrForeignElement when x or y belongs to another algebra.
func (a *Algebra[E]) Product(x, y Element[E]) (Element[E], error) {
	if !a.owns(x) || !a.owns(y) {
		return Element[E]{}, otErrorf(opProduct, ErrForeignElement)
	}
	acc := make(map[subset.Set]E)
	for s, cx := range x.terms {
		for t, cy := range y.terms {
			p, err := a.ProductOnBasis(s, t)
			if err != nil {
				return Element[E]{}, otErrorf(opProduct, err)
			}
			c := a.rg.Mul(cx, cy)
			for u, v := range p.terms {
				a.accumulate(acc, u, a.rg.Mul(c, v))
			}
		}
	}
	return a.element(acc), nil
}

// Prod multiplies xs left to right; the empty product is One.
func (a *Algebra[E]) Prod(xs ...Element[E]) (Element[E], error) {
	acc := a.One()
	for _, x := range xs {
		var err error
		if acc, err = a.Product(acc, x); err != nil {
			return Element[E]{}, err
		}
	}
	return acc, nil
}

// owns reports whether x belongs to a; the zero Element belongs to every algebra.
func (a *Algebra[E]) owns(x Element[E]) bool {
	return x.alg == nil || x.alg == a
}
