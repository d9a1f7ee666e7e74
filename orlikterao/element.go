// SPDX-License-Identifier: MIT
// element.go: algebra elements as finite NBC-indexed coefficient maps.

package orlikterao

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/orlikterao/subset"
)

// Element is an immutable linear combination of NBC basis elements. Zero
// coefficients are never stored. The zero value is the zero of every algebra.
//
// Combining elements of two different algebras is a programming error and
// panics; Algebra.Product reports it as ErrForeignElement instead.
type Element[E any] struct {
	alg   *Algebra[E]
	terms map[subset.Set]E
}

// Term is one basis element with its coefficient.
type Term[E any] struct {
	Set   subset.Set
	Coeff E
}

// Algebra returns the owning algebra (nil for the zero value).
func (x Element[E]) Algebra() *Algebra[E] { return x.alg }

// Len returns the number of non-zero terms.
func (x Element[E]) Len() int { return len(x.terms) }

// IsZero reports whether every coefficient is zero.
func (x Element[E]) IsZero() bool { return len(x.terms) == 0 }

// Coefficient returns the coefficient of e_S. For the zero value without an
// owner it returns the zero value of E.
func (x Element[E]) Coefficient(S subset.Set) E {
	if c, ok := x.terms[S]; ok {
		return c
	}
	if x.alg == nil {
		var zero E
		return zero
	}
	return x.alg.rg.Zero()
}

// Support returns the basis indices with non-zero coefficient in term order:
// larger sets first, equal sizes lexicographically.
func (x Element[E]) Support() []subset.Set {
	out := make([]subset.Set, 0, len(x.terms))
	for s := range x.terms {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return termLess(out[i], out[j]) })
	return out
}

// Terms returns the terms in Support order.
func (x Element[E]) Terms() []Term[E] {
	supp := x.Support()
	out := make([]Term[E], len(supp))
	for i, s := range supp {
		out[i] = Term[E]{Set: s, Coeff: x.terms[s]}
	}
	return out
}

// Degree returns the common size of the support, or -1 for zero and for
// inhomogeneous elements.
func (x Element[E]) Degree() int {
	d := -1
	for s := range x.terms {
		switch {
		case d < 0:
			d = s.Len()
		case d != s.Len():
			return -1
		}
	}
	return d
}

// Add returns x + y.
func (x Element[E]) Add(y Element[E]) Element[E] {
	a := joinOwners(x, y)
	if a == nil {
		return Element[E]{}
	}
	acc := make(map[subset.Set]E, len(x.terms)+len(y.terms))
	for s, c := range x.terms {
		acc[s] = c
	}
	for s, c := range y.terms {
		a.accumulate(acc, s, c)
	}
	return a.element(acc)
}

// Sub returns x − y.
func (x Element[E]) Sub(y Element[E]) Element[E] { return x.Add(y.Neg()) }

// Neg returns −x.
func (x Element[E]) Neg() Element[E] {
	if x.alg == nil {
		return x
	}
	return x.Scale(x.alg.rg.Neg(x.alg.rg.One()))
}

// Scale returns c·x.
func (x Element[E]) Scale(c E) Element[E] {
	if x.alg == nil {
		return x
	}
	rg := x.alg.rg
	acc := make(map[subset.Set]E, len(x.terms))
	for s, v := range x.terms {
		if p := rg.Mul(c, v); !rg.IsZero(p) {
			acc[s] = p
		}
	}
	return x.alg.element(acc)
}

// Equal reports whether x and y have the same coefficients. Elements of
// different algebras are never equal unless both are zero.
func (x Element[E]) Equal(y Element[E]) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	if len(x.terms) == 0 {
		return true
	}
	if x.alg != y.alg {
		return false
	}
	for s, c := range x.terms {
		d, ok := y.terms[s]
		if !ok || !x.alg.rg.Equal(c, d) {
			return false
		}
	}
	return true
}

// String renders x in the form "OT{0, 1, 2} - 2*OT{0, 3}"; the zero element
// is "0".
func (x Element[E]) String() string {
	return x.render(func(s subset.Set) string {
		return x.alg.prefix + s.String()
	}, plainCoeff)
}

// LabeledString is String with the matroid's element labels, e.g.
// "OT{(1, 2), (2, 3)}".
func (x Element[E]) LabeledString() string {
	return x.render(func(s subset.Set) string {
		return x.alg.prefix + "{" + subset.Join(s.Elements(), x.alg.m.Label, ", ") + "}"
	}, plainCoeff)
}

// Latex renders x with basis elements e_{\left\{0, 1\right\}} and e_{\emptyset}.
func (x Element[E]) Latex() string {
	return x.render(latexTerm, latexCoeff)
}

func latexTerm(s subset.Set) string {
	if s.IsEmpty() {
		return `e_{\emptyset}`
	}
	return `e_{\left\{` + subset.Join(s.Elements(), strconv.Itoa, ", ") + `\right\}}`
}

// render joins terms in Support order. Coefficients print through the ring;
// a leading "-" becomes the joining sign, and unit coefficients are omitted.
func (x Element[E]) render(term func(subset.Set) string, coeff func(string) string) string {
	if x.IsZero() {
		return "0"
	}
	var sb strings.Builder
	for i, t := range x.Terms() {
		c := x.alg.rg.Format(t.Coeff)
		neg := strings.HasPrefix(c, "-")
		if neg {
			c = c[1:]
		}
		switch {
		case i == 0 && neg:
			sb.WriteString("-")
		case i > 0 && neg:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		if c != "1" {
			sb.WriteString(coeff(c))
		}
		sb.WriteString(term(t.Set))
	}
	return sb.String()
}

func plainCoeff(c string) string { return c + "*" }

func latexCoeff(c string) string {
	num, den, ok := strings.Cut(c, "/")
	if !ok {
		return c + " "
	}
	return `\frac{` + num + `}{` + den + `} `
}

type jsonTerm struct {
	Set         []int  `json:"set"`
	Coefficient string `json:"coefficient"`
}

// MarshalJSON encodes x as {"terms":[{"set":[0,1],"coefficient":"1"}, ...]}
// in Support order.
func (x Element[E]) MarshalJSON() ([]byte, error) {
	terms := make([]jsonTerm, 0, len(x.terms))
	for _, t := range x.Terms() {
		terms = append(terms, jsonTerm{Set: t.Set.Elements(), Coefficient: x.alg.rg.Format(t.Coeff)})
	}
	return json.Marshal(struct {
		Terms []jsonTerm `json:"terms"`
	}{terms})
}

// termLess is the print order: larger sets first, then lexicographic.
func termLess(x, y subset.Set) bool {
	if x.Len() != y.Len() {
		return x.Len() > y.Len()
	}
	return lexLess(x.Elements(), y.Elements())
}

// joinOwners returns the common algebra of x and y; nil when both are unowned.
func joinOwners[E any](x, y Element[E]) *Algebra[E] {
	switch {
	case x.alg == nil:
		return y.alg
	case y.alg == nil || y.alg == x.alg:
		return x.alg
	}
	panic("orlikterao: combining elements of different algebras")
}

// accumulate adds v to acc[s], dropping the entry when it cancels.
func (a *Algebra[E]) accumulate(acc map[subset.Set]E, s subset.Set, v E) {
	if a.rg.IsZero(v) {
		return
	}
	if old, ok := acc[s]; ok {
		v = a.rg.Add(old, v)
		if a.rg.IsZero(v) {
			delete(acc, s)
			return
		}
	}
	acc[s] = v
}

// element wraps acc, which must hold no zero coefficients.
func (a *Algebra[E]) element(acc map[subset.Set]E) Element[E] {
	if len(acc) == 0 {
		return Element[E]{alg: a}
	}
	return Element[E]{alg: a, terms: acc}
}
