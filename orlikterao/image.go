// SPDX-License-Identifier: MIT
// image.go: reduction of an arbitrary subset to the NBC basis.
//
// Rewrite rule for S containing the broken circuit bc of the circuit
// C = bc ∪ {i} (first matching index entry):
//
//	i ∈ S  ⇒  e_S = 0
//	i ∉ S  ⇒  e_S = Σ_{j ∈ bc, position ind in order} (−1)^ind · χ(C∖j)/χ(bc) · e_{(S ∪ i) ∖ j}
//
// and e_S is the basis monomial when S contains no broken circuit. Each
// rewrite replaces an element of S by the strictly smaller i, so S ↦ (S ∪ i)∖j
// decreases in the order-lexicographic sense and the process terminates.
//
// The recursion runs on an explicit stack of frames. A frame first plans its
// rewrite (the children (S ∪ i)∖j with their coefficients), then waits until
// every child has a memo entry, then combines. Frames currently on the stack
// are tracked; meeting one again as a child is reported as ErrCycle instead of
// looping forever on an inconsistent matroid.

package orlikterao

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/orlikterao/subset"
)

type frame[E any] struct {
	set      subset.Set
	planned  bool
	children []subset.Set
	coeffs   []E
	next     int // first child not yet known to be memoized
}

// SubsetImage returns e_S expanded in the NBC basis.
//
// Errors: ErrInvalidInput if S leaves the ground set, ErrCycle on a
// non-terminating reduction, and coefficient errors from Chi or the ring. A
// failed call stores nothing for S.
func (a *Algebra[E]) SubsetImage(S subset.Set) (Element[E], error) {
	if !a.inGround(S) {
		return Element[E]{}, otErrorf(opSubsetImage, fmt.Errorf("%v: %w", S, ErrInvalidInput))
	}
	if v, ok := a.images.get(S); ok {
		return v, nil
	}
	debug := a.log.Enabled(context.Background(), slog.LevelDebug)
	var before int
	if debug {
		before = a.images.stats().Entries
	}
	v, err := a.reduce(S)
	if err != nil {
		return Element[E]{}, otErrorf(opSubsetImage, err)
	}
	if debug {
		a.log.Debug("subset image computed",
			"set", S.String(),
			"terms", v.Len(),
			"new_entries", a.images.stats().Entries-before,
		)
	}
	return v, nil
}

func (a *Algebra[E]) reduce(root subset.Set) (Element[E], error) {
	stack := []*frame[E]{{set: root}}
	active := map[subset.Set]struct{}{root: {}}
	pop := func() {
		top := stack[len(stack)-1]
		delete(active, top.set)
		stack = stack[:len(stack)-1]
	}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		if !f.planned {
			v, done, err := a.plan(f)
			if err != nil {
				return Element[E]{}, err
			}
			if done {
				a.images.putIfAbsent(f.set, v)
				pop()
				continue
			}
		}

		descended := false
		for f.next < len(f.children) {
			c := f.children[f.next]
			if _, ok := a.images.peek(c); ok {
				f.next++
				continue
			}
			if _, ok := active[c]; ok {
				return Element[E]{}, fmt.Errorf("%v reached again from %v: %w", c, f.set, ErrCycle)
			}
			active[c] = struct{}{}
			stack = append(stack, &frame[E]{set: c})
			descended = true
			break
		}
		if descended {
			continue
		}

		a.images.putIfAbsent(f.set, a.combine(f))
		pop()
	}

	v, _ := a.images.peek(root)
	return v, nil
}

// plan applies the rewrite rule to f.set. done reports a terminal value
// (monomial or zero); otherwise f.children and f.coeffs are filled.
func (a *Algebra[E]) plan(f *frame[E]) (Element[E], bool, error) {
	f.planned = true
	bc, ok := a.firstBroken(f.set)
	if !ok {
		return a.monomial(f.set), true, nil
	}
	if f.set.Contains(bc.Removed) {
		return a.Zero(), true, nil
	}

	lc, err := a.Chi(bc.Set)
	if err != nil {
		return Element[E]{}, false, err
	}
	circuit := bc.Set.Add(bc.Removed)
	grown := f.set.Add(bc.Removed)
	for ind, j := range bc.byRank {
		coeff, err := a.Chi(circuit.Remove(j))
		if err != nil {
			return Element[E]{}, false, err
		}
		if a.rg.IsZero(coeff) {
			continue
		}
		c, err := a.rg.Quo(coeff, lc)
		if err != nil {
			return Element[E]{}, false, err
		}
		if c, err = a.rg.Coerce(c); err != nil {
			return Element[E]{}, false, err
		}
		if ind%2 == 1 {
			c = a.rg.Neg(c)
		}
		f.children = append(f.children, grown.Remove(j))
		f.coeffs = append(f.coeffs, c)
	}
	if len(f.children) == 0 {
		return a.Zero(), true, nil
	}
	return Element[E]{}, false, nil
}

// combine sums the children's images; every child is memoized by now.
func (a *Algebra[E]) combine(f *frame[E]) Element[E] {
	acc := make(map[subset.Set]E)
	for k, c := range f.children {
		child, _ := a.images.peek(c)
		for s, v := range child.terms {
			a.accumulate(acc, s, a.rg.Mul(f.coeffs[k], v))
		}
	}
	return a.element(acc)
}
