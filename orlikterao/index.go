// SPDX-License-Identifier: MIT
// index.go: the broken-circuit index.
//
// Each circuit C contributes C \ {m} → m where m is the order-minimal element
// of C. Distinct circuits may share a broken circuit (in U_{2,4} both {0,2,3}
// and {1,2,3} give {2,3}); the entry keeps the smallest m in order. Entries are
// sorted by size, then by their elements listed in order, and SubsetImage uses
// the first entry contained in its argument. The choice is immaterial to the
// result: every entry is a valid relation of the algebra.

package orlikterao

import (
	"sort"

	"github.com/katalvlaran/orlikterao/subset"
)

// BrokenCircuit is one index entry: Set ∪ {Removed} is a circuit and Removed
// precedes every element of Set in the algebra's order.
type BrokenCircuit struct {
	Set     subset.Set
	Removed int

	byRank []int // Set in ascending order rank
}

// BrokenCircuits returns a copy of the index in scan order.
func (a *Algebra[E]) BrokenCircuits() []BrokenCircuit {
	out := make([]BrokenCircuit, len(a.index))
	for i, bc := range a.index {
		out[i] = BrokenCircuit{Set: bc.Set, Removed: bc.Removed}
	}
	return out
}

func (a *Algebra[E]) buildIndex(circuits []subset.Set) []BrokenCircuit {
	removed := make(map[subset.Set]int, len(circuits))
	for _, c := range circuits {
		ordered := a.byRank(c)
		if len(ordered) == 0 {
			continue
		}
		m := ordered[0]
		bc := c.Remove(m)
		if prev, ok := removed[bc]; !ok || a.rank[m] < a.rank[prev] {
			removed[bc] = m
		}
	}
	index := make([]BrokenCircuit, 0, len(removed))
	for bc, m := range removed {
		index = append(index, BrokenCircuit{Set: bc, Removed: m, byRank: a.byRank(bc)})
	}
	sort.Slice(index, func(i, j int) bool {
		x, y := index[i].byRank, index[j].byRank
		if len(x) != len(y) {
			return len(x) < len(y)
		}
		for k := range x {
			if x[k] != y[k] {
				return a.rank[x[k]] < a.rank[y[k]]
			}
		}
		return false
	})
	return index
}

// firstBroken returns the first index entry contained in S.
func (a *Algebra[E]) firstBroken(S subset.Set) (BrokenCircuit, bool) {
	size := S.Len()
	for _, bc := range a.index {
		if len(bc.byRank) > size {
			break
		}
		if bc.Set.IsSubsetOf(S) {
			return bc, true
		}
	}
	return BrokenCircuit{}, false
}
