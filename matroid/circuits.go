// SPDX-License-Identifier: MIT
// circuits.go: circuits, broken circuits and NBC sets.
//
// Circuits are found by increasing size k = 1..r+1: a k-set is a circuit iff
// it is dependent and contains no circuit found earlier (all smaller circuits
// are already known, so "dependent and no smaller circuit inside" is exactly
// minimality). Results are cached for the matroid's lifetime.

package matroid

import (
	"sort"

	"github.com/katalvlaran/orlikterao/subset"
)

// Circuits returns all circuits sorted by (size, ascending elements).
// The returned slice is a copy.
func (m *Linear[E]) Circuits() []subset.Set {
	m.circuitsOnce.Do(func() {
		ground := m.GroundSet().Elements()
		limit := m.FullRank() + 1
		var found []subset.Set
		for k := 1; k <= limit && k <= len(ground); k++ {
			subset.Combinations(ground, k, func(c subset.Set) bool {
				if m.Rank(c) == k {
					return true
				}
				for _, small := range found {
					if small.IsSubsetOf(c) {
						return true
					}
				}
				found = append(found, c)
				return true
			})
		}
		SortSets(found)
		m.circuits = found
	})
	return append([]subset.Set(nil), m.circuits...)
}

// BrokenCircuits returns {C \ min_order(C)} over all circuits C, deduplicated
// and sorted by (size, ascending elements). ordering must be a permutation of
// the ground set; nil means natural order.
func (m *Linear[E]) BrokenCircuits(ordering []int) ([]subset.Set, error) {
	rank, err := rankOf(m.Size(), ordering)
	if err != nil {
		return nil, err
	}
	seen := make(map[subset.Set]struct{})
	var out []subset.Set
	for _, c := range m.Circuits() {
		bc := c.Remove(MinByRank(c, rank))
		if _, dup := seen[bc]; dup {
			continue
		}
		seen[bc] = struct{}{}
		out = append(out, bc)
	}
	SortSets(out)
	return out, nil
}

// NoBrokenCircuitsSets returns every subset of the ground set that contains no
// broken circuit with respect to ordering (nil = natural order), sorted by
// (size, ascending elements). Such sets are automatically independent: a set
// containing a circuit contains that circuit's broken circuit.
func (m *Linear[E]) NoBrokenCircuitsSets(ordering []int) ([]subset.Set, error) {
	bcs, err := m.BrokenCircuits(ordering)
	if err != nil {
		return nil, err
	}
	free := func(s subset.Set) bool {
		for _, bc := range bcs {
			if bc.IsSubsetOf(s) {
				return false
			}
		}
		return true
	}
	if !free(subset.Empty) {
		return []subset.Set{}, nil
	}
	// Grow level by level; every NBC set is reached from its NBC subset
	// obtained by dropping its numerically largest element.
	out := []subset.Set{subset.Empty}
	level := []subset.Set{subset.Empty}
	n := m.Size()
	for len(level) > 0 {
		var next []subset.Set
		for _, s := range level {
			start := 0
			if hi, ok := s.Max(); ok {
				start = hi + 1
			}
			for e := start; e < n; e++ {
				t := s.Add(e)
				if free(t) {
					next = append(next, t)
				}
			}
		}
		out = append(out, next...)
		level = next
	}
	SortSets(out)
	return out, nil
}

// rankOf returns position-in-ordering for every element (natural order for nil).
func rankOf(n int, ordering []int) ([]int, error) {
	rank := make([]int, n)
	if ordering == nil {
		for i := range rank {
			rank[i] = i
		}
		return rank, nil
	}
	if err := CheckOrdering(n, ordering); err != nil {
		return nil, err
	}
	for pos, e := range ordering {
		rank[e] = pos
	}
	return rank, nil
}

// MinByRank returns the element of the non-empty set s with the smallest rank.
func MinByRank(s subset.Set, rank []int) int {
	best, bestRank := -1, 0
	for _, e := range s.Elements() {
		if best < 0 || rank[e] < bestRank {
			best, bestRank = e, rank[e]
		}
	}
	return best
}

// SortSets sorts by size, then lexicographically by ascending elements.
func SortSets(sets []subset.Set) {
	sort.SliceStable(sets, func(i, j int) bool { return LessSets(sets[i], sets[j]) })
}

// LessSets orders by size, then lexicographically by ascending elements.
func LessSets(a, b subset.Set) bool {
	if a.Len() != b.Len() {
		return a.Len() < b.Len()
	}
	ea, eb := a.Elements(), b.Elements()
	for k := range ea {
		if ea[k] != eb[k] {
			return ea[k] < eb[k]
		}
	}
	return false
}
