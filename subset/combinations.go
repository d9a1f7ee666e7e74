// SPDX-License-Identifier: MIT

package subset

// Combinations calls fn for every k-element subset of elems, in lexicographic
// order of positions. Enumeration stops early when fn returns false.
// k < 0 or k > len(elems) yields nothing; k == 0 yields Empty once.
func Combinations(elems []int, k int, fn func(Set) bool) {
	n := len(elems)
	if k < 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	picked := make([]int, k)
	for {
		for i, p := range idx {
			picked[i] = elems[p]
		}
		if !fn(Of(picked...)) {
			return
		}
		// advance the rightmost index that still has room
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// PowerSet calls fn for every subset of s by increasing size.
func PowerSet(s Set, fn func(Set) bool) {
	elems := s.Elements()
	stop := false
	for k := 0; k <= len(elems) && !stop; k++ {
		Combinations(elems, k, func(c Set) bool {
			if !fn(c) {
				stop = true
				return false
			}
			return true
		})
	}
}
