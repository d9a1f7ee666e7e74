// SPDX-License-Identifier: MIT

package subset

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const wordBytes = 8

// Set is an immutable set of non-negative ints. The zero value is empty.
type Set struct {
	key string // packed little-endian uint64 words, no trailing zero word
}

// Empty is the empty set.
var Empty = Set{}

// Of builds a Set from elements; duplicates collapse.
// Panics on a negative element (programmer error).
func Of(elems ...int) Set {
	b := bitset.New(0)
	for _, e := range elems {
		if e < 0 {
			panic("subset: negative element " + strconv.Itoa(e))
		}
		b.Set(uint(e))
	}
	return freeze(b)
}

// Range returns {0, 1, ..., n-1}.
func Range(n int) Set {
	b := bitset.New(uint(max(n, 0)))
	for i := 0; i < n; i++ {
		b.Set(uint(i))
	}
	return freeze(b)
}

func freeze(b *bitset.BitSet) Set {
	words := b.Words()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	if n == 0 {
		return Empty
	}
	buf := make([]byte, n*wordBytes)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(buf[i*wordBytes:], words[i])
	}
	return Set{key: string(buf)}
}

func (s Set) thaw() *bitset.BitSet {
	n := len(s.key) / wordBytes
	words := make([]uint64, n)
	for i := 0; i < n; i++ {
		words[i] = binary.LittleEndian.Uint64([]byte(s.key[i*wordBytes : (i+1)*wordBytes]))
	}
	return bitset.From(words)
}

// Len returns the number of elements.
func (s Set) Len() int {
	if s.key == "" {
		return 0
	}
	return int(s.thaw().Count())
}

// IsEmpty reports whether s has no elements.
func (s Set) IsEmpty() bool { return s.key == "" }

// Contains reports whether e ∈ s.
func (s Set) Contains(e int) bool {
	if e < 0 || e/64 >= len(s.key)/wordBytes {
		return false
	}
	return s.thaw().Test(uint(e))
}

// Add returns s ∪ {e}.
func (s Set) Add(e int) Set { return s.Union(Of(e)) }

// Remove returns s \ {e}.
func (s Set) Remove(e int) Set {
	if !s.Contains(e) {
		return s
	}
	b := s.thaw()
	b.Clear(uint(e))
	return freeze(b)
}

// Union returns s ∪ o.
func (s Set) Union(o Set) Set {
	if o.key == "" {
		return s
	}
	if s.key == "" {
		return o
	}
	return freeze(s.thaw().Union(o.thaw()))
}

// Intersection returns s ∩ o.
func (s Set) Intersection(o Set) Set {
	if s.key == "" || o.key == "" {
		return Empty
	}
	return freeze(s.thaw().Intersection(o.thaw()))
}

// Difference returns s \ o.
func (s Set) Difference(o Set) Set {
	if s.key == "" || o.key == "" {
		return s
	}
	return freeze(s.thaw().Difference(o.thaw()))
}

// Intersects reports whether s ∩ o ≠ ∅.
func (s Set) Intersects(o Set) bool {
	if s.key == "" || o.key == "" {
		return false
	}
	return s.thaw().IntersectionCardinality(o.thaw()) > 0
}

// IsSubsetOf reports whether s ⊆ o.
func (s Set) IsSubsetOf(o Set) bool {
	if s.key == "" {
		return true
	}
	if len(s.key) > len(o.key) {
		return false
	}
	return o.thaw().IsSuperSet(s.thaw())
}

// Elements returns the members in ascending numeric order.
func (s Set) Elements() []int {
	if s.key == "" {
		return []int{}
	}
	b := s.thaw()
	out := make([]int, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// Min returns the smallest element; ok is false for the empty set.
func (s Set) Min() (int, bool) {
	if s.key == "" {
		return 0, false
	}
	i, ok := s.thaw().NextSet(0)
	return int(i), ok
}

// Max returns the largest element; ok is false for the empty set.
func (s Set) Max() (int, bool) {
	elems := s.Elements()
	if len(elems) == 0 {
		return 0, false
	}
	return elems[len(elems)-1], true
}

// String renders s as "{0, 1, 2}".
func (s Set) String() string {
	return "{" + Join(s.Elements(), func(e int) string { return strconv.Itoa(e) }, ", ") + "}"
}

// Join formats elems with f and joins them with sep.
func Join(elems []int, f func(int) string, sep string) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = f(e)
	}
	return strings.Join(parts, sep)
}
