package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orlikterao/subset"
)

func TestSet_Canonical(t *testing.T) {
	t.Parallel()
	a := subset.Of(3, 1, 2)
	b := subset.Of(1, 2, 3, 2)
	assert.Equal(t, a, b)
	assert.True(t, a == b)

	// removing the only high element must trim back to the same key
	c := subset.Of(1, 2, 3, 200).Remove(200)
	assert.True(t, a == c)

	m := map[subset.Set]int{a: 7}
	assert.Equal(t, 7, m[subset.Of(2, 3, 1)])

	assert.True(t, subset.Of() == subset.Empty)
	assert.True(t, subset.Of(5).Remove(5) == subset.Empty)
}

func TestSet_Operations(t *testing.T) {
	t.Parallel()
	a := subset.Of(0, 1, 4)
	b := subset.Of(1, 2, 70)

	assert.Equal(t, []int{0, 1, 2, 4, 70}, a.Union(b).Elements())
	assert.Equal(t, []int{1}, a.Intersection(b).Elements())
	assert.Equal(t, []int{0, 4}, a.Difference(b).Elements())
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(subset.Of(2, 3)))
	assert.True(t, subset.Of(0, 4).IsSubsetOf(a))
	assert.False(t, a.IsSubsetOf(subset.Of(0, 4)))
	assert.True(t, subset.Empty.IsSubsetOf(a))
	assert.False(t, subset.Of(70).IsSubsetOf(a))
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Contains(4))
	assert.False(t, a.Contains(64))
	assert.False(t, a.Contains(-1))
	assert.Equal(t, "{0, 1, 4}", a.String())
	assert.Equal(t, "{}", subset.Empty.String())
	assert.Equal(t, []int{0, 1, 2}, subset.Range(3).Elements())

	lo, ok := b.Min()
	require.True(t, ok)
	hi, _ := b.Max()
	assert.Equal(t, 1, lo)
	assert.Equal(t, 70, hi)
	_, ok = subset.Empty.Min()
	assert.False(t, ok)

	// immutability: operations never alter the receiver
	assert.Equal(t, []int{0, 1, 4}, a.Elements())
	assert.Equal(t, []int{0, 1, 4, 9}, a.Add(9).Elements())
	assert.Equal(t, []int{0, 1, 4}, a.Elements())
}

func TestSet_NegativePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { subset.Of(-1) })
}

func TestCombinations(t *testing.T) {
	t.Parallel()
	var got []string
	subset.Combinations([]int{0, 1, 2, 3}, 2, func(s subset.Set) bool {
		got = append(got, s.String())
		return true
	})
	assert.Equal(t, []string{"{0, 1}", "{0, 2}", "{0, 3}", "{1, 2}", "{1, 3}", "{2, 3}"}, got)

	count := 0
	subset.Combinations([]int{0, 1, 2}, 0, func(s subset.Set) bool {
		assert.True(t, s.IsEmpty())
		count++
		return true
	})
	assert.Equal(t, 1, count)

	count = 0
	subset.Combinations([]int{0, 1, 2}, 4, func(subset.Set) bool { count++; return true })
	assert.Zero(t, count)

	count = 0
	subset.Combinations([]int{0, 1, 2, 3, 4}, 3, func(subset.Set) bool { count++; return count < 4 })
	assert.Equal(t, 4, count)
}

func TestPowerSet(t *testing.T) {
	t.Parallel()
	seen := map[subset.Set]bool{}
	subset.PowerSet(subset.Of(2, 5, 7), func(s subset.Set) bool {
		seen[s] = true
		return true
	})
	assert.Len(t, seen, 8)
	assert.True(t, seen[subset.Empty])
	assert.True(t, seen[subset.Of(2, 5, 7)])
}
