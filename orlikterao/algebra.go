// SPDX-License-Identifier: MIT
// algebra.go: the Algebra type, its construction and the ground-set order.

package orlikterao

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

// Matroid is the read-only view of a represented matroid the algebra consumes.
// *matroid.Linear[E] implements it.
type Matroid[E any] interface {
	// Size returns n; the ground set is {0, ..., n-1}.
	Size() int
	// Label returns the display label of element e.
	Label(e int) string
	// Circuits returns all minimal dependent sets.
	Circuits() []subset.Set
	// Closure returns the flat spanned by X.
	Closure(X subset.Set) subset.Set
	// IsIndependent reports whether X is independent.
	IsIndependent(X subset.Set) bool
	// NoBrokenCircuitsSets returns the NBC sets for ordering.
	NoBrokenCircuitsSets(ordering []int) ([]subset.Set, error)
	// RepresentationVectors returns the column vectors in element order.
	RepresentationVectors() [][]E
	// Degree returns the common length of the representation vectors.
	Degree() int
	// Fingerprint identifies the matroid's content.
	Fingerprint() string
	String() string
}

// Algebra is the Orlik-Terao algebra of a matroid over a ring with a fixed
// ground-set order. All methods are safe for concurrent use.
type Algebra[E any] struct {
	rg       ring.Ring[E]
	m        Matroid[E]
	n        int
	ordering []int
	rank     []int // rank[e] = position of e in ordering
	vectors  [][]E
	prefix   string
	log      *slog.Logger

	circuits int
	index    []BrokenCircuit
	basis    []subset.Set
	isBasis  map[subset.Set]struct{}

	flats  *memo[subset.Set, *matrix.RowSpace[E]]
	chis   *memo[subset.Set, E]
	images *memo[subset.Set, Element[E]]
}

// New builds the Orlik-Terao algebra of m over r. Without WithOrdering the
// ground set is ordered numerically.
//
// Errors: ErrInvalidOrdering, ErrInvalidInput (nil ring or matroid), and
// failures of the matroid's NBC enumeration.
func New[E any](r ring.Ring[E], m Matroid[E], opts ...Option) (*Algebra[E], error) {
	if r == nil || m == nil {
		return nil, otErrorf(opNew, fmt.Errorf("nil ring or matroid: %w", ErrInvalidInput))
	}
	cfg := newConfig(opts)
	n := m.Size()
	ordering := cfg.ordering
	if ordering == nil {
		ordering = naturalOrder(n)
	}
	rank, err := rankOf(n, ordering)
	if err != nil {
		return nil, otErrorf(opNew, err)
	}

	circuits := m.Circuits()
	basis, err := m.NoBrokenCircuitsSets(ordering)
	if err != nil {
		return nil, otErrorf(opNew, err)
	}
	basis = append([]subset.Set(nil), basis...)
	sortBasis(basis)
	isBasis := make(map[subset.Set]struct{}, len(basis))
	for _, s := range basis {
		isBasis[s] = struct{}{}
	}

	a := &Algebra[E]{
		rg:       r,
		m:        m,
		n:        n,
		ordering: ordering,
		rank:     rank,
		vectors:  m.RepresentationVectors(),
		prefix:   cfg.prefix,
		log:      cfg.logger,
		circuits: len(circuits),
		basis:    basis,
		isBasis:  isBasis,
		flats:    newMemo[subset.Set, *matrix.RowSpace[E]](),
		chis:     newMemo[subset.Set, E](),
		images:   newMemo[subset.Set, Element[E]](),
	}
	a.index = a.buildIndex(circuits)

	a.log.Debug("orlik-terao algebra built",
		"matroid", m.String(),
		"ring", r.Name(),
		"circuits", len(circuits),
		"broken_circuits", len(a.index),
		"dimension", len(basis),
	)
	return a, nil
}

// Ring returns the base ring.
func (a *Algebra[E]) Ring() ring.Ring[E] { return a.rg }

// Matroid returns the underlying matroid.
func (a *Algebra[E]) Matroid() Matroid[E] { return a.m }

// Ordering returns a copy of the ground-set order, smallest first.
func (a *Algebra[E]) Ordering() []int { return append([]int(nil), a.ordering...) }

// String describes the algebra.
func (a *Algebra[E]) String() string {
	return fmt.Sprintf("Orlik-Terao algebra of %s over %s", a.m, a.rg.Name())
}

// inGround reports whether S ⊆ {0..n-1}.
func (a *Algebra[E]) inGround(S subset.Set) bool {
	hi, ok := S.Max()
	return !ok || hi < a.n
}

// byRank returns the elements of S in ascending order rank.
func (a *Algebra[E]) byRank(S subset.Set) []int {
	out := make([]int, 0, S.Len())
	if S.IsEmpty() {
		return out
	}
	for _, e := range a.ordering {
		if S.Contains(e) {
			out = append(out, e)
		}
	}
	return out
}

func naturalOrder(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// rankOf validates ordering as a permutation of {0..n-1} and inverts it.
func rankOf(n int, ordering []int) ([]int, error) {
	if len(ordering) != n {
		return nil, fmt.Errorf("%d entries for %d elements: %w", len(ordering), n, ErrInvalidOrdering)
	}
	rank := make([]int, n)
	seen := make([]bool, n)
	for pos, e := range ordering {
		if e < 0 || e >= n {
			return nil, fmt.Errorf("element %d outside ground set: %w", e, ErrInvalidOrdering)
		}
		if seen[e] {
			return nil, fmt.Errorf("element %d repeated: %w", e, ErrInvalidOrdering)
		}
		seen[e] = true
		rank[e] = pos
	}
	return rank, nil
}
