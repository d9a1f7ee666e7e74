// SPDX-License-Identifier: MIT
// linear.go: the represented (linear) matroid.

package matroid

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

// rankOracle answers rank queries for a subset of the ground set.
type rankOracle func(X subset.Set) int

// Linear is a matroid on {0..n-1} represented by column vectors over a ring.
type Linear[E any] struct {
	rg      ring.Ring[E]
	name    string
	kind    string // "Linear" or "Graphic", used by String
	degree  int
	vectors [][]E
	labels  []string
	byLabel map[string]int
	oracle  rankOracle

	mu       sync.RWMutex
	rankMemo map[subset.Set]int

	circuitsOnce sync.Once
	circuits     []subset.Set

	fingerprint string
}

// NewLinear builds the matroid whose element e is represented by vectors[e].
// All vectors must share one length (the degree). An empty vector list is the
// matroid on the empty ground set.
//
// Errors: ErrDimensionMismatch, ErrDuplicateLabel.
func NewLinear[E any](rg ring.Ring[E], vectors [][]E, opts ...Option) (*Linear[E], error) {
	degree := 0
	if len(vectors) > 0 {
		degree = len(vectors[0])
	}
	for e, v := range vectors {
		if len(v) != degree {
			return nil, matroidErrorf(opNewLinear, fmt.Errorf("element %d has degree %d, want %d: %w", e, len(v), degree, ErrDimensionMismatch))
		}
	}
	m, err := newLinear(rg, degree, vectors, "Linear", newConfig(opts))
	if err != nil {
		return nil, matroidErrorf(opNewLinear, err)
	}
	m.oracle = m.eliminationRank
	return m, nil
}

// FromMatrix builds the linear matroid on the columns of a.
func FromMatrix[E any](a *matrix.Dense[E], opts ...Option) (*Linear[E], error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, matroidErrorf(opNewLinear, err)
	}
	m, err := newLinear(a.Ring(), a.Rows(), a.Columns(), "Linear", newConfig(opts))
	if err != nil {
		return nil, matroidErrorf(opNewLinear, err)
	}
	m.oracle = m.eliminationRank
	return m, nil
}

func newLinear[E any](rg ring.Ring[E], degree int, vectors [][]E, kind string, cfg config) (*Linear[E], error) {
	n := len(vectors)
	labels := cfg.labels
	if labels == nil {
		labels = make([]string, n)
		for i := range labels {
			labels[i] = strconv.Itoa(i)
		}
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%d labels for %d elements: %w", len(labels), n, ErrDimensionMismatch)
	}
	byLabel := make(map[string]int, n)
	for i, l := range labels {
		if _, dup := byLabel[l]; dup {
			return nil, fmt.Errorf("label %q: %w", l, ErrDuplicateLabel)
		}
		byLabel[l] = i
	}
	vs := make([][]E, n)
	for i, v := range vectors {
		vs[i] = append([]E(nil), v...)
	}
	m := &Linear[E]{
		rg:       rg,
		name:     cfg.name,
		kind:     kind,
		degree:   degree,
		vectors:  vs,
		labels:   labels,
		byLabel:  byLabel,
		rankMemo: make(map[subset.Set]int),
	}
	m.fingerprint = m.computeFingerprint()
	return m, nil
}

// Ring returns the ring the representation lives over.
func (m *Linear[E]) Ring() ring.Ring[E] { return m.rg }

// Size returns n = |ground set|.
func (m *Linear[E]) Size() int { return len(m.vectors) }

// GroundSet returns {0..n-1}.
func (m *Linear[E]) GroundSet() subset.Set { return subset.Range(len(m.vectors)) }

// Degree returns the length of the representation vectors.
func (m *Linear[E]) Degree() int { return m.degree }

// Name returns the descriptive name (may be empty).
func (m *Linear[E]) Name() string { return m.name }

// Label returns the display label of element e.
func (m *Linear[E]) Label(e int) string {
	if e < 0 || e >= len(m.labels) {
		return strconv.Itoa(e)
	}
	return m.labels[e]
}

// Labels returns a copy of all labels in element order.
func (m *Linear[E]) Labels() []string { return append([]string(nil), m.labels...) }

// ElementByLabel resolves a display label to its element.
func (m *Linear[E]) ElementByLabel(label string) (int, error) {
	e, ok := m.byLabel[label]
	if !ok {
		return 0, matroidErrorf(opLabel, fmt.Errorf("%q: %w", label, ErrUnknownLabel))
	}
	return e, nil
}

// Vector returns a copy of the representation vector of e.
func (m *Linear[E]) Vector(e int) []E { return append([]E(nil), m.vectors[e]...) }

// RepresentationVectors returns copies of all representation vectors.
func (m *Linear[E]) RepresentationVectors() [][]E {
	out := make([][]E, len(m.vectors))
	for i := range m.vectors {
		out[i] = m.Vector(i)
	}
	return out
}

// Contains reports whether X ⊆ ground set.
func (m *Linear[E]) Contains(X subset.Set) bool {
	return X.IsSubsetOf(m.GroundSet())
}

// Rank returns r(X). Elements outside the ground set are ignored.
func (m *Linear[E]) Rank(X subset.Set) int {
	X = X.Intersection(m.GroundSet())
	m.mu.RLock()
	r, ok := m.rankMemo[X]
	m.mu.RUnlock()
	if ok {
		return r
	}
	r = m.oracle(X)
	m.mu.Lock()
	m.rankMemo[X] = r
	m.mu.Unlock()
	return r
}

// FullRank returns r(E).
func (m *Linear[E]) FullRank() int { return m.Rank(m.GroundSet()) }

// IsIndependent reports whether X is independent.
func (m *Linear[E]) IsIndependent(X subset.Set) bool {
	return m.Contains(X) && m.Rank(X) == X.Len()
}

// Closure returns cl(X) = {e : r(X ∪ e) = r(X)}.
func (m *Linear[E]) Closure(X subset.Set) subset.Set {
	r := m.Rank(X)
	members := make([]int, 0, len(m.vectors))
	for e := range m.vectors {
		if X.Contains(e) || m.Rank(X.Add(e)) == r {
			members = append(members, e)
		}
	}
	return subset.Of(members...)
}

// vectorsOf returns the representation vectors of X in ascending element order.
func (m *Linear[E]) vectorsOf(X subset.Set) [][]E {
	elems := X.Elements()
	out := make([][]E, len(elems))
	for i, e := range elems {
		out[i] = m.vectors[e]
	}
	return out
}

func (m *Linear[E]) eliminationRank(X subset.Set) int {
	r, err := matrix.RankOfRows(m.rg, m.degree, m.vectorsOf(X))
	if err != nil {
		// vectors were validated at construction; a failure here is a bug
		panic("matroid: rank of validated vectors failed: " + err.Error())
	}
	return r
}

// Fingerprint is a stable content hash of (ring, representation, labels).
// Equal fingerprints mean interchangeable matroids.
func (m *Linear[E]) Fingerprint() string { return m.fingerprint }

func (m *Linear[E]) computeFingerprint() string {
	var sb strings.Builder
	sb.WriteString(m.rg.Name())
	sb.WriteByte('|')
	sb.WriteString(strconv.Itoa(m.degree))
	for e, v := range m.vectors {
		sb.WriteByte('|')
		sb.WriteString(m.labels[e])
		sb.WriteByte(':')
		for i, x := range v {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(m.rg.Format(x))
		}
	}
	sum := blake2b.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

// String describes the matroid, e.g. "Wheel(3): Linear matroid of rank 3 on 6 elements".
func (m *Linear[E]) String() string {
	desc := fmt.Sprintf("%s matroid of rank %d on %d elements", m.kind, m.FullRank(), m.Size())
	if m.name != "" {
		return m.name + ": " + desc
	}
	return desc
}

// CheckOrdering validates that ordering is a permutation of the ground set.
func (m *Linear[E]) CheckOrdering(ordering []int) error {
	return CheckOrdering(m.Size(), ordering)
}

// CheckOrdering validates that ordering is a permutation of {0..n-1}.
func CheckOrdering(n int, ordering []int) error {
	if len(ordering) != n {
		return matroidErrorf(opOrdering, fmt.Errorf("length %d for %d elements: %w", len(ordering), n, ErrInvalidOrdering))
	}
	seen := make([]bool, n)
	for _, e := range ordering {
		if e < 0 || e >= n {
			return matroidErrorf(opOrdering, fmt.Errorf("element %d: %w: %w", e, ErrInvalidOrdering, ErrOutOfGroundSet))
		}
		if seen[e] {
			return matroidErrorf(opOrdering, fmt.Errorf("element %d repeated: %w", e, ErrInvalidOrdering))
		}
		seen[e] = true
	}
	return nil
}
