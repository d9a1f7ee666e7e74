// SPDX-License-Identifier: MIT
// registry.go: canonical algebra instances.
//
// An algebra is determined by (ring, matroid, ordering as a sequence). The
// registry keys instances by the ring's name, the matroid's fingerprint, the
// ordering (nil normalized to natural order) and the term prefix, so equal
// triples share one *Algebra and therefore one set of caches. The logger of
// the first construction is kept.

package orlikterao

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/orlikterao/ring"
)

// Registry hands out canonical algebras. The zero value is not usable; call
// NewRegistry.
type Registry struct {
	mu       sync.Mutex
	algebras map[string]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{algebras: make(map[string]any)}
}

// DefaultRegistry backs Get.
var DefaultRegistry = NewRegistry()

// Len returns the number of registered algebras.
func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.algebras)
}

// Get returns the canonical algebra for (r, m, ordering) from DefaultRegistry.
func Get[E any](r ring.Ring[E], m Matroid[E], opts ...Option) (*Algebra[E], error) {
	return GetFrom(DefaultRegistry, r, m, opts...)
}

// GetFrom returns the algebra registered in reg for (r, m, ordering),
// constructing it with New on first use. Failed constructions are not
// registered.
func GetFrom[E any](reg *Registry, r ring.Ring[E], m Matroid[E], opts ...Option) (*Algebra[E], error) {
	if r == nil || m == nil {
		return nil, otErrorf(opNew, fmt.Errorf("nil ring or matroid: %w", ErrInvalidInput))
	}
	cfg := newConfig(opts)
	ordering := cfg.ordering
	if ordering == nil {
		ordering = naturalOrder(m.Size())
	}
	if _, err := rankOf(m.Size(), ordering); err != nil {
		return nil, otErrorf(opNew, err)
	}
	var zero E
	key := strings.Join([]string{
		fmt.Sprintf("%T", zero),
		r.Name(),
		m.Fingerprint(),
		orderingKey(ordering),
		cfg.prefix,
	}, "|")

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if v, ok := reg.algebras[key]; ok {
		if a, ok := v.(*Algebra[E]); ok {
			return a, nil
		}
	}
	a, err := New(r, m, append(append([]Option(nil), opts...), WithOrdering(ordering))...)
	if err != nil {
		return nil, err
	}
	reg.algebras[key] = a
	return a, nil
}

func orderingKey(ordering []int) string {
	parts := make([]string, len(ordering))
	for i, e := range ordering {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}
