// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go: the graphic matroid of the n-cycle C_n.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewElements).
//   • Edges i→i+1 (mod n) in index order; the single circuit is the whole
//     ground set, so M(C_n) = U_{n-1,n}.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

const (
	methodCycle = "Cycle"
	minCycleN   = 3
)

// Cycle returns M(C_n).
func Cycle[E any](rg ring.Ring[E], n int, opts ...BuilderOption) (*matroid.Linear[E], error) {
	if n < minCycleN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleN, ErrTooFewElements)
	}
	cfg := newBuilderConfig(opts...)
	ids := pointLabels(cfg.ids(DefaultIDFn), n)

	edges := make([]matrix.Edge, n)
	for i := 0; i < n; i++ {
		edges[i] = matrix.Edge{From: ids[i], To: ids[(i+1)%n]}
	}
	m, err := matroid.NewGraphic(rg, edges, cfg.matroidOptions(fmt.Sprintf("M(C%d)", n), nil)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodCycle, err)
	}
	return m, nil
}
