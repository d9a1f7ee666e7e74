// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go: graphic matroids of complete graphs.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewElements).
//   • Vertices are cfg.idFn(0..n-1); edges are emitted once per pair i<j in
//     lexicographic order, oriented i→j.
//   • Element labels are "(u, v)" unless WithLabels overrides them.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

const (
	methodComplete = "CompleteGraphic"
	methodBraid    = "Braid"
	minCompleteN   = 2
)

// CompleteGraphic returns M(K_n), the graphic matroid of the complete graph.
func CompleteGraphic[E any](rg ring.Ring[E], n int, opts ...BuilderOption) (*matroid.Linear[E], error) {
	return complete(rg, n, methodComplete, fmt.Sprintf("M(K%d)", n), opts)
}

// Braid returns the matroid of the braid arrangement A_{n-1}, i.e. M(K_n).
func Braid[E any](rg ring.Ring[E], n int, opts ...BuilderOption) (*matroid.Linear[E], error) {
	return complete(rg, n, methodBraid, fmt.Sprintf("Braid(%d)", n), opts)
}

func complete[E any](rg ring.Ring[E], n int, method, name string, opts []BuilderOption) (*matroid.Linear[E], error) {
	if n < minCompleteN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minCompleteN, ErrTooFewElements)
	}
	cfg := newBuilderConfig(opts...)
	ids := pointLabels(cfg.ids(DefaultIDFn), n)

	edges := make([]matrix.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, matrix.Edge{From: ids[i], To: ids[j]})
		}
	}
	m, err := matroid.NewGraphic(rg, edges, cfg.matroidOptions(name, nil)...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return m, nil
}
