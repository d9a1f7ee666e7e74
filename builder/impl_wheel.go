// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_wheel.go: the wheel matroid W_r.
//
// Canonical representation (r×2r, rows indexed by i = 0..r-1):
//   • spokes: column i is the unit vector e_i;
//   • rim:    column r+i has +1 in row i and −1 in row i+1 (mod r), so the rim
//             closes the cycle e_0 → e_1 → ... → e_{r-1} → e_0.
// For r = 3 the rim columns are (1,−1,0), (0,1,−1), (−1,0,1): W_3 = M(K_4).
//
// Contract:
//   • r ≥ 2 (else ErrTooFewElements).
//   • Labels default to DefaultIDFn over 0..2r-1.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

const (
	methodWheel = "Wheel"
	minWheelR   = 2
)

// Wheel returns the rank-r wheel matroid on 2r elements.
func Wheel[E any](rg ring.Ring[E], r int, opts ...BuilderOption) (*matroid.Linear[E], error) {
	if r < minWheelR {
		return nil, fmt.Errorf("%s: r=%d < min=%d: %w", methodWheel, r, minWheelR, ErrTooFewElements)
	}
	cfg := newBuilderConfig(opts...)

	vectors := make([][]E, 2*r)
	for i := 0; i < r; i++ {
		spoke := zeros(rg, r)
		spoke[i] = rg.One()
		vectors[i] = spoke

		rim := zeros(rg, r)
		rim[i] = rg.One()
		rim[(i+1)%r] = rg.Neg(rg.One())
		vectors[r+i] = rim
	}

	m, err := matroid.NewLinear(rg, vectors,
		cfg.matroidOptions(fmt.Sprintf("Wheel(%d)", r), pointLabels(cfg.ids(DefaultIDFn), 2*r))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodWheel, err)
	}
	return m, nil
}

// zeros returns a length-n vector of ring zeros.
func zeros[E any](rg ring.Ring[E], n int) []E {
	v := make([]E, n)
	for i := range v {
		v[i] = rg.Zero()
	}
	return v
}
