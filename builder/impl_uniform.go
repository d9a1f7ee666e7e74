// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_uniform.go: the uniform matroid U_{r,n}.
//
// Column x (x = 0..n-1) is (1, x, x², ..., x^{r-1}). Any r columns form a
// Vandermonde matrix with distinct nodes, so every r-subset is a basis as long
// as the ring separates 0..n-1.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewElements); 0 ≤ r ≤ n (else ErrInvalidRank).
//   • For r ≥ 2 the scalars 0..n-1 must be pairwise distinct in rg
//     (else ErrRingTooSmall, e.g. 𝔽_3 with n = 4).

package builder

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

const (
	methodUniform = "Uniform"
	minUniformN   = 1
)

// Uniform returns U_{r,n}.
func Uniform[E any](rg ring.Ring[E], r, n int, opts ...BuilderOption) (*matroid.Linear[E], error) {
	if n < minUniformN {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodUniform, n, minUniformN, ErrTooFewElements)
	}
	if r < 0 || r > n {
		return nil, fmt.Errorf("%s: r=%d not in [0,%d]: %w", methodUniform, r, n, ErrInvalidRank)
	}
	nodes := make([]E, n)
	for x := range nodes {
		nodes[x] = rg.FromInt64(int64(x))
	}
	if r >= 2 {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rg.Equal(nodes[i], nodes[j]) {
					return nil, fmt.Errorf("%s: %d ≡ %d in %s: %w", methodUniform, i, j, rg.Name(), ErrRingTooSmall)
				}
			}
		}
	}
	cfg := newBuilderConfig(opts...)

	vectors := make([][]E, n)
	for x, node := range nodes {
		v := make([]E, r)
		p := rg.One()
		for k := 0; k < r; k++ {
			v[k] = p
			p = rg.Mul(p, node)
		}
		vectors[x] = v
	}
	m, err := matroid.NewLinear(rg, vectors,
		cfg.matroidOptions(fmt.Sprintf("U(%d, %d)", r, n), pointLabels(cfg.ids(DefaultIDFn), n))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodUniform, err)
	}
	return m, nil
}
