// SPDX-License-Identifier: MIT
// Package matrix: signed incidence matrices of directed edge lists.
//
// Sign convention: column j of an edge u→v holds −1 in row u and +1 in row v.
// A self-loop sums to a zero column. Parallel edges give equal columns. The
// column vectors are the standard representation of a graphic matroid.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/ring"
)

// Edge is a directed pair of vertex IDs.
type Edge struct {
	From, To string
}

// Incidence builds the |V|×|E| signed incidence matrix. Rows follow vertices
// (IDs must be unique), columns follow edges.
//
// Errors: ErrUnknownVertex for endpoints not in vertices; ErrDimensionMismatch
// for duplicate vertex IDs.
func Incidence[E any](rg ring.Ring[E], vertices []string, edges []Edge) (*Dense[E], error) {
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		if _, dup := index[v]; dup {
			return nil, matrixErrorf(opIncidence, fmt.Errorf("duplicate vertex %q: %w", v, ErrDimensionMismatch))
		}
		index[v] = i
	}
	m, err := NewDense(rg, len(vertices), len(edges))
	if err != nil {
		return nil, matrixErrorf(opIncidence, err)
	}
	minus, plus := rg.Neg(rg.One()), rg.One()
	for j, e := range edges {
		u, ok := index[e.From]
		if !ok {
			return nil, matrixErrorf(opIncidence, fmt.Errorf("edge %d from %q: %w", j, e.From, ErrUnknownVertex))
		}
		v, ok := index[e.To]
		if !ok {
			return nil, matrixErrorf(opIncidence, fmt.Errorf("edge %d to %q: %w", j, e.To, ErrUnknownVertex))
		}
		if u == v {
			continue // loop: zero column
		}
		m.data[u*m.c+j] = minus
		m.data[v*m.c+j] = plus
	}
	return m, nil
}
