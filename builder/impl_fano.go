// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_fano.go: the seven-point plane.
//
// Columns are the seven nonzero 0/1 vectors of length 3 in the order
//   a=100 b=010 c=001 d=011 e=101 f=110 g=111.
// In characteristic 2 the points d, e, f are collinear and the matroid is the
// Fano plane F_7; in any other characteristic that line breaks and the same
// vectors represent the non-Fano matroid F_7^-.

package builder

import (
	"fmt"

	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

const methodFano = "Fano"

var fanoColumns = [7][3]int64{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{0, 1, 1}, {1, 0, 1}, {1, 1, 0},
	{1, 1, 1},
}

// Fano returns F_7 over a ring of characteristic 2, F_7^- otherwise.
// Labels default to "a".."g".
func Fano[E any](rg ring.Ring[E], opts ...BuilderOption) (*matroid.Linear[E], error) {
	cfg := newBuilderConfig(opts...)
	vectors := make([][]E, len(fanoColumns))
	for i, col := range fanoColumns {
		vectors[i] = []E{rg.FromInt64(col[0]), rg.FromInt64(col[1]), rg.FromInt64(col[2])}
	}
	name := "NonFano"
	if rg.IsZero(rg.FromInt64(2)) {
		name = "Fano"
	}
	m, err := matroid.NewLinear(rg, vectors,
		cfg.matroidOptions(name, pointLabels(cfg.ids(LetterIDFn), len(vectors)))...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodFano, err)
	}
	return m, nil
}
