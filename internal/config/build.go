package config

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

// Matroid builds d's matroid over rg. Vector entries are parsed with
// rg.Parse and must lie in rg.
func Matroid[E any](rg ring.Ring[E], d *Definition) (*matroid.Linear[E], error) {
	var opts []matroid.Option
	if d.Name != "" {
		opts = append(opts, matroid.WithName(d.Name))
	}
	if d.Labels != nil {
		opts = append(opts, matroid.WithLabels(d.Labels))
	}

	if d.Edges != nil {
		edges := make([]matrix.Edge, len(d.Edges))
		for i, e := range d.Edges {
			edges[i] = matrix.Edge{From: string(e[0]), To: string(e[1])}
		}
		m, err := matroid.NewGraphic(rg, edges, opts...)
		if err != nil {
			return nil, configErrorf(opMatroid, err)
		}
		return m, nil
	}

	vectors := make([][]E, len(d.Vectors))
	for i, row := range d.Vectors {
		vectors[i] = make([]E, len(row))
		for j, s := range row {
			v, err := rg.Parse(string(s))
			if err != nil {
				return nil, configErrorf(opMatroid, fmt.Errorf("vector %d entry %d: %w", i, j, err))
			}
			if vectors[i][j], err = rg.Coerce(v); err != nil {
				return nil, configErrorf(opMatroid, fmt.Errorf("vector %d entry %d: %w", i, j, err))
			}
		}
	}
	m, err := matroid.NewLinear(rg, vectors, opts...)
	if err != nil {
		return nil, configErrorf(opMatroid, err)
	}
	return m, nil
}

// ResolveOrdering turns ordering entries into elements of m. An entry naming
// an element label wins; otherwise it must be an element index. An empty
// list means natural order and yields nil.
func ResolveOrdering[E any](m *matroid.Linear[E], entries []string) ([]int, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	out := make([]int, len(entries))
	for i, s := range entries {
		if e, err := m.ElementByLabel(s); err == nil {
			out[i] = e
			continue
		}
		e, err := strconv.Atoi(s)
		if err != nil {
			return nil, configErrorf(opOrdering, fmt.Errorf("entry %q: %w", s, matroid.ErrUnknownLabel))
		}
		out[i] = e
	}
	if err := m.CheckOrdering(out); err != nil {
		return nil, configErrorf(opOrdering, err)
	}
	return out, nil
}
