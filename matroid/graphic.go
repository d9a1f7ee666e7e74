// SPDX-License-Identifier: MIT
// graphic.go: graphic matroids of multigraphs.
//
// The representation is the signed incidence matrix (−1 at the tail, +1 at
// the head), so the matroid is regular and χ-coefficients are well defined
// over every ring. Rank queries skip elimination: r(X) is the number of edges
// of X that join two different union-find components (Kruskal's forest test).

package matroid

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/orlikterao/matrix"
	"github.com/katalvlaran/orlikterao/ring"
	"github.com/katalvlaran/orlikterao/subset"
)

// NewGraphic builds the graphic matroid of the given directed edge list.
// Vertices are the distinct endpoints in sorted order. Parallel edges and
// loops are allowed (they give 2-circuits and loops of the matroid).
// Without WithLabels, edge j is labelled "(From, To)"; the k-th repeat of an
// edge (k ≥ 2) is labelled "(From, To)#k".
func NewGraphic[E any](rg ring.Ring[E], edges []matrix.Edge, opts ...Option) (*Linear[E], error) {
	vertices := vertexList(edges)
	inc, err := matrix.Incidence(rg, vertices, edges)
	if err != nil {
		return nil, matroidErrorf(opNewGraphic, err)
	}
	cfg := newConfig(opts)
	if cfg.labels == nil {
		cfg.labels = edgeLabels(edges)
	}
	m, err := newLinear(rg, inc.Rows(), inc.Columns(), "Graphic", cfg)
	if err != nil {
		return nil, matroidErrorf(opNewGraphic, err)
	}
	m.oracle = forestRank(len(vertices), endpointIndex(vertices, edges))
	return m, nil
}

// edgeLabels names each edge by its endpoints, numbering repeats so that
// parallel edges stay distinguishable.
func edgeLabels(edges []matrix.Edge) []string {
	labels := make([]string, len(edges))
	used := make(map[string]struct{}, len(edges))
	count := make(map[string]int, len(edges))
	for j, e := range edges {
		base := fmt.Sprintf("(%s, %s)", e.From, e.To)
		label := base
		for {
			count[base]++
			if count[base] > 1 {
				label = fmt.Sprintf("%s#%d", base, count[base])
			}
			if _, taken := used[label]; !taken {
				break
			}
		}
		used[label] = struct{}{}
		labels[j] = label
	}
	return labels
}

// vertexList returns the sorted distinct endpoints.
func vertexList(edges []matrix.Edge) []string {
	seen := make(map[string]struct{}, 2*len(edges))
	for _, e := range edges {
		seen[e.From] = struct{}{}
		seen[e.To] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func endpointIndex(vertices []string, edges []matrix.Edge) [][2]int {
	idx := make(map[string]int, len(vertices))
	for i, v := range vertices {
		idx[v] = i
	}
	out := make([][2]int, len(edges))
	for j, e := range edges {
		out[j] = [2]int{idx[e.From], idx[e.To]}
	}
	return out
}

// forestRank returns a rank oracle counting the edges of X that a spanning
// forest would accept.
func forestRank(numVertices int, ends [][2]int) rankOracle {
	return func(X subset.Set) int {
		parent := make([]int, numVertices)
		rank := make([]int, numVertices)
		for i := range parent {
			parent[i] = i
		}
		find := func(u int) int {
			for parent[u] != u {
				parent[u] = parent[parent[u]] // path halving
				u = parent[u]
			}
			return u
		}
		accepted := 0
		for _, e := range X.Elements() {
			ru, rv := find(ends[e][0]), find(ends[e][1])
			if ru == rv {
				continue // loop or cycle edge
			}
			if rank[ru] < rank[rv] {
				parent[ru] = rv
			} else {
				parent[rv] = ru
				if rank[ru] == rank[rv] {
					rank[ru]++
				}
			}
			accepted++
		}
		return accepted
	}
}
