// Package orlikterao computes in the Orlik-Terao algebra of a represented
// matroid.
//
// Let M be a matroid on {0, ..., n-1} with a representation over a ring R and
// a total order on its ground set. The Orlik-Terao algebra OT(M) is the
// commutative R-algebra generated by e_0, ..., e_{n-1} subject to e_i² = 0,
// e_S = 0 whenever S contains a circuit, and for every circuit C
//
//	Σ_{j ∈ C} sign(j) · χ(C \ {j}) · e_{C \ {j}} = 0,
//
// where χ(X) is the determinant of the vectors of X written in the echelon
// basis of their flat. It is graded by subset size and has a basis indexed by
// the no-broken-circuit (NBC) sets of M.
//
// Usage:
//
//	m, _ := builder.Wheel(ring.Rationals(), 3)
//	a, _ := orlikterao.New(ring.Rationals(), m)
//	x, _ := a.SubsetImage(subset.Of(1, 2, 3)) // OT{0, 1, 2} + OT{0, 2, 3}
//
// Every Algebra owns its memo tables (flat bases, χ values, subset images);
// they grow monotonically and are safe for concurrent use. SubsetImage runs on
// an explicit work stack, so large ground sets cannot exhaust the goroutine
// stack. Get returns a canonical Algebra per (ring, matroid, ordering) so that
// equal triples share one instance and one set of caches.
package orlikterao
