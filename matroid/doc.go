// Package matroid provides represented matroids over exact rings.
//
// A Linear matroid has ground set {0, ..., n-1}; element e is represented by
// the column vector Vector(e). Independence, rank and closure are computed
// exactly over the fraction field of the ring, and memoized per subset.
// NewGraphic builds the graphic matroid of a (multi)graph from its signed
// incidence columns and answers rank queries with union-find instead of
// elimination.
//
// The combinatorial queries the Orlik-Terao algebra consumes are:
//
//	Circuits               - all minimal dependent sets, by (size, lex)
//	BrokenCircuits(order)  - circuits minus their order-minimal element
//	NoBrokenCircuitsSets   - subsets containing no broken circuit (the NBC basis)
//	Closure / IsIndependent / RepresentationVectors
//
// A Linear is safe for concurrent use: memo tables are guarded by a RWMutex
// and the circuit list is computed once.
package matroid
