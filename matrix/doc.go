// Package matrix provides exact dense matrices over a ring.Ring and the small
// set of linear-algebra kernels the matroid and Orlik-Terao layers need:
//
//	Det         - determinant in the fraction field (Gaussian elimination)
//	RowReduce   - reduced row echelon form with pivot columns and rank
//	RowSpace    - echelon basis of a span, with Coordinates/Contains
//	Incidence   - signed vertex×edge incidence matrix of a directed edge list
//
// Every kernel is deterministic: pivots are chosen as the first non-zero entry
// in a fixed top-to-bottom scan, so equal inputs give bit-identical outputs.
// Inputs are never mutated; results are freshly allocated.
//
// Errors are package sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is. Kernels never panic on user input.
package matrix
