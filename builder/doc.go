// Package builder is a catalog of named matroids with exact representations.
//
// Every constructor is generic over the coefficient ring and returns a
// *matroid.Linear[E] ready to feed the orlikterao package:
//
//   - Wheel(rg, r)            - the rank-r wheel on 2r elements (spokes 0..r-1, rim r..2r-1).
//   - CompleteGraphic(rg, n)  - the graphic matroid M(K_n).
//   - Braid(rg, n)            - M(K_n) named as the braid arrangement A_{n-1}.
//   - Cycle(rg, n)            - the graphic matroid of the n-cycle (U_{n-1,n}).
//   - Uniform(rg, r, n)       - U_{r,n} from Vandermonde columns (1, x, ..., x^{r-1}).
//   - Fano(rg)                - the seven 0/1 vectors of rank 3; the Fano plane in
//     characteristic 2 and the non-Fano matroid otherwise.
//
// Lookup parses textual references such as "wheel:3" or "uniform:2,4" and is
// what the CLI and definition files use.
//
// Configuration follows the functional options pattern: BuilderOption values
// resolve into a builderConfig passed by value. Option constructors panic on
// meaningless input; catalog constructors return sentinel errors and never
// panic.
package builder
