// Package ring provides the exact coefficient rings used by the matrix,
// matroid and orlikterao packages.
//
// A Ring[E] bundles the arithmetic of a commutative base ring R together with
// the arithmetic of its fraction field. All linear algebra (determinants,
// row reduction) runs in the fraction field; Coerce maps a fraction-field
// value back into R and fails with ErrNotInRing when it does not belong.
//
// Three rings ship with the package:
//
//	Rationals()       - ℚ, elements are *big.Rat (fraction field of itself)
//	Integers()        - ℤ, elements are *big.Rat restricted by Coerce to integers
//	NewPrimeField(p)  - 𝔽_p for a prime p < 2^256, elements are uint256.Int
//
// Values returned by a Ring are never aliased with its inputs: callers may keep
// and share them freely. No operation is approximate.
package ring
