// SPDX-License-Identifier: MIT
// Package ring: sentinel error set.
// Every message is prefixed with "ring: ..."; callers match with errors.Is.

package ring

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is returned by Quo (and by parsing into 𝔽_p) when the
	// divisor is zero in the fraction field.
	ErrDivisionByZero = errors.New("ring: division by zero")

	// ErrNotInRing signals that a fraction-field value has no preimage in the
	// base ring (e.g. 1/2 coerced into ℤ).
	ErrNotInRing = errors.New("ring: value not in base ring")

	// ErrParse indicates a malformed scalar literal.
	ErrParse = errors.New("ring: cannot parse scalar")

	// ErrNotPrime is returned by prime field constructors for composite or
	// out-of-range moduli.
	ErrNotPrime = errors.New("ring: modulus is not a supported prime")

	// ErrUnknownRing is returned by ByName for unrecognized ring names.
	ErrUnknownRing = errors.New("ring: unknown ring")
)

// ringErrorf wraps err with an operation tag, preserving it for errors.Is.
func ringErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
