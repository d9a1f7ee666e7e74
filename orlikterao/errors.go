// SPDX-License-Identifier: MIT
// Package orlikterao: sentinel error set ("orlikterao: ..." prefixes; match with errors.Is).

package orlikterao

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidOrdering signals an ordering that is not a permutation of the ground set.
	ErrInvalidOrdering = errors.New("orlikterao: ordering is not a permutation of the ground set")

	// ErrInvalidInput signals a subset or element outside the ground set.
	ErrInvalidInput = errors.New("orlikterao: subset outside the ground set")

	// ErrPrecondition signals χ evaluated on a dependent set. Internal call
	// sites only pass independent sets, so seeing it means a broken matroid.
	ErrPrecondition = errors.New("orlikterao: chi of a dependent set")

	// ErrNotBasis signals a basis operation on a set that is not NBC.
	ErrNotBasis = errors.New("orlikterao: not a basis index")

	// ErrCycle signals that reducing a subset required its own value.
	ErrCycle = errors.New("orlikterao: cyclic subset reduction")

	// ErrForeignElement signals an Element that belongs to another algebra.
	ErrForeignElement = errors.New("orlikterao: element of a different algebra")
)

const (
	opNew            = "New"
	opChi            = "Chi"
	opFlat           = "Flat"
	opSubsetImage    = "SubsetImage"
	opProductOnBasis = "ProductOnBasis"
	opProduct        = "Product"
	opMonomial       = "Monomial"
	opGenerator      = "Generator"
)

func otErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
