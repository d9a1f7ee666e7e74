// SPDX-License-Identifier: MIT
// Package matroid: sentinel error set ("matroid: ..." prefixes; match with errors.Is).

package matroid

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch signals representation vectors of unequal length,
	// or a label list whose length differs from the ground set size.
	ErrDimensionMismatch = errors.New("matroid: dimension mismatch")

	// ErrDuplicateLabel signals two elements sharing a display label.
	ErrDuplicateLabel = errors.New("matroid: duplicate element label")

	// ErrOutOfGroundSet signals a subset or ordering entry outside {0..n-1}.
	ErrOutOfGroundSet = errors.New("matroid: element outside ground set")

	// ErrInvalidOrdering signals an ordering that is not a permutation of the ground set.
	ErrInvalidOrdering = errors.New("matroid: ordering is not a permutation of the ground set")

	// ErrUnknownLabel is returned by ElementByLabel lookups that fail.
	ErrUnknownLabel = errors.New("matroid: unknown element label")
)

const (
	opNewLinear  = "NewLinear"
	opNewGraphic = "NewGraphic"
	opOrdering   = "CheckOrdering"
	opLabel      = "ElementByLabel"
)

func matroidErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
