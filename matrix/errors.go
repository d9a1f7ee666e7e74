// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All kernels return these sentinels (wrapped with an op tag via matrixErrorf);
// tests check them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are negative.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// ragged input rows, or a vector whose length differs from the ambient degree.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNotInSpan is returned by RowSpace.Coordinates for vectors outside the span.
	ErrNotInSpan = errors.New("matrix: vector not in row space")

	// ErrUnknownVertex indicates an edge endpoint missing from the vertex list.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")
)

// Operation name constants for uniform error wrapping.
const (
	opNewDense  = "NewDense"
	opFromRows  = "FromRows"
	opAt        = "At"
	opSet       = "Set"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opDet       = "Det"
	opRowReduce = "RowReduce"
	opRowSpace  = "RowSpace"
	opCoords    = "Coordinates"
	opIncidence = "Incidence"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
