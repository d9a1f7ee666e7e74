// SPDX-License-Identifier: MIT
// Package: matrix
//
// Central validators. Each returns a plain (tag-wrapped) sentinel so kernels
// can wrap once more with their own op tag. All checks are O(1).

package matrix

import "fmt"

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil[E any](m *Dense[E]) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare[E any](m *Dense[E]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("%dx%d: %w", m.r, m.c, ErrNonSquare))
	}
	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows (both non-nil).
func ValidateMulCompatible[E any](a, b *Dense[E]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.c != b.r {
		return validatorErrorf("ValidateMulCompatible", fmt.Errorf("%dx%d × %dx%d: %w", a.r, a.c, b.r, b.c, ErrDimensionMismatch))
	}
	return nil
}

// ValidateVecLen ensures len(v) == n.
func ValidateVecLen[E any](v []E, n int) error {
	if len(v) != n {
		return validatorErrorf("ValidateVecLen", fmt.Errorf("len=%d want %d: %w", len(v), n, ErrDimensionMismatch))
	}
	return nil
}
