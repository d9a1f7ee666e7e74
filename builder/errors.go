// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go: sentinel errors for the matroid catalog.
//
// Callers branch with errors.Is; implementations attach method context with
// "%s: ...: %w" so the sentinel survives wrapping.

package builder

import "errors"

// ErrTooFewElements indicates a size parameter below the constructor minimum.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrInvalidRank indicates a rank parameter outside [0, n].
var ErrInvalidRank = errors.New("builder: invalid rank")

// ErrRingTooSmall indicates the ring cannot supply enough distinct scalars
// (e.g. Uniform(r, n) over 𝔽_p with p < n).
var ErrRingTooSmall = errors.New("builder: ring too small for representation")

// ErrUnknownMatroid indicates a Lookup reference that names no catalog entry
// or carries malformed parameters.
var ErrUnknownMatroid = errors.New("builder: unknown matroid reference")
