// SPDX-License-Identifier: MIT
// Package: builder
//
// id_fn.go: deterministic point naming schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a point identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25].
// Panics if idx is out of range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// LetterIDFn returns the lowercase Latin letter for idx in [0..25]
// (the Fano plane's customary "a".."g").
// Panics if idx is out of range.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("LetterIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('a' + rune(idx))
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption {
	return WithIDScheme(SymbolIDFn)
}

// pointLabels evaluates fn on 0..n-1.
func pointLabels(fn IDFn, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fn(i)
	}
	return out
}
