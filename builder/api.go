// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go: textual catalog references.
//
// Grammar: name[:p1[,p2]] with case-insensitive names
//   wheel:r  complete:n  braid:n  cycle:n  uniform:r,n  fano

package builder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/orlikterao/matroid"
	"github.com/katalvlaran/orlikterao/ring"
)

const methodLookup = "Lookup"

// catalogArity maps each reference name to its parameter count.
var catalogArity = map[string]int{
	"wheel":    1,
	"complete": 1,
	"braid":    1,
	"cycle":    1,
	"uniform":  2,
	"fano":     0,
}

// Names returns the catalog reference names in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalogArity))
	for name := range catalogArity {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup builds the catalog matroid named by ref over rg.
//
// Errors: ErrUnknownMatroid for unknown names, wrong parameter counts or
// non-integer parameters; otherwise whatever the named constructor returns.
func Lookup[E any](rg ring.Ring[E], ref string, opts ...BuilderOption) (*matroid.Linear[E], error) {
	name, params, err := parseRef(ref)
	if err != nil {
		return nil, err
	}
	switch name {
	case "wheel":
		return Wheel(rg, params[0], opts...)
	case "complete":
		return CompleteGraphic(rg, params[0], opts...)
	case "braid":
		return Braid(rg, params[0], opts...)
	case "cycle":
		return Cycle(rg, params[0], opts...)
	case "uniform":
		return Uniform(rg, params[0], params[1], opts...)
	default: // "fano"
		return Fano(rg, opts...)
	}
}

func parseRef(ref string) (string, []int, error) {
	name, rest, hasParams := strings.Cut(strings.TrimSpace(ref), ":")
	name = strings.ToLower(strings.TrimSpace(name))
	arity, ok := catalogArity[name]
	if !ok {
		return "", nil, fmt.Errorf("%s: %q (known: %s): %w", methodLookup, ref, strings.Join(Names(), ", "), ErrUnknownMatroid)
	}
	var params []int
	if hasParams {
		for _, f := range strings.Split(rest, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(f))
			if err != nil {
				return "", nil, fmt.Errorf("%s: %q: parameter %q: %w", methodLookup, ref, f, ErrUnknownMatroid)
			}
			params = append(params, v)
		}
	}
	if len(params) != arity {
		return "", nil, fmt.Errorf("%s: %q: %s takes %d parameter(s), got %d: %w", methodLookup, ref, name, arity, len(params), ErrUnknownMatroid)
	}
	return name, params, nil
}
