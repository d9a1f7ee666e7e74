// SPDX-License-Identifier: MIT

package ring

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind enumerates the ring families understood by ByName.
type Kind int

const (
	KindRationals Kind = iota
	KindIntegers
	KindPrime
)

// Spec is a parsed ring reference such as "QQ", "ZZ" or "GF(3)".
type Spec struct {
	Kind  Kind
	Prime uint64 // only for KindPrime
}

// ByName parses the short ring notation used in definition files and on the
// command line. Accepted forms: QQ, ZZ, GF(p), GF p.
func ByName(name string) (Spec, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	switch n {
	case "QQ", "Q", "RATIONALS":
		return Spec{Kind: KindRationals}, nil
	case "ZZ", "Z", "INTEGERS":
		return Spec{Kind: KindIntegers}, nil
	}
	if strings.HasPrefix(n, "GF") {
		body := strings.Trim(strings.TrimPrefix(n, "GF"), "() ")
		p, err := strconv.ParseUint(body, 10, 64)
		if err != nil {
			return Spec{}, ringErrorf(opByName, fmt.Errorf("%q: %w", name, ErrUnknownRing))
		}
		if _, err = NewPrimeField(p); err != nil {
			return Spec{}, ringErrorf(opByName, err)
		}
		return Spec{Kind: KindPrime, Prime: p}, nil
	}
	return Spec{}, ringErrorf(opByName, fmt.Errorf("%q: %w", name, ErrUnknownRing))
}

// String renders the short notation back.
func (s Spec) String() string {
	switch s.Kind {
	case KindIntegers:
		return "ZZ"
	case KindPrime:
		return fmt.Sprintf("GF(%d)", s.Prime)
	default:
		return "QQ"
	}
}
