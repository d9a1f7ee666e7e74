// SPDX-License-Identifier: MIT
// rational.go: ℚ and ℤ over math/big.Rat.
//
// Both rings share the same element type and fraction-field arithmetic; they
// differ only in Name and Coerce. Keeping ℤ on *big.Rat lets determinants be
// computed by plain Gaussian elimination and coerced back at the end, which is
// exactly the "compute in Frac(R), coerce into R" contract of Ring.

package ring

import (
	"fmt"
	"math/big"
	"strings"
)

type rationalRing struct {
	name     string
	integral bool
}

var (
	rationals = &rationalRing{name: "Rational Field"}
	integers  = &rationalRing{name: "Integer Ring", integral: true}
)

// Rationals returns the field ℚ.
func Rationals() Ring[*big.Rat] { return rationals }

// Integers returns the ring ℤ; its fraction field is ℚ.
func Integers() Ring[*big.Rat] { return integers }

func (r *rationalRing) Name() string { return r.name }

func (r *rationalRing) Zero() *big.Rat { return new(big.Rat) }

func (r *rationalRing) One() *big.Rat { return big.NewRat(1, 1) }

func (r *rationalRing) FromInt64(n int64) *big.Rat { return big.NewRat(n, 1) }

func (r *rationalRing) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

func (r *rationalRing) Sub(a, b *big.Rat) *big.Rat { return new(big.Rat).Sub(a, b) }

func (r *rationalRing) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

func (r *rationalRing) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

func (r *rationalRing) Quo(a, b *big.Rat) (*big.Rat, error) {
	if b.Sign() == 0 {
		return nil, ringErrorf(opQuo, ErrDivisionByZero)
	}
	return new(big.Rat).Quo(a, b), nil
}

func (r *rationalRing) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

func (r *rationalRing) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (r *rationalRing) Coerce(a *big.Rat) (*big.Rat, error) {
	if r.integral && !a.IsInt() {
		return nil, ringErrorf(opCoerce, fmt.Errorf("%s into %s: %w", a.RatString(), r.name, ErrNotInRing))
	}
	return new(big.Rat).Set(a), nil
}

func (r *rationalRing) Parse(s string) (*big.Rat, error) {
	s = strings.TrimSpace(s)
	v, ok := new(big.Rat).SetString(s)
	if !ok || s == "" {
		return nil, ringErrorf(opParse, fmt.Errorf("%q: %w", s, ErrParse))
	}
	return v, nil
}

func (r *rationalRing) Format(a *big.Rat) string { return a.RatString() }
