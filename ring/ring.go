// SPDX-License-Identifier: MIT

package ring

// Ring is a commutative ring R with exact arithmetic in its fraction field.
//
// Contract:
//   - Add/Sub/Mul/Neg/Quo operate in the fraction field of R.
//   - Coerce maps a fraction-field value into R (identity for fields).
//   - Returned values never alias inputs.
//   - Equal and IsZero are exact.
type Ring[E any] interface {
	// Name is a human-readable, stable identifier ("Rational Field", ...).
	// Registries use it as part of canonical keys.
	Name() string

	Zero() E
	One() E
	FromInt64(n int64) E

	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Neg(a E) E

	// Quo returns a/b, or ErrDivisionByZero when b is zero.
	Quo(a, b E) (E, error)

	IsZero(a E) bool
	Equal(a, b E) bool

	// Coerce returns a as an element of the base ring, or ErrNotInRing.
	Coerce(a E) (E, error)

	// Parse reads a fraction-field literal such as "3", "-2/5" or "0.25".
	Parse(s string) (E, error)

	// Format renders a canonical string for a.
	Format(a E) string
}

// Op tags used in wrapped errors.
const (
	opQuo    = "Quo"
	opCoerce = "Coerce"
	opParse  = "Parse"
	opPrime  = "NewPrimeField"
	opByName = "ByName"
)

// IsOne reports whether a equals the multiplicative identity of r.
func IsOne[E any](r Ring[E], a E) bool { return r.Equal(a, r.One()) }

// IsMinusOne reports whether a equals -1 in r.
func IsMinusOne[E any](r Ring[E], a E) bool { return r.Equal(a, r.Neg(r.One())) }

// Pow returns a^k for k >= 0 by square-and-multiply.
func Pow[E any](r Ring[E], a E, k int) E {
	result := r.One()
	base := a
	for k > 0 {
		if k&1 == 1 {
			result = r.Mul(result, base)
		}
		base = r.Mul(base, base)
		k >>= 1
	}
	return result
}

// Sum adds all terms, returning Zero for an empty input.
func Sum[E any](r Ring[E], terms ...E) E {
	acc := r.Zero()
	for _, t := range terms {
		acc = r.Add(acc, t)
	}
	return acc
}

// ParseAll parses every literal in ss, failing on the first malformed one.
func ParseAll[E any](r Ring[E], ss []string) ([]E, error) {
	out := make([]E, len(ss))
	for i, s := range ss {
		v, err := r.Parse(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
