// SPDX-License-Identifier: MIT
// prime.go: the prime field 𝔽_p on 256-bit words.
//
// Elements are canonical residues in [0, p) stored as uint256.Int values, so
// they are comparable and cheap to copy. Modular add/mul use the uint256
// kernels; inversion goes through math/big once per call.

package ring

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// primalityRounds is the Miller-Rabin round count passed to ProbablyPrime.
const primalityRounds = 32

// PrimeField is 𝔽_p. It implements Ring[uint256.Int].
type PrimeField struct {
	p    uint256.Int
	name string
}

var _ Ring[uint256.Int] = (*PrimeField)(nil)

// NewPrimeField returns 𝔽_p for a prime p that fits in 64 bits.
func NewPrimeField(p uint64) (*PrimeField, error) {
	return NewPrimeFieldBig(new(big.Int).SetUint64(p))
}

// NewPrimeFieldBig returns 𝔽_p for a prime p < 2^256.
func NewPrimeFieldBig(p *big.Int) (*PrimeField, error) {
	if p == nil || p.Sign() <= 0 || !p.ProbablyPrime(primalityRounds) {
		return nil, ringErrorf(opPrime, fmt.Errorf("p=%v: %w", p, ErrNotPrime))
	}
	mod, overflow := uint256.FromBig(p)
	if overflow {
		return nil, ringErrorf(opPrime, fmt.Errorf("p=%v exceeds 256 bits: %w", p, ErrNotPrime))
	}
	return &PrimeField{p: *mod, name: "Finite Field of size " + p.String()}, nil
}

// Modulus returns p as a big.Int.
func (f *PrimeField) Modulus() *big.Int { return f.p.ToBig() }

func (f *PrimeField) Name() string { return f.name }

func (f *PrimeField) Zero() uint256.Int { return uint256.Int{} }

func (f *PrimeField) One() uint256.Int { return *uint256.NewInt(1) }

func (f *PrimeField) FromInt64(n int64) uint256.Int {
	return f.fromBig(big.NewInt(n))
}

// fromBig reduces an arbitrary integer into [0, p).
func (f *PrimeField) fromBig(n *big.Int) uint256.Int {
	m := new(big.Int).Mod(n, f.p.ToBig()) // Mod is Euclidean: result in [0, p)
	v, _ := uint256.FromBig(m)
	return *v
}

func (f *PrimeField) Add(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.AddMod(&a, &b, &f.p)
	return z
}

func (f *PrimeField) Sub(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	if a.Lt(&b) {
		// a - b + p stays below p because a < b.
		z.Sub(&f.p, &b)
		z.Add(&z, &a)
		return z
	}
	z.Sub(&a, &b)
	return z
}

func (f *PrimeField) Mul(a, b uint256.Int) uint256.Int {
	var z uint256.Int
	z.MulMod(&a, &b, &f.p)
	return z
}

func (f *PrimeField) Neg(a uint256.Int) uint256.Int {
	if a.IsZero() {
		return a
	}
	var z uint256.Int
	z.Sub(&f.p, &a)
	return z
}

// inverse returns a^{-1}; a must be non-zero.
func (f *PrimeField) inverse(a uint256.Int) uint256.Int {
	inv := new(big.Int).ModInverse(a.ToBig(), f.p.ToBig())
	v, _ := uint256.FromBig(inv)
	return *v
}

func (f *PrimeField) Quo(a, b uint256.Int) (uint256.Int, error) {
	if b.IsZero() {
		return uint256.Int{}, ringErrorf(opQuo, ErrDivisionByZero)
	}
	return f.Mul(a, f.inverse(b)), nil
}

func (f *PrimeField) IsZero(a uint256.Int) bool { return a.IsZero() }

func (f *PrimeField) Equal(a, b uint256.Int) bool { return a.Eq(&b) }

func (f *PrimeField) Coerce(a uint256.Int) (uint256.Int, error) { return a, nil }

// Parse accepts integer and rational literals; n/d is read as n·d^{-1}.
func (f *PrimeField) Parse(s string) (uint256.Int, error) {
	s = strings.TrimSpace(s)
	q, ok := new(big.Rat).SetString(s)
	if !ok || s == "" {
		return uint256.Int{}, ringErrorf(opParse, fmt.Errorf("%q: %w", s, ErrParse))
	}
	num := f.fromBig(q.Num())
	den := f.fromBig(q.Denom())
	if den.IsZero() {
		return uint256.Int{}, ringErrorf(opParse, fmt.Errorf("%q in %s: %w", s, f.name, ErrDivisionByZero))
	}
	return f.Mul(num, f.inverse(den)), nil
}

func (f *PrimeField) Format(a uint256.Int) string { return a.ToBig().String() }
