package hurwitz

import (
	"fmt"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// Fraction is an exact rational multiple of a Hurwitz quaternion:
// Num / Den with Den strictly positive.
type Fraction struct {
	Num Int
	Den uint64
}

// NewFraction returns x / d as an exact fraction with an integer
// denominator: x·conj(d) over NormSq(d).
func NewFraction(x, d Int) (Fraction, error) {
	if d.IsZero() {
		return Fraction{}, algebra.ErrDivisionByZero
	}
	num, err := x.Mul(d.Conj())
	if err != nil {
		return Fraction{}, err
	}
	return Fraction{Num: num, Den: d.NormSq()}, nil
}

// InvFraction returns 1 / x as an exact fraction: conj(x) over NormSq(x).
func (x Int) InvFraction() (Fraction, error) {
	if x.IsZero() {
		return Fraction{}, algebra.ErrDivisionByZero
	}
	return Fraction{Num: x.Conj(), Den: x.NormSq()}, nil
}

// Reduce strips the greatest common divisor of the stored numerator
// components and the denominator, except for factors of two that would
// break the numerator's parity-homogeneity. The value is unchanged.
func (f Fraction) Reduce() Fraction {
	g := intmath.GCD64(abs32(f.Num.A), abs32(f.Num.B))
	g = intmath.GCD64(g, abs32(f.Num.C))
	g = intmath.GCD64(g, abs32(f.Num.D))
	g = intmath.GCD64(g, f.Den)

	// An odd divisor always preserves parity-homogeneity; only the even
	// part of g can split an all-even numerator into mixed parity.
	for g > 1 {
		d := int64(g)
		a := int32(int64(f.Num.A) / d)
		b := int32(int64(f.Num.B) / d)
		c := int32(int64(f.Num.C) / d)
		e := int32(int64(f.Num.D) / d)
		if homogeneous(a, b, c, e) {
			return Fraction{Num: Int{A: a, B: b, C: c, D: e}, Den: f.Den / g}
		}
		g /= 2
	}
	return f
}

// String renders the fraction as "(a + bi + cj + dk) / den" with
// mathematical component values.
func (f Fraction) String() string {
	return fmt.Sprintf("(%s) / %d", f.Num, f.Den)
}

func homogeneous(a, b, c, d int32) bool {
	odd := a&1 != 0
	return b&1 != 0 == odd && c&1 != 0 == odd && d&1 != 0 == odd
}

func abs32(v int32) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}
