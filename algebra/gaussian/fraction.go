package gaussian

import (
	"fmt"
	"math"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// Fraction is an exact rational multiple of a Gaussian integer: Num / Den.
// Den is always strictly positive.
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
	na := int64(x.A)*int64(d.A) + int64(x.B)*int64(d.B)
	nb := int64(x.B)*int64(d.A) - int64(x.A)*int64(d.B)
	if na > math.MaxInt32 || na < math.MinInt32 || nb > math.MaxInt32 || nb < math.MinInt32 {
		return Fraction{}, algebra.ErrOverflow
	}
	return Fraction{Num: Int{A: int32(na), B: int32(nb)}, Den: d.NormSq()}, nil
}

// InvFraction returns 1 / z as an exact fraction: conj(z) over NormSq(z).
func (z Int) InvFraction() (Fraction, error) {
	if z.IsZero() {
		return Fraction{}, algebra.ErrDivisionByZero
	}
	return Fraction{Num: z.Conj(), Den: z.NormSq()}, nil
}

// Reduce strips the greatest common divisor of the numerator components
// and the denominator. The value is unchanged.
func (f Fraction) Reduce() Fraction {
	g := intmath.GCD64(abs32(f.Num.A), abs32(f.Num.B))
	g = intmath.GCD64(g, f.Den)
	if g <= 1 {
		return f
	}
	d := int64(g)
	return Fraction{
		Num: Int{A: int32(int64(f.Num.A) / d), B: int32(int64(f.Num.B) / d)},
		Den: f.Den / g,
	}
}

// String renders the fraction as "(a + bi) / den".
func (f Fraction) String() string {
	return fmt.Sprintf("(%s) / %d", f.Num, f.Den)
}

func abs32(v int32) uint64 {
	if v < 0 {
		return uint64(-int64(v))
	}
	return uint64(v)
}
