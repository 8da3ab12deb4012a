package gaussian

import (
	"math"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// DivRem computes q and r with z = q·d + r and NormSq(r) < NormSq(d).
//
// The quotient is the component-wise round-half-up of the exact rational
// z·conj(d) / NormSq(d), ties toward positive infinity. Other roundings
// also satisfy the Euclidean bound; this one is fixed so that (q, r) is
// reproducible.
func (z Int) DivRem(d Int) (q, r Int, err error) {
	if d.IsZero() {
		return Int{}, Int{}, algebra.ErrDivisionByZero
	}

	// The norm of a divisor with both components at the int32 extreme is
	// 2^63, one past what the signed rounding below can divide by.
	un := d.NormSq()
	if un > math.MaxInt64 {
		return Int{}, Int{}, algebra.ErrOverflow
	}
	n := int64(un)
	wa := int64(z.A)*int64(d.A) + int64(z.B)*int64(d.B)
	wb := int64(z.B)*int64(d.A) - int64(z.A)*int64(d.B)

	qa := intmath.RoundHalfUp(wa, n)
	qb := intmath.RoundHalfUp(wb, n)
	if qa > math.MaxInt32 || qa < math.MinInt32 || qb > math.MaxInt32 || qb < math.MinInt32 {
		return Int{}, Int{}, algebra.ErrOverflow
	}
	q = Int{A: int32(qa), B: int32(qb)}

	qd, err := q.Mul(d)
	if err != nil {
		return Int{}, Int{}, err
	}
	return q, z.Sub(qd), nil
}

// DivExact returns z / d, failing with algebra.ErrNotDivisible if the
// division leaves a remainder.
func (z Int) DivExact(d Int) (Int, error) {
	q, r, err := z.DivRem(d)
	if err != nil {
		return Int{}, err
	}
	if !r.IsZero() {
		return Int{}, algebra.ErrNotDivisible
	}
	return q, nil
}

// InvUnit returns the multiplicative inverse of a unit. Elements with norm
// other than 1 have no inverse in Z[i] and yield algebra.ErrNoInverse.
func (z Int) InvUnit() (Int, error) {
	if !z.IsUnit() {
		return Int{}, algebra.ErrNoInverse
	}
	// For a unit the conjugate is the inverse: z·conj(z) = NormSq(z) = 1.
	return z.Conj(), nil
}
