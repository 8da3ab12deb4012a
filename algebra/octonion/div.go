package octonion

import (
	"math"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// DivRem computes q and r with x = q·d + r and NormSq(r) <= NormSq(d).
//
// The exact quotient x·conj(d) / NormSq(d) has rational components
// w_i / (4N) over the raw product sums. As in the quaternion case both
// parity-homogeneous roundings are evaluated, the nearest all-integer
// point and the nearest all-half-odd point, and the smaller remainder
// norm wins with ties toward the integer candidate.
//
// Equality in the norm bound is possible: the eight-dimensional parity
// lattice has deep holes at squared distance exactly 1 from the quotient
// ratio, where no lattice point gives a strictly smaller remainder.
// Callers that iterate on the remainder must treat a non-shrinking norm
// as a stopping condition, as GCD does.
func (x Int) DivRem(d Int) (q, r Int, err error) {
	if d.IsZero() {
		return Int{}, Int{}, algebra.ErrDivisionByZero
	}
	n := d.NormSq()
	if n > math.MaxInt64/4 {
		return Int{}, Int{}, algebra.ErrOverflow
	}
	den := 4 * int64(n)

	w, ok := rawProducts(x, d.Conj())
	if !ok {
		return Int{}, Int{}, algebra.ErrOverflow
	}

	var qInt, qHalf Int
	okInt, okHalf := true, true
	for i, wi := range w {
		// Nearest integer to w_i/den, stored doubled; nearest odd integer
		// to 2·w_i/den, where the shifted round-half-up collapses to an
		// unshifted floor.
		m := 2 * intmath.RoundHalfUp(wi, den)
		o := 2*intmath.FloorDiv(wi, den) + 1
		if m > math.MaxInt32 || m < math.MinInt32 {
			okInt = false
		} else {
			qInt[i] = int32(m)
		}
		if o > math.MaxInt32 || o < math.MinInt32 {
			okHalf = false
		} else {
			qHalf[i] = int32(o)
		}
	}

	have := false
	var bestN uint64
	for _, c := range [2]struct {
		q  Int
		ok bool
	}{{qInt, okInt}, {qHalf, okHalf}} {
		if !c.ok {
			continue
		}
		cd, merr := c.q.Mul(d)
		if merr != nil {
			continue
		}
		rem := x.Sub(cd)
		if nr := rem.NormSq(); !have || nr < bestN {
			q, r, bestN, have = c.q, rem, nr, true
		}
	}
	if !have {
		return Int{}, Int{}, algebra.ErrOverflow
	}
	return q, r, nil
}

// DivExact returns the quotient x / d, failing with
// algebra.ErrNotDivisible when the division leaves a remainder.
func (x Int) DivExact(d Int) (Int, error) {
	q, r, err := x.DivRem(d)
	if err != nil {
		return Int{}, err
	}
	if !r.IsZero() {
		return Int{}, algebra.ErrNotDivisible
	}
	return q, nil
}

// InvUnit returns the multiplicative inverse of a unit. Elements with
// norm other than 1 yield algebra.ErrNoInverse.
func (x Int) InvUnit() (Int, error) {
	if !x.IsUnit() {
		return Int{}, algebra.ErrNoInverse
	}
	// x·conj(x) = NormSq(x) = 1; the alternative laws make the conjugate
	// a two-sided inverse despite non-associativity.
	return x.Conj(), nil
}
