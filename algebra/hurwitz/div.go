package hurwitz

import (
	"math"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// DivRem computes q and r with x = q·d + r and NormSq(r) < NormSq(d).
//
// The exact left quotient x·conj(d) / NormSq(d) has rational components
// w_i / (4N) over the raw product sums. Rounding each component to the
// nearest integer is not always good enough in four dimensions; the
// nearest half-odd-integer point can be strictly closer. Both
// parity-homogeneous candidates are evaluated and the one with the
// smaller remainder norm wins, ties toward the integer candidate.
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
	setComp := func(dst *Int, i int, v int64) bool {
		if v > math.MaxInt32 || v < math.MinInt32 {
			return false
		}
		switch i {
		case 0:
			dst.A = int32(v)
		case 1:
			dst.B = int32(v)
		case 2:
			dst.C = int32(v)
		default:
			dst.D = int32(v)
		}
		return true
	}
	for i, wi := range w {
		// Nearest integer to w_i/den, stored doubled.
		okInt = okInt && setComp(&qInt, i, 2*intmath.RoundHalfUp(wi, den))
		// Nearest odd integer to 2·w_i/den; round-half-up of the shifted
		// midpoint collapses to a floor of the unshifted ratio.
		okHalf = okHalf && setComp(&qHalf, i, 2*intmath.FloorDiv(wi, den)+1)
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

// DivExact returns the left quotient x / d, failing with
// algebra.ErrNotDivisible when d is not an exact right factor of x.
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

// InvUnit returns the multiplicative inverse of a unit. Elements with norm
// other than 1 have no Hurwitz inverse and yield algebra.ErrNoInverse.
func (x Int) InvUnit() (Int, error) {
	if !x.IsUnit() {
		return Int{}, algebra.ErrNoInverse
	}
	// q·conj(q) = NormSq(q) = 1, so the conjugate inverts on both sides.
	return x.Conj(), nil
}
