package gaussian

// Associates returns the four unit multiples of z, in the order
// z·1, z·i, z·(-1), z·(-i).
func (z Int) Associates() [4]Int {
	return [4]Int{
		z,
		{A: -z.B, B: z.A},
		{A: -z.A, B: -z.B},
		{A: z.B, B: -z.A},
	}
}

// units lists the unit group in the same order as Associates.
var units = [4]Int{
	{A: 1},
	{B: 1},
	{A: -1},
	{B: -1},
}

// Normalize returns the canonical associate of z: the unit multiple with
// positive real part and non-negative imaginary part. Zero normalizes to
// itself. Normalize is idempotent.
func (z Int) Normalize() Int {
	n, _ := z.normalizeWithUnit()
	return n
}

// normalizeWithUnit returns the canonical associate and the unit u with
// z·u equal to it. Every nonzero z has exactly one associate in the
// half-open quadrant {a > 0, b >= 0}.
func (z Int) normalizeWithUnit() (Int, Int) {
	if z.IsZero() {
		return z, One()
	}
	assocs := z.Associates()
	for i, c := range assocs {
		if c.A > 0 && c.B >= 0 {
			return c, units[i]
		}
	}
	return z, One() // unreachable for nonzero z
}

// GCD returns a canonicalized greatest common divisor of a and b, computed
// by the iterative Euclidean loop. The loop terminates because the
// remainder norm is a strictly decreasing non-negative integer.
func GCD(a, b Int) (Int, error) {
	x := a.Normalize()
	y := b.Normalize()
	for !y.IsZero() {
		_, r, err := x.DivRem(y)
		if err != nil {
			return Int{}, err
		}
		x, y = y, r
	}
	return x.Normalize(), nil
}

// XGCD returns (g, x, y) with g = a·x + b·y exactly, g the canonicalized
// gcd of a and b. The canonicalizing unit is applied to the coefficients
// as well, so the identity holds without an associate fudge.
//
// Defined for Z[i] only: in the non-commutative algebras the notion of a
// linear combination is order-sensitive and the pair (x, y) would not pin
// the identity down.
func XGCD(a, b Int) (g, x, y Int, err error) {
	if b.IsZero() {
		n, u := a.normalizeWithUnit()
		return n, u, Zero(), nil
	}

	oldR, r := a, b
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()

	for !r.IsZero() {
		q, rem, derr := oldR.DivRem(r)
		if derr != nil {
			return Int{}, Int{}, Int{}, derr
		}
		oldR, r = r, rem

		qs, merr := q.Mul(s)
		if merr != nil {
			return Int{}, Int{}, Int{}, merr
		}
		oldS, s = s, oldS.Sub(qs)

		qt, merr := q.Mul(t)
		if merr != nil {
			return Int{}, Int{}, Int{}, merr
		}
		oldT, t = t, oldT.Sub(qt)
	}

	n, u := oldR.normalizeWithUnit()
	x, err = oldS.Mul(u)
	if err != nil {
		return Int{}, Int{}, Int{}, err
	}
	y, err = oldT.Mul(u)
	if err != nil {
		return Int{}, Int{}, Int{}, err
	}
	return n, x, y, nil
}
