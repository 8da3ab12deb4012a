// Package intmath provides the integer primitives behind the Euclidean
// division and GCD engines: floor division by a positive divisor, the
// round-half-up rule used to pick quotient components, plain unsigned GCD,
// and overflow-checked 64-bit accumulation.
package intmath

// FloorDiv returns floor(n / d) for d > 0.
//
// Go's native integer division truncates toward zero; for negative
// dividends that is one too high for a floor.
func FloorDiv(n, d int64) int64 {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// RoundHalfUp rounds the rational n/d (d > 0) to the nearest integer,
// with ties rounded toward positive infinity. Equivalent to
// floor((n + d/2) / d) without forming the doubled intermediate.
func RoundHalfUp(n, d int64) int64 {
	q := FloorDiv(n, d)
	r := n - q*d // 0 <= r < d
	if r >= d-r {
		q++
	}
	return q
}

// GCD64 returns the greatest common divisor of a and b, with GCD64(a, 0) = a.
func GCD64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// AddChecked returns a+b and whether the sum fits in int64.
func AddChecked(a, b int64) (int64, bool) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, false
	}
	return s, true
}
