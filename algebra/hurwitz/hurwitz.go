package hurwitz

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// Int is a Hurwitz quaternion a + b·i + c·j + d·k.
//
// The exported components hold twice the mathematical value; see the
// package comment. Use New or FromHalves instead of struct literals to
// keep the parity invariant.
type Int struct {
	A, B, C, D int32
}

// New returns the integer quaternion a + b·i + c·j + d·k.
// Arguments must fit the doubled storage, i.e. |v| <= MaxInt32/2.
func New(a, b, c, d int32) Int {
	return Int{A: a * 2, B: b * 2, C: c * 2, D: d * 2}
}

// FromHalves returns the quaternion (a + b·i + c·j + d·k) / 2. All four
// arguments must share a parity: even arguments form an integer
// quaternion, odd arguments a half-integer one. Mixed parity is not a
// Hurwitz quaternion and yields algebra.ErrInvalidHalfInteger.
func FromHalves(a, b, c, d int32) (Int, error) {
	odd := a&1 != 0
	if b&1 != 0 != odd || c&1 != 0 != odd || d&1 != 0 != odd {
		return Int{}, algebra.ErrInvalidHalfInteger
	}
	return Int{A: a, B: b, C: c, D: d}, nil
}

// Zero returns the additive identity.
func Zero() Int { return Int{} }

// One returns the multiplicative identity.
func One() Int { return Int{A: 2} }

// I returns the basis unit i.
func I() Int { return Int{B: 2} }

// J returns the basis unit j.
func J() Int { return Int{C: 2} }

// K returns the basis unit k.
func K() Int { return Int{D: 2} }

// Omega returns the Hurwitz unit (-1 + i + j + k) / 2, a unit of order 3.
func Omega() Int { return Int{A: -1, B: 1, C: 1, D: 1} }

// IsZero reports whether q is the zero element.
func (q Int) IsZero() bool {
	return q.A == 0 && q.B == 0 && q.C == 0 && q.D == 0
}

// IsUnit reports whether q has norm 1. The Hurwitz unit group has 24
// elements: ±1, ±i, ±j, ±k and the sixteen (±1 ± i ± j ± k)/2.
func (q Int) IsUnit() bool {
	return q.NormSq() == 1
}

// Conj returns the quaternion conjugate a - b·i - c·j - d·k.
func (q Int) Conj() Int {
	return Int{A: q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Neg returns -q.
func (q Int) Neg() Int {
	return Int{A: -q.A, B: -q.B, C: -q.C, D: -q.D}
}

// Add returns q + w. Component arithmetic wraps on overflow.
func (q Int) Add(w Int) Int {
	return Int{A: q.A + w.A, B: q.B + w.B, C: q.C + w.C, D: q.D + w.D}
}

// Sub returns q - w. Component arithmetic wraps on overflow.
func (q Int) Sub(w Int) Int {
	return Int{A: q.A - w.A, B: q.B - w.B, C: q.C - w.C, D: q.D - w.D}
}

// NormSq returns the reduced norm a² + b² + c² + d², computed on the
// mathematical values (the stored sum of squares carries a factor of 4).
//
// The stored sum of squares can reach 2^64 when every component is at
// the int32 extreme, so it is accumulated with an explicit carry before
// the scale factor is divided out. The result always fits: the true
// norm is at most 2^62.
func (q Int) NormSq() uint64 {
	var lo, hi uint64
	for _, v := range [4]int32{q.A, q.B, q.C, q.D} {
		s := uint64(int64(v) * int64(v))
		var c uint64
		lo, c = bits.Add64(lo, s, 0)
		hi += c
	}
	return hi<<62 | lo>>2
}

// Mul returns the quaternion product q·w.
//
// i² = j² = k² = -1, ij = k, jk = i, ki = j, and reversed pairs negate.
// The raw component sums over doubled operands are scaled by four; they
// are halved once so the result stays in doubled storage. Intermediates
// are accumulated in checked 64-bit arithmetic; algebra.ErrOverflow is
// returned instead of narrowing a value that does not fit.
func (q Int) Mul(w Int) (Int, error) {
	raw, ok := rawProducts(q, w)
	if !ok {
		return Int{}, algebra.ErrOverflow
	}

	// Quadruple-scaled; halve back to doubled storage. Exact for
	// parity-homogeneous operands.
	a, b, c, d := raw[0]/2, raw[1]/2, raw[2]/2, raw[3]/2
	if a > math.MaxInt32 || a < math.MinInt32 || b > math.MaxInt32 || b < math.MinInt32 ||
		c > math.MaxInt32 || c < math.MinInt32 || d > math.MaxInt32 || d < math.MinInt32 {
		return Int{}, algebra.ErrOverflow
	}
	return Int{A: int32(a), B: int32(b), C: int32(c), D: int32(d)}, nil
}

// Float64s returns the mathematical component values.
func (q Int) Float64s() [4]float64 {
	return [4]float64{
		float64(q.A) / 2,
		float64(q.B) / 2,
		float64(q.C) / 2,
		float64(q.D) / 2,
	}
}

// String renders q with mathematical (possibly half-integer) components.
func (q Int) String() string {
	f := q.Float64s()
	return fmt.Sprintf("%g + %gi + %gj + %gk", f[0], f[1], f[2], f[3])
}

// rawProducts returns the four component sums of q·w over the stored
// (doubled) operands, scaled by four relative to the mathematical product.
// ok is false when a sum overflows int64.
func rawProducts(q, w Int) ([4]int64, bool) {
	qa, qb, qc, qd := int64(q.A), int64(q.B), int64(q.C), int64(q.D)
	wa, wb, wc, wd := int64(w.A), int64(w.B), int64(w.C), int64(w.D)

	a, okA := sum4(qa*wa, -qb*wb, -qc*wc, -qd*wd)
	b, okB := sum4(qa*wb, qb*wa, qc*wd, -qd*wc)
	c, okC := sum4(qa*wc, -qb*wd, qc*wa, qd*wb)
	d, okD := sum4(qa*wd, qb*wc, -qc*wb, qd*wa)
	if !okA || !okB || !okC || !okD {
		return [4]int64{}, false
	}
	return [4]int64{a, b, c, d}, true
}

func sum4(p0, p1, p2, p3 int64) (int64, bool) {
	s, ok := intmath.AddChecked(p0, p1)
	if !ok {
		return 0, false
	}
	s, ok = intmath.AddChecked(s, p2)
	if !ok {
		return 0, false
	}
	return intmath.AddChecked(s, p3)
}
