package octonion

import (
	"fmt"
	"math"
	"math/bits"
	"strings"

	"github.com/Gutkaq/entropy/algebra"
	"github.com/Gutkaq/entropy/internal/intmath"
)

// Int is an integral octonion c0 + c1·e1 + ... + c7·e7. The array holds
// twice the mathematical component values; see the package comment. Use
// New or FromHalves instead of composite literals to keep the parity
// invariant.
type Int [8]int32

// New returns the integer octonion with the given components.
// Arguments must fit the doubled storage, i.e. |v| <= MaxInt32/2.
func New(c [8]int32) Int {
	var x Int
	for i, v := range c {
		x[i] = v * 2
	}
	return x
}

// FromHalves returns the octonion with components c[i] / 2. All eight
// arguments must share a parity; mixed parity yields
// algebra.ErrInvalidHalfInteger.
func FromHalves(c [8]int32) (Int, error) {
	if !homogeneous(c) {
		return Int{}, algebra.ErrInvalidHalfInteger
	}
	return Int(c), nil
}

// Zero returns the additive identity.
func Zero() Int { return Int{} }

// One returns the multiplicative identity.
func One() Int { return Int{0: 2} }

// E returns the basis unit e_k for 0 <= k <= 7; E(0) is One. Out-of-range
// indices panic, as with a slice subscript.
func E(k int) Int {
	var x Int
	x[k] = 2
	return x
}

// IsZero reports whether x is the zero element.
func (x Int) IsZero() bool {
	return x == Int{}
}

// IsUnit reports whether x has norm 1.
func (x Int) IsUnit() bool {
	return x.NormSq() == 1
}

// Conj returns the octonion conjugate: the real component kept, all
// seven imaginary components negated.
func (x Int) Conj() Int {
	y := x.Neg()
	y[0] = x[0]
	return y
}

// Neg returns -x.
func (x Int) Neg() Int {
	var y Int
	for i, v := range x {
		y[i] = -v
	}
	return y
}

// Add returns x + y. Component arithmetic wraps on overflow.
func (x Int) Add(y Int) Int {
	var s Int
	for i, v := range x {
		s[i] = v + y[i]
	}
	return s
}

// Sub returns x - y. Component arithmetic wraps on overflow.
func (x Int) Sub(y Int) Int {
	var s Int
	for i, v := range x {
		s[i] = v - y[i]
	}
	return s
}

// NormSq returns the reduced norm, the sum of squared mathematical
// components.
//
// The stored sum of squares can exceed 2^64 when several components sit
// near the int32 extremes, so it is accumulated with an explicit carry
// before the scale factor is divided out. The result always fits: the
// true norm is at most 2^63.
func (x Int) NormSq() uint64 {
	var lo, hi uint64
	for _, v := range x {
		s := uint64(int64(v) * int64(v))
		var c uint64
		lo, c = bits.Add64(lo, s, 0)
		hi += c
	}
	return hi<<62 | lo>>2
}

// Mul returns the octonion product x·y under the Fano-plane table.
//
// As in package hurwitz the raw component sums over doubled operands are
// quadruple-scaled and halved back once. Intermediates are accumulated in
// checked 64-bit arithmetic; algebra.ErrOverflow is returned instead of
// narrowing a value that does not fit.
func (x Int) Mul(y Int) (Int, error) {
	raw, ok := rawProducts(x, y)
	if !ok {
		return Int{}, algebra.ErrOverflow
	}
	var p Int
	for i, v := range raw {
		v /= 2
		if v > math.MaxInt32 || v < math.MinInt32 {
			return Int{}, algebra.ErrOverflow
		}
		p[i] = int32(v)
	}
	return p, nil
}

// rawProducts returns the eight component sums of x·y over the stored
// (doubled) operands, scaled by four relative to the mathematical
// product. ok is false when a sum overflows int64.
func rawProducts(x, y Int) ([8]int64, bool) {
	var acc [8]int64
	for i := 0; i < 8; i++ {
		xi := int64(x[i])
		if xi == 0 {
			continue
		}
		for j := 0; j < 8; j++ {
			if y[j] == 0 {
				continue
			}
			t := int64(mulSign[i][j]) * xi * int64(y[j])
			var ok bool
			acc[mulIndex[i][j]], ok = intmath.AddChecked(acc[mulIndex[i][j]], t)
			if !ok {
				return [8]int64{}, false
			}
		}
	}
	return acc, true
}

// Float64s returns the mathematical component values.
func (x Int) Float64s() [8]float64 {
	var f [8]float64
	for i, v := range x {
		f[i] = float64(v) / 2
	}
	return f
}

// String renders x as "c0 + c1e1 + ... + c7e7" with mathematical
// (possibly half-integer) component values.
func (x Int) String() string {
	f := x.Float64s()
	var b strings.Builder
	fmt.Fprintf(&b, "%g", f[0])
	for i := 1; i < 8; i++ {
		fmt.Fprintf(&b, " + %ge%d", f[i], i)
	}
	return b.String()
}

func homogeneous(c [8]int32) bool {
	odd := c[0]&1 != 0
	for _, v := range c[1:] {
		if v&1 != 0 != odd {
			return false
		}
	}
	return true
}
