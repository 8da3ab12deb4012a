package gaussian

import (
	"fmt"
	"math"

	"github.com/Gutkaq/entropy/algebra"
)

// Int is a Gaussian integer a + b·i with int32 components.
// The zero value is the additive identity.
type Int struct {
	A int32 // real part
	B int32 // imaginary part
}

// New returns the Gaussian integer a + b·i.
func New(a, b int32) Int {
	return Int{A: a, B: b}
}

// Zero returns the additive identity.
func Zero() Int { return Int{} }

// One returns the multiplicative identity.
func One() Int { return Int{A: 1} }

// I returns the imaginary unit.
func I() Int { return Int{B: 1} }

// IsZero reports whether z is the zero element.
func (z Int) IsZero() bool {
	return z.A == 0 && z.B == 0
}

// IsUnit reports whether z has a multiplicative inverse in Z[i],
// i.e. whether its norm is 1.
func (z Int) IsUnit() bool {
	return z.NormSq() == 1
}

// Conj returns the complex conjugate a - b·i.
func (z Int) Conj() Int {
	return Int{A: z.A, B: -z.B}
}

// Neg returns -z.
func (z Int) Neg() Int {
	return Int{A: -z.A, B: -z.B}
}

// Add returns z + w. Component arithmetic wraps on overflow.
func (z Int) Add(w Int) Int {
	return Int{A: z.A + w.A, B: z.B + w.B}
}

// Sub returns z - w. Component arithmetic wraps on overflow.
func (z Int) Sub(w Int) Int {
	return Int{A: z.A - w.A, B: z.B - w.B}
}

// NormSq returns the field norm a² + b².
func (z Int) NormSq() uint64 {
	a := int64(z.A)
	b := int64(z.B)
	return uint64(a*a + b*b)
}

// Mul returns z·w, computed in 64-bit and checked against the component
// range. Returns algebra.ErrOverflow if either component would not fit.
func (z Int) Mul(w Int) (Int, error) {
	re := int64(z.A)*int64(w.A) - int64(z.B)*int64(w.B)
	im := int64(z.A)*int64(w.B) + int64(z.B)*int64(w.A)
	if re > math.MaxInt32 || re < math.MinInt32 || im > math.MaxInt32 || im < math.MinInt32 {
		return Int{}, algebra.ErrOverflow
	}
	return Int{A: int32(re), B: int32(im)}, nil
}

// String renders z as "a + bi".
func (z Int) String() string {
	return fmt.Sprintf("%d + %di", z.A, z.B)
}
