package octonion

import "github.com/Gutkaq/entropy/algebra"

// Associates returns the eight unit multiples of x on the left, taken
// over the units of the (e1, e2, e4) quaternion subalgebra: 1·x, e1·x,
// e2·x, e4·x and their negations.
func (x Int) Associates() [8]Int {
	l1 := leftBasisMul(1, x)
	l2 := leftBasisMul(2, x)
	l4 := leftBasisMul(4, x)
	return [8]Int{x, l1, l2, l4, x.Neg(), l1.Neg(), l2.Neg(), l4.Neg()}
}

// units lists the canonical unit set in the same order as Associates.
var units = [8]Int{
	One(), E(1), E(2), E(4),
	One().Neg(), E(1).Neg(), E(2).Neg(), E(4).Neg(),
}

// leftBasisMul returns e_k · x straight off the basis product table.
func leftBasisMul(k int, x Int) Int {
	var y Int
	for j := 0; j < 8; j++ {
		y[mulIndex[k][j]] = mulSign[k][j] * x[j]
	}
	return y
}

// Normalize returns the canonical associate of x: the lexicographically
// greater of x and -x by stored components.
//
// Canonicalization deliberately uses only the central units ±1. The
// imaginary units do not act associatively on arbitrary elements, so
// their orbit is not closed under composition and selecting across the
// full eight-element associate set would not be idempotent.
func (x Int) Normalize() Int {
	if n := x.Neg(); lexLess(x, n) {
		return n
	}
	return x
}

func lexLess(a, b Int) bool {
	for i := 0; i < 8; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// GCD returns a sign-canonicalized greatest common divisor of a and b,
// computed by the iterative remainder loop over DivRem.
//
// The octonion lattice is not quite Euclidean: DivRem can return a
// remainder whose norm equals the divisor norm at a lattice deep hole.
// The loop treats a non-shrinking remainder as a stall and reports
// algebra.ErrGCDStalled rather than cycling.
func GCD(a, b Int) (Int, error) {
	x := a.Normalize()
	y := b.Normalize()
	for !y.IsZero() {
		_, r, err := x.DivRem(y)
		if err != nil {
			return Int{}, err
		}
		if r.NormSq() >= y.NormSq() {
			return Int{}, algebra.ErrGCDStalled
		}
		x, y = y, r
	}
	return x.Normalize(), nil
}
