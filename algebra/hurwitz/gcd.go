package hurwitz

// Associates returns the eight Lipschitz-unit multiples of x on the left,
// in the order 1·x, i·x, j·x, k·x, (-1)·x, (-i)·x, (-j)·x, (-k)·x.
//
// Left multiples are the right choice here: if d right-divides a then so
// does u·d, so associate classes under left units share their right
// divisibility relations and GCD can canonicalize freely.
func (x Int) Associates() [8]Int {
	li := Int{A: -x.B, B: x.A, C: -x.D, D: x.C}
	lj := Int{A: -x.C, B: x.D, C: x.A, D: -x.B}
	lk := Int{A: -x.D, B: -x.C, C: x.B, D: x.A}
	return [8]Int{x, li, lj, lk, x.Neg(), li.Neg(), lj.Neg(), lk.Neg()}
}

// units lists the Lipschitz unit group in the same order as Associates.
var units = [8]Int{
	{A: 2}, {B: 2}, {C: 2}, {D: 2},
	{A: -2}, {B: -2}, {C: -2}, {D: -2},
}

// Normalize returns the canonical associate of x: the lexicographically
// greatest of the eight left unit multiples by stored (A, B, C, D). The
// units form a group, so associates of an associate are the same eight
// elements and Normalize is idempotent.
func (x Int) Normalize() Int {
	best := x
	for _, c := range x.Associates() {
		if lexLess(best, c) {
			best = c
		}
	}
	return best
}

func lexLess(a, b Int) bool {
	if a.A != b.A {
		return a.A < b.A
	}
	if a.B != b.B {
		return a.B < b.B
	}
	if a.C != b.C {
		return a.C < b.C
	}
	return a.D < b.D
}

// GCD returns a canonicalized greatest common right divisor of a and b.
//
// The iterative Euclidean loop uses the right division x = q·y + r, so
// each step preserves common right factors; it terminates because the
// remainder norm strictly decreases. Multiplication does not commute
// here, so no two-sided gcd or Bézout identity is offered.
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
