package hurwitz

import "github.com/Gutkaq/entropy/algebra"

// Lattice helpers expose the Hurwitz order as a scaled D4 lattice in the
// doubled coordinates. They are read-only coordinate views for geometry
// consumers and impose nothing on the arithmetic core.

// LatticeVector returns the stored (doubled) coordinates of x.
func (x Int) LatticeVector() [4]int32 {
	return [4]int32{x.A, x.B, x.C, x.D}
}

// FromLatticeVector returns the element at the given doubled coordinates.
// Coordinates outside the lattice yield algebra.ErrInvalidHalfInteger.
func FromLatticeVector(v [4]int32) (Int, error) {
	if !InLattice(v) {
		return Int{}, algebra.ErrInvalidHalfInteger
	}
	return Int{A: v[0], B: v[1], C: v[2], D: v[3]}, nil
}

// LatticeDistSq returns the squared Euclidean distance between x and w
// in mathematical units.
func (x Int) LatticeDistSq(w Int) uint64 {
	return x.Sub(w).NormSq()
}

// InLattice reports whether the doubled coordinates name a Hurwitz
// quaternion: all four must share a parity.
func InLattice(v [4]int32) bool {
	return homogeneous(v[0], v[1], v[2], v[3])
}
