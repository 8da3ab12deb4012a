package octonion

import "github.com/Gutkaq/entropy/algebra"

// Lattice helpers expose the integral octonions through their doubled
// coordinates. They are read-only coordinate views for geometry
// consumers and impose nothing on the arithmetic core.

// LatticeVector returns the stored (doubled) coordinates of x.
func (x Int) LatticeVector() [8]int32 {
	return [8]int32(x)
}

// FromLatticeVector returns the element at the given doubled
// coordinates. Coordinates outside the lattice yield
// algebra.ErrInvalidHalfInteger.
func FromLatticeVector(v [8]int32) (Int, error) {
	if !InLattice(v) {
		return Int{}, algebra.ErrInvalidHalfInteger
	}
	return Int(v), nil
}

// LatticeDistSq returns the squared Euclidean distance between x and y
// in mathematical units.
func (x Int) LatticeDistSq(y Int) uint64 {
	return x.Sub(y).NormSq()
}

// InLattice reports whether the doubled coordinates name a point of the
// refined octonion lattice: parity-homogeneous components whose sum is
// divisible by four. The arithmetic element type only requires the
// parity condition; the divisibility refinement matters to geometry
// consumers working on the denser sublattice.
func InLattice(v [8]int32) bool {
	if !homogeneous(v) {
		return false
	}
	var s int32
	for _, c := range v {
		s += c
	}
	return s&3 == 0
}
