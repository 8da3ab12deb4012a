package gaussian

// Lattice helpers expose Z[i] as the square lattice Z². They are read-only
// coordinate views for geometry consumers and impose nothing on the
// arithmetic core.

// LatticeVector returns the Z² coordinates of z.
func (z Int) LatticeVector() [2]int32 {
	return [2]int32{z.A, z.B}
}

// FromLatticeVector returns the element at the given Z² coordinates.
func FromLatticeVector(v [2]int32) Int {
	return Int{A: v[0], B: v[1]}
}

// LatticeDistSq returns the squared Euclidean distance between z and w.
func (z Int) LatticeDistSq(w Int) uint64 {
	return z.Sub(w).NormSq()
}

// InLattice reports whether the coordinates name a lattice point.
// Every integer pair lies on Z².
func InLattice(v [2]int32) bool {
	return true
}
