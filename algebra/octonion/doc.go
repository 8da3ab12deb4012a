// Package octonion implements exact arithmetic over integral octonions,
// the 8-dimensional normed algebra that is neither commutative nor
// associative. Associativity survives only in weakened forms: the
// alternative laws and the Moufang identities, both of which the
// structural tests exercise.
//
// The product rule is generated from the seven lines of the Fano plane;
// the basis triple (e1, e2, e4) spans an associative quaternion
// subalgebra whose units drive canonicalization.
//
// Components use the same doubled storage as package hurwitz: stored
// values are twice the mathematical ones, and a valid element is
// parity-homogeneous across all eight components. Unlike the quaternion
// case the parity lattice is not closed under multiplication of
// half-integer elements, and its deep holes sit at exactly the divisor
// norm, so DivRem guarantees Norm(r) <= Norm(d) with equality only at
// those holes.
package octonion
