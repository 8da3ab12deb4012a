// Package gaussian implements exact arithmetic over the Gaussian integers
// Z[i], the 2-dimensional commutative and associative lattice algebra.
//
// Elements are immutable pairs of int32 components. Addition, subtraction
// and negation wrap like ordinary two's-complement arithmetic; products are
// computed in 64-bit and checked before narrowing. Division with remainder
// satisfies the Euclidean property Norm(r) < Norm(d), which makes the GCD
// loop terminate: the remainder norm strictly decreases at every step.
//
// Z[i] is the only algebra in this module where an extended GCD is offered;
// Bézout coefficients need an unambiguous multiplication order, which the
// quaternion and octonion algebras do not have.
package gaussian
