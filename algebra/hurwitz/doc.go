// Package hurwitz implements exact arithmetic over the Hurwitz quaternions,
// the 4-dimensional non-commutative (but associative) lattice algebra of
// quaternions whose coordinates are either all integers or all
// half-odd-integers.
//
// Components are stored at twice their mathematical value so both kinds
// share one int32 representation: even stored components encode integers,
// odd stored components encode half-integers. The stored components of a
// valid element always share a parity; FromHalves rejects mixed input.
//
// Because operands carry the doubling, a raw product of stored components
// is scaled by four. The multiplication kernel halves it exactly once to
// return to the doubled convention; the parity invariant guarantees the
// halving is exact.
package hurwitz
