// Package algebra defines the error taxonomy shared by the gaussian,
// hurwitz and octonion integer algebras.
//
// All fallible operations in the subpackages return one of the sentinel
// errors below. The conditions are deterministic, so callers never retry;
// they surface the error or switch to a wider representation themselves.
package algebra

import "errors"

var (
	// ErrOverflow reports that narrowing an intermediate result to the
	// 32-bit component width would lose information.
	ErrOverflow = errors.New("algebra: integer overflow")

	// ErrDivisionByZero reports a zero divisor.
	ErrDivisionByZero = errors.New("algebra: division by zero")

	// ErrNotDivisible reports that exact division left a nonzero remainder.
	ErrNotDivisible = errors.New("algebra: not exactly divisible")

	// ErrNoInverse reports inversion of an element whose norm is not 1.
	ErrNoInverse = errors.New("algebra: element has no inverse")

	// ErrInvalidHalfInteger reports half-integer construction from
	// components that do not share a common parity.
	ErrInvalidHalfInteger = errors.New("algebra: half-integer components must share parity")

	// ErrGCDStalled reports that a Euclidean reduction stopped making
	// progress. Only the octonion lattice can trigger this: its deep
	// holes sit at exactly the divisor norm, so a remainder may fail to
	// shrink.
	ErrGCDStalled = errors.New("algebra: gcd reduction stalled")
)
