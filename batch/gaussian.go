package batch

import (
	"fmt"

	"github.com/Gutkaq/entropy/algebra/gaussian"
)

// GaussianAdd stores a[i] + b[i] into dst[i]. All slices must share a
// length; component arithmetic wraps exactly as gaussian.Int.Add does.
func GaussianAdd(dst, a, b []gaussian.Int) {
	checkLen(len(dst), len(a), len(b))
	if vectorized() {
		gaussianAddLanes(dst, a, b)
		return
	}
	gaussianAddScalar(dst, a, b)
}

// GaussianSub stores a[i] - b[i] into dst[i].
func GaussianSub(dst, a, b []gaussian.Int) {
	checkLen(len(dst), len(a), len(b))
	if vectorized() {
		gaussianSubLanes(dst, a, b)
		return
	}
	gaussianSubScalar(dst, a, b)
}

// GaussianNeg stores -a[i] into dst[i].
func GaussianNeg(dst, a []gaussian.Int) {
	checkLen2(len(dst), len(a))
	if vectorized() {
		gaussianNegLanes(dst, a)
		return
	}
	gaussianNegScalar(dst, a)
}

// GaussianConj stores conj(a[i]) into dst[i].
func GaussianConj(dst, a []gaussian.Int) {
	checkLen2(len(dst), len(a))
	if vectorized() {
		gaussianConjLanes(dst, a)
		return
	}
	gaussianConjScalar(dst, a)
}

// GaussianNormSq stores NormSq(a[i]) into dst[i].
func GaussianNormSq(dst []uint64, a []gaussian.Int) {
	checkLen2(len(dst), len(a))
	if vectorized() {
		gaussianNormSqLanes(dst, a)
		return
	}
	gaussianNormSqScalar(dst, a)
}

// GaussianMul stores a[i] · b[i] into dst[i]. Multiplication can overflow
// per element, so it always runs the scalar kernel and stops at the first
// failing index; dst holds the products computed before the failure.
func GaussianMul(dst, a, b []gaussian.Int) error {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		p, err := a[i].Mul(b[i])
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dst[i] = p
	}
	return nil
}

// GaussianGCD stores GCD(a[i], b[i]) into dst[i], stopping at the first
// failing index.
func GaussianGCD(dst, a, b []gaussian.Int) error {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		g, err := gaussian.GCD(a[i], b[i])
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dst[i] = g
	}
	return nil
}

// GaussianDivRem stores the quotient and remainder of a[i] divided by
// b[i] into dstQ[i] and dstR[i], stopping at the first failing index.
func GaussianDivRem(dstQ, dstR, a, b []gaussian.Int) error {
	checkLen(len(dstQ), len(a), len(b))
	checkLen2(len(dstR), len(a))
	for i := range a {
		q, r, err := a[i].DivRem(b[i])
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dstQ[i], dstR[i] = q, r
	}
	return nil
}

// GaussianDivExact stores a[i] / b[i] into dst[i], stopping at the first
// index that divides with a remainder or fails.
func GaussianDivExact(dst, a, b []gaussian.Int) error {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		q, err := a[i].DivExact(b[i])
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dst[i] = q
	}
	return nil
}

// GaussianInvUnit stores the inverse of the unit a[i] into dst[i],
// stopping at the first non-unit.
func GaussianInvUnit(dst, a []gaussian.Int) error {
	checkLen2(len(dst), len(a))
	for i := range a {
		inv, err := a[i].InvUnit()
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dst[i] = inv
	}
	return nil
}

// GaussianFraction stores a[i] / b[i] as a reduced exact fraction into
// dst[i], stopping at the first failing index.
func GaussianFraction(dst []gaussian.Fraction, a, b []gaussian.Int) error {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		f, err := gaussian.NewFraction(a[i], b[i])
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dst[i] = f.Reduce()
	}
	return nil
}

// GaussianIsZero stores whether a[i] is zero into dst[i].
func GaussianIsZero(dst []bool, a []gaussian.Int) {
	checkLen2(len(dst), len(a))
	for i := range a {
		dst[i] = a[i].IsZero()
	}
}

// GaussianIsUnit stores whether a[i] has norm 1 into dst[i].
func GaussianIsUnit(dst []bool, a []gaussian.Int) {
	checkLen2(len(dst), len(a))
	for i := range a {
		dst[i] = a[i].IsUnit()
	}
}

// GaussianNormalize stores the canonical associate of a[i] into dst[i].
func GaussianNormalize(dst, a []gaussian.Int) {
	checkLen2(len(dst), len(a))
	for i := range a {
		dst[i] = a[i].Normalize()
	}
}

// GaussianAdd4 adds one full lane of four elements.
func GaussianAdd4(a, b [GaussianLanes]gaussian.Int) [GaussianLanes]gaussian.Int {
	return [GaussianLanes]gaussian.Int{
		a[0].Add(b[0]),
		a[1].Add(b[1]),
		a[2].Add(b[2]),
		a[3].Add(b[3]),
	}
}

// GaussianSub4 subtracts one full lane of four elements.
func GaussianSub4(a, b [GaussianLanes]gaussian.Int) [GaussianLanes]gaussian.Int {
	return [GaussianLanes]gaussian.Int{
		a[0].Sub(b[0]),
		a[1].Sub(b[1]),
		a[2].Sub(b[2]),
		a[3].Sub(b[3]),
	}
}

// GaussianMul4 multiplies one full lane of four elements. An overflow in
// any lane position fails the whole lane.
func GaussianMul4(a, b [GaussianLanes]gaussian.Int) ([GaussianLanes]gaussian.Int, error) {
	var dst [GaussianLanes]gaussian.Int
	for i := range a {
		p, err := a[i].Mul(b[i])
		if err != nil {
			return [GaussianLanes]gaussian.Int{}, fmt.Errorf("batch: lane %d: %w", i, err)
		}
		dst[i] = p
	}
	return dst, nil
}

func gaussianAddLanes(dst, a, b []gaussian.Int) {
	n := len(a) &^ (GaussianLanes - 1)
	for i := 0; i < n; i += GaussianLanes {
		dst[i+0] = a[i+0].Add(b[i+0])
		dst[i+1] = a[i+1].Add(b[i+1])
		dst[i+2] = a[i+2].Add(b[i+2])
		dst[i+3] = a[i+3].Add(b[i+3])
	}
	gaussianAddScalar(dst[n:], a[n:], b[n:])
}

func gaussianAddScalar(dst, a, b []gaussian.Int) {
	for i := range a {
		dst[i] = a[i].Add(b[i])
	}
}

func gaussianSubLanes(dst, a, b []gaussian.Int) {
	n := len(a) &^ (GaussianLanes - 1)
	for i := 0; i < n; i += GaussianLanes {
		dst[i+0] = a[i+0].Sub(b[i+0])
		dst[i+1] = a[i+1].Sub(b[i+1])
		dst[i+2] = a[i+2].Sub(b[i+2])
		dst[i+3] = a[i+3].Sub(b[i+3])
	}
	gaussianSubScalar(dst[n:], a[n:], b[n:])
}

func gaussianSubScalar(dst, a, b []gaussian.Int) {
	for i := range a {
		dst[i] = a[i].Sub(b[i])
	}
}

func gaussianNegLanes(dst, a []gaussian.Int) {
	n := len(a) &^ (GaussianLanes - 1)
	for i := 0; i < n; i += GaussianLanes {
		dst[i+0] = a[i+0].Neg()
		dst[i+1] = a[i+1].Neg()
		dst[i+2] = a[i+2].Neg()
		dst[i+3] = a[i+3].Neg()
	}
	gaussianNegScalar(dst[n:], a[n:])
}

func gaussianNegScalar(dst, a []gaussian.Int) {
	for i := range a {
		dst[i] = a[i].Neg()
	}
}

func gaussianConjLanes(dst, a []gaussian.Int) {
	n := len(a) &^ (GaussianLanes - 1)
	for i := 0; i < n; i += GaussianLanes {
		dst[i+0] = a[i+0].Conj()
		dst[i+1] = a[i+1].Conj()
		dst[i+2] = a[i+2].Conj()
		dst[i+3] = a[i+3].Conj()
	}
	gaussianConjScalar(dst[n:], a[n:])
}

func gaussianConjScalar(dst, a []gaussian.Int) {
	for i := range a {
		dst[i] = a[i].Conj()
	}
}

func gaussianNormSqLanes(dst []uint64, a []gaussian.Int) {
	n := len(a) &^ (GaussianLanes - 1)
	for i := 0; i < n; i += GaussianLanes {
		dst[i+0] = a[i+0].NormSq()
		dst[i+1] = a[i+1].NormSq()
		dst[i+2] = a[i+2].NormSq()
		dst[i+3] = a[i+3].NormSq()
	}
	gaussianNormSqScalar(dst[n:], a[n:])
}

func gaussianNormSqScalar(dst []uint64, a []gaussian.Int) {
	for i := range a {
		dst[i] = a[i].NormSq()
	}
}
