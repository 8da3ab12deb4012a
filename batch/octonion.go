package batch

import (
	"fmt"

	"github.com/Gutkaq/entropy/algebra/octonion"
)

// An octonion fills a whole 256-bit lane on its own, so the lane kernels
// here are straight loops; the dual-path split is kept so the engine
// treats all three algebras uniformly and stays testable per path.

// OctonionAdd stores a[i] + b[i] into dst[i]. All slices must share a
// length; component arithmetic wraps exactly as octonion.Int.Add does.
func OctonionAdd(dst, a, b []octonion.Int) {
	checkLen(len(dst), len(a), len(b))
	if vectorized() {
		octonionAddLanes(dst, a, b)
		return
	}
	octonionAddScalar(dst, a, b)
}

// OctonionSub stores a[i] - b[i] into dst[i].
func OctonionSub(dst, a, b []octonion.Int) {
	checkLen(len(dst), len(a), len(b))
	if vectorized() {
		octonionSubLanes(dst, a, b)
		return
	}
	octonionSubScalar(dst, a, b)
}

// OctonionNeg stores -a[i] into dst[i].
func OctonionNeg(dst, a []octonion.Int) {
	checkLen2(len(dst), len(a))
	for i := range a {
		dst[i] = a[i].Neg()
	}
}

// OctonionConj stores conj(a[i]) into dst[i].
func OctonionConj(dst, a []octonion.Int) {
	checkLen2(len(dst), len(a))
	for i := range a {
		dst[i] = a[i].Conj()
	}
}

// OctonionNormSq stores NormSq(a[i]) into dst[i].
func OctonionNormSq(dst []uint64, a []octonion.Int) {
	checkLen2(len(dst), len(a))
	for i := range a {
		dst[i] = a[i].NormSq()
	}
}

// OctonionMul stores a[i] · b[i] into dst[i]. Always scalar; stops at the
// first overflowing index with dst holding the earlier products.
func OctonionMul(dst, a, b []octonion.Int) error {
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

// OctonionAdd1 adds one full lane, a single element at this width.
func OctonionAdd1(a, b [OctonionLanes]octonion.Int) [OctonionLanes]octonion.Int {
	return [OctonionLanes]octonion.Int{a[0].Add(b[0])}
}

// OctonionSub1 subtracts one full lane, a single element at this width.
func OctonionSub1(a, b [OctonionLanes]octonion.Int) [OctonionLanes]octonion.Int {
	return [OctonionLanes]octonion.Int{a[0].Sub(b[0])}
}

// OctonionMul1 multiplies one full lane, a single element at this width.
func OctonionMul1(a, b [OctonionLanes]octonion.Int) ([OctonionLanes]octonion.Int, error) {
	p, err := a[0].Mul(b[0])
	if err != nil {
		return [OctonionLanes]octonion.Int{}, fmt.Errorf("batch: lane 0: %w", err)
	}
	return [OctonionLanes]octonion.Int{p}, nil
}

func octonionAddLanes(dst, a, b []octonion.Int) {
	for i := range a {
		dst[i] = a[i].Add(b[i])
	}
}

func octonionAddScalar(dst, a, b []octonion.Int) {
	for i := range a {
		dst[i] = a[i].Add(b[i])
	}
}

func octonionSubLanes(dst, a, b []octonion.Int) {
	for i := range a {
		dst[i] = a[i].Sub(b[i])
	}
}

func octonionSubScalar(dst, a, b []octonion.Int) {
	for i := range a {
		dst[i] = a[i].Sub(b[i])
	}
}
