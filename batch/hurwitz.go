package batch

import (
	"fmt"

	"github.com/Gutkaq/entropy/algebra/hurwitz"
)

// HurwitzAdd stores a[i] + b[i] into dst[i]. All slices must share a
// length; component arithmetic wraps exactly as hurwitz.Int.Add does.
func HurwitzAdd(dst, a, b []hurwitz.Int) {
	checkLen(len(dst), len(a), len(b))
	if vectorized() {
		hurwitzAddLanes(dst, a, b)
		return
	}
	hurwitzAddScalar(dst, a, b)
}

// HurwitzSub stores a[i] - b[i] into dst[i].
func HurwitzSub(dst, a, b []hurwitz.Int) {
	checkLen(len(dst), len(a), len(b))
	if vectorized() {
		hurwitzSubLanes(dst, a, b)
		return
	}
	hurwitzSubScalar(dst, a, b)
}

// HurwitzNeg stores -a[i] into dst[i].
func HurwitzNeg(dst, a []hurwitz.Int) {
	checkLen2(len(dst), len(a))
	if vectorized() {
		hurwitzNegLanes(dst, a)
		return
	}
	hurwitzNegScalar(dst, a)
}

// HurwitzConj stores conj(a[i]) into dst[i].
func HurwitzConj(dst, a []hurwitz.Int) {
	checkLen2(len(dst), len(a))
	if vectorized() {
		hurwitzConjLanes(dst, a)
		return
	}
	hurwitzConjScalar(dst, a)
}

// HurwitzNormSq stores NormSq(a[i]) into dst[i].
func HurwitzNormSq(dst []uint64, a []hurwitz.Int) {
	checkLen2(len(dst), len(a))
	if vectorized() {
		hurwitzNormSqLanes(dst, a)
		return
	}
	hurwitzNormSqScalar(dst, a)
}

// HurwitzMul stores a[i] · b[i] into dst[i]. Always scalar; stops at the
// first overflowing index with dst holding the earlier products.
func HurwitzMul(dst, a, b []hurwitz.Int) error {
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

// HurwitzGCD stores GCD(a[i], b[i]) into dst[i], stopping at the first
// failing index.
func HurwitzGCD(dst, a, b []hurwitz.Int) error {
	checkLen(len(dst), len(a), len(b))
	for i := range a {
		g, err := hurwitz.GCD(a[i], b[i])
		if err != nil {
			return fmt.Errorf("batch: element %d: %w", i, err)
		}
		dst[i] = g
	}
	return nil
}

// HurwitzAdd2 adds one full lane of two elements.
func HurwitzAdd2(a, b [HurwitzLanes]hurwitz.Int) [HurwitzLanes]hurwitz.Int {
	return [HurwitzLanes]hurwitz.Int{
		a[0].Add(b[0]),
		a[1].Add(b[1]),
	}
}

// HurwitzSub2 subtracts one full lane of two elements.
func HurwitzSub2(a, b [HurwitzLanes]hurwitz.Int) [HurwitzLanes]hurwitz.Int {
	return [HurwitzLanes]hurwitz.Int{
		a[0].Sub(b[0]),
		a[1].Sub(b[1]),
	}
}

// HurwitzMul2 multiplies one full lane of two elements. An overflow in
// either lane position fails the whole lane.
func HurwitzMul2(a, b [HurwitzLanes]hurwitz.Int) ([HurwitzLanes]hurwitz.Int, error) {
	var dst [HurwitzLanes]hurwitz.Int
	for i := range a {
		p, err := a[i].Mul(b[i])
		if err != nil {
			return [HurwitzLanes]hurwitz.Int{}, fmt.Errorf("batch: lane %d: %w", i, err)
		}
		dst[i] = p
	}
	return dst, nil
}

func hurwitzAddLanes(dst, a, b []hurwitz.Int) {
	n := len(a) &^ (HurwitzLanes - 1)
	for i := 0; i < n; i += HurwitzLanes {
		dst[i+0] = a[i+0].Add(b[i+0])
		dst[i+1] = a[i+1].Add(b[i+1])
	}
	hurwitzAddScalar(dst[n:], a[n:], b[n:])
}

func hurwitzAddScalar(dst, a, b []hurwitz.Int) {
	for i := range a {
		dst[i] = a[i].Add(b[i])
	}
}

func hurwitzSubLanes(dst, a, b []hurwitz.Int) {
	n := len(a) &^ (HurwitzLanes - 1)
	for i := 0; i < n; i += HurwitzLanes {
		dst[i+0] = a[i+0].Sub(b[i+0])
		dst[i+1] = a[i+1].Sub(b[i+1])
	}
	hurwitzSubScalar(dst[n:], a[n:], b[n:])
}

func hurwitzSubScalar(dst, a, b []hurwitz.Int) {
	for i := range a {
		dst[i] = a[i].Sub(b[i])
	}
}

func hurwitzNegLanes(dst, a []hurwitz.Int) {
	n := len(a) &^ (HurwitzLanes - 1)
	for i := 0; i < n; i += HurwitzLanes {
		dst[i+0] = a[i+0].Neg()
		dst[i+1] = a[i+1].Neg()
	}
	hurwitzNegScalar(dst[n:], a[n:])
}

func hurwitzNegScalar(dst, a []hurwitz.Int) {
	for i := range a {
		dst[i] = a[i].Neg()
	}
}

func hurwitzConjLanes(dst, a []hurwitz.Int) {
	n := len(a) &^ (HurwitzLanes - 1)
	for i := 0; i < n; i += HurwitzLanes {
		dst[i+0] = a[i+0].Conj()
		dst[i+1] = a[i+1].Conj()
	}
	hurwitzConjScalar(dst[n:], a[n:])
}

func hurwitzConjScalar(dst, a []hurwitz.Int) {
	for i := range a {
		dst[i] = a[i].Conj()
	}
}

func hurwitzNormSqLanes(dst []uint64, a []hurwitz.Int) {
	n := len(a) &^ (HurwitzLanes - 1)
	for i := 0; i < n; i += HurwitzLanes {
		dst[i+0] = a[i+0].NormSq()
		dst[i+1] = a[i+1].NormSq()
	}
	hurwitzNormSqScalar(dst[n:], a[n:])
}

func hurwitzNormSqScalar(dst []uint64, a []hurwitz.Int) {
	for i := range a {
		dst[i] = a[i].NormSq()
	}
}
