package octonion

import (
	"testing"

	"github.com/Gutkaq/entropy/algebra"
)

func TestNewFraction(t *testing.T) {
	// (3+4e1) / (1+2e1): numerator (3+4e1)(1-2e1) = 11-2e1 over norm 5.
	x := New([8]int32{3, 4, 0, 0, 0, 0, 0, 0})
	d := New([8]int32{1, 2, 0, 0, 0, 0, 0, 0})
	f, err := NewFraction(x, d)
	if err != nil {
		t.Fatal(err)
	}
	if f.Num != New([8]int32{11, -2, 0, 0, 0, 0, 0, 0}) || f.Den != 5 {
		t.Errorf("fraction = %v", f)
	}

	if _, err := NewFraction(One(), Zero()); err != algebra.ErrDivisionByZero {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestInvFraction(t *testing.T) {
	x := New([8]int32{1, 1, 1, 1, 1, 1, 1, 1})
	f, err := x.InvFraction()
	if err != nil {
		t.Fatal(err)
	}
	if f.Num != x.Conj() || f.Den != 8 {
		t.Errorf("1/x = %v, want conj(x) / 8", f)
	}

	if _, err := Zero().InvFraction(); err != algebra.ErrDivisionByZero {
		t.Errorf("err = %v, want ErrDivisionByZero", err)
	}
}

func TestReduceParitySafe(t *testing.T) {
	// Stored all-threes over 12 reduce by the full gcd 3 and stay odd.
	odd, _ := FromHalves([8]int32{3, 3, 3, 3, 3, 3, 3, 3})
	f := Fraction{Num: odd, Den: 12}
	r := f.Reduce()
	want, _ := FromHalves([8]int32{1, 1, 1, 1, 1, 1, 1, 1})
	if r.Num != want || r.Den != 4 {
		t.Errorf("reduced = %v, want all-halves / 4", r)
	}

	// Halving (2, 4, 2, ..., 2) would mix parities; the factor of two
	// must be kept even though it divides the denominator.
	mixed := Int([8]int32{2, 4, 2, 2, 2, 2, 2, 2})
	g := Fraction{Num: mixed, Den: 4}
	if got := g.Reduce(); got != g {
		t.Errorf("reduced = %v, want unchanged %v", got, g)
	}

	z := Fraction{Num: Zero(), Den: 9}.Reduce()
	if z.Num != Zero() || z.Den != 1 {
		t.Errorf("0/9 reduced = %v, want zero over 1", z)
	}
}
