package hurwitz

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Gutkaq/entropy/algebra"
)

// randInt returns a random Hurwitz quaternion, integer or half-integer
// with equal probability, with components roughly inside ±span.
func randInt(rng *rand.Rand, span int32) Int {
	par := int32(rng.Intn(2))
	h := func() int32 { return (rng.Int31n(span)-span/2)*2 + par }
	q, err := FromHalves(h(), h(), h(), h())
	if err != nil {
		panic(err)
	}
	return q
}

func mustMul(t *testing.T, a, b Int) Int {
	t.Helper()
	p, err := a.Mul(b)
	if err != nil {
		t.Fatalf("%v · %v: %v", a, b, err)
	}
	return p
}

func TestBasisProducts(t *testing.T) {
	cases := []struct {
		name string
		a, b Int
		want Int
	}{
		{"i·j", I(), J(), K()},
		{"j·i", J(), I(), K().Neg()},
		{"j·k", J(), K(), I()},
		{"k·j", K(), J(), I().Neg()},
		{"k·i", K(), I(), J()},
		{"i·k", I(), K(), J().Neg()},
		{"i·i", I(), I(), One().Neg()},
		{"j·j", J(), J(), One().Neg()},
		{"k·k", K(), K(), One().Neg()},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustMul(t, tc.a, tc.b); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNotCommutative(t *testing.T) {
	if mustMul(t, I(), J()) == mustMul(t, J(), I()) {
		t.Fatal("i·j = j·i, quaternions should anticommute")
	}
}

func TestAssociativeAndDistributive(t *testing.T) {
	rng := rand.New(rand.NewSource(30))
	for i := 0; i < 500; i++ {
		a := randInt(rng, 40)
		b := randInt(rng, 40)
		c := randInt(rng, 40)

		if mustMul(t, mustMul(t, a, b), c) != mustMul(t, a, mustMul(t, b, c)) {
			t.Fatalf("(a·b)·c != a·(b·c) for a=%v b=%v c=%v", a, b, c)
		}
		if mustMul(t, a, b.Add(c)) != mustMul(t, a, b).Add(mustMul(t, a, c)) {
			t.Fatalf("a·(b+c) != a·b + a·c for a=%v b=%v c=%v", a, b, c)
		}
	}
}

func TestNormMultiplicative(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	for i := 0; i < 1000; i++ {
		a := randInt(rng, 100)
		b := randInt(rng, 100)
		p := mustMul(t, a, b)
		if p.NormSq() != a.NormSq()*b.NormSq() {
			t.Fatalf("N(a·b) = %d, want N(a)·N(b) = %d (a=%v b=%v)",
				p.NormSq(), a.NormSq()*b.NormSq(), a, b)
		}
	}
}

func TestConjAntiAutomorphism(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	for i := 0; i < 500; i++ {
		a := randInt(rng, 100)
		b := randInt(rng, 100)
		if mustMul(t, a, b).Conj() != mustMul(t, b.Conj(), a.Conj()) {
			t.Fatalf("conj(a·b) != conj(b)·conj(a) for a=%v b=%v", a, b)
		}
	}
}

func TestOmegaOrderThree(t *testing.T) {
	w := Omega()
	if !w.IsUnit() {
		t.Fatal("omega is not a unit")
	}
	w2 := mustMul(t, w, w)
	if w2 == One() {
		t.Fatal("omega has order 2")
	}
	if w3 := mustMul(t, w2, w); w3 != One() {
		t.Fatalf("omega³ = %v, want 1", w3)
	}
}

func TestFromHalvesParity(t *testing.T) {
	if _, err := FromHalves(1, 1, 1, 2); err != algebra.ErrInvalidHalfInteger {
		t.Errorf("mixed parity err = %v, want ErrInvalidHalfInteger", err)
	}
	if _, err := FromHalves(0, 2, 0, 1); err != algebra.ErrInvalidHalfInteger {
		t.Errorf("mixed parity err = %v, want ErrInvalidHalfInteger", err)
	}

	q, err := FromHalves(-1, 3, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if q.LatticeVector() != [4]int32{-1, 3, 1, 1} {
		t.Errorf("halves round-trip = %v", q.LatticeVector())
	}
	if New(2, -3, 0, 1) != (Int{A: 4, B: -6, C: 0, D: 2}) {
		t.Errorf("integer construction not doubled")
	}
}

func TestMulOverflow(t *testing.T) {
	big := Int{A: math.MaxInt32 - 1, B: math.MaxInt32 - 1, C: math.MaxInt32 - 1, D: math.MaxInt32 - 1}
	if _, err := big.Mul(big); err != algebra.ErrOverflow {
		t.Errorf("err = %v, want ErrOverflow", err)
	}
}

func TestUnitsInvertible(t *testing.T) {
	us := append(units[:], Omega(), Omega().Conj())
	for _, u := range us {
		if !u.IsUnit() {
			t.Fatalf("%v should be a unit", u)
		}
		inv, err := u.InvUnit()
		if err != nil {
			t.Fatal(err)
		}
		if mustMul(t, u, inv) != One() || mustMul(t, inv, u) != One() {
			t.Fatalf("inverse of %v wrong: %v", u, inv)
		}
	}

	if _, err := New(1, 1, 0, 0).InvUnit(); err != algebra.ErrNoInverse {
		t.Errorf("err = %v, want ErrNoInverse", err)
	}
	if _, err := Zero().InvUnit(); err != algebra.ErrNoInverse {
		t.Errorf("err = %v, want ErrNoInverse", err)
	}
}

func TestString(t *testing.T) {
	if got := New(1, -2, 3, 0).String(); got != "1 + -2i + 3j + 0k" {
		t.Errorf("String = %q", got)
	}
	h, _ := FromHalves(1, 1, 1, -1)
	if got := h.String(); got != "0.5 + 0.5i + 0.5j + -0.5k" {
		t.Errorf("String = %q", got)
	}
}

func TestLattice(t *testing.T) {
	if !InLattice([4]int32{1, 3, -1, 5}) || !InLattice([4]int32{0, 2, 4, -6}) {
		t.Error("homogeneous vectors rejected")
	}
	if InLattice([4]int32{1, 2, 1, 1}) {
		t.Error("mixed-parity vector accepted")
	}

	if _, err := FromLatticeVector([4]int32{1, 0, 0, 0}); err != algebra.ErrInvalidHalfInteger {
		t.Errorf("err = %v, want ErrInvalidHalfInteger", err)
	}
	q, err := FromLatticeVector([4]int32{2, -4, 0, 2})
	if err != nil {
		t.Fatal(err)
	}
	if q != New(1, -2, 0, 1) {
		t.Errorf("FromLatticeVector = %v", q)
	}

	if d := New(1, 0, 0, 0).LatticeDistSq(New(0, 1, 0, 0)); d != 2 {
		t.Errorf("dist² = %d, want 2", d)
	}
}
