package octonion

import (
	"math/rand"
	"testing"

	"github.com/Gutkaq/entropy/algebra"
)

func TestGCDZeroAndSelf(t *testing.T) {
	a := New([8]int32{3, -1, 2, 5, 0, 1, 0, -2})

	g, err := GCD(a, Zero())
	if err != nil {
		t.Fatal(err)
	}
	if g != a.Normalize() {
		t.Errorf("gcd(a, 0) = %v, want %v", g, a.Normalize())
	}

	g, err = GCD(a, a)
	if err != nil {
		t.Fatal(err)
	}
	if g != a.Normalize() {
		t.Errorf("gcd(a, a) = %v, want %v", g, a.Normalize())
	}
}

func TestGCDUnitCoprime(t *testing.T) {
	a := New([8]int32{4, 1, 0, -2, 3, 0, 1, 0})
	g, err := GCD(a, One())
	if err != nil {
		t.Fatal(err)
	}
	if g != One() {
		t.Errorf("gcd(a, 1) = %v, want 1", g)
	}
}

func TestGCDDividesMultiple(t *testing.T) {
	// b = m·a makes a an exact divisor of b, so gcd(b, a) reduces to a in
	// one step and right-divides both inputs.
	rng := rand.New(rand.NewSource(46))
	for i := 0; i < 200; i++ {
		a := randIntegral(rng, 20)
		m := randIntegral(rng, 20)
		if a.IsZero() || m.IsZero() {
			continue
		}
		b := mustMul(t, m, a)

		g, err := GCD(b, a)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := a.DivExact(g); err != nil {
			t.Fatalf("gcd %v does not divide a=%v: %v", g, a, err)
		}
		if _, err := b.DivExact(g); err != nil {
			t.Fatalf("gcd %v does not divide b=%v: %v", g, b, err)
		}
	}
}

func TestGCDStallsAtDeepHole(t *testing.T) {
	// (1+e1+e2+e3) over 2 sits at a deep hole: the remainder norm cannot
	// drop below the divisor norm and the loop must refuse to cycle.
	x := New([8]int32{1, 1, 1, 1, 0, 0, 0, 0})
	d := New([8]int32{2, 0, 0, 0, 0, 0, 0, 0})
	if _, err := GCD(x, d); err != algebra.ErrGCDStalled {
		t.Errorf("err = %v, want ErrGCDStalled", err)
	}
}

func TestNormalizeIdempotentAndSign(t *testing.T) {
	rng := rand.New(rand.NewSource(47))
	for i := 0; i < 1000; i++ {
		x := randInt(rng, 200)
		n := x.Normalize()
		if n.Normalize() != n {
			t.Fatalf("normalize not idempotent: %v -> %v -> %v", x, n, n.Normalize())
		}
		if n.NormSq() != x.NormSq() {
			t.Fatalf("normalize changed norm: %v -> %v", x, n)
		}
		if x.Neg().Normalize() != n {
			t.Fatalf("normalize distinguishes x from -x: %v vs %v", x.Neg().Normalize(), n)
		}
	}
}

func TestAssociatesAreUnitMultiples(t *testing.T) {
	x := New([8]int32{3, -4, 1, 2, 0, 5, -1, 0})
	assocs := x.Associates()
	for i, u := range units {
		ux := mustMul(t, u, x)
		if assocs[i] != ux {
			t.Errorf("associate %d = %v, want %v·x = %v", i, assocs[i], u, ux)
		}
	}
}
