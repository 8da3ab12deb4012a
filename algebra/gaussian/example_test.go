package gaussian_test

import (
	"fmt"

	"github.com/Gutkaq/entropy/algebra/gaussian"
)

func ExampleInt_DivRem() {
	q, r, _ := gaussian.New(3, 4).DivRem(gaussian.New(1, 2))
	fmt.Printf("q=%v r=%v\n", q, r)

	// Output:
	// q=2 + 0i r=1 + 0i
}

func ExampleGCD() {
	g, _ := gaussian.GCD(gaussian.New(10, 0), gaussian.New(6, 0))
	fmt.Println(g)

	// Output:
	// 2 + 0i
}

func ExampleXGCD() {
	g, x, y, _ := gaussian.XGCD(gaussian.New(10, 0), gaussian.New(6, 0))

	ax, _ := gaussian.New(10, 0).Mul(x)
	by, _ := gaussian.New(6, 0).Mul(y)
	fmt.Printf("g=%v a·x+b·y=%v\n", g, ax.Add(by))

	// Output:
	// g=2 + 0i a·x+b·y=2 + 0i
}
