// Command latticeinfo prints the detected CPU capabilities, the batch
// execution path they select, and a worked division/gcd example per
// algebra.
//
// Usage:
//
//	latticeinfo [flags]
//
// Examples:
//
//	latticeinfo
//	latticeinfo -scalar
//	latticeinfo -demo=false
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/Gutkaq/entropy/algebra/gaussian"
	"github.com/Gutkaq/entropy/algebra/hurwitz"
	"github.com/Gutkaq/entropy/algebra/octonion"
	"github.com/Gutkaq/entropy/batch"
	"github.com/Gutkaq/entropy/internal/cpu"
)

func main() {
	scalar := flag.Bool("scalar", false, "force the scalar execution path")
	demo := flag.Bool("demo", true, "run a division and gcd example per algebra")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: latticeinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints CPU capabilities, the selected batch path and lane widths.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *scalar {
		cpu.SetForcedFeatures(cpu.Features{ForceScalar: true, Architecture: "forced"})
	}
	f := cpu.DetectFeatures()

	printFeatures(f)
	if *demo {
		fmt.Println()
		printDemo()
	}
}

func printFeatures(f cpu.Features) {
	path := "scalar"
	if f.Vector() {
		path = "vector (unrolled lanes)"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Architecture\t%s\n", f.Architecture)
	fmt.Fprintf(tw, "AVX2\t%v\n", f.HasAVX2)
	fmt.Fprintf(tw, "AVX-512\t%v\n", f.HasAVX512)
	fmt.Fprintf(tw, "NEON\t%v\n", f.HasNEON)
	fmt.Fprintf(tw, "Forced scalar\t%v\n", f.ForceScalar)
	fmt.Fprintf(tw, "Batch path\t%s\n", path)
	fmt.Fprintf(tw, "Lanes (2D/4D/8D)\t%d / %d / %d\n",
		batch.GaussianLanes, batch.HurwitzLanes, batch.OctonionLanes)
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printDemo() {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Algebra\tExpression\tResult\n")
	fmt.Fprintf(tw, "-------\t----------\t------\n")

	gq, gr, err := gaussian.New(3, 4).DivRem(gaussian.New(1, 2))
	writeRow(tw, "gaussian", "(3+4i) divrem (1+2i)", fmt.Sprintf("q=%v, r=%v", gq, gr), err)

	gg, err := gaussian.GCD(gaussian.New(10, 0), gaussian.New(6, 0))
	writeRow(tw, "gaussian", "gcd(10, 6)", fmt.Sprint(gg), err)

	hq, hr, err := hurwitz.New(1, 1, 1, 1).DivRem(hurwitz.New(2, 0, 0, 0))
	writeRow(tw, "hurwitz", "(1+i+j+k) divrem 2", fmt.Sprintf("q=%v, r=%v", hq, hr), err)

	p12, err := octonion.E(1).Mul(octonion.E(2))
	if err == nil {
		var left octonion.Int
		left, err = p12.Mul(octonion.E(3))
		writeRow(tw, "octonion", "(e1·e2)·e3", fmt.Sprint(left), err)
	} else {
		writeRow(tw, "octonion", "(e1·e2)·e3", "", err)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func writeRow(tw *tabwriter.Writer, algebraName, expr, result string, err error) {
	if err != nil {
		result = "error: " + err.Error()
	}
	fmt.Fprintf(tw, "%s\t%s\t%s\n", algebraName, expr, result)
}
