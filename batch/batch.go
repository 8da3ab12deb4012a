package batch

import "github.com/Gutkaq/entropy/internal/cpu"

// Lane widths per algebra: elements per 256-bit vector register.
const (
	GaussianLanes = 4
	HurwitzLanes  = 2
	OctonionLanes = 1
)

func vectorized() bool {
	return cpu.DetectFeatures().Vector()
}

func checkLen(dst, a, b int) {
	if dst != a || a != b {
		panic("batch: slice lengths differ")
	}
}

func checkLen2(dst, a int) {
	if dst != a {
		panic("batch: slice lengths differ")
	}
}
