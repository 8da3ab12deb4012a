//go:build arm64

package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl reports NEON support. Advanced SIMD is part of the
// ARMv8 baseline, but darwin does not populate the HWCAP flags, so the
// baseline is assumed there.
func detectFeaturesImpl() Features {
	hasNEON := cpu.ARM64.HasASIMD
	if runtime.GOOS == "darwin" {
		hasNEON = true
	}
	return Features{
		HasNEON:      hasNEON,
		Architecture: runtime.GOARCH,
	}
}
