//go:build !amd64 && !arm64

package cpu

import "runtime"

// detectFeaturesImpl reports no vector support on architectures without a
// lane kernel; the batch engine falls back to the scalar path.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
	}
}
