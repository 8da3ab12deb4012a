// Package cpu probes the vector-instruction support that the batch engine
// dispatches on.
//
// Detection runs once, on the first call to DetectFeatures, and the result
// is cached for the remainder of the process. The probe is a pure function
// of fixed hardware state, so concurrent first calls are harmless; the
// sync.Once is there for clarity, not correctness.
package cpu

import "sync"

// Features describes the capabilities relevant to lane-kernel selection.
type Features struct {
	// x86-64 vector extensions.
	HasAVX2   bool
	HasAVX512 bool

	// ARM Advanced SIMD.
	HasNEON bool

	// ForceScalar disables the vector path regardless of hardware.
	ForceScalar bool

	// Architecture is runtime.GOARCH at probe time.
	Architecture string
}

// Vector reports whether a 256-bit integer lane path should be used.
func (f Features) Vector() bool {
	if f.ForceScalar {
		return false
	}
	return f.HasAVX2 || f.HasNEON
}

var (
	detected   Features
	detectOnce sync.Once

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the capabilities of the current processor.
// The first call probes the hardware; later calls return the cached result.
// Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()
	if f != nil {
		return *f
	}

	detectOnce.Do(func() {
		detected = detectFeaturesImpl()
	})
	return detected
}

// SetForcedFeatures overrides hardware detection. Intended for tests that
// need to pin the scalar or the vector path.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	override := f
	forced = &override
}

// ResetDetection clears any forced features. Intended for tests.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()
}
