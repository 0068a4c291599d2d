// Package cpu detects the SIMD capabilities relevant to reduction kernel
// selection.
//
// Detection runs once, lazily, on the first DetectFeatures call and is
// cached; tests can substitute features with SetForcedFeatures.
package cpu

import "sync"

// SIMDLevel identifies a SIMD instruction set extension.
type SIMDLevel int

const (
	// SIMDNone selects the pure-Go fallback kernels.
	SIMDNone SIMDLevel = iota
	// SIMDSSE2 is the x86-64 baseline vector extension.
	SIMDSSE2
	// SIMDAVX2 is x86-64 AVX2.
	SIMDAVX2
	// SIMDNEON is ARM Advanced SIMD, mandatory on arm64.
	SIMDNEON
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX2:
		return "AVX2"
	case SIMDNEON:
		return "NEON"
	default:
		return "Unknown"
	}
}

// Features describes the CPU capabilities kernel selection cares about.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric disables every SIMD level, pinning the generic kernels.
	ForceGeneric bool

	// Architecture is runtime.GOARCH at detection time.
	Architecture string
}

var (
	detected   Features
	detectOnce sync.Once
	forcedMu   sync.RWMutex
	forced     *Features
)

// DetectFeatures returns the capabilities of the current CPU, detecting
// them on first use. Safe for concurrent callers.
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

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	copied := f
	forced = &copied
}

// ResetForcedFeatures restores hardware detection after SetForcedFeatures.
func ResetForcedFeatures() {
	forcedMu.Lock()
	defer forcedMu.Unlock()
	forced = nil
}

// Supports reports whether features satisfy the given SIMD level. Used by
// the kernel registry to filter candidate implementations.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}
	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDNEON:
		return features.HasNEON
	default:
		return false
	}
}
