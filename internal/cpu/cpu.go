// Package cpu reports the processor features that drive scan kernel selection.
//
// Detection runs once, lazily, on the first call to DetectFeatures. Tests can
// pin a feature set with SetForcedFeatures to exercise every registered kernel
// on a single machine.
package cpu

import "sync"

// SIMDLevel names the instruction set a kernel was tuned for.
type SIMDLevel int

const (
	// SIMDNone is the portable pure Go baseline.
	SIMDNone SIMDLevel = iota
	SIMDSSE2
	SIMDAVX2
	SIMDNEON
)

// String returns a human-readable name for the level.
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

// Features describes the CPU capabilities relevant to kernel selection.
type Features struct {
	HasSSE2 bool
	HasAVX2 bool
	HasNEON bool

	// ForceGeneric restricts selection to SIMDNone kernels.
	ForceGeneric bool

	Architecture string // runtime.GOARCH
}

var (
	detectMu sync.Mutex
	detected *Features

	forcedMu sync.RWMutex
	forced   *Features
)

// DetectFeatures returns the features of the running CPU, or the forced set
// if SetForcedFeatures was called. Safe for concurrent use.
func DetectFeatures() Features {
	forcedMu.RLock()
	f := forced
	forcedMu.RUnlock()

	if f != nil {
		return *f
	}

	detectMu.Lock()
	defer detectMu.Unlock()

	if detected == nil {
		d := detectFeaturesImpl()
		detected = &d
	}

	return *detected
}

// SetForcedFeatures overrides hardware detection. Intended for tests.
func SetForcedFeatures(f Features) {
	forcedMu.Lock()
	defer forcedMu.Unlock()

	forced = &f
}

// ResetDetection drops forced features and the cached detection result.
func ResetDetection() {
	forcedMu.Lock()
	forced = nil
	forcedMu.Unlock()

	detectMu.Lock()
	detected = nil
	detectMu.Unlock()
}

// Supports reports whether a kernel tuned for level may run on features.
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
