//go:build arm64 && !purego

package scan

import (
	_ "github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/arm64/neon" // register NEON backend
	_ "github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/generic"    // register generic backend
)
