//go:build (!amd64 && !arm64) || purego

package scan

import (
	_ "github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/generic" // register generic backend
)
