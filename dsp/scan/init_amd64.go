//go:build amd64 && !purego

package scan

import (
	_ "github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/amd64/avx2" // register AVX2 backend
	_ "github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/generic"    // register generic backend
)
