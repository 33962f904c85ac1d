// Package generic registers the portable row-scan kernel.
package generic

import (
	"github.com/cwbudde/algo-lpc/dsp/affine"
	"github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/registry"
	"github.com/cwbudde/algo-lpc/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		RowScan64: affine.InclusiveScan[float64],
		RowScan32: affine.InclusiveScan[float32],
	})
}
