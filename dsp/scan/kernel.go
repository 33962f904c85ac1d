package scan

import (
	"sync"

	"github.com/cwbudde/algo-lpc/dsp/affine"
	archregistry "github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/registry"
	"github.com/cwbudde/algo-lpc/internal/cpu"
)

// rowScanFn scans row in place from seed and returns the final accumulator.
type rowScanFn[T affine.Scalar] func(row []affine.Pair[T], seed affine.Pair[T]) affine.Pair[T]

var (
	kernelEntry    *archregistry.OpEntry
	kernelInitOnce sync.Once
)

func selectedKernel() *archregistry.OpEntry {
	kernelInitOnce.Do(initKernel)
	return kernelEntry
}

func initKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("scan: no row-scan kernel registered (missing generic fallback?)")
	}

	kernelEntry = entry
}

// KernelName returns the name of the row-scan kernel used for float32 and
// float64 rows on this machine.
func KernelName() string {
	return selectedKernel().Name
}

// Kernels lists the registered row-scan kernels in priority order.
func Kernels() []string {
	entries := archregistry.Global.ListEntries()
	names := make([]string, 0, len(entries))

	for _, e := range entries {
		names = append(names, e.Name)
	}

	return names
}

// rowScanner returns the registered kernel for float32 and float64 and the
// generic fold for every other element type.
func rowScanner[T affine.Scalar]() rowScanFn[T] {
	k := selectedKernel()

	var fn any

	switch any(*new(T)).(type) {
	case float64:
		if k.RowScan64 != nil {
			fn = (func([]affine.Pair[float64], affine.Pair[float64]) affine.Pair[float64])(k.RowScan64)
		}
	case float32:
		if k.RowScan32 != nil {
			fn = (func([]affine.Pair[float32], affine.Pair[float32]) affine.Pair[float32])(k.RowScan32)
		}
	}

	if f, ok := fn.(func([]affine.Pair[T], affine.Pair[T]) affine.Pair[T]); ok {
		return f
	}

	return affine.InclusiveScan[T]
}
