package scan

import (
	"slices"
	"sync"
	"testing"

	"github.com/cwbudde/algo-lpc/internal/cpu"
)

func resetKernelForTest() {
	kernelEntry = nil
	kernelInitOnce = sync.Once{}
}

func TestKernelForceGenericSelectsGeneric(t *testing.T) {
	cpu.SetForcedFeatures(cpu.Features{ForceGeneric: true})
	defer cpu.ResetDetection()

	resetKernelForTest()
	defer resetKernelForTest()

	if got := KernelName(); got != "generic" {
		t.Fatalf("KernelName() = %q, want generic", got)
	}

	checkAgainstReference[float64](t, nil, 3, 257, 1e-12)
}

func TestKernelsListsGeneric(t *testing.T) {
	if !slices.Contains(Kernels(), "generic") {
		t.Fatalf("Kernels() = %v, missing generic", Kernels())
	}
}

func TestRowScannerComplexUsesGenericFold(t *testing.T) {
	// Complex rows never go through the registry, whatever the CPU.
	if rowScanner[complex128]() == nil || rowScanner[complex64]() == nil {
		t.Fatal("nil complex row scanner")
	}
}

func TestEveryKernelMatchesReference(t *testing.T) {
	defer cpu.ResetDetection()
	defer resetKernelForTest()

	for _, f := range []cpu.Features{
		{ForceGeneric: true},
		{HasSSE2: true, HasAVX2: true},
		{HasNEON: true},
	} {
		cpu.SetForcedFeatures(f)
		resetKernelForTest()

		name := KernelName()
		t.Run(name, func(t *testing.T) {
			checkAgainstReference[float64](t, nil, 5, 129, 1e-12)
			checkAgainstReference[float32](t, nil, 5, 129, 1e-5)
		})
	}
}
