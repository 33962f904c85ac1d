//go:build amd64 && !purego

// Package avx2 registers the row-scan kernel selected on AVX2-capable CPUs.
package avx2

import (
	"github.com/cwbudde/algo-lpc/dsp/affine"
	"github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/registry"
	"github.com/cwbudde/algo-lpc/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		RowScan64: rowScan4[float64],
		RowScan32: rowScan4[float32],
	})
}

// rowScan4 is a 4x-unrolled scalar scan. Combine order is unchanged, so the
// result is bit-identical to the generic kernel. It is registered for AVX2
// CPUs because the unrolled loop keeps more independent loads in flight.
func rowScan4[T float32 | float64](row []affine.Pair[T], seed affine.Pair[T]) affine.Pair[T] {
	g, o := seed.Gain, seed.Offset

	i := 0
	n := len(row)
	for ; i+3 < n; i += 4 {
		p0, p1, p2, p3 := row[i], row[i+1], row[i+2], row[i+3]

		g0 := g * p0.Gain
		o0 := o*p0.Gain + p0.Offset
		g1 := g0 * p1.Gain
		o1 := o0*p1.Gain + p1.Offset
		g2 := g1 * p2.Gain
		o2 := o1*p2.Gain + p2.Offset
		g = g2 * p3.Gain
		o = o2*p3.Gain + p3.Offset

		row[i] = affine.Pair[T]{Gain: g0, Offset: o0}
		row[i+1] = affine.Pair[T]{Gain: g1, Offset: o1}
		row[i+2] = affine.Pair[T]{Gain: g2, Offset: o2}
		row[i+3] = affine.Pair[T]{Gain: g, Offset: o}
	}

	for ; i < n; i++ {
		w := row[i].Gain
		g *= w
		o = o*w + row[i].Offset
		row[i] = affine.Pair[T]{Gain: g, Offset: o}
	}

	return affine.Pair[T]{Gain: g, Offset: o}
}
