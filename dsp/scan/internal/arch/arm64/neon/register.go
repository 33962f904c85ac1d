//go:build arm64 && !purego

// Package neon registers the row-scan kernel selected on arm64.
package neon

import (
	"github.com/cwbudde/algo-lpc/dsp/affine"
	"github.com/cwbudde/algo-lpc/dsp/scan/internal/arch/registry"
	"github.com/cwbudde/algo-lpc/internal/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  20,
		RowScan64: rowScan2[float64],
		RowScan32: rowScan2[float32],
	})
}

// rowScan2 is a 2x-unrolled scalar scan with unchanged combine order.
func rowScan2[T float32 | float64](row []affine.Pair[T], seed affine.Pair[T]) affine.Pair[T] {
	g, o := seed.Gain, seed.Offset

	i := 0
	n := len(row)
	for ; i+1 < n; i += 2 {
		p0, p1 := row[i], row[i+1]

		g0 := g * p0.Gain
		o0 := o*p0.Gain + p0.Offset
		g = g0 * p1.Gain
		o = o0*p1.Gain + p1.Offset

		row[i] = affine.Pair[T]{Gain: g0, Offset: o0}
		row[i+1] = affine.Pair[T]{Gain: g, Offset: o}
	}

	if i < n {
		w := row[i].Gain
		g *= w
		o = o*w + row[i].Offset
		row[i] = affine.Pair[T]{Gain: g, Offset: o}
	}

	return affine.Pair[T]{Gain: g, Offset: o}
}
