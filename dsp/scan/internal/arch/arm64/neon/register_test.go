//go:build arm64 && !purego

package neon

import (
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

func TestRowScan2_MatchesGenericBitExact(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, n := range []int{0, 1, 3, 4, 5, 8, 9, 131} {
		got := make([]affine.Pair[float64], n)
		for i := range got {
			got[i] = affine.Pair[float64]{Gain: rng.Float64()*1.8 - 0.9, Offset: rng.NormFloat64()}
		}
		want := append([]affine.Pair[float64](nil), got...)

		seed := affine.Seed(0.3)
		accGot := rowScan2(got, seed)
		accWant := affine.InclusiveScan(want, seed)

		if accGot != accWant {
			t.Fatalf("n=%d: accumulator %v, want %v", n, accGot, accWant)
		}

		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("n=%d index %d: got %v, want %v", n, i, got[i], want[i])
			}
		}
	}
}

func BenchmarkRowScan2(b *testing.B) {
	row := make([]affine.Pair[float64], 4096)
	for i := range row {
		row[i] = affine.Pair[float64]{Gain: 0.5, Offset: float64(i) * 0.001}
	}

	b.SetBytes(int64(len(row) * 16))
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		rowScan2(row, affine.Identity[float64]())
	}
}
