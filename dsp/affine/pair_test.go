package affine

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

const eps = 1e-12

func near(a, b complex128) bool {
	return cmplx.Abs(a-b) <= eps*math.Max(1, math.Max(cmplx.Abs(a), cmplx.Abs(b)))
}

func randPair(rng *rand.Rand) Pair[float64] {
	return Pair[float64]{Gain: rng.Float64()*2 - 1, Offset: rng.NormFloat64()}
}

func randComplexPair(rng *rand.Rand) Pair[complex128] {
	return Pair[complex128]{
		Gain:   complex(rng.Float64()-0.5, rng.Float64()-0.5),
		Offset: complex(rng.NormFloat64(), rng.NormFloat64()),
	}
}

func TestCombine_HandTraced(t *testing.T) {
	// y ↦ 2y + 1 followed by y ↦ 3y + 4 is y ↦ 6y + 7.
	got := Combine(Pair[float64]{2, 1}, Pair[float64]{3, 4})
	if got != (Pair[float64]{6, 7}) {
		t.Fatalf("Combine = %v, want {6 7}", got)
	}
}

func TestCombine_Associative(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := range 1000 {
		p, q, r := randPair(rng), randPair(rng), randPair(rng)
		left := Combine(Combine(p, q), r)
		right := Combine(p, Combine(q, r))

		if !near(complex(left.Gain, 0), complex(right.Gain, 0)) || !near(complex(left.Offset, 0), complex(right.Offset, 0)) {
			t.Fatalf("trial %d: (p⊕q)⊕r = %v, p⊕(q⊕r) = %v", i, left, right)
		}
	}
}

func TestCombine_AssociativeComplex(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := range 1000 {
		p, q, r := randComplexPair(rng), randComplexPair(rng), randComplexPair(rng)
		left := Combine(Combine(p, q), r)
		right := Combine(p, Combine(q, r))

		if !near(left.Gain, right.Gain) || !near(left.Offset, right.Offset) {
			t.Fatalf("trial %d: (p⊕q)⊕r = %v, p⊕(q⊕r) = %v", i, left, right)
		}
	}
}

func TestCombine_NotCommutative(t *testing.T) {
	p := Pair[float64]{Gain: 2, Offset: 1}
	q := Pair[float64]{Gain: 3, Offset: 4}

	if Combine(p, q) == Combine(q, p) {
		t.Fatal("Combine unexpectedly commutes for distinct maps")
	}
}

func TestIdentity_BothSides(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	id := Identity[float64]()

	for range 100 {
		p := randPair(rng)
		if got := Combine(id, p); got != p {
			t.Fatalf("id⊕p = %v, want %v", got, p)
		}

		if got := Combine(p, id); got != p {
			t.Fatalf("p⊕id = %v, want %v", got, p)
		}
	}
}

func TestApply_MatchesCombine(t *testing.T) {
	p := Pair[float32]{Gain: 0.5, Offset: 1}
	q := Pair[float32]{Gain: -2, Offset: 0.25}

	y := float32(3)
	if got, want := Combine(p, q).Apply(y), q.Apply(p.Apply(y)); got != want {
		t.Fatalf("(p⊕q)(y) = %v, want q(p(y)) = %v", got, want)
	}
}

func TestInclusiveScan_Recurrence(t *testing.T) {
	// w = 0.5, x = 1, y[-1] = 0 → 1, 1.5, 1.75.
	pairs := []Pair[float64]{{0.5, 1}, {0.5, 1}, {0.5, 1}}
	acc := InclusiveScan(pairs, Seed(0.0))

	want := []float64{1, 1.5, 1.75}
	for i, p := range pairs {
		if p.Offset != want[i] {
			t.Fatalf("offset[%d] = %v, want %v", i, p.Offset, want[i])
		}
	}

	if acc.Offset != 1.75 || acc.Gain != 0.125 {
		t.Fatalf("accumulator = %v, want {0.125 1.75}", acc)
	}
}

func TestInclusiveScan_Empty(t *testing.T) {
	seed := Seed(complex64(2 + 1i))
	if got := InclusiveScan(nil, seed); got != seed {
		t.Fatalf("empty scan = %v, want seed %v", got, seed)
	}
}

func TestFold_EqualsLastScanned(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	pairs := make([]Pair[complex128], 37)
	for i := range pairs {
		pairs[i] = randComplexPair(rng)
	}

	seed := Seed(complex(0.3, -0.1))
	folded := Fold(seed, pairs)

	scanned := append([]Pair[complex128](nil), pairs...)
	InclusiveScan(scanned, seed)

	if folded != scanned[len(scanned)-1] {
		t.Fatalf("Fold = %v, last scanned = %v", folded, scanned[len(scanned)-1])
	}
}

func TestZipOffsets(t *testing.T) {
	pairs := make([]Pair[float64], 3)
	Zip(pairs, []float64{1, 2, 3}, []float64{4, 5, 6})

	if pairs[1] != (Pair[float64]{2, 5}) {
		t.Fatalf("pairs[1] = %v", pairs[1])
	}

	dst := make([]float64, 3)
	Offsets(dst, pairs)

	if dst[0] != 4 || dst[2] != 6 {
		t.Fatalf("offsets = %v", dst)
	}

	Zip[float64](nil, nil, nil)
	Offsets[float64](nil, nil)
}
