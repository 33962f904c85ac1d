package testutil

import (
	"math/rand"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

// Uniform returns n values drawn uniformly from [lo, hi) with a fixed seed.
// Complex types get independent real and imaginary draws.
func Uniform[T affine.Scalar](seed int64, n int, lo, hi float64) []T {
	rng := rand.New(rand.NewSource(seed))
	out := make([]T, n)

	for i := range out {
		re := lo + rng.Float64()*(hi-lo)
		im := lo + rng.Float64()*(hi-lo)
		out[i] = fromParts[T](re, im)
	}

	return out
}

// StableWeights returns n weights whose magnitude stays below 0.9, matching
// the coefficient range used to keep long recurrences bounded.
func StableWeights[T affine.Scalar](seed int64, n int) []T {
	w := Uniform[T](seed, n, -0.9, 0.9)
	for i, v := range w {
		if a := Abs(v); a > 0.9 {
			w[i] = v * fromParts[T](0.9/a, 0)
		}
	}

	return w
}

// Fill returns a slice of length n where every element is v.
func Fill[T affine.Scalar](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}

	return out
}

func fromParts[T affine.Scalar](re, im float64) T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(float32(re)).(T)
	case float64:
		return any(re).(T)
	case complex64:
		return any(complex64(complex(re, im))).(T)
	default:
		return any(complex(re, im)).(T)
	}
}
