package testutil

import (
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

// Abs returns |v| for any real or complex scalar, widened to float64.
func Abs[T affine.Scalar](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		panic(fmt.Sprintf("testutil: unsupported scalar %T", v))
	}
}

// NearlyEqual reports whether |a-b| <= eps*max(1, |a|, |b|).
func NearlyEqual[T affine.Scalar](a, b T, eps float64) bool {
	scale := math.Max(1, math.Max(Abs(a), Abs(b)))
	return Abs(a-b) <= eps*scale
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if any
// element pair is not NearlyEqual within eps.
func RequireSliceNearlyEqual[T affine.Scalar](t *testing.T, got, want []T, eps float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}

	for i := range got {
		if !NearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireFinite fails t if any element has a NaN or Inf component.
func RequireFinite[T affine.Scalar](t *testing.T, data []T) {
	t.Helper()

	for i, v := range data {
		a := Abs(v)
		if math.IsNaN(a) || math.IsInf(a, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the largest |a[i]-b[i]|, or an error if the slices
// differ in length.
func MaxAbsDiff[T affine.Scalar](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}

	maxDiff := 0.0
	for i := range a {
		if d := Abs(a[i] - b[i]); d > maxDiff {
			maxDiff = d
		}
	}

	return maxDiff, nil
}
