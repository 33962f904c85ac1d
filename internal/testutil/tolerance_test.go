package testutil

import (
	"math"
	"testing"
)

func TestAbs(t *testing.T) {
	if Abs(float32(-2)) != 2 || Abs(-3.0) != 3 {
		t.Fatal("real Abs wrong")
	}

	if math.Abs(Abs(complex(3.0, 4.0))-5) > 1e-15 {
		t.Fatalf("complex Abs = %v, want 5", Abs(complex(3.0, 4.0)))
	}
}

func TestNearlyEqualRelative(t *testing.T) {
	if !NearlyEqual(1e6, 1e6+0.5, 1e-6) {
		t.Fatal("relative tolerance not applied for large values")
	}

	if NearlyEqual(0.0, 1e-3, 1e-6) {
		t.Fatal("absolute tolerance too loose near zero")
	}
}

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1, 2.5, 2})
	if err != nil {
		t.Fatal(err)
	}

	if d != 1 {
		t.Fatalf("MaxAbsDiff = %v, want 1", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, nil); err == nil {
		t.Fatal("expected length mismatch error")
	}
}
