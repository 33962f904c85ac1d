package scan

import (
	"errors"
	"testing"
)

func TestDTypeProperties(t *testing.T) {
	tests := []struct {
		d        DType
		name     string
		floating bool
		complex  bool
		size     int
	}{
		{Float32, "float32", true, false, 4},
		{Float64, "float64", true, false, 8},
		{Complex64, "complex64", true, true, 8},
		{Complex128, "complex128", true, true, 16},
		{Int32, "int32", false, false, 4},
		{Bool, "bool", false, false, 1},
		{Invalid, "invalid", false, false, 0},
	}

	for _, tt := range tests {
		if tt.d.String() != tt.name || tt.d.IsFloating() != tt.floating || tt.d.IsComplex() != tt.complex || tt.d.Size() != tt.size {
			t.Fatalf("%v: got (%q, %v, %v, %d)", tt.name, tt.d.String(), tt.d.IsFloating(), tt.d.IsComplex(), tt.d.Size())
		}
	}

	if got := DType(100).String(); got != "DType(100)" {
		t.Fatalf("out-of-range String = %q", got)
	}
}

func TestParseDType(t *testing.T) {
	for _, name := range []string{"float32", " Complex128 ", "int8"} {
		if _, err := ParseDType(name); err != nil {
			t.Fatalf("ParseDType(%q): %v", name, err)
		}
	}

	if _, err := ParseDType("invalid"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("ParseDType(invalid) err = %v", err)
	}

	if _, err := ParseDType("float16"); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("ParseDType(float16) err = %v", err)
	}
}
