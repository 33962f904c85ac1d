package scan

import (
	"fmt"
	"strings"
)

// DType tags the element type of a Tensor.
type DType int

const (
	Invalid DType = iota
	Float32
	Float64
	Complex64
	Complex128

	// Integral and boolean types are recognised so they can be rejected
	// with ErrUnsupportedType instead of being mistaken for garbage.
	Int8
	Int16
	Int32
	Int64
	Uint8
	Bool
)

var dtypeNames = [...]string{
	Invalid:    "invalid",
	Float32:    "float32",
	Float64:    "float64",
	Complex64:  "complex64",
	Complex128: "complex128",
	Int8:       "int8",
	Int16:      "int16",
	Int32:      "int32",
	Int64:      "int64",
	Uint8:      "uint8",
	Bool:       "bool",
}

// String returns the Go spelling of the element type.
func (d DType) String() string {
	if d < 0 || int(d) >= len(dtypeNames) {
		return fmt.Sprintf("DType(%d)", int(d))
	}

	return dtypeNames[d]
}

// IsFloating reports whether d is a real or complex floating-point type,
// i.e. whether the engine accepts it.
func (d DType) IsFloating() bool {
	switch d {
	case Float32, Float64, Complex64, Complex128:
		return true
	default:
		return false
	}
}

// IsComplex reports whether d is complex64 or complex128.
func (d DType) IsComplex() bool {
	return d == Complex64 || d == Complex128
}

// Size returns the element size in bytes, or 0 for Invalid.
func (d DType) Size() int {
	switch d {
	case Int8, Uint8, Bool:
		return 1
	case Int16:
		return 2
	case Float32, Int32:
		return 4
	case Float64, Complex64, Int64:
		return 8
	case Complex128:
		return 16
	default:
		return 0
	}
}

// ParseDType maps a name such as "float32" or "complex128" to its DType.
func ParseDType(name string) (DType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d, n := range dtypeNames {
		if d != int(Invalid) && n == name {
			return DType(d), nil
		}
	}

	return Invalid, fmt.Errorf("%w: unknown dtype %q", ErrUnsupportedType, name)
}

// dtypeOf returns the DType whose Go slice type matches data.
func dtypeOf(data any) DType {
	switch data.(type) {
	case []float32:
		return Float32
	case []float64:
		return Float64
	case []complex64:
		return Complex64
	case []complex128:
		return Complex128
	case []int8:
		return Int8
	case []int16:
		return Int16
	case []int32:
		return Int32
	case []int64:
		return Int64
	case []uint8:
		return Uint8
	case []bool:
		return Bool
	default:
		return Invalid
	}
}
