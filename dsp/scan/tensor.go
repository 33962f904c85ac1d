package scan

import (
	"fmt"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

// Tensor is a dynamically typed, row-major buffer. Data holds the typed
// slice ([]float32, []float64, []complex64, []complex128, or an integral
// slice that is rejected). Strides are in elements; nil means contiguous.
type Tensor struct {
	DType   DType
	Shape   []int
	Strides []int
	Data    any
}

// NewTensor allocates a zeroed contiguous tensor.
func NewTensor(dtype DType, shape ...int) (Tensor, error) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return Tensor{}, fmt.Errorf("%w: negative extent in %v", ErrShapeMismatch, shape)
		}
		n *= s
	}

	var data any

	switch dtype {
	case Float32:
		data = make([]float32, n)
	case Float64:
		data = make([]float64, n)
	case Complex64:
		data = make([]complex64, n)
	case Complex128:
		data = make([]complex128, n)
	default:
		return Tensor{}, fmt.Errorf("%w: cannot allocate %s tensor", ErrUnsupportedType, dtype)
	}

	return Tensor{DType: dtype, Shape: append([]int(nil), shape...), Data: data}, nil
}

// FromSlice wraps data as a contiguous tensor and infers its DType.
func FromSlice[T affine.Scalar](data []T, shape ...int) Tensor {
	return Tensor{DType: dtypeOf(data), Shape: append([]int(nil), shape...), Data: data}
}

// Dim returns the rank.
func (t Tensor) Dim() int {
	return len(t.Shape)
}

// NumElements returns the product of the extents.
func (t Tensor) NumElements() int {
	n := 1
	for _, s := range t.Shape {
		n *= s
	}

	return n
}

// IsContiguous reports whether the tensor is packed row-major.
func (t Tensor) IsContiguous() bool {
	if t.Strides == nil {
		return true
	}

	want := 1
	for i := len(t.Shape) - 1; i >= 0; i-- {
		if t.Shape[i] > 1 && t.Strides[i] != want {
			return false
		}
		want *= t.Shape[i]
	}

	return true
}

// Apply computes the recurrence into out. weights and inputs must be 2-D
// (B, T), initials 1-D (B,), out a contiguous (B, T) tensor, all of one
// floating-point DType. The element type is resolved once and the call is
// forwarded to ScanInto. A nil Engine selects Default.
func Apply(e *Engine, out, weights, inputs, initials Tensor) error {
	if err := checkTypes(out, weights, inputs, initials); err != nil {
		return err
	}

	switch out.DType {
	case Float32:
		return applyTyped[float32](e, out, weights, inputs, initials)
	case Float64:
		return applyTyped[float64](e, out, weights, inputs, initials)
	case Complex64:
		return applyTyped[complex64](e, out, weights, inputs, initials)
	case Complex128:
		return applyTyped[complex128](e, out, weights, inputs, initials)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, out.DType)
	}
}

// Run allocates an output shaped like inputs and applies the recurrence.
func Run(e *Engine, weights, inputs, initials Tensor) (Tensor, error) {
	if err := checkTypes(inputs, weights, inputs, initials); err != nil {
		return Tensor{}, err
	}

	if inputs.Dim() != 2 {
		return Tensor{}, fmt.Errorf("%w: inputs must be 2-D, got shape %v", ErrShapeMismatch, inputs.Shape)
	}

	out, err := NewTensor(inputs.DType, inputs.Shape...)
	if err != nil {
		return Tensor{}, err
	}

	if err := Apply(e, out, weights, inputs, initials); err != nil {
		return Tensor{}, err
	}

	return out, nil
}

func checkTypes(out, weights, inputs, initials Tensor) error {
	if !inputs.DType.IsFloating() {
		return fmt.Errorf("%w: inputs are %s, want floating point or complex", ErrUnsupportedType, inputs.DType)
	}

	for _, t := range []struct {
		name string
		t    Tensor
	}{
		{"weights", weights},
		{"initials", initials},
		{"output", out},
	} {
		if t.t.DType != inputs.DType {
			return fmt.Errorf("%w: %s are %s, inputs are %s", ErrTypeMismatch, t.name, t.t.DType, inputs.DType)
		}
	}

	for _, t := range []struct {
		name string
		t    Tensor
	}{
		{"weights", weights},
		{"inputs", inputs},
		{"initials", initials},
		{"output", out},
	} {
		if got := dtypeOf(t.t.Data); got != t.t.DType {
			return fmt.Errorf("%w: %s declared %s but hold %T", ErrTypeMismatch, t.name, t.t.DType, t.t.Data)
		}
	}

	return nil
}

func applyTyped[T affine.Scalar](e *Engine, out, weights, inputs, initials Tensor) error {
	wm, err := asMatrix[T]("weights", weights)
	if err != nil {
		return err
	}

	xm, err := asMatrix[T]("inputs", inputs)
	if err != nil {
		return err
	}

	om, err := asMatrix[T]("output", out)
	if err != nil {
		return err
	}

	if !out.IsContiguous() {
		return fmt.Errorf("%w: output must be contiguous", ErrShapeMismatch)
	}

	zi, err := asVector[T]("initials", initials)
	if err != nil {
		return err
	}

	return ScanInto(e, om, wm, xm, zi)
}

func asMatrix[T affine.Scalar](name string, t Tensor) (Matrix[T], error) {
	if t.Dim() != 2 {
		return Matrix[T]{}, fmt.Errorf("%w: %s must be 2-D, got shape %v", ErrShapeMismatch, name, t.Shape)
	}

	rows, cols := t.Shape[0], t.Shape[1]
	stride := cols

	if t.Strides != nil {
		if len(t.Strides) != 2 {
			return Matrix[T]{}, fmt.Errorf("%w: %s has %d strides for 2 dimensions", ErrShapeMismatch, name, len(t.Strides))
		}

		if cols > 1 && t.Strides[1] != 1 {
			return Matrix[T]{}, fmt.Errorf("%w: %s time stride %d, want 1", ErrShapeMismatch, name, t.Strides[1])
		}

		if rows > 1 {
			stride = t.Strides[0]
		}
	}

	m := Matrix[T]{Data: t.Data.([]T), Rows: rows, Cols: cols, Stride: stride}
	if err := m.CheckLayout(name); err != nil {
		return Matrix[T]{}, err
	}

	return m, nil
}

func asVector[T affine.Scalar](name string, t Tensor) ([]T, error) {
	if t.Dim() != 1 {
		return nil, fmt.Errorf("%w: %s must be 1-D, got shape %v", ErrShapeMismatch, name, t.Shape)
	}

	if t.Strides != nil && t.Shape[0] > 1 && (len(t.Strides) != 1 || t.Strides[0] != 1) {
		return nil, fmt.Errorf("%w: %s must be contiguous", ErrShapeMismatch, name)
	}

	data := t.Data.([]T)
	if len(data) < t.Shape[0] || t.Shape[0] < 0 {
		return nil, fmt.Errorf("%w: %s shape %v needs %d elements, has %d", ErrShapeMismatch, name, t.Shape, t.Shape[0], len(data))
	}

	return data[:t.Shape[0]], nil
}
