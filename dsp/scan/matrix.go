package scan

import (
	"fmt"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

// Matrix is a row-major (B, T) view over a slice. Row b starts at
// Data[b*Stride] and holds Cols consecutive elements.
type Matrix[T affine.Scalar] struct {
	Data   []T
	Rows   int
	Cols   int
	Stride int
}

// NewMatrix allocates a zeroed contiguous rows×cols matrix.
func NewMatrix[T affine.Scalar](rows, cols int) Matrix[T] {
	return Matrix[T]{
		Data:   make([]T, rows*cols),
		Rows:   rows,
		Cols:   cols,
		Stride: cols,
	}
}

// MatrixFrom wraps data as a contiguous rows×cols matrix. The layout is
// checked when the matrix is used, not here.
func MatrixFrom[T affine.Scalar](data []T, rows, cols int) Matrix[T] {
	return Matrix[T]{Data: data, Rows: rows, Cols: cols, Stride: cols}
}

// Row returns row b as a subslice of Data.
func (m Matrix[T]) Row(b int) []T {
	off := b * m.Stride
	return m.Data[off : off+m.Cols : off+m.Cols]
}

// At returns element (b, t).
func (m Matrix[T]) At(b, t int) T {
	return m.Data[b*m.Stride+t]
}

// Set stores v at (b, t).
func (m Matrix[T]) Set(b, t int, v T) {
	m.Data[b*m.Stride+t] = v
}

// Contiguous reports whether rows are packed without gaps.
func (m Matrix[T]) Contiguous() bool {
	return m.Stride == m.Cols
}

// String returns the shape as "BxT".
func (m Matrix[T]) String() string {
	return fmt.Sprintf("%dx%d", m.Rows, m.Cols)
}

// CheckLayout reports, wrapped in ErrShapeMismatch, a matrix whose extents,
// stride or backing slice cannot describe Rows×Cols elements. name labels
// the matrix in the error.
func (m Matrix[T]) CheckLayout(name string) error {
	if m.Rows < 0 || m.Cols < 0 {
		return fmt.Errorf("%w: %s has negative extent %s", ErrShapeMismatch, name, m)
	}

	if m.Stride < m.Cols {
		return fmt.Errorf("%w: %s stride %d is smaller than its %d columns", ErrShapeMismatch, name, m.Stride, m.Cols)
	}

	if m.Rows == 0 || m.Cols == 0 {
		return nil
	}

	if need := (m.Rows-1)*m.Stride + m.Cols; len(m.Data) < need {
		return fmt.Errorf("%w: %s %s needs %d elements, has %d", ErrShapeMismatch, name, m, need, len(m.Data))
	}

	return nil
}
