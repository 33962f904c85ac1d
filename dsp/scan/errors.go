package scan

import "errors"

var (
	// ErrShapeMismatch reports a buffer whose rank, extent or layout does not
	// fit the (B, T) batch.
	ErrShapeMismatch = errors.New("scan: shape mismatch")

	// ErrTypeMismatch reports buffers with differing element types, or a
	// Tensor whose data does not hold its declared DType.
	ErrTypeMismatch = errors.New("scan: element type mismatch")

	// ErrUnsupportedType reports a non floating-point element type.
	ErrUnsupportedType = errors.New("scan: unsupported element type")
)
