package scan

import (
	"fmt"

	"github.com/cwbudde/algo-lpc/dsp/affine"
)

// validate checks the batch contract without touching any element.
func validate[T affine.Scalar](out, weights, inputs Matrix[T], initials []T) error {
	for _, m := range []struct {
		name string
		m    Matrix[T]
	}{
		{"weights", weights},
		{"inputs", inputs},
		{"output", out},
	} {
		if err := m.m.CheckLayout(m.name); err != nil {
			return err
		}
	}

	if weights.Rows != inputs.Rows || weights.Cols != inputs.Cols {
		return fmt.Errorf("%w: weights %s, inputs %s", ErrShapeMismatch, weights, inputs)
	}

	if out.Rows != inputs.Rows || out.Cols != inputs.Cols {
		return fmt.Errorf("%w: output %s, inputs %s", ErrShapeMismatch, out, inputs)
	}

	if len(initials) != inputs.Rows {
		return fmt.Errorf("%w: %d initials for %d sequences", ErrShapeMismatch, len(initials), inputs.Rows)
	}

	if !out.Contiguous() {
		return fmt.Errorf("%w: output must be contiguous (stride %d, cols %d)", ErrShapeMismatch, out.Stride, out.Cols)
	}

	return nil
}
