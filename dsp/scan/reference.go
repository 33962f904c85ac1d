package scan

import "github.com/cwbudde/algo-lpc/dsp/affine"

// Reference computes the recurrence with the textbook loop
// y = w*y + x, one row after another. It is the oracle the engine is
// tested against.
func Reference[T affine.Scalar](weights, inputs Matrix[T], initials []T) (Matrix[T], error) {
	out := NewMatrix[T](max(inputs.Rows, 0), max(inputs.Cols, 0))
	if err := validate(out, weights, inputs, initials); err != nil {
		return Matrix[T]{}, err
	}

	for b := range inputs.Rows {
		y := initials[b]
		w, x, dst := weights.Row(b), inputs.Row(b), out.Row(b)

		for t := range dst {
			y = w[t]*y + x[t]
			dst[t] = y
		}
	}

	return out, nil
}
