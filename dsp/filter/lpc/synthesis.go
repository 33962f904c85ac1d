package lpc

import (
	"fmt"

	"github.com/cwbudde/algo-lpc/dsp/affine"
	"github.com/cwbudde/algo-lpc/dsp/scan"
)

// SampleWise filters x (B×T) through the time-varying all-pole filter a
// (B×T×order). zi (B×order) holds the initial conditions, zi[b,k] being
// y[b,-1-k]; a zero-value zi means all zeros. The result is a new
// contiguous B×T matrix. A nil Engine selects scan.Default.
func SampleWise[T affine.Scalar](e *scan.Engine, x scan.Matrix[T], a Coefficients[T], zi scan.Matrix[T]) (scan.Matrix[T], error) {
	if err := x.CheckLayout("signal"); err != nil {
		return scan.Matrix[T]{}, err
	}

	if err := a.check(x); err != nil {
		return scan.Matrix[T]{}, err
	}

	zeroState := zi.Data == nil && zi.Rows == 0 && zi.Cols == 0
	if !zeroState {
		if err := zi.CheckLayout("initial conditions"); err != nil {
			return scan.Matrix[T]{}, err
		}

		if zi.Rows != x.Rows || zi.Cols != a.Order {
			return scan.Matrix[T]{}, fmt.Errorf("%w: initial conditions %s, want %dx%d", scan.ErrShapeMismatch, zi, x.Rows, a.Order)
		}
	}

	if e == nil {
		e = scan.Default()
	}

	if a.Order == 1 {
		return firstOrder(e, x, a, zi, zeroState)
	}

	out := scan.NewMatrix[T](x.Rows, x.Cols)

	e.ParallelFor(x.Rows, func(start, end int) {
		for b := start; b < end; b++ {
			var state []T
			if !zeroState {
				state = zi.Row(b)
			}

			synthesizeRow(out.Row(b), x.Row(b), a, b, state)
		}
	})

	return out, nil
}

// firstOrder maps y[t] = x[t] - a[t]*y[t-1] onto the scan recurrence.
func firstOrder[T affine.Scalar](e *scan.Engine, x scan.Matrix[T], a Coefficients[T], zi scan.Matrix[T], zeroState bool) (scan.Matrix[T], error) {
	weights := scan.NewMatrix[T](x.Rows, x.Cols)
	for i, v := range a.Data[:len(weights.Data)] {
		weights.Data[i] = -v
	}

	initials := make([]T, x.Rows)
	if !zeroState {
		for b := range initials {
			initials[b] = zi.At(b, 0)
		}
	}

	out := scan.NewMatrix[T](x.Rows, x.Cols)
	if err := scan.ScanInto(e, out, weights, x, initials); err != nil {
		return scan.Matrix[T]{}, err
	}

	return out, nil
}

// synthesizeRow runs the direct-form all-pole loop for sequence b. state
// may be nil for zero initial conditions.
func synthesizeRow[T affine.Scalar](dst, src []T, a Coefficients[T], b int, state []T) {
	for t, x := range src {
		y := x
		for k, ak := range a.Frame(b, t) {
			j := t - 1 - k
			switch {
			case j >= 0:
				y -= ak * dst[j]
			case state != nil:
				y -= ak * state[-1-j]
			}
		}

		dst[t] = y
	}
}

// Reference is the unbatched, single-threaded form of SampleWise used to
// check it.
func Reference[T affine.Scalar](x scan.Matrix[T], a Coefficients[T], zi scan.Matrix[T]) (scan.Matrix[T], error) {
	if err := a.check(x); err != nil {
		return scan.Matrix[T]{}, err
	}

	out := scan.NewMatrix[T](x.Rows, x.Cols)
	for b := range x.Rows {
		var state []T
		if zi.Data != nil {
			state = zi.Row(b)
		}

		synthesizeRow(out.Row(b), x.Row(b), a, b, state)
	}

	return out, nil
}
