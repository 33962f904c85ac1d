package lpc

import (
	"fmt"

	"github.com/cwbudde/algo-lpc/dsp/affine"
	"github.com/cwbudde/algo-lpc/dsp/scan"
)

// Coefficients holds per-sample predictor coefficients in (Batch, Time,
// Order) row-major layout: a[b,t,k] is Data[(b*Time+t)*Order+k].
type Coefficients[T affine.Scalar] struct {
	Data  []T
	Batch int
	Time  int
	Order int
}

// NewCoefficients allocates zeroed coefficients.
func NewCoefficients[T affine.Scalar](batch, time, order int) Coefficients[T] {
	return Coefficients[T]{
		Data:  make([]T, batch*time*order),
		Batch: batch,
		Time:  time,
		Order: order,
	}
}

// Frame returns a[b,t,:].
func (c Coefficients[T]) Frame(b, t int) []T {
	off := (b*c.Time + t) * c.Order
	return c.Data[off : off+c.Order : off+c.Order]
}

func (c Coefficients[T]) check(x scan.Matrix[T]) error {
	if c.Order < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, c.Order)
	}

	if c.Batch != x.Rows || c.Time != x.Cols {
		return fmt.Errorf("%w: coefficients %dx%dx%d for signal %s", scan.ErrShapeMismatch, c.Batch, c.Time, c.Order, x)
	}

	if need := c.Batch * c.Time * c.Order; len(c.Data) < need {
		return fmt.Errorf("%w: coefficients need %d elements, have %d", scan.ErrShapeMismatch, need, len(c.Data))
	}

	return nil
}
