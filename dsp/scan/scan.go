package scan

import "github.com/cwbudde/algo-lpc/dsp/affine"

// ScanInto writes the recurrence result for every (b, t) into out:
//
//	out[b,0] = weights[b,0]*initials[b] + inputs[b,0]
//	out[b,t] = weights[b,t]*out[b,t-1] + inputs[b,t]
//
// weights and inputs must be B×T (they may be strided), initials must hold
// B values and out must be a contiguous B×T matrix. out is fully
// overwritten; it may alias weights or inputs since all pairs are built
// before the first write. A nil Engine selects Default.
func ScanInto[T affine.Scalar](e *Engine, out, weights, inputs Matrix[T], initials []T) error {
	if err := validate(out, weights, inputs, initials); err != nil {
		return err
	}

	rows, cols := inputs.Rows, inputs.Cols
	if rows == 0 || cols == 0 {
		return nil
	}

	if e == nil {
		e = Default()
	}

	pairs := make([]affine.Pair[T], rows*cols)

	e.pool.ParallelFor(rows, func(start, end int) {
		for b := start; b < end; b++ {
			affine.Zip(pairs[b*cols:(b+1)*cols], weights.Row(b), inputs.Row(b))
		}
	})

	scanRow := rowScanner[T]()

	if e.UsesIntraRow(rows, cols) {
		for b := range rows {
			row := pairs[b*cols : (b+1)*cols]
			scanChunked(e, row, affine.Seed(initials[b]), scanRow)
		}

		e.pool.ParallelFor(rows, func(start, end int) {
			affine.Offsets(out.Data[start*cols:end*cols], pairs[start*cols:end*cols])
		})

		return nil
	}

	e.pool.ParallelForAtomicBatched(rows, e.rowBatch(rows), func(start, end int) {
		for b := start; b < end; b++ {
			row := pairs[b*cols : (b+1)*cols]
			scanRow(row, affine.Seed(initials[b]))
			affine.Offsets(out.Row(b), row)
		}
	})

	return nil
}

// Scan allocates a contiguous output and computes the recurrence into it
// using a temporary Engine configured by opts, or Default when opts is
// empty.
func Scan[T affine.Scalar](weights, inputs Matrix[T], initials []T, opts ...Option) (Matrix[T], error) {
	e := Default()
	if len(opts) > 0 {
		e = NewEngine(opts...)
		defer e.Close()
	}

	out := NewMatrix[T](max(inputs.Rows, 0), max(inputs.Cols, 0))
	if err := ScanInto(e, out, weights, inputs, initials); err != nil {
		return Matrix[T]{}, err
	}

	return out, nil
}
