// Package scan evaluates the time-varying first-order recurrence
//
//	y[b,t] = w[b,t]*y[b,t-1] + x[b,t],  y[b,-1] = initials[b]
//
// for a batch of B independent sequences of length T.
//
// Each step is encoded as an affine pair (see package affine) and every row
// is computed with an inclusive scan seeded by {1, initials[b]}. Rows are
// spread over a persistent worker pool owned by an [Engine], and each row is
// folded left to right by one worker, so results are bit-identical to a
// plain loop. An Engine built with [WithIntraRow] may instead split the long
// rows of a small batch into chunks that are reduced, carried and rescanned
// in parallel; that path regroups floating-point products, so it matches
// the sequential fold within rounding rather than bit for bit.
//
// Two entry points are provided:
//
//   - [ScanInto] and [Scan] are generic over [affine.Scalar] and work on
//     [Matrix] views of caller-owned slices.
//   - [Apply] and [Run] take dynamically typed [Tensor] values, validate the
//     element type once and dispatch to the generic implementation.
//
// Validation errors wrap [ErrShapeMismatch], [ErrTypeMismatch] or
// [ErrUnsupportedType] and are reported before any buffer is read or written.
// Overflow, underflow and NaN propagation are ordinary floating-point
// behaviour and are not reported.
package scan
