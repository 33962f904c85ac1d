// Package lpc implements sample-wise time-varying LPC synthesis: an
// all-pole filter whose coefficients change at every sample.
//
//	y[b,t] = x[b,t] - Σ_k a[b,t,k] * y[b,t-1-k]
//
// First-order filters are exactly the affine recurrence handled by package
// scan (with weights -a) and are routed through it. Higher orders run a
// direct-form loop per sequence, with sequences spread over the scan
// Engine's workers.
//
// [Envelope] evaluates the spectral envelope gain/|A(e^jω)| of one
// coefficient frame with an FFT.
package lpc
