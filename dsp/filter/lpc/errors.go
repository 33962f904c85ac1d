package lpc

import "errors"

var (
	// ErrInvalidOrder reports a filter order below 1.
	ErrInvalidOrder = errors.New("lpc: filter order must be at least 1")

	// ErrInvalidFFTSize reports an FFT length that is odd or too short for
	// the coefficient frame.
	ErrInvalidFFTSize = errors.New("lpc: invalid FFT size")
)
