package lpc

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Envelope returns gain/|A(e^jω_k)| for the nfft/2+1 bins ω_k = 2πk/nfft,
// where A(z) = 1 + a[0]z^-1 + … + a[p-1]z^-p is the inverse filter of one
// coefficient frame. nfft must be even and larger than len(a). Bins where
// A vanishes are +Inf.
func Envelope(a []float64, gain float64, nfft int) ([]float64, error) {
	if nfft < 2 || nfft%2 != 0 || nfft <= len(a) {
		return nil, fmt.Errorf("%w: %d for order %d", ErrInvalidFFTSize, nfft, len(a))
	}

	poly := make([]complex128, nfft)
	poly[0] = 1

	for k, v := range a {
		poly[k+1] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(nfft)
	if err != nil {
		return nil, fmt.Errorf("lpc: failed to create FFT plan: %w", err)
	}

	spec := make([]complex128, nfft)
	if err := plan.Forward(spec, poly); err != nil {
		return nil, fmt.Errorf("lpc: forward FFT failed: %w", err)
	}

	bins := nfft/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for k := range bins {
		re[k] = real(spec[k])
		im[k] = imag(spec[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	for k, m := range mag {
		if m == 0 {
			mag[k] = math.Inf(1)
			continue
		}
		mag[k] = 1 / m
	}

	out := make([]float64, bins)
	vecmath.ScaleBlock(out, mag, gain)

	return out, nil
}
