package velocity

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-transit/stats/robust"
)

// PixelShift returns the integer lag, in pixels, that best aligns obs with
// ref. A positive lag means obs is shifted to longer wavelengths. Both
// profiles are mean-subtracted and NaN pixels contribute nothing. Among
// equal correlation peaks the most negative lag wins.
func PixelShift(ref, obs []float64) (int, error) {
	if len(ref) == 0 || len(obs) == 0 {
		return 0, ErrEmptyInput
	}
	if len(ref) != len(obs) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(ref), len(obs))
	}

	n := len(ref)
	// Zero padding to at least 2n-1 keeps the circular correlation linear.
	size := 1 << bits.Len(uint(2*n-2))

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return 0, fmt.Errorf("velocity: fft plan of size %d: %w", size, err)
	}

	refSpec, err := spectrum(plan, centered(ref), size)
	if err != nil {
		return 0, err
	}
	obsSpec, err := spectrum(plan, centered(obs), size)
	if err != nil {
		return 0, err
	}

	// obs · conj(ref) is the transform of the correlation at lag L.
	for i, r := range refSpec {
		obsSpec[i] *= cmplx.Conj(r)
	}

	corr := make([]complex128, size)
	if err := plan.Inverse(corr, obsSpec); err != nil {
		return 0, fmt.Errorf("velocity: inverse fft: %w", err)
	}

	// Negative lags wrap to the end of the circular result.
	at := func(lag int) float64 {
		if lag < 0 {
			lag += size
		}
		return real(corr[lag])
	}

	best := -(n - 1)
	for lag := best + 1; lag < n; lag++ {
		if at(lag) > at(best) {
			best = lag
		}
	}

	return best, nil
}

// Shift returns the velocity offset of obs relative to ref in km/s, using
// the mean dispersion of wave to convert the pixel lag.
func Shift(wave, ref, obs []float64) (float64, error) {
	if len(wave) != len(ref) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(wave), len(ref))
	}

	lag, err := PixelShift(ref, obs)
	if err != nil {
		return 0, err
	}

	step, err := Dispersion(wave)
	if err != nil {
		return 0, err
	}

	return float64(lag) * step, nil
}

func centered(x []float64) []float64 {
	mean, _ := robust.NanMeanStd(x)
	out := make([]float64, len(x))
	for i, v := range x {
		if !math.IsNaN(v) {
			out[i] = v - mean
		}
	}
	return out
}

func spectrum(plan *algofft.Plan[complex128], x []float64, size int) ([]complex128, error) {
	in := make([]complex128, size)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("velocity: forward fft: %w", err)
	}
	return out, nil
}
