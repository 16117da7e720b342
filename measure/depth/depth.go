// Package depth normalises line profiles by their integrated area so
// observations with different continuum levels and line strengths can be
// compared on one scale.
package depth

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/integrate"

	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
	"github.com/cwbudde/algo-transit/stats/robust"
)

var (
	// ErrMissingRegion is returned when no wavelength region is given.
	ErrMissingRegion = errors.New("depth: wavelength region required")
	// ErrDegenerateRegion is returned when a region selects fewer than two
	// pixels, leaving no area to integrate.
	ErrDegenerateRegion = errors.New("depth: region selects fewer than two pixels")
	// ErrUnsortedGrid is returned when the wavelengths inside the region are
	// neither ascending nor descending.
	ErrUnsortedGrid = errors.New("depth: wavelength grid is not monotonic")
)

// Normalize returns, for every observation, the flux of the order holding
// b with the continuum removed and scaled to unit absolute area:
//
//	norm = (flux - median(flux outside b)) / |∫_b (flux - continuum) dλ|
//
// The region mask is evaluated on each observation's own wavelength grid,
// which may run in either direction. A nil b yields ErrMissingRegion.
func Normalize(set *spectra.Set, b *region.Bounds) ([][]float64, error) {
	if b == nil {
		return nil, ErrMissingRegion
	}

	sel, err := region.Resolve(set, *b)
	if err != nil {
		return nil, err
	}

	o := set.Order(sel.Order)
	out := make([][]float64, set.Len())

	for i := range out {
		row, err := normalizeRow(o.Wave[i], o.Flux[i], *b)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		out[i] = row
	}

	return out, nil
}

func normalizeRow(wave, flux []float64, b region.Bounds) ([]float64, error) {
	var (
		outside []float64
		x, y    []float64
	)

	for p, w := range wave {
		if !b.Contains(w) {
			outside = append(outside, flux[p])
		}
	}

	continuum := robust.NanMedian(outside)
	shifted := make([]float64, len(flux))
	for p, f := range flux {
		shifted[p] = f - continuum
		if b.Contains(wave[p]) {
			x = append(x, wave[p])
			y = append(y, shifted[p])
		}
	}

	if len(x) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrDegenerateRegion, b)
	}

	if x[0] > x[len(x)-1] {
		slices.Reverse(x)
		slices.Reverse(y)
	}
	if !slices.IsSorted(x) {
		return nil, fmt.Errorf("%w: %s", ErrUnsortedGrid, b)
	}

	area := math.Abs(integrate.Trapezoidal(x, y))
	vecmath.ScaleBlock(shifted, shifted, 1/area)

	return shifted, nil
}
