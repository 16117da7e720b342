package region

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-transit/spectra"
)

// Tolerance is the maximum distance, in wavelength units, between a
// wavelength and the nearest pixel of an order that still counts as covered.
const Tolerance = 1.0

var (
	// ErrWavelengthNotCovered is returned when no order covers a wavelength.
	ErrWavelengthNotCovered = errors.New("region: wavelength not covered by any order")
	// ErrRegionSpansOrders is returned when the bounds of a line region
	// resolve to different orders.
	ErrRegionSpansOrders = errors.New("region: line region spans multiple orders")
)

// Bounds is a closed wavelength interval [Low, High] around a line.
type Bounds struct {
	Low  float64
	High float64
}

// Contains reports whether w lies within [Low, High].
func (b Bounds) Contains(w float64) bool { return w >= b.Low && w <= b.High }

// String implements fmt.Stringer.
func (b Bounds) String() string { return fmt.Sprintf("[%g, %g]", b.Low, b.High) }

// Selection is a line region resolved onto one order.
type Selection struct {
	Order int
	Mask  []bool
}

// Count returns the number of selected pixels.
func (s Selection) Count() int {
	var n int
	for _, m := range s.Mask {
		if m {
			n++
		}
	}
	return n
}

// Apply returns the selected values of row, in pixel order. row must have
// the same length as the mask.
func (s Selection) Apply(row []float64) []float64 {
	out := make([]float64, 0, len(s.Mask))
	for p, m := range s.Mask {
		if m {
			out = append(out, row[p])
		}
	}
	return out
}

// Locate returns the index of the order that contains wavelength.
func Locate(set *spectra.Set, wavelength float64) (int, error) {
	best := -1
	bestDist := math.Inf(1)

	for k := 0; k < set.NumOrders(); k++ {
		grid := set.Order(k).Wave[0]
		if !covers(grid, wavelength) {
			continue
		}

		dist := math.Abs(float64(len(grid))/2 - float64(lastAtOrBelow(grid, wavelength)))
		if dist < bestDist {
			best = k
			bestDist = dist
		}
	}

	if best < 0 {
		return -1, fmt.Errorf("%w: %g", ErrWavelengthNotCovered, wavelength)
	}

	return best, nil
}

func covers(grid []float64, wavelength float64) bool {
	for _, w := range grid {
		if math.Abs(w-wavelength) <= Tolerance {
			return true
		}
	}
	return false
}

// lastAtOrBelow returns the index of the last pixel <= wavelength, or 0
// when the wavelength lies below the whole grid.
func lastAtOrBelow(grid []float64, wavelength float64) int {
	idx := 0
	for p, w := range grid {
		if w <= wavelength {
			idx = p
		}
	}
	return idx
}

// Resolve maps b onto a single order and builds its pixel mask.
func Resolve(set *spectra.Set, b Bounds) (Selection, error) {
	lo, err := Locate(set, b.Low)
	if err != nil {
		return Selection{}, fmt.Errorf("region %s low bound: %w", b, err)
	}

	hi, err := Locate(set, b.High)
	if err != nil {
		return Selection{}, fmt.Errorf("region %s high bound: %w", b, err)
	}

	if lo != hi {
		return Selection{}, fmt.Errorf("%w: %s maps to orders %d and %d", ErrRegionSpansOrders, b, lo, hi)
	}

	grid := set.Order(lo).Wave[0]
	mask := make([]bool, len(grid))
	for p, w := range grid {
		mask[p] = b.Contains(w)
	}

	return Selection{Order: lo, Mask: mask}, nil
}

// ResolveAll resolves every region, stopping at the first failure.
func ResolveAll(set *spectra.Set, bounds ...Bounds) ([]Selection, error) {
	out := make([]Selection, len(bounds))
	for i, b := range bounds {
		sel, err := Resolve(set, b)
		if err != nil {
			return nil, err
		}
		out[i] = sel
	}
	return out, nil
}
