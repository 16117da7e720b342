// Package lightcurve combines line regions into inverse-variance weighted
// light curves.
package lightcurve

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
	"github.com/cwbudde/algo-transit/stats/robust"
)

// ErrNoRegions is returned when no line region is given.
var ErrNoRegions = errors.New("lightcurve: no line regions")

// Curve is a weighted-mean light curve with one value and uncertainty per
// observation.
type Curve struct {
	Flux []float64
	Err  []float64
}

// Len returns the number of observations in the curve.
func (c Curve) Len() int { return len(c.Flux) }

// sums holds the running inverse-variance sums for one observation.
type sums struct {
	num  float64 // Σ flux/err²
	den  float64 // Σ 1/err²
	ivar float64 // Σ err⁻²
}

// WeightedMean returns the inverse-variance weighted mean flux across the
// selected pixels of every region, per observation, and its uncertainty
// sqrt(1/Σ err⁻²).
//
// Each region is reduced to per-observation sums before regions are
// combined, so regions may select different numbers of pixels. NaN terms
// are skipped.
func WeightedMean(set *spectra.Set, bounds ...region.Bounds) (Curve, error) {
	if len(bounds) == 0 {
		return Curve{}, ErrNoRegions
	}

	sels, err := region.ResolveAll(set, bounds...)
	if err != nil {
		return Curve{}, err
	}

	acc := make([]sums, set.Len())
	for _, sel := range sels {
		accumulate(acc, set.Order(sel.Order), sel)
	}

	c := Curve{
		Flux: make([]float64, len(acc)),
		Err:  make([]float64, len(acc)),
	}
	for i, s := range acc {
		c.Flux[i] = s.num / s.den
		c.Err[i] = math.Sqrt(1 / s.ivar)
	}

	return c, nil
}

func accumulate(acc []sums, o spectra.Order, sel region.Selection) {
	n := sel.Count()
	w := make([]float64, n)
	wf := make([]float64, n)

	for i := range acc {
		errs := sel.Apply(o.Err[i])
		vecmath.MulBlock(w, errs, errs)
		for p, v := range w {
			w[p] = 1 / v
		}
		vecmath.MulBlock(wf, sel.Apply(o.Flux[i]), w)

		acc[i].num += robust.NanSum(wf)
		acc[i].den += robust.NanSum(w)
		acc[i].ivar += robust.NanSum(w)
	}
}
