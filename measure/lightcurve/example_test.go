package lightcurve_test

import (
	"fmt"

	"github.com/cwbudde/algo-transit/measure/lightcurve"
	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
)

func ExampleWeightedMean() {
	wave := [][][]float64{{{5000, 5001, 5002}}}
	flux := [][][]float64{{{0.9, 1.0, 1.1}}}
	errs := [][][]float64{{{0.1, 0.1, 0.2}}}
	set, _ := spectra.FromCube(wave, flux, errs, nil, []float64{0})

	c, _ := lightcurve.WeightedMean(set, region.Bounds{Low: 5000, High: 5002})
	fmt.Printf("flux=%.4f err=%.4f\n", c.Flux[0], c.Err[0])

	// Output:
	// flux=0.9667 err=0.0667
}
