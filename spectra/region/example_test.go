package region_test

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
)

func scenario() *spectra.Set {
	wave := [][][]float64{{{5000, 5001, 5002}, {6000, 6001, 6002}}}
	ones := [][][]float64{{{1, 1, 1}, {1, 1, 1}}}
	set, err := spectra.FromCube(wave, ones, ones, nil, []float64{2458000.5})
	if err != nil {
		panic(err)
	}
	return set
}

func ExampleLocate() {
	set := scenario()

	k, _ := region.Locate(set, 5001)
	_, err := region.Locate(set, 7000)
	fmt.Println(k, errors.Is(err, region.ErrWavelengthNotCovered))

	// Output:
	// 0 true
}

func ExampleResolve() {
	sel, _ := region.Resolve(scenario(), region.Bounds{Low: 5000.5, High: 5001.5})
	fmt.Println(sel.Order, sel.Mask)

	// Output:
	// 0 [false true false]
}
