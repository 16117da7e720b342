// Package spectra holds the observation set consumed by the transit
// excess-absorption pipeline.
//
// A [Set] is a time series of echelle spectra. Each spectral [Order] is
// stored separately, indexed [observation][pixel], so orders may have
// different pixel counts without any padding:
//
//	set, err := spectra.New(times, []spectra.Order{blue, red})
//	phased, err := set.WithPhase(phase, model)
//
// A Set is never modified after construction. Attaching orbital phase
// returns a new Set that shares the flux arrays with the original.
package spectra
