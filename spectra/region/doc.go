// Package region maps wavelengths and wavelength intervals onto the
// spectral orders of an observation set.
//
// [Locate] finds the order containing a wavelength. When neighbouring
// orders overlap, the order in which the wavelength sits closest to the
// order centre wins, since order edges have the lowest throughput.
// [Resolve] turns a [Bounds] pair into a [Selection]: the order index and a
// pixel mask over that order's grid. A line must lie within one order.
//
// Both use the wavelength grid of the first observation.
package region
