// Package velocity converts wavelength grids to Doppler velocity and
// estimates line shifts between spectra.
//
// [Convert] maps wavelengths to km/s relative to a zero point chosen from,
// in order of precedence, a line centre, the flux minimum of a profile, or
// the middle of the grid:
//
//	res, err := velocity.Convert(wave, velocity.WithLine(5889.95))
//
// [PixelShift] and [Shift] cross-correlate two profiles with an FFT and
// report the lag of the correlation peak.
package velocity
