// Package excess measures excess absorption in a spectral line.
//
// Each observation is divided by a template within a line region and the
// fractional deviations from unity are summed. The sign is flipped so a
// flux deficit (absorption) is positive:
//
//	excess[i] = -Σ_p (flux[i][p]/template[p] - 1)
//
// NaN pixels are skipped. With clipping enabled, pixels whose ratio is at or
// above median + sigma·stdev of that observation's ratios are dropped first,
// which removes emission spikes and cosmic rays.
//
// # Usage
//
//	ex, err := excess.Measure(set, region.Bounds{Low: 5889.5, High: 5890.4},
//		excess.WithTemplate(template.OutOfTransit),
//		excess.WithSigma(3),
//	)
package excess
