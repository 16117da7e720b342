package transit

import "math"

// Box is a transit model of an opaque planet crossing a uniform stellar
// disk on a circular orbit. Eccentricity, periapsis and limb darkening are
// ignored, and flux drops by (Rp/R*)² for the whole time the disks overlap.
type Box struct{}

// Evaluate implements [Model]. Phase is the orbital phase in [-0.5, 0.5)
// relative to Epoch.
func (Box) Evaluate(times []float64, p Params) (phase, flux []float64, err error) {
	phase = make([]float64, len(times))
	flux = make([]float64, len(times))

	cosi := math.Cos(p.Inclination * math.Pi / 180)
	depth := p.RadiusRatio * p.RadiusRatio

	for i, t := range times {
		ph := (t - p.Epoch) / p.Period
		ph -= math.Floor(ph + 0.5)

		angle := 2 * math.Pi * ph
		sin, cos := math.Sincos(angle)
		z := p.SemiMajor * math.Sqrt(sin*sin+cosi*cosi*cos*cos)

		// cos > 0 keeps the planet in front of the star.
		if cos > 0 && z < 1+p.RadiusRatio {
			phase[i] = ph
			flux[i] = 1 - depth
			continue
		}

		phase[i] = math.NaN()
		flux[i] = 1
	}

	return phase, flux, nil
}
