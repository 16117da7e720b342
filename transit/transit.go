package transit

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-transit/spectra"
)

var (
	// ErrInvalidParams is returned for physically invalid orbital parameters.
	ErrInvalidParams = errors.New("transit: invalid parameters")
	// ErrModelOutput is returned when a model returns arrays of the wrong length.
	ErrModelOutput = errors.New("transit: model output does not match times")
)

// Params are the orbital and limb-darkening parameters of a transit.
type Params struct {
	Epoch        float64 `yaml:"epoch"`        // mid-transit time, Julian days
	Period       float64 `yaml:"period"`       // days
	RadiusRatio  float64 `yaml:"rp_rs"`        // Rp/R*
	SemiMajor    float64 `yaml:"a_rs"`         // a/R*
	Inclination  float64 `yaml:"inclination"`  // degrees
	Eccentricity float64 `yaml:"eccentricity"`
	Periapsis    float64 `yaml:"omega"`        // argument of periapsis, degrees
	U1           float64 `yaml:"u1"`           // limb darkening
	U2           float64 `yaml:"u2"`
}

// Validate checks that p describes a bound, transiting geometry.
func (p Params) Validate() error {
	switch {
	case !(p.Period > 0):
		return fmt.Errorf("%w: period must be > 0: %g", ErrInvalidParams, p.Period)
	case !(p.RadiusRatio > 0):
		return fmt.Errorf("%w: rp/r* must be > 0: %g", ErrInvalidParams, p.RadiusRatio)
	case !(p.SemiMajor > 0):
		return fmt.Errorf("%w: a/r* must be > 0: %g", ErrInvalidParams, p.SemiMajor)
	case p.Inclination < 0 || p.Inclination > 180:
		return fmt.Errorf("%w: inclination must be in [0,180]: %g", ErrInvalidParams, p.Inclination)
	case p.Eccentricity < 0 || p.Eccentricity >= 1:
		return fmt.Errorf("%w: eccentricity must be in [0,1): %g", ErrInvalidParams, p.Eccentricity)
	}
	return nil
}

// Model evaluates a transit light curve. Phase is NaN for times outside
// transit.
type Model interface {
	Evaluate(times []float64, p Params) (phase, flux []float64, err error)
}

// ModelFunc adapts a function to [Model].
type ModelFunc func(times []float64, p Params) (phase, flux []float64, err error)

// Evaluate calls f.
func (f ModelFunc) Evaluate(times []float64, p Params) (phase, flux []float64, err error) {
	return f(times, p)
}

// Phases is the result of evaluating a model at the observation times.
type Phases struct {
	Phase []float64
	Flux  []float64
}

// InTransit reports whether observation i has a defined phase.
func (ph Phases) InTransit(i int) bool { return !math.IsNaN(ph.Phase[i]) }

// Compute validates p and evaluates m at times.
func Compute(times []float64, p Params, m Model) (Phases, error) {
	if err := p.Validate(); err != nil {
		return Phases{}, err
	}

	phase, flux, err := m.Evaluate(times, p)
	if err != nil {
		return Phases{}, fmt.Errorf("transit: model: %w", err)
	}
	if len(phase) != len(times) || len(flux) != len(times) {
		return Phases{}, fmt.Errorf("%w: %d times, %d phases, %d fluxes",
			ErrModelOutput, len(times), len(phase), len(flux))
	}

	return Phases{Phase: phase, Flux: flux}, nil
}

// Apply returns a copy of set carrying the phases and model light curve
// computed at its observation times.
func Apply(set *spectra.Set, p Params, m Model) (*spectra.Set, error) {
	ph, err := Compute(set.Times(), p, m)
	if err != nil {
		return nil, err
	}
	return set.WithPhase(ph.Phase, ph.Flux)
}

// unixEpochJD is the Julian date of 1970-01-01T00:00:00Z.
const unixEpochJD = 2440587.5

// JulianDate converts t to a Julian date (UTC).
func JulianDate(t time.Time) float64 {
	return unixEpochJD + float64(t.UnixNano())/float64(24*time.Hour)
}

// JulianDates converts every timestamp with [JulianDate].
func JulianDates(ts []time.Time) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = JulianDate(t)
	}
	return out
}
