package velocity

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-transit/stats/robust"
)

// SpeedOfLight is c in km/s.
const SpeedOfLight = 299792.458

var (
	// ErrEmptyInput is returned for empty wavelength or flux slices.
	ErrEmptyInput = errors.New("velocity: empty input")
	// ErrLineOutOfRange is returned when no wavelength reaches the
	// requested line centre.
	ErrLineOutOfRange = errors.New("velocity: line centre beyond wavelength grid")
	// ErrLengthMismatch is returned when flux and wavelength lengths differ.
	ErrLengthMismatch = errors.New("velocity: flux and wavelength lengths differ")
)

// Result is a velocity grid and the index of its zero point.
type Result struct {
	Velocity []float64 // km/s
	Zero     int
}

// Option configures Convert.
type Option func(*config)

type config struct {
	line    float64
	hasLine bool
	flux    []float64
}

// WithLine sets the zero point to the first wavelength at or above line.
func WithLine(line float64) Option {
	return func(c *config) {
		c.line = line
		c.hasLine = true
	}
}

// WithFlux sets the zero point to the flux minimum. It is ignored when a
// line is also given.
func WithFlux(flux []float64) Option {
	return func(c *config) {
		c.flux = flux
	}
}

// Convert returns (λ-λ0)/λ0·c for every wavelength. wave is expected in
// ascending order.
func Convert(wave []float64, opts ...Option) (Result, error) {
	if len(wave) == 0 {
		return Result{}, ErrEmptyInput
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	zero, err := zeroIndex(wave, cfg)
	if err != nil {
		return Result{}, err
	}

	lambda0 := wave[zero]
	v := make([]float64, len(wave))
	for i, w := range wave {
		v[i] = w - lambda0
	}
	vecmath.ScaleBlock(v, v, SpeedOfLight/lambda0)

	return Result{Velocity: v, Zero: zero}, nil
}

func zeroIndex(wave []float64, cfg config) (int, error) {
	switch {
	case cfg.hasLine:
		for i, w := range wave {
			if w >= cfg.line {
				return i, nil
			}
		}
		return 0, fmt.Errorf("%w: %g > %g", ErrLineOutOfRange, cfg.line, wave[len(wave)-1])
	case cfg.flux != nil:
		if len(cfg.flux) != len(wave) {
			return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(cfg.flux), len(wave))
		}
		if idx := robust.NanArgMin(cfg.flux); idx >= 0 {
			return idx, nil
		}
		return 0, fmt.Errorf("%w: flux is all NaN", ErrEmptyInput)
	default:
		return len(wave) / 2, nil
	}
}

// Dispersion returns the mean velocity step per pixel of wave in km/s.
func Dispersion(wave []float64) (float64, error) {
	if len(wave) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 wavelengths", ErrEmptyInput)
	}

	steps := make([]float64, len(wave)-1)
	floats.SubTo(steps, wave[1:], wave[:len(wave)-1])
	for i := range steps {
		steps[i] /= wave[i]
	}

	return floats.Sum(steps) / float64(len(steps)) * SpeedOfLight, nil
}
