// Package synth generates deterministic synthetic transit observations for
// tests, examples and the dtinfo demo.
package synth

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-transit/spectra"
)

// errFloor is the per-pixel error reported for noiseless spectra.
const errFloor = 1e-3

// OrderSpec describes a linear wavelength grid for one order.
type OrderSpec struct {
	Label  string
	Start  float64
	Step   float64
	Pixels int
}

// Line is a Gaussian absorption feature. Width is the Gaussian sigma in
// wavelength units, Depth the fractional flux removed at line centre.
type Line struct {
	Center float64
	Depth  float64
	Width  float64
}

// Config defines the synthetic observing run.
type Config struct {
	Observations int
	Start        float64 // first exposure, Julian days
	Cadence      float64 // days between exposures
	Orders       []OrderSpec
	Stellar      []Line // present in every observation
	Planet       []Line // added to in-transit observations only
	Noise        float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a two-order run around the sodium D lines.
func DefaultConfig() Config {
	return Config{
		Observations: 20,
		Start:        2458000.5,
		Cadence:      0.01,
		Orders: []OrderSpec{
			{Label: "na", Start: 5880, Step: 0.05, Pixels: 400},
			{Label: "halpha", Start: 6550, Step: 0.05, Pixels: 400},
		},
		Stellar: []Line{
			{Center: 5889.95, Depth: 0.6, Width: 0.15},
			{Center: 5895.92, Depth: 0.5, Width: 0.15},
			{Center: 6562.80, Depth: 0.7, Width: 0.4},
		},
		Planet: []Line{
			{Center: 5889.95, Depth: 0.02, Width: 0.1},
			{Center: 5895.92, Depth: 0.015, Width: 0.1},
		},
	}
}

// WithObservations sets the number of exposures.
func WithObservations(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Observations = n
		}
	}
}

// WithOrders replaces the order layout.
func WithOrders(orders ...OrderSpec) Option {
	return func(cfg *Config) {
		if len(orders) > 0 {
			cfg.Orders = orders
		}
	}
}

// WithStellarLines replaces the stellar line list.
func WithStellarLines(lines ...Line) Option {
	return func(cfg *Config) { cfg.Stellar = lines }
}

// WithPlanetLines replaces the in-transit line list.
func WithPlanetLines(lines ...Line) Option {
	return func(cfg *Config) { cfg.Planet = lines }
}

// WithNoise sets the Gaussian flux noise sigma.
func WithNoise(sigma float64) Option {
	return func(cfg *Config) {
		if sigma >= 0 {
			cfg.Noise = sigma
		}
	}
}

// WithCadence sets the start time and spacing of exposures.
func WithCadence(start, cadence float64) Option {
	return func(cfg *Config) {
		if cadence > 0 {
			cfg.Start = start
			cfg.Cadence = cadence
		}
	}
}

// Generator creates synthetic observation sets from a shared configuration.
type Generator struct {
	cfg  Config
	seed int64
}

// NewGenerator creates a configured generator with a fixed seed.
func NewGenerator(seed int64, opts ...Option) *Generator {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Generator{cfg: cfg, seed: seed}
}

// Config returns the generator configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Times returns the exposure times in Julian days.
func (g *Generator) Times() []float64 {
	times := make([]float64, g.cfg.Observations)
	for i := range times {
		times[i] = g.cfg.Start + float64(i)*g.cfg.Cadence
	}
	return times
}

// Generate builds an unphased observation set. inTransit reports, per
// observation index, whether planetary lines are added; it may be nil.
func (g *Generator) Generate(inTransit func(i int) bool) (*spectra.Set, error) {
	if g.cfg.Observations <= 0 {
		return nil, fmt.Errorf("synth: observations must be > 0: %d", g.cfg.Observations)
	}

	rng := rand.New(rand.NewSource(g.seed))
	nobs := g.cfg.Observations
	orders := make([]spectra.Order, len(g.cfg.Orders))

	sigma := g.cfg.Noise
	if sigma <= 0 {
		sigma = errFloor
	}

	for k, spec := range g.cfg.Orders {
		if spec.Pixels <= 0 {
			return nil, fmt.Errorf("synth: order %q pixels must be > 0: %d", spec.Label, spec.Pixels)
		}

		grid := Grid(spec.Start, spec.Step, spec.Pixels)
		o := spectra.Order{
			Label: spec.Label,
			Wave:  make([][]float64, nobs),
			Flux:  make([][]float64, nobs),
			Err:   make([][]float64, nobs),
		}

		for i := 0; i < nobs; i++ {
			lines := g.cfg.Stellar
			if inTransit != nil && inTransit(i) {
				lines = append(append([]Line(nil), lines...), g.cfg.Planet...)
			}

			flux := Profile(grid, lines...)
			errs := make([]float64, len(flux))
			for p := range flux {
				if g.cfg.Noise > 0 {
					flux[p] += rng.NormFloat64() * g.cfg.Noise
				}
				errs[p] = sigma
			}

			o.Wave[i] = grid
			o.Flux[i] = flux
			o.Err[i] = errs
		}

		orders[k] = o
	}

	return spectra.New(g.Times(), orders)
}

// Grid returns n wavelengths starting at start spaced by step.
func Grid(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Profile returns a unit continuum multiplied by the given absorption lines.
func Profile(wave []float64, lines ...Line) []float64 {
	out := make([]float64, len(wave))
	for p, w := range wave {
		f := 1.0
		for _, l := range lines {
			if l.Width <= 0 {
				continue
			}
			d := (w - l.Center) / l.Width
			f *= 1 - l.Depth*math.Exp(-0.5*d*d)
		}
		out[p] = f
	}
	return out
}
