package spectra

import (
	"fmt"
	"math"
)

// Order is one spectral order across all observations. Wave, Flux and Err
// are indexed [observation][pixel] and share the same shape.
type Order struct {
	Label string
	Wave  [][]float64
	Flux  [][]float64
	Err   [][]float64
}

// Pixels returns the pixel count of the order.
func (o Order) Pixels() int {
	if len(o.Wave) == 0 {
		return 0
	}
	return len(o.Wave[0])
}

// Set is an immutable time series of multi-order spectra.
type Set struct {
	orders []Order
	times  []float64
	phase  []float64
	model  []float64
}

// New builds a Set from observation times (Julian dates) and orders.
// Every order must hold one row per observation, and within an order every
// wavelength, flux and error row must have the same pixel count.
func New(times []float64, orders []Order) (*Set, error) {
	if len(times) == 0 || len(orders) == 0 {
		return nil, ErrEmpty
	}

	nobs := len(times)
	for k, o := range orders {
		if err := validateOrder(o, nobs); err != nil {
			return nil, fmt.Errorf("order %d (%q): %w", k, o.Label, err)
		}
	}

	return &Set{orders: orders, times: times}, nil
}

func validateOrder(o Order, nobs int) error {
	if len(o.Wave) != nobs || len(o.Flux) != nobs || len(o.Err) != nobs {
		return fmt.Errorf("%w: want %d observations, got wave=%d flux=%d err=%d",
			ErrShapeMismatch, nobs, len(o.Wave), len(o.Flux), len(o.Err))
	}

	npix := len(o.Wave[0])
	if npix == 0 {
		return fmt.Errorf("%w: order has no pixels", ErrEmpty)
	}

	for i := 0; i < nobs; i++ {
		if len(o.Wave[i]) != npix || len(o.Flux[i]) != npix || len(o.Err[i]) != npix {
			return fmt.Errorf("%w: observation %d has wave=%d flux=%d err=%d pixels, want %d",
				ErrShapeMismatch, i, len(o.Wave[i]), len(o.Flux[i]), len(o.Err[i]), npix)
		}
	}

	return nil
}

// FromCube builds a Set from arrays laid out [observation][order][pixel].
// labels may be nil; otherwise it must have one entry per order.
func FromCube(wave, flux, errs [][][]float64, labels []string, times []float64) (*Set, error) {
	if len(wave) == 0 {
		return nil, ErrEmpty
	}
	if len(flux) != len(wave) || len(errs) != len(wave) || len(times) != len(wave) {
		return nil, fmt.Errorf("%w: wave=%d flux=%d err=%d times=%d observations",
			ErrShapeMismatch, len(wave), len(flux), len(errs), len(times))
	}

	norders := len(wave[0])
	if labels != nil && len(labels) != norders {
		return nil, fmt.Errorf("%w: %d labels for %d orders", ErrShapeMismatch, len(labels), norders)
	}

	orders := make([]Order, norders)
	for k := range orders {
		o := Order{
			Wave: make([][]float64, len(wave)),
			Flux: make([][]float64, len(wave)),
			Err:  make([][]float64, len(wave)),
		}
		if labels != nil {
			o.Label = labels[k]
		}

		for i := range wave {
			if len(wave[i]) != norders || len(flux[i]) != norders || len(errs[i]) != norders {
				return nil, fmt.Errorf("%w: observation %d has %d orders, want %d",
					ErrShapeMismatch, i, len(wave[i]), norders)
			}
			o.Wave[i] = wave[i][k]
			o.Flux[i] = flux[i][k]
			o.Err[i] = errs[i][k]
		}

		orders[k] = o
	}

	return New(times, orders)
}

// Len returns the number of observations.
func (s *Set) Len() int { return len(s.times) }

// NumOrders returns the number of spectral orders.
func (s *Set) NumOrders() int { return len(s.orders) }

// Order returns order k. The returned arrays must not be modified.
// Order panics when k is out of range; use CheckOrder first for
// caller-supplied indices.
func (s *Set) Order(k int) Order { return s.orders[k] }

// CheckOrder returns an error wrapping ErrOrderRange unless k indexes an
// order of s.
func (s *Set) CheckOrder(k int) error {
	if k < 0 || k >= len(s.orders) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOrderRange, k, len(s.orders))
	}
	return nil
}

// Times returns the observation times in Julian days.
func (s *Set) Times() []float64 { return s.times }

// OrderIndex returns the index of the order with the given label.
func (s *Set) OrderIndex(label string) (int, bool) {
	for k, o := range s.orders {
		if o.Label == label {
			return k, true
		}
	}
	return -1, false
}

// WithPhase returns a copy of s carrying orbital phase and the transit
// model light curve. phase must hold one value per observation and is NaN
// outside transit. model may be nil.
func (s *Set) WithPhase(phase, model []float64) (*Set, error) {
	if len(phase) != len(s.times) {
		return nil, fmt.Errorf("%w: %d phases for %d observations", ErrShapeMismatch, len(phase), len(s.times))
	}
	if model != nil && len(model) != len(s.times) {
		return nil, fmt.Errorf("%w: %d model points for %d observations", ErrShapeMismatch, len(model), len(s.times))
	}

	out := *s
	out.phase = append([]float64(nil), phase...)
	if model != nil {
		out.model = append([]float64(nil), model...)
	}

	return &out, nil
}

// HasPhase reports whether orbital phase has been attached.
func (s *Set) HasPhase() bool { return s.phase != nil }

// Phase returns the orbital phase per observation, or nil.
func (s *Set) Phase() []float64 { return s.phase }

// Model returns the transit model light curve per observation, or nil.
func (s *Set) Model() []float64 { return s.model }

// OutOfTransit returns the indices of observations whose phase is NaN.
// It returns nil when no phase is attached.
func (s *Set) OutOfTransit() []int {
	if s.phase == nil {
		return nil
	}

	idx := make([]int, 0, len(s.phase))
	for i, p := range s.phase {
		if math.IsNaN(p) {
			idx = append(idx, i)
		}
	}

	return idx
}
