package spectra

import "errors"

var (
	// ErrEmpty is returned when a set has no observations or no orders.
	ErrEmpty = errors.New("spectra: empty observation set")
	// ErrShapeMismatch is returned when wavelength, flux, error or time
	// arrays disagree in shape.
	ErrShapeMismatch = errors.New("spectra: shape mismatch")
	// ErrOrderRange is returned when an order index is outside the set.
	ErrOrderRange = errors.New("spectra: order index out of range")
)
