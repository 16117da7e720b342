// Package template builds per-order reference spectra that observations
// are divided by to isolate transient absorption.
package template

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
	"github.com/cwbudde/algo-transit/stats/robust"
)

var (
	// ErrPhaseNotComputed is returned when an out-of-transit template is
	// requested from a set without orbital phase.
	ErrPhaseNotComputed = errors.New("template: orbital phase not computed")
	// ErrUnknownKind is returned for an unsupported template kind.
	ErrUnknownKind = errors.New("template: unknown template kind")
	// ErrNoBaseline is returned when no observation lies outside transit.
	ErrNoBaseline = errors.New("template: no out-of-transit observations")
)

// Kind selects how a template is built.
type Kind int

const (
	// Median is the per-pixel median across all observations.
	Median Kind = iota
	// OutOfTransit is the per-pixel median across observations whose
	// phase is NaN.
	OutOfTransit
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Median:
		return "median"
	case OutOfTransit:
		return "out-of-transit"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a name to a Kind. Both the short ("med", "oot") and long
// names are accepted.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "med", "median":
		return Median, nil
	case "oot", "out-of-transit":
		return OutOfTransit, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
}

// Build returns the template for order k. Its length equals the order's
// pixel count. NaN fluxes are ignored; a pixel with no finite flux is NaN.
// An out-of-range k yields an error wrapping spectra.ErrOrderRange.
func Build(set *spectra.Set, kind Kind, k int) ([]float64, error) {
	if err := set.CheckOrder(k); err != nil {
		return nil, err
	}

	rows := set.Order(k).Flux

	switch kind {
	case Median:
		return robust.ColumnMedian(rows, nil), nil
	case OutOfTransit:
		if !set.HasPhase() {
			return nil, ErrPhaseNotComputed
		}
		oot := set.OutOfTransit()
		if len(oot) == 0 {
			return nil, ErrNoBaseline
		}
		return robust.ColumnMedian(rows, oot), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}

// BuildSelection returns the template for the selection's order,
// restricted to the selected pixels.
func BuildSelection(set *spectra.Set, kind Kind, sel region.Selection) ([]float64, error) {
	full, err := Build(set, kind, sel.Order)
	if err != nil {
		return nil, err
	}
	return sel.Apply(full), nil
}
