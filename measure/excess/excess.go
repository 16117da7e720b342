package excess

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-transit/spectra"
	"github.com/cwbudde/algo-transit/spectra/region"
	"github.com/cwbudde/algo-transit/spectra/template"
	"github.com/cwbudde/algo-transit/stats/robust"
)

// ErrTemplateLength is returned when a template does not match the number
// of selected pixels.
var ErrTemplateLength = errors.New("excess: template length does not match selection")

// Result holds the per-observation excess and the number of pixels that
// contributed to each value.
type Result struct {
	Excess []float64
	Used   []int
}

// Measure returns the excess absorption within b for every observation.
func Measure(set *spectra.Set, b region.Bounds, opts ...Option) ([]float64, error) {
	res, err := Analyze(set, b, opts...)
	if err != nil {
		return nil, err
	}
	return res.Excess, nil
}

// Analyze is like [Measure] but also reports the pixels used.
func Analyze(set *spectra.Set, b region.Bounds, opts ...Option) (Result, error) {
	cfg := ApplyOptions(opts...)

	sel, err := region.Resolve(set, b)
	if err != nil {
		return Result{}, err
	}

	tmpl, err := template.BuildSelection(set, cfg.Template, sel)
	if err != nil {
		return Result{}, fmt.Errorf("excess %s: %w", b, err)
	}

	return MeasureTemplate(set, sel, tmpl, cfg)
}

// MeasureTemplate measures excess against a caller-supplied template that
// is already restricted to sel.
func MeasureTemplate(set *spectra.Set, sel region.Selection, tmpl []float64, cfg Config) (Result, error) {
	if len(tmpl) != sel.Count() {
		return Result{}, fmt.Errorf("%w: %d values for %d pixels", ErrTemplateLength, len(tmpl), sel.Count())
	}

	minusOne := make([]float64, len(tmpl))
	for p := range minusOne {
		minusOne[p] = -1
	}

	rows := set.Order(sel.Order).Flux
	res := Result{
		Excess: make([]float64, len(rows)),
		Used:   make([]int, len(rows)),
	}

	measure := func(i int) {
		dev := sel.Apply(rows[i])
		for p, t := range tmpl {
			dev[p] /= t
		}

		var keep []bool
		if cfg.Clip {
			keep = clipMask(dev, cfg.Sigma)
		}

		vecmath.AddBlockInPlace(dev, minusOne)

		var used int
		for p, d := range dev {
			if keep != nil && !keep[p] {
				dev[p] = math.NaN()
				continue
			}
			if !math.IsNaN(d) {
				used++
			}
		}

		res.Excess[i] = -robust.NanSum(dev)
		res.Used[i] = used
	}

	if cfg.Workers < 2 {
		for i := range rows {
			measure(i)
		}
		return res, nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.Workers)
	for i := range rows {
		g.Go(func() error {
			measure(i)
			return nil
		})
	}

	return res, g.Wait()
}

// clipMask keeps ratios strictly below median + sigma·stdev. NaN ratios
// are never kept.
func clipMask(ratio []float64, sigma float64) []bool {
	med := robust.NanMedian(ratio)
	std := robust.NanStd(ratio)

	threshold := med
	if std > 0 {
		threshold += sigma * std
	}

	keep := make([]bool, len(ratio))
	for p, r := range ratio {
		keep[p] = r < threshold
	}
	return keep
}
