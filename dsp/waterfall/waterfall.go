// Package waterfall prepares stacked line profiles for phase-resolved
// waterfall images.
package waterfall

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-transit/stats/robust"
)

// DefaultRepeat is the number of image rows emitted per observation.
const DefaultRepeat = 3

var (
	// ErrEmptyInput is returned when no line profiles are given.
	ErrEmptyInput = errors.New("waterfall: no line profiles")
	// ErrRaggedLines is returned when profiles or the template differ in length.
	ErrRaggedLines = errors.New("waterfall: line profiles differ in length")
)

// Config defines how profiles are expanded.
type Config struct {
	Repeat   int
	Subtract bool
	Template []float64
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig repeats each row three times and subtracts the median
// profile.
func DefaultConfig() Config {
	return Config{Repeat: DefaultRepeat, Subtract: true}
}

// WithRepeat sets the number of rows per observation.
func WithRepeat(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Repeat = n
		}
	}
}

// WithoutSubtraction keeps the raw profiles.
func WithoutSubtraction() Option {
	return func(cfg *Config) {
		cfg.Subtract = false
	}
}

// WithTemplate sets the profile to subtract instead of the median.
func WithTemplate(t []float64) Option {
	return func(cfg *Config) {
		cfg.Template = t
	}
}

// Result holds the expanded image rows and the template that was (or would
// have been) subtracted.
type Result struct {
	Rows     [][]float64
	Template []float64
}

// Expand returns len(lines)·Repeat rows; observation i fills rows
// [i·Repeat, (i+1)·Repeat). Rows never alias the input.
func Expand(lines [][]float64, opts ...Option) (Result, error) {
	if len(lines) == 0 {
		return Result{}, ErrEmptyInput
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	width := len(lines[0])
	for i, l := range lines {
		if len(l) != width {
			return Result{}, fmt.Errorf("%w: line %d has %d pixels, want %d", ErrRaggedLines, i, len(l), width)
		}
	}

	tmpl := cfg.Template
	if tmpl == nil {
		tmpl = robust.ColumnMedian(lines, nil)
	}
	if len(tmpl) != width {
		return Result{}, fmt.Errorf("%w: template has %d pixels, want %d", ErrRaggedLines, len(tmpl), width)
	}

	neg := make([]float64, width)
	vecmath.ScaleBlock(neg, tmpl, -1)

	rows := make([][]float64, 0, len(lines)*cfg.Repeat)
	for _, l := range lines {
		row := append([]float64(nil), l...)
		if cfg.Subtract {
			vecmath.AddBlockInPlace(row, neg)
		}
		rows = append(rows, row)
		for r := 1; r < cfg.Repeat; r++ {
			rows = append(rows, append([]float64(nil), row...))
		}
	}

	return Result{Rows: rows, Template: tmpl}, nil
}
