package excess

import "github.com/cwbudde/algo-transit/spectra/template"

// DefaultSigma is the clipping threshold used when clipping is enabled
// without an explicit sigma.
const DefaultSigma = 2.5

// Config defines how excess absorption is measured.
type Config struct {
	Template template.Kind
	// Clip enables per-observation sigma clipping of the ratio vector.
	Clip bool
	// Sigma is the clipping threshold in standard deviations.
	Sigma float64
	// Workers bounds how many observations are processed concurrently.
	// Values below 2 process sequentially.
	Workers int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an unclipped median-template measurement.
func DefaultConfig() Config {
	return Config{
		Template: template.Median,
		Sigma:    DefaultSigma,
		Workers:  1,
	}
}

// WithTemplate selects the template kind.
func WithTemplate(kind template.Kind) Option {
	return func(cfg *Config) {
		cfg.Template = kind
	}
}

// WithClipping enables sigma clipping at the configured sigma.
func WithClipping() Option {
	return func(cfg *Config) {
		cfg.Clip = true
	}
}

// WithSigma enables sigma clipping at the given threshold.
func WithSigma(sigma float64) Option {
	return func(cfg *Config) {
		if sigma > 0 {
			cfg.Clip = true
			cfg.Sigma = sigma
		}
	}
}

// WithWorkers sets the number of observations processed concurrently.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.Workers = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
