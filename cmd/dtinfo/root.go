package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-transit/internal/synth"
	"github.com/cwbudde/algo-transit/measure/excess"
	"github.com/cwbudde/algo-transit/measure/lightcurve"
	"github.com/cwbudde/algo-transit/spectra/region"
	"github.com/cwbudde/algo-transit/spectra/template"
	"github.com/cwbudde/algo-transit/transit"
)

// version is set via ldflags at build time.
var version = "dev"

// defaultParams is an HD 189733 b-like hot Jupiter.
var defaultParams = transit.Params{
	Epoch:       2458000.6,
	Period:      2.2185752,
	RadiusRatio: 0.155,
	SemiMajor:   8.84,
	Inclination: 85.71,
	U1:          0.32,
	U2:          0.22,
}

type options struct {
	paramsFile string
	obs        int
	noise      float64
	seed       int64
	cadence    float64
	low, high  float64
	tmpl       string
	sigma      float64
	workers    int
	debug      bool
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "dtinfo",
		Short:         "Measure excess absorption on a synthetic transit",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := newLogger(stderr, opts.debug)
			return run(stdout, logger, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.paramsFile, "params", "", "YAML file with transit parameters")
	f.IntVar(&opts.obs, "obs", 40, "number of exposures")
	f.Float64Var(&opts.noise, "noise", 0.001, "Gaussian flux noise sigma")
	f.Int64Var(&opts.seed, "seed", 1, "noise seed")
	f.Float64Var(&opts.cadence, "cadence", 0.005, "days between exposures")
	f.Float64Var(&opts.low, "low", 5889.5, "line region lower bound")
	f.Float64Var(&opts.high, "high", 5890.4, "line region upper bound")
	f.StringVar(&opts.tmpl, "template", "oot", "template kind: med or oot")
	f.Float64Var(&opts.sigma, "sigma", 0, "sigma-clipping threshold (0 disables)")
	f.IntVar(&opts.workers, "workers", 1, "observations measured concurrently")
	f.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(stdout, "dtinfo %s\n", version)
		},
	})

	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func loadParams(path string) (transit.Params, error) {
	p := defaultParams
	if path == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read params: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse params %s: %w", path, err)
	}
	return p, p.Validate()
}

func run(w io.Writer, logger *slog.Logger, opts options) error {
	params, err := loadParams(opts.paramsFile)
	if err != nil {
		return err
	}

	kind, err := template.ParseKind(opts.tmpl)
	if err != nil {
		return err
	}

	start := params.Epoch - float64(opts.obs)/2*opts.cadence
	gen := synth.NewGenerator(opts.seed,
		synth.WithObservations(opts.obs),
		synth.WithNoise(opts.noise),
		synth.WithCadence(start, opts.cadence),
	)

	truth, err := transit.Compute(gen.Times(), params, transit.Box{})
	if err != nil {
		return err
	}

	set, err := gen.Generate(truth.InTransit)
	if err != nil {
		return err
	}
	logger.Debug("synthesised observations", "obs", set.Len(), "orders", set.NumOrders())

	phased, err := transit.Apply(set, params, transit.Box{})
	if err != nil {
		return err
	}
	logger.Info("phase computed", "out_of_transit", len(phased.OutOfTransit()))

	bounds := region.Bounds{Low: opts.low, High: opts.high}
	measureOpts := []excess.Option{excess.WithTemplate(kind), excess.WithWorkers(opts.workers)}
	if opts.sigma > 0 {
		measureOpts = append(measureOpts, excess.WithSigma(opts.sigma))
	}

	res, err := excess.Analyze(phased, bounds, measureOpts...)
	if err != nil {
		return err
	}

	lc, err := lightcurve.WeightedMean(phased, bounds)
	if err != nil {
		return err
	}
	logger.Info("measured", "region", bounds.String(), "template", kind.String(), "clip", opts.sigma > 0)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "OBS\tJD\tPHASE\tEXCESS\tPIXELS\tFLUX\tERR")
	for i := 0; i < phased.Len(); i++ {
		_, _ = fmt.Fprintf(tw, "%d\t%.5f\t%.4f\t%.5f\t%d\t%.5f\t%.5f\n",
			i, phased.Times()[i], phased.Phase()[i], res.Excess[i], res.Used[i], lc.Flux[i], lc.Err[i])
	}
	return tw.Flush()
}
