// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/magnitude/config"
	"github.com/katalvlaran/magnitude/distance"
	"github.com/katalvlaran/magnitude/magnitude"
	"github.com/katalvlaran/magnitude/metrics"
)

// Output formats accepted by --format.
const (
	formatText = "text"
	formatJSON = "json"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath  string
	input       string
	format      string
	distance    string
	scale       float64
	threshold   float64
	logLevel    string
	dumpMetrics bool

	cfg      *config.Config
	log      zerolog.Logger
	registry *prometheus.Registry
	provider distance.Provider
	engine   *magnitude.Engine
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "magnitude",
		Short: "Measure the effective size of a set of text items",
		Long: `magnitude computes the magnitude of a finite metric space built from text
items: a scalar between 1 and n telling how many distinct items the set is
worth. It also greedily selects diverse subsets.

Items are read one per line. Blank and whitespace-only lines are skipped,
so an empty string cannot be passed as an item from the command line.

Settings come from defaults, an optional YAML file (--config) and
MAGNITUDE_* environment variables; flags override all of them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			if !a.dumpMetrics {
				return nil
			}
			families, err := a.registry.Gather()
			if err != nil {
				return fmt.Errorf("gather metrics: %w", err)
			}

			return writeMetrics(cmd.ErrOrStderr(), families)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVarP(&a.input, "input", "i", "", "file with one item per line, blank lines skipped (default stdin)")
	pf.StringVarP(&a.format, "format", "f", formatText, "output format: text or json")
	pf.StringVarP(&a.distance, "distance", "d", "", "distance: edit, cosine, jaccard or ngram")
	pf.Float64Var(&a.scale, "scale", 0, "similarity scale t in exp(-t*d)")
	pf.Float64Var(&a.threshold, "threshold", 0, "similarity above which a pair is redundant")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	pf.BoolVar(&a.dumpMetrics, "metrics", false, "print Prometheus metrics to stderr on exit")

	root.AddCommand(
		computeCmd(a),
		selectCmd(a),
		contributionCmd(a),
		distanceCmd(a),
	)

	return root
}

// setup loads the configuration, applies flag overrides and builds the
// logger, metrics registry and engine.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("distance") {
		cfg.Engine.Distance = a.distance
	}
	if flags.Changed("scale") {
		cfg.Engine.Scale = a.scale
	}
	if flags.Changed("threshold") {
		cfg.Engine.Threshold = a.threshold
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = a.logLevel
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	if a.format != formatText && a.format != formatJSON {
		return fmt.Errorf("unknown format %q", a.format)
	}

	if a.log, err = cfg.Logger(cmd.ErrOrStderr()); err != nil {
		return err
	}
	a.registry = prometheus.NewRegistry()
	col, err := metrics.NewCollector(a.registry)
	if err != nil {
		return err
	}
	if a.provider, err = cfg.Provider(col); err != nil {
		return err
	}
	if a.engine, err = magnitude.New(cfg.EngineOptions(a.provider, a.log, col)...); err != nil {
		return err
	}
	a.cfg = cfg

	a.log.Debug().
		Str("command", cmd.Name()).
		Str("distance", cfg.Engine.Distance).
		Float64("scale", cfg.Engine.Scale).
		Msg("engine ready")

	return nil
}

func writeMetrics(w io.Writer, families []*dto.MetricFamily) error {
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return nil
}
