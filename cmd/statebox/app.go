package main

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/tailored-agentic-units/statebox/box"
	"github.com/tailored-agentic-units/statebox/observability"
)

const metricsNamespace = "statebox"

// app carries flag values and the runtime assembled from them.
type app struct {
	configFile string
	name       string
	seed       uint64
	verbose    bool
	metrics    bool

	cfg      *box.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	observer observability.Observer
}

// setup loads configuration, applies flag overrides and builds the observer
// chain. Flags win over the config file, which wins over defaults. --seed
// counts as set whenever it is given, so --seed 0 restores entropy seeding.
func (a *app) setup(cmd *cobra.Command) error {
	cfg := box.DefaultConfig()
	if a.configFile != "" {
		loaded, err := box.LoadConfig(a.configFile)
		if err != nil {
			return err
		}
		cfg = *loaded
	}
	cfg.Merge(&box.Config{Name: a.name})
	if cmd.Flags().Changed("seed") {
		cfg.Seed = a.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = &cfg

	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	}))

	var base observability.Observer
	if cfg.Observer == "slog" {
		base = observability.NewSlogObserver(a.logger)
	} else {
		obs, err := observability.GetObserver(cfg.Observer)
		if err != nil {
			return fmt.Errorf("%w: %w", box.ErrInvalidConfig, err)
		}
		base = obs
	}

	var metrics observability.Observer
	if a.metrics {
		a.registry = prometheus.NewRegistry()
		prom := observability.NewPrometheusObserver(metricsNamespace)
		if err := prom.Register(a.registry); err != nil {
			return err
		}
		metrics = prom
	}

	a.observer = observability.NewMultiObserver(base, metrics)
	return nil
}

// newBox creates a box from the loaded config, wired to the observer chain.
func (a *app) newBox() (*box.Box, error) {
	return box.NewFromConfig(a.cfg, box.WithObserver(a.observer))
}

// report prints gathered metrics when --metrics is set.
func (a *app) report(cmd *cobra.Command) error {
	if a.registry == nil {
		return nil
	}
	families, err := a.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	printMetrics(cmd.OutOrStdout(), families)
	return nil
}
