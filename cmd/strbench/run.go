package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mhr3/strbench/bench"
	"github.com/mhr3/strbench/internal/config"
	"github.com/mhr3/strbench/internal/logging"
)

type runFlags struct {
	configPath  string
	pattern     string
	rounds      int
	cycles      int
	corpus      string
	parallel    int
	metricsFile string
	logLevel    string
	logJSON     bool
}

func newRunCmd() *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the measure-and-report cycles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(f.configPath)
			if err != nil {
				return err
			}
			f.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	d := config.Default()
	fl := cmd.Flags()
	fl.StringVar(&f.configPath, "config", "", "YAML config file")
	fl.StringVar(&f.pattern, "pattern", d.Pattern, "pattern to search for")
	fl.IntVar(&f.rounds, "rounds", d.RoundsPerCycle, "searches per algorithm per cycle")
	fl.IntVar(&f.cycles, "cycles", d.Cycles, "number of cycles")
	fl.StringVar(&f.corpus, "corpus", d.CorpusPath, "corpus file")
	fl.IntVar(&f.parallel, "parallel", d.Parallelism, "algorithms timed at once (0 or 1: sequential)")
	fl.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	fl.StringVar(&f.logLevel, "log-level", d.LogLevel, "debug, info, warn or error")
	fl.BoolVar(&f.logJSON, "log-json", false, "log JSON records")
	return cmd
}

// apply overrides cfg with the flags set on the command line.
func (f *runFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fl := cmd.Flags()
	if fl.Changed("pattern") {
		cfg.Pattern = f.pattern
	}
	if fl.Changed("rounds") {
		cfg.RoundsPerCycle = f.rounds
	}
	if fl.Changed("cycles") {
		cfg.Cycles = f.cycles
	}
	if fl.Changed("corpus") {
		cfg.CorpusPath = f.corpus
	}
	if fl.Changed("parallel") {
		cfg.Parallelism = f.parallel
	}
	if fl.Changed("metrics-file") {
		cfg.MetricsFile = f.metricsFile
	}
	if fl.Changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if fl.Changed("log-json") {
		cfg.LogJSON = f.logJSON
	}
}

func run(cfg config.Config, stdout, stderr io.Writer) error {
	log := logging.New(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON, Output: stderr})

	corpus, err := bench.Load(bench.FileSource{Path: cfg.CorpusPath})
	if err != nil {
		log.Error("cannot load corpus", "path", cfg.CorpusPath, "error", err)
		return err
	}
	info := corpus.Describe()
	log.Info("corpus loaded",
		"path", cfg.CorpusPath,
		"bytes", info.Bytes,
		"ascii", info.ASCII,
		"valid_utf8", info.ValidUTF8)

	registry, err := bench.NewCatalog(cfg.Pattern, corpus.Snapshot())
	if err != nil {
		return fmt.Errorf("build algorithms: %w", err)
	}

	reg := prometheus.NewRegistry()
	metrics, err := bench.NewMetrics(reg)
	if err != nil {
		return err
	}

	log.Info("starting run",
		"pattern", cfg.Pattern,
		"algorithms", registry.Len(),
		"rounds", cfg.RoundsPerCycle,
		"cycles", cfg.Cycles,
		"parallelism", cfg.Parallelism)

	d := &bench.Driver{
		Registry:    registry,
		Corpus:      corpus,
		Pattern:     cfg.Pattern,
		Rounds:      cfg.RoundsPerCycle,
		Cycles:      cfg.Cycles,
		Parallelism: cfg.Parallelism,
		Out:         stdout,
		Logger:      log,
		Metrics:     metrics,
	}
	if err := d.Run(); err != nil {
		return err
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, reg); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
		log.Info("metrics written", "path", cfg.MetricsFile)
	}
	return nil
}
