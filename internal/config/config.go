// Package config holds the run parameters of a benchmark.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is one run's parameters. Keys missing from a YAML file keep the
// defaults.
type Config struct {
	Pattern        string `yaml:"pattern" validate:"required"`
	RoundsPerCycle int    `yaml:"rounds_per_cycle" validate:"gt=0"`
	Cycles         int    `yaml:"cycles" validate:"gt=0"`
	CorpusPath     string `yaml:"corpus_path" validate:"required"`
	// Parallelism bounds concurrent timing; 0 and 1 time sequentially.
	Parallelism int    `yaml:"parallelism" validate:"gte=0"`
	MetricsFile string `yaml:"metrics_file"`
	LogLevel    string `yaml:"log_level" validate:"omitempty,oneof=debug info warn warning error"`
	LogJSON     bool   `yaml:"log_json"`
}

// Default returns the classic run: "adipiscing" searched 100000 times per
// cycle over test.txt, for 10 cycles.
func Default() Config {
	return Config{
		Pattern:        "adipiscing",
		RoundsPerCycle: 100_000,
		Cycles:         10,
		CorpusPath:     "test.txt",
		LogLevel:       "info",
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: %s fails %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
