// Package config loads the YAML run configuration for the spamsvm tool.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Feature modes.
const (
	FeaturesIndicators = "indicators"
	FeaturesBagOfWords = "bow"
)

// Config is the complete run configuration.
type Config struct {
	Data      DataConfig      `yaml:"data"`
	Model     ModelConfig     `yaml:"model"`
	Selection SelectionConfig `yaml:"selection"`
	Log       LogConfig       `yaml:"log"`
}

// DataConfig selects the corpus and how it becomes features.
type DataConfig struct {
	Path      string `yaml:"path"`
	Features  string `yaml:"features"  validate:"oneof=indicators bow"`
	Threshold int    `yaml:"threshold" validate:"min=1"`
}

// ModelConfig holds the hyperparameters of a single training run.
type ModelConfig struct {
	LearningRate float64 `yaml:"learning_rate" validate:"gt=0"`
	Lambda       float64 `yaml:"lambda"        validate:"gte=0"`
	Iterations   int     `yaml:"iterations"    validate:"min=1"`
}

// SelectionConfig drives cross-validation and grid search.
type SelectionConfig struct {
	Folds         int       `yaml:"folds"          validate:"min=2"`
	Seed          int64     `yaml:"seed"`
	Workers       int       `yaml:"workers"        validate:"min=1"`
	LearningRates []float64 `yaml:"learning_rates" validate:"min=1,dive,gt=0"`
	Lambdas       []float64 `yaml:"lambdas"        validate:"min=1,dive,gte=0"`
}

// LogConfig mirrors logging.Config.
type LogConfig struct {
	Level   string `yaml:"level"   validate:"omitempty,oneof=debug info warn error"`
	Console bool   `yaml:"console"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Features:  FeaturesIndicators,
			Threshold: 10,
		},
		Model: ModelConfig{
			LearningRate: 0.001,
			Lambda:       0.1,
			Iterations:   100,
		},
		Selection: SelectionConfig{
			Folds:         5,
			Seed:          0,
			Workers:       1,
			LearningRates: []float64{1e-4, 1e-3, 1e-2},
			Lambdas:       []float64{0, 0.01, 0.1, 1, 10},
		},
		Log: LogConfig{Level: "info"},
	}
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return fmt.Errorf("config: %s fails %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Parse decodes YAML on top of Default and validates the result. Unknown keys
// are rejected.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(b)
}
