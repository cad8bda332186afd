// Package config loads the pricefit configuration file.
//
// Every setting has a default, so the file is optional:
//
//	dataset: data.csv
//	coefficients: theta.csv
//	log_level: warn
//	max_mileage: 4890993
//	training:
//	  iterations: 300
//	  learning_rate: 0.5
//	graph:
//	  output: graph.png
package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ezoic/pricefit/dataset"
	"github.com/ezoic/pricefit/linear"
	"github.com/ezoic/pricefit/pkg/errors"
	"github.com/ezoic/pricefit/store"
)

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = "pricefit.yaml"

// DefaultMaxMileage is the largest mileage accepted for an estimate.
const DefaultMaxMileage = 4890993

// Training holds the gradient descent hyperparameters.
type Training struct {
	Iterations   int     `yaml:"iterations" validate:"gt=0"`
	LearningRate float64 `yaml:"learning_rate" validate:"gt=0"`
}

// Graph holds the visualization settings.
type Graph struct {
	Output string `yaml:"output" validate:"required"`
}

// Config is the full configuration.
type Config struct {
	Dataset      string   `yaml:"dataset" validate:"required"`
	Coefficients string   `yaml:"coefficients" validate:"required"`
	LogLevel     string   `yaml:"log_level" validate:"oneof=trace debug info warn warning error disabled off"`
	MaxMileage   float64  `yaml:"max_mileage" validate:"gt=0"`
	Training     Training `yaml:"training"`
	Graph        Graph    `yaml:"graph"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dataset:      dataset.DefaultPath,
		Coefficients: store.DefaultPath,
		LogLevel:     "warn",
		MaxMileage:   DefaultMaxMileage,
		Training: Training{
			Iterations:   linear.DefaultIterations,
			LearningRate: linear.DefaultLearningRate,
		},
		Graph: Graph{Output: "graph.png"},
	}
}

// Load reads path over the defaults. An empty path or a missing file at the
// default location yields the defaults; a missing file that was asked for
// explicitly is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks every field constraint.
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// TrainerOptions converts the training section to trainer options.
func (c *Config) TrainerOptions() []linear.Option {
	return []linear.Option{
		linear.WithIterations(c.Training.Iterations),
		linear.WithLearningRate(c.Training.LearningRate),
	}
}
