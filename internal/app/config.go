package app

import (
	"errors"
	"fmt"
)

// Output formats accepted by Config.OutputFormat.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PipelinePath string // hcl file or directory
	DataPath     string // yaml dataset
	DotPath      string // optional; "-" writes to the output stream

	LogFormat    string
	LogLevel     string
	OutputFormat string

	// MaxIterations overrides the pipeline's fixpoint bound when positive.
	MaxIterations int
	// CheckOnly stops after the frequency pass.
	CheckOnly bool
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}
	if cfg.DataPath == "" {
		return nil, errors.New("DataPath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = OutputText
	}
	if cfg.OutputFormat != OutputText && cfg.OutputFormat != OutputYAML {
		return nil, fmt.Errorf("invalid output format %q: must be %q or %q", cfg.OutputFormat, OutputText, OutputYAML)
	}
	if cfg.MaxIterations < 0 {
		return nil, fmt.Errorf("max iterations must not be negative, got %d", cfg.MaxIterations)
	}
	return &cfg, nil
}
