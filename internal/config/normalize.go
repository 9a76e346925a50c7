package config

import (
	"strings"

	"globebench/internal/spec"
)

// Defaults applied during normalization.
const (
	DefaultOutputDir   = ".globebench/runs"
	DefaultWorkers     = 4
	DefaultMaxTokens   = 256
	DefaultTemperature = 0.1
)

// Normalize fills defaults and trims whitespace in place. It never
// rejects anything; Validate owns rejection.
func Normalize(cfg *spec.Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.Model.Endpoint = strings.TrimSpace(cfg.Model.Endpoint)
	cfg.Model.Name = strings.TrimSpace(cfg.Model.Name)
	if cfg.Model.MaxTokens == 0 {
		cfg.Model.MaxTokens = DefaultMaxTokens
	}
	if cfg.Model.Temperature == 0 {
		cfg.Model.Temperature = DefaultTemperature
	}
	cfg.Eval.OutputDir = strings.TrimSpace(cfg.Eval.OutputDir)
	if cfg.Eval.OutputDir == "" {
		cfg.Eval.OutputDir = DefaultOutputDir
	}
	if cfg.Eval.Workers == 0 {
		cfg.Eval.Workers = DefaultWorkers
	}
}
