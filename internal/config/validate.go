package config

import (
	"fmt"
	"net/url"

	"globebench/internal/spec"
)

// Validate checks a normalized config. Error messages name the offending
// field so CLI output points straight at the problem.
func Validate(cfg *spec.Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("version: unsupported value %d (expected 1)", cfg.Version)
	}
	if cfg.Model.Endpoint == "" {
		return fmt.Errorf("model.endpoint: required")
	}
	parsed, err := url.Parse(cfg.Model.Endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("model.endpoint: %q is not an absolute URL", cfg.Model.Endpoint)
	}
	if cfg.Model.Name == "" {
		return fmt.Errorf("model.name: required")
	}
	if cfg.Model.Temperature < 0 {
		return fmt.Errorf("model.temperature: must be non-negative")
	}
	if cfg.Model.MaxTokens < 0 {
		return fmt.Errorf("model.max_tokens: must be non-negative")
	}
	if cfg.Eval.Workers < 1 {
		return fmt.Errorf("eval.workers: must be at least 1")
	}
	if cfg.Eval.MaxSamples < 0 {
		return fmt.Errorf("eval.max_samples: must be non-negative")
	}
	if cfg.Monitor.TotalIters < 0 {
		return fmt.Errorf("monitor.total_iters: must be non-negative")
	}
	return nil
}
