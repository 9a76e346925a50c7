// Package spec defines the harness configuration schema and its strict
// parsing from YAML or JSON.
package spec

// Config is the root of a .globebench.yml file.
type Config struct {
	Version int           `json:"version" yaml:"version"`
	Model   ModelConfig   `json:"model" yaml:"model"`
	Eval    EvalConfig    `json:"eval" yaml:"eval"`
	Monitor MonitorConfig `json:"monitor" yaml:"monitor"`
}

// ModelConfig describes the inference server hosting the model under test.
type ModelConfig struct {
	Endpoint    string  `json:"endpoint" yaml:"endpoint"`
	Name        string  `json:"name" yaml:"name"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
	MaxTokens   int     `json:"max_tokens" yaml:"max_tokens"`
}

// EvalConfig controls evaluation runs.
type EvalConfig struct {
	OutputDir  string `json:"output_dir" yaml:"output_dir"`
	Workers    int    `json:"workers" yaml:"workers"`
	MaxSamples int    `json:"max_samples" yaml:"max_samples"`
}

// MonitorConfig carries defaults for the training progress monitor.
type MonitorConfig struct {
	TotalIters int `json:"total_iters" yaml:"total_iters"`
}
