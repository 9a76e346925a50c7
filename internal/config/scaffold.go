package config

import (
	"fmt"
	"os"
)

// scaffoldTemplate is the starter config written by `globebench init`.
const scaffoldTemplate = `version: 1

model:
  # OpenAI-compatible inference server hosting the fine-tuned model.
  endpoint: http://127.0.0.1:8080
  name: globe-slm
  temperature: 0.1
  max_tokens: 256

eval:
  output_dir: .globebench/runs
  workers: 4
  # 0 evaluates the full test set.
  max_samples: 0

monitor:
  total_iters: 1000
`

// Scaffold writes a starter config file, refusing to overwrite one.
func Scaffold(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(scaffoldTemplate), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
