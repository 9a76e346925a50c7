package runner

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteResults writes the detailed results document as pretty JSON,
// creating the run directory as needed.
func WriteResults(paths OutputPaths, results Results) error {
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	return writeJSON(paths.ResultsPath(), results)
}

// WriteReport writes a pre-rendered HTML report into the run directory.
func WriteReport(paths OutputPaths, html []byte) error {
	if err := os.MkdirAll(paths.RunDir(), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(paths.ReportPath(), html, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// LoadResults reads a previously written results document.
func LoadResults(path string) (Results, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return Results{}, fmt.Errorf("read results: %w", err)
	}
	var results Results
	if err := json.Unmarshal(payload, &results); err != nil {
		return Results{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return results, nil
}

func writeJSON(path string, results Results) error {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
