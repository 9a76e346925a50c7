package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"globebench/internal/config"
)

func TestValidateAcceptsScaffoldedConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), config.DefaultFileName)
	if err := config.Scaffold(configPath); err != nil {
		t.Fatalf("scaffold config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected success, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Config OK") {
		t.Fatalf("expected Config OK, got: %s", stdout.String())
	}
}

func TestValidateRejectsUnknownKeys(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), config.DefaultFileName)
	body := "version: 1\nmodel:\n  endpoint: http://127.0.0.1:8080\n  name: globe-slm\n  typo_field: true\n"
	if err := os.WriteFile(configPath, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", configPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "Validation failed") {
		t.Fatalf("expected validation failure, got: %s", stderr.String())
	}
}

func TestValidateMissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", filepath.Join(t.TempDir(), "missing.yml")}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
}

func TestValidateDatasetClean(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), config.DefaultFileName)
	if err := config.Scaffold(configPath); err != nil {
		t.Fatalf("scaffold config: %v", err)
	}
	datasetPath := filepath.Join(t.TempDir(), "test.jsonl")
	lines := `{"instruction":"fly to paris","output":"{\"tool\":\"flyToLocation\",\"arguments\":{\"location\":\"Paris\"}}"}
{"instruction":"go to 10,20","output":"{\"tool\":\"flyTo\",\"arguments\":{\"longitude\":10,\"latitude\":20}}"}
`
	if err := os.WriteFile(datasetPath, []byte(lines), 0o644); err != nil {
		t.Fatalf("write test set: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", configPath, "--dataset", datasetPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected success, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), "Dataset OK (2 samples)") {
		t.Fatalf("expected clean dataset report, got: %s", stdout.String())
	}
}

func TestValidateDatasetWarnings(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), config.DefaultFileName)
	if err := config.Scaffold(configPath); err != nil {
		t.Fatalf("scaffold config: %v", err)
	}
	datasetPath := filepath.Join(t.TempDir(), "test.jsonl")
	lines := `{"instruction":"do nothing","output":"no tool call here"}
{"instruction":"fly somewhere odd","output":"{\"tool\":\"flyToLocation\",\"arguments\":{\"location\":\"Atlantis Deep\"}}"}
{"instruction":"use a fake tool","output":"{\"tool\":\"teleport\",\"arguments\":{}}"}
`
	if err := os.WriteFile(datasetPath, []byte(lines), 0o644); err != nil {
		t.Fatalf("write test set: %v", err)
	}

	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "--config", configPath, "--dataset", datasetPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("warnings must not fail validation, got %d (stderr: %s)", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "no extractable tool call") {
		t.Fatalf("expected extraction warning, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), `unknown location "Atlantis Deep"`) {
		t.Fatalf("expected location warning, got: %s", stderr.String())
	}
	if !strings.Contains(stderr.String(), `unknown tool "teleport"`) {
		t.Fatalf("expected unknown-tool warning, got: %s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "3 warnings") {
		t.Fatalf("expected warning count, got: %s", stdout.String())
	}
}

func TestValidateRejectsPositionalArgs(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := Run([]string{"validate", "extra.yml"}, &stdout, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
