package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func stubInitInput(t *testing.T, input string) {
	t.Helper()
	prev := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = prev })
}

func TestInitWritesConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), ".globebench.yml")
	stubInitInput(t, "y\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--config", target}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected success, got %d (stderr: %s)", code, stderr.String())
	}

	body, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("expected config file: %v", err)
	}
	if !strings.Contains(string(body), "endpoint:") {
		t.Fatal("scaffolded config missing model endpoint")
	}
	if !strings.Contains(stdout.String(), "Wrote "+target) {
		t.Fatalf("expected write confirmation, got: %s", stdout.String())
	}
}

func TestInitYesSkipsPrompts(t *testing.T) {
	target := filepath.Join(t.TempDir(), ".globebench.yml")
	stubInitInput(t, "")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--config", target, "--yes"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected success, got %d (stderr: %s)", code, stderr.String())
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
}

func TestInitCancelled(t *testing.T) {
	target := filepath.Join(t.TempDir(), ".globebench.yml")
	stubInitInput(t, "n\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--config", target}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatal("config must not be written after cancellation")
	}
	if !strings.Contains(stderr.String(), "Init cancelled.") {
		t.Fatalf("expected cancellation notice, got: %s", stderr.String())
	}
}

func TestInitRefusesExistingConfig(t *testing.T) {
	target := filepath.Join(t.TempDir(), ".globebench.yml")
	if err := os.WriteFile(target, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	stubInitInput(t, "y\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--config", target}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "already exists") {
		t.Fatalf("expected existing-file error, got: %s", stderr.String())
	}
}

func TestInitAddsGitignoreEntry(t *testing.T) {
	repo := t.TempDir()
	if err := os.Mkdir(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("create .git: %v", err)
	}
	target := filepath.Join(repo, ".globebench.yml")
	stubInitInput(t, "y\ny\n")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"init", "--config", target}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected success, got %d (stderr: %s)", code, stderr.String())
	}

	ignore, err := os.ReadFile(filepath.Join(repo, ".gitignore"))
	if err != nil {
		t.Fatalf("expected .gitignore: %v", err)
	}
	if !strings.Contains(string(ignore), ".globebench") {
		t.Fatalf("expected results folder in .gitignore, got: %s", ignore)
	}
}
