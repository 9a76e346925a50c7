package cucumber

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cucumber/godog"

	"globebench/internal/cli"
	"globebench/internal/config"
	"globebench/internal/eval"
	"globebench/internal/runner"
)

// featureState holds per-scenario state for CLI feature tests.
type featureState struct {
	workDir    string
	previousWD string
	stdout     bytes.Buffer
	stderr     bytes.Buffer
	exitCode   int
}

// InitializeScenario wires cucumber steps to the feature state.
func InitializeScenario(ctx *godog.ScenarioContext) {
	state := &featureState{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		state.cleanup()
		return ctx, nil
	})

	ctx.Step(`^a project initialized with the starter configuration$`, state.aProjectWithStarterConfig)
	ctx.Step(`^the configuration contains an unknown field$`, state.theConfigContainsUnknownField)
	ctx.Step(`^a finished evaluation run named "([^"]+)"$`, state.aFinishedRun)
	ctx.Step(`^I run "([^"]+)"$`, state.iRunCommand)
	ctx.Step(`^the exit code is (\d+)$`, state.theExitCodeIs)
	ctx.Step(`^the exit code is non-zero$`, state.theExitCodeIsNonZero)
	ctx.Step(`^the output contains "([^"]+)"$`, state.theOutputContains)
	ctx.Step(`^the error output contains "([^"]+)"$`, state.theErrorOutputContains)
	ctx.Step(`^the output lists these commands:$`, state.theOutputListsCommands)
}

func (s *featureState) reset() {
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = 0
	s.workDir = ""
	s.previousWD = ""
}

func (s *featureState) cleanup() {
	if s.previousWD != "" {
		_ = os.Chdir(s.previousWD)
	}
	if s.workDir != "" {
		_ = os.RemoveAll(s.workDir)
	}
}

// aProjectWithStarterConfig creates a temp project dir, scaffolds the
// config there and makes it the working directory.
func (s *featureState) aProjectWithStarterConfig() error {
	dir, err := os.MkdirTemp("", "globebench-feature-")
	if err != nil {
		return fmt.Errorf("create project dir: %w", err)
	}
	s.workDir = dir

	if s.previousWD == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("record working directory: %w", err)
		}
		s.previousWD = wd
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("enter project dir: %w", err)
	}
	return config.Scaffold(filepath.Join(dir, config.DefaultFileName))
}

func (s *featureState) theConfigContainsUnknownField() error {
	if s.workDir == "" {
		return fmt.Errorf("no project directory")
	}
	body := "version: 1\nmodel:\n  endpoint: http://127.0.0.1:8080\n  name: globe-slm\n  typo_field: true\n"
	return os.WriteFile(filepath.Join(s.workDir, config.DefaultFileName), []byte(body), 0o644)
}

// aFinishedRun seeds one results document under the default output dir.
func (s *featureState) aFinishedRun(runID string) error {
	if s.workDir == "" {
		return fmt.Errorf("no project directory")
	}
	paths, err := runner.NewOutputPaths(filepath.Join(s.workDir, config.DefaultOutputDir), runID)
	if err != nil {
		return err
	}
	results := runner.Results{
		RunID: runID,
		Model: runner.ModelInfo{Endpoint: "http://127.0.0.1:8080", Name: "globe-slm"},
		Dataset: runner.DatasetInfo{
			Path:    "test.jsonl",
			Samples: 1,
		},
		Summary: runner.SummaryReport{
			Total:           1,
			ToolAccuracy:    1,
			OutputValidRate: 1,
			ExactMatchRate:  1,
		},
		PerTool: map[string]runner.ToolReport{
			"flyTo": {Correct: 1, Total: 1, Accuracy: 1},
		},
		Examples: []eval.Sample{
			{
				Instruction: "fly to paris",
				Expected:    `{"tool":"flyTo","arguments":{"longitude":2.35,"latitude":48.85}}`,
				Predicted:   `{"tool":"flyTo","arguments":{"longitude":2.35,"latitude":48.85}}`,
				ToolMatch:   true,
				OutputValid: true,
				ExactMatch:  true,
			},
		},
	}
	return runner.WriteResults(paths, results)
}

func (s *featureState) iRunCommand(command string) error {
	args := strings.Fields(command)
	if len(args) == 0 {
		return fmt.Errorf("command is empty")
	}
	if args[0] == "globebench" {
		args = args[1:]
	}
	s.stdout.Reset()
	s.stderr.Reset()
	s.exitCode = cli.Run(args, &s.stdout, &s.stderr)
	return nil
}

func (s *featureState) theExitCodeIs(code string) error {
	expected, err := strconv.Atoi(code)
	if err != nil {
		return fmt.Errorf("bad exit code %q: %w", code, err)
	}
	if s.exitCode != expected {
		return fmt.Errorf("expected exit %d, got %d (stderr: %s)", expected, s.exitCode, s.stderr.String())
	}
	return nil
}

func (s *featureState) theExitCodeIsNonZero() error {
	if s.exitCode == 0 {
		return fmt.Errorf("expected non-zero exit code")
	}
	return nil
}

func (s *featureState) theOutputContains(expected string) error {
	if !strings.Contains(s.stdout.String(), expected) {
		return fmt.Errorf("expected %q in output, got:\n%s", expected, s.stdout.String())
	}
	return nil
}

func (s *featureState) theErrorOutputContains(expected string) error {
	if !strings.Contains(s.stderr.String(), expected) {
		return fmt.Errorf("expected %q in error output, got:\n%s", expected, s.stderr.String())
	}
	return nil
}

func (s *featureState) theOutputListsCommands(table *godog.Table) error {
	output := s.stdout.String()
	for _, row := range table.Rows {
		for _, cell := range row.Cells {
			command := strings.TrimSpace(cell.Value)
			if command == "" {
				continue
			}
			if !strings.Contains(output, command) {
				return fmt.Errorf("expected command %q in output", command)
			}
		}
	}
	return nil
}
