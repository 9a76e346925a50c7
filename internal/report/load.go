package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"globebench/internal/runner"
)

// LatestRun is the ref that resolves to the most recent run.
const LatestRun = "latest"

// ResolveRun loads a run's results by run ID, or the most recent run for
// the "latest" ref. Run IDs sort chronologically so the lexical maximum
// is the newest run.
func ResolveRun(outputDir, ref string) (runner.Results, string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		ref = LatestRun
	}
	var runDir string
	if ref == LatestRun {
		latest, err := findLatestRunDir(outputDir)
		if err != nil {
			return runner.Results{}, "", err
		}
		runDir = latest
	} else {
		runDir = filepath.Join(outputDir, ref)
		if info, err := os.Stat(runDir); err != nil || !info.IsDir() {
			return runner.Results{}, "", fmt.Errorf("run %s not found in %s", ref, outputDir)
		}
	}
	results, err := runner.LoadResults(filepath.Join(runDir, "results.json"))
	if err != nil {
		return runner.Results{}, "", err
	}
	return results, runDir, nil
}

func findLatestRunDir(outputDir string) (string, error) {
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return "", fmt.Errorf("read output dir: %w", err)
	}
	runIDs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			runIDs = append(runIDs, entry.Name())
		}
	}
	if len(runIDs) == 0 {
		return "", fmt.Errorf("no runs found in %s", outputDir)
	}
	sort.Strings(runIDs)
	return filepath.Join(outputDir, runIDs[len(runIDs)-1]), nil
}
