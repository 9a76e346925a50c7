package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"globebench/internal/config"
	"globebench/internal/report"
	"globebench/internal/runner"
	"globebench/internal/store"
)

// runReport builds the handler for the report command.
func runReport(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .globebench.yml)")
		outputDir := fs.String("output-dir", "", "Directory containing runs")
		runRef := fs.String("run", report.LatestRun, "Run ID to report on, or \"latest\"")
		list := fs.Bool("list", false, "List saved runs from the run database")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}

		resolvedOutputDir, err := resolveOutputDir(*outputDir, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve output directory: %v\n", err)
			return ExitError
		}

		if *list {
			return listRuns(resolvedOutputDir, stdout, stderr)
		}

		results, runDir, err := report.ResolveRun(resolvedOutputDir, *runRef)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load run: %v\n", err)
			return ExitError
		}

		html, err := report.RenderHTML(context.Background(), results)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}
		reportPath := filepath.Join(runDir, "report.html")
		if err := os.WriteFile(reportPath, []byte(html), 0o644); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}

		report.WriteConsole(stdout, results, *noColor)
		fmt.Fprintf(stdout, "Report: %s\n", reportPath)
		return ExitOK
	}
}

// listRuns prints the run history from the DuckDB database.
func listRuns(outputDir string, stdout, stderr io.Writer) int {
	dbPath := filepath.Join(outputDir, runner.DBFileName)
	if _, err := os.Stat(dbPath); err != nil {
		fmt.Fprintf(stderr, "Run database not found: %v\n", err)
		return ExitError
	}
	db, err := openRunDB(dbPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to open run database: %v\n", err)
		return ExitError
	}
	defer func() { _ = db.Close() }()

	rows, err := store.ListRuns(context.Background(), db)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to list runs: %v\n", err)
		return ExitError
	}
	if len(rows) == 0 {
		fmt.Fprintln(stdout, "No runs saved yet.")
		return ExitOK
	}
	for _, row := range rows {
		fmt.Fprintf(stdout, "%s  %s  samples=%d  tool_acc=%.1f%%  valid=%.1f%%  exact=%.1f%%\n",
			row.RunID, row.ModelName, row.Total,
			row.ToolAccuracy*100, row.OutputValidRate*100, row.ExactMatchRate*100)
	}
	return ExitOK
}

// resolveOutputDir picks the runs directory from a flag or the config.
func resolveOutputDir(outputDir, configPath string) (string, error) {
	if outputDir != "" {
		return outputDir, nil
	}
	resolved, err := resolveConfigPath(configPath)
	if err != nil {
		return "", err
	}
	cfg, err := config.Load(resolved)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(cfg.Eval.OutputDir) {
		return cfg.Eval.OutputDir, nil
	}
	return filepath.Join(config.BaseDir(resolved), cfg.Eval.OutputDir), nil
}
