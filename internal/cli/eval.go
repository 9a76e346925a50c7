package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"globebench/internal/config"
	"globebench/internal/report"
	"globebench/internal/runner"
	"globebench/internal/store"
	"globebench/internal/ui/live"
)

// Test seams for run execution and persistence.
var (
	runEvalAndWrite = runner.RunAndWrite
	openRunDB       = store.Open
	saveRunToDB     = store.SaveRun
)

// runEval builds the handler for the eval command.
func runEval(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .globebench.yml)")
		endpoint := fs.String("endpoint", "", "Override the inference server endpoint")
		modelName := fs.String("model", "", "Override the model name")
		outputDir := fs.String("output-dir", "", "Override output directory")
		workers := fs.Int("workers", 0, "Override worker count")
		maxSamples := fs.Int("max-samples", 0, "Evaluate at most N samples (0 = all)")
		uiMode := fs.String("ui", "auto", "UI mode: auto, live or plain")
		verbose := fs.Bool("verbose", false, "Verbose logging (disables the live UI)")
		logPath := fs.String("log", "", "Write verbose logs to a file")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		noDB := fs.Bool("no-db", false, "Skip saving the run to the run database")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		if fs.NArg() != 1 {
			fmt.Fprintln(stderr, "Usage: globebench eval <test.jsonl>")
			return ExitUsage
		}
		datasetPath, err := filepath.Abs(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve test set path: %v\n", err)
			return ExitError
		}

		resolvedConfig, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to locate config: %v\n", err)
			return ExitError
		}
		cfg, err := config.Load(resolvedConfig)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
			return ExitError
		}
		if *endpoint != "" {
			cfg.Model.Endpoint = *endpoint
		}
		if *modelName != "" {
			cfg.Model.Name = *modelName
		}
		if *outputDir != "" {
			cfg.Eval.OutputDir = *outputDir
		} else if !filepath.IsAbs(cfg.Eval.OutputDir) {
			cfg.Eval.OutputDir = filepath.Join(config.BaseDir(resolvedConfig), cfg.Eval.OutputDir)
		}
		if *workers > 0 {
			cfg.Eval.Workers = *workers
		}
		if *maxSamples > 0 {
			cfg.Eval.MaxSamples = *maxSamples
		}

		decision, err := resolveUIMode(*uiMode, *verbose, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "%v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		var logFile io.WriteCloser
		if strings.TrimSpace(*logPath) != "" {
			dir := filepath.Dir(*logPath)
			if dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					fmt.Fprintf(stderr, "Failed to create log directory: %v\n", err)
					return ExitError
				}
			}
			file, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to open log file: %v\n", err)
				return ExitError
			}
			logFile = file
			defer func() { _ = logFile.Close() }()
		}

		params := runner.Params{
			Config:      cfg,
			DatasetPath: datasetPath,
			Verbose:     *verbose,
			NoColor:     *noColor,
		}
		if *verbose {
			params.VerboseWriter = stdout
			if logFile != nil {
				params.VerboseWriter = io.MultiWriter(stdout, logFile)
			}
		}

		var controller *live.Controller
		if decision.useLive {
			controller = live.Start(stdout, live.Options{NoColor: *noColor})
			params.Observer = controller
		}

		results, paths, err := runEvalAndWrite(context.Background(), params)
		if controller != nil {
			controller.Close()
			controller.Wait()
		}
		if err != nil {
			fmt.Fprintf(stderr, "Eval failed: %v\n", err)
			return ExitError
		}

		html, err := report.RenderHTML(context.Background(), results)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to render report: %v\n", err)
			return ExitError
		}
		if err := runner.WriteReport(paths, []byte(html)); err != nil {
			fmt.Fprintf(stderr, "Failed to write report: %v\n", err)
			return ExitError
		}

		if !*noDB {
			if err := persistRun(paths, results); err != nil {
				fmt.Fprintf(stderr, "Warning: run database not updated: %v\n", err)
			}
		}

		report.WriteConsole(stdout, results, *noColor)
		fmt.Fprintf(stdout, "Results: %s\n", paths.ResultsPath())
		fmt.Fprintf(stdout, "Report: %s\n", paths.ReportPath())
		return ExitOK
	}
}

// persistRun appends the run to the shared DuckDB database.
func persistRun(paths runner.OutputPaths, results runner.Results) error {
	db, err := openRunDB(paths.DBPath())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	return saveRunToDB(context.Background(), db, results)
}
