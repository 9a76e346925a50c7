package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"globebench/internal/reportserver"
)

// serveReport is a test seam for running the report server.
var serveReport = reportserver.Serve

// runServe builds the handler for the serve command.
func runServe(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		addr := fs.String("addr", "127.0.0.1:5000", "Address to listen on")
		configPath := fs.String("config", "", "Path to config file (default: search for .globebench.yml)")
		outputDir := fs.String("output-dir", "", "Directory containing runs")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}
		if fs.NArg() > 0 {
			fmt.Fprintln(stderr, "Too many arguments")
			return ExitUsage
		}
		if *addr == "" {
			fmt.Fprintln(stderr, "Missing --addr")
			return ExitUsage
		}

		resolvedOutputDir, err := resolveOutputDir(*outputDir, *configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to resolve output directory: %v\n", err)
			return ExitError
		}
		if _, err := os.Stat(resolvedOutputDir); err != nil {
			fmt.Fprintf(stderr, "Output directory not found: %v\n", err)
			return ExitError
		}

		cfg := reportserver.Config{
			Addr:      *addr,
			OutputDir: resolvedOutputDir,
		}
		fmt.Fprintf(stdout, "Serving reports at http://%s\n", cfg.Addr)
		if err := serveReport(context.Background(), cfg); err != nil {
			fmt.Fprintf(stderr, "Server error: %v\n", err)
			return ExitError
		}
		return ExitOK
	}
}
