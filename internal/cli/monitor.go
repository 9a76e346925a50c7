package cli

import (
	"flag"
	"fmt"
	"io"

	"globebench/internal/config"
	"globebench/internal/monitor"
)

// monitorRun is a test seam for executing the monitored command.
var monitorRun = monitor.Run

// runMonitor builds the handler for the monitor command.
func runMonitor(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		configPath := fs.String("config", "", "Path to config file (default: search for .globebench.yml)")
		totalIters := fs.Int("total-iters", 0, "Total training iterations (default: monitor.total_iters from config)")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors")
		if err := fs.Parse(args); err != nil {
			return ExitUsage
		}

		command := fs.Args()
		if len(command) == 0 {
			fmt.Fprintln(stderr, "Usage: globebench monitor [--total-iters <n>] -- <command...>")
			return ExitUsage
		}

		total := *totalIters
		if total <= 0 {
			// The config is optional here; without it progress renders
			// as a zero-percent bar.
			if resolved, err := resolveConfigPath(*configPath); err == nil {
				if cfg, err := config.Load(resolved); err == nil {
					total = cfg.Monitor.TotalIters
				}
			}
		}

		exitCode, err := monitorRun(monitor.RunConfig{
			TotalIters: total,
			Command:    command,
			Out:        stdout,
			NoColor:    *noColor,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Monitor failed: %v\n", err)
			return ExitError
		}
		return exitCode
	}
}
