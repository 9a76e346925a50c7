// Package cli implements the globebench command line interface.
package cli

import (
	"fmt"
	"io"
)

const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// Command pairs a subcommand name with its handler and usage lines.
type Command struct {
	Name    string
	Summary string
	Usage   []string
	Run     func(args []string, stdout, stderr io.Writer) int
}

// Run dispatches a CLI invocation and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		printUsage(stdout)
		return ExitUsage
	}
	switch args[0] {
	case "-h", "--help", "help":
		printUsage(stdout)
		return ExitOK
	}
	for _, cmd := range commands {
		if cmd.Name == args[0] {
			return cmd.Run(args[1:], stdout, stderr)
		}
	}
	fmt.Fprintf(stderr, "Unknown command: %s\n\n", args[0])
	printUsage(stderr)
	return ExitUsage
}

// wantsHelp reports whether a help flag appears anywhere in the args.
func wantsHelp(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == "--help" {
			return true
		}
	}
	return false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  globebench <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-9s %s\n", cmd.Name, cmd.Summary)
	}
	fmt.Fprintln(w, "\nUse \"globebench <command> --help\" for more information.")
}

func printCommandUsage(cmd *Command, w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	for _, line := range cmd.Usage {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if cmd.Summary != "" {
		fmt.Fprintf(w, "\n%s\n", cmd.Summary)
	}
}

// command builds a Command whose handler closes over the command itself
// so it can print its own usage.
func command(name, summary string, usage []string, handler func(cmd *Command) func(args []string, stdout, stderr io.Writer) int) *Command {
	cmd := &Command{Name: name, Summary: summary, Usage: usage}
	cmd.Run = handler(cmd)
	return cmd
}

var commands = []*Command{
	command("init", "Scaffold .globebench.yml", []string{
		"globebench init [--config <path>] [--yes]",
	}, runInit),
	command("validate", "Validate .globebench.yml and optionally a test set", []string{
		"globebench validate [--config <path>] [--dataset <test.jsonl>]",
	}, runValidate),
	command("eval", "Evaluate a model against a test set", []string{
		"globebench eval <test.jsonl> [--config <path>] [--ui auto|live|plain]",
	}, runEval),
	command("monitor", "Wrap a training command with a progress display", []string{
		"globebench monitor [--total-iters <n>] -- <command...>",
	}, runMonitor),
	command("report", "Render results for a finished run", []string{
		"globebench report [--run <run-id|latest>] [--config <path>]",
		"globebench report --list",
	}, runReport),
	command("serve", "Serve run reports and the run database over HTTP", []string{
		"globebench serve [--addr <host:port>] [--config <path>]",
	}, runServe),
}
