package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"globebench/internal/config"
	"globebench/internal/dataset"
	"globebench/internal/geo"
	"globebench/internal/toolcall"
)

// fuzzyLocationDistance bounds the edit distance accepted when checking
// dataset location names against the location database.
const fuzzyLocationDistance = 2

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: search for .globebench.yml)")
		datasetPath := flags.String("dataset", "", "Also check a JSONL test set against the tool catalog")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}

		resolved, err := resolveConfigPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}

		if _, err := config.Load(resolved); err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%s\n", err.Error())
			return ExitError
		}

		fmt.Fprintln(stdout, "Config OK")

		if strings.TrimSpace(*datasetPath) != "" {
			return validateDataset(*datasetPath, stdout, stderr)
		}
		return ExitOK
	}
}

// validateDataset checks a test set's shape and, advisorily, its expected
// outputs: extractability, tool-catalog schemas and location names.
// Warnings do not fail the command; only an unloadable test set does.
func validateDataset(path string, stdout, stderr io.Writer) int {
	samples, err := dataset.Load(path)
	if err != nil {
		fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
		return ExitError
	}
	catalog, err := toolcall.LoadCatalog()
	if err != nil {
		fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
		return ExitError
	}

	warnings := 0
	warnf := func(index int, format string, args ...any) {
		warnings++
		fmt.Fprintf(stderr, "Warning: sample %d: %s\n", index+1, fmt.Sprintf(format, args...))
	}
	for idx, sample := range samples {
		record, ok := toolcall.Extract(sample.Output)
		if !ok {
			warnf(idx, "expected output has no extractable tool call")
			continue
		}
		if valid, problems := catalog.Validate(record); !valid {
			for _, problem := range problems {
				warnf(idx, "%s", problem)
			}
		}
		if location, ok := record.Arguments["location"]; ok {
			if name, isString := location.StringValue(); isString {
				if _, found := geo.FuzzyResolve(name, fuzzyLocationDistance); !found {
					warnf(idx, "unknown location %q", name)
				}
			}
		}
	}

	if warnings > 0 {
		fmt.Fprintf(stdout, "Dataset checked: %d samples, %d warnings\n", len(samples), warnings)
	} else {
		fmt.Fprintf(stdout, "Dataset OK (%d samples)\n", len(samples))
	}
	return ExitOK
}
