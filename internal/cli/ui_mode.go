package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision says whether eval should drive the live view and carries
// an optional user-facing note about a downgrade.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal is a seam so tests can force TTY detection either way.
var isTerminal = writerIsTTY

// resolveUIMode maps the --ui flag onto a live/plain decision. Verbose
// output always wins over the live view since both want the terminal.
func resolveUIMode(mode string, verbose bool, stdout io.Writer) (uiModeDecision, error) {
	if verbose {
		return uiModeDecision{}, nil
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		return uiModeDecision{useLive: isTerminal(stdout)}, nil
	case "live":
		if !isTerminal(stdout) {
			return uiModeDecision{warning: "Live UI requested but stdout is not a TTY; falling back to plain output."}, nil
		}
		return uiModeDecision{useLive: true}, nil
	case "plain":
		return uiModeDecision{}, nil
	}
	return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
}

func writerIsTTY(w io.Writer) bool {
	type fdWriter interface{ Fd() uintptr }
	switch typed := w.(type) {
	case nil:
		return false
	case *os.File:
		return term.IsTerminal(int(typed.Fd()))
	case fdWriter:
		return term.IsTerminal(int(typed.Fd()))
	}
	return false
}
