package monitor

import (
	"bytes"
	"os"
	"runtime"
	"strings"
	"testing"
	"time"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell-based subprocess tests need a POSIX shell")
	}
}

// TestRunMirrorsChildExitCode verifies exit code propagation.
func TestRunMirrorsChildExitCode(t *testing.T) {
	requireShell(t)
	var buf bytes.Buffer

	code, err := Run(RunConfig{
		TotalIters: 10,
		Command:    []string{"sh", "-c", "exit 0"},
		Out:        &buf,
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "Training complete") {
		t.Fatalf("expected success indicator, got %q", buf.String())
	}

	buf.Reset()
	code, err = Run(RunConfig{
		TotalIters: 10,
		Command:    []string{"sh", "-c", "exit 7"},
		Out:        &buf,
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 7 {
		t.Fatalf("expected exit 7, got %d", code)
	}
	if !strings.Contains(buf.String(), "Training failed (exit code 7)") {
		t.Fatalf("expected failure indicator, got %q", buf.String())
	}
}

// TestRunRendersProgressFromChildOutput verifies parsed output reaches
// the display, including lines on stderr.
func TestRunRendersProgressFromChildOutput(t *testing.T) {
	requireShell(t)
	var buf bytes.Buffer

	script := `echo "Iter 10: Train loss 1.234, It/sec 2.1, Tokens/sec 512.0, Peak mem 4.2"
echo "Iter 20: Val loss 2.000" 1>&2
echo "noise line"`
	code, err := Run(RunConfig{
		TotalIters: 100,
		Command:    []string{"sh", "-c", script},
		Out:        &buf,
		NoColor:    true,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != 0 {
		t.Fatalf("expected exit 0, got %d", code)
	}
	out := buf.String()
	if !strings.Contains(out, "iter:10/100") {
		t.Fatalf("expected iteration status, got %q", out)
	}
	if !strings.Contains(out, "val:2.000") {
		t.Fatalf("expected validation status, got %q", out)
	}
	// initial frame plus two matched lines
	if got := strings.Count(out, ansiCursorHome); got != 3 {
		t.Fatalf("expected 3 renders, got %d", got)
	}
}

// TestRunInterruptTerminatesChild verifies the interrupt path kills the
// child and returns a non-zero code.
func TestRunInterruptTerminatesChild(t *testing.T) {
	requireShell(t)
	var buf bytes.Buffer
	signals := make(chan os.Signal, 1)

	done := make(chan struct{})
	var code int
	var err error
	go func() {
		defer close(done)
		code, err = Run(RunConfig{
			TotalIters: 10,
			Command:    []string{"sh", "-c", "sleep 30"},
			Out:        &buf,
			NoColor:    true,
			Signals:    signals,
		})
	}()

	time.Sleep(200 * time.Millisecond)
	signals <- os.Interrupt

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("interrupted run did not exit")
	}
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if code != InterruptExitCode {
		t.Fatalf("expected interrupt exit code, got %d", code)
	}
	if !strings.Contains(buf.String(), "Training interrupted.") {
		t.Fatalf("expected interrupt indicator, got %q", buf.String())
	}
}

// TestRunRejectsEmptyCommand verifies input validation.
func TestRunRejectsEmptyCommand(t *testing.T) {
	if _, err := Run(RunConfig{TotalIters: 10}); err == nil {
		t.Fatal("expected error for empty command")
	}
}
