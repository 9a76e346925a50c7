package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"
)

// InterruptExitCode is returned when the operator interrupts a run.
const InterruptExitCode = 1

// killGracePeriod bounds the wait between SIGTERM and SIGKILL for the
// child process group.
const killGracePeriod = 5 * time.Second

// RunConfig configures one monitored training run.
type RunConfig struct {
	TotalIters int
	Command    []string
	Out        io.Writer
	NoColor    bool
	// Signals overrides the interrupt source for tests. When nil the
	// run listens for SIGINT and SIGTERM.
	Signals <-chan os.Signal
}

// Run starts the training command, folds its combined output into the
// progress display and returns the child's exit code. On interrupt the
// child process group is terminated and a non-zero code is returned.
func Run(cfg RunConfig) (int, error) {
	if len(cfg.Command) == 0 {
		return 0, errors.New("monitor: command is required")
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	cmd := exec.Command(cfg.Command[0], cfg.Command[1:]...)
	pipeReader, pipeWriter := io.Pipe()
	cmd.Stdout = pipeWriter
	cmd.Stderr = pipeWriter
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("start training command: %w", err)
	}

	signals := cfg.Signals
	var stopSignals func()
	if signals == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		signals = ch
		stopSignals = func() { signal.Stop(ch) }
	}

	var interrupted atomic.Bool
	processDone := make(chan struct{})
	go func() {
		if _, ok := <-signals; !ok {
			return
		}
		interrupted.Store(true)
		terminateProcessGroup(cmd)
		select {
		case <-time.After(killGracePeriod):
			killProcessGroup(cmd)
		case <-processDone:
		}
	}()

	waitErr := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		close(processDone)
		_ = pipeWriter.Close()
		waitErr <- err
	}()

	renderer := NewRenderer(out, cfg.NoColor)
	state := NewProgressState(cfg.TotalIters)
	renderer.Begin(state)

	scanner := bufio.NewScanner(pipeReader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var render bool
		state, render = Apply(state, strings.TrimSpace(scanner.Text()))
		if render {
			renderer.Render(state)
		}
	}

	err := <-waitErr
	if stopSignals != nil {
		stopSignals()
	}

	if interrupted.Load() {
		renderer.Interrupted()
		return InterruptExitCode, nil
	}

	exitCode := 0
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return 0, fmt.Errorf("wait for training command: %w", err)
		}
		exitCode = exitErr.ExitCode()
	}
	renderer.Finish(exitCode)
	return exitCode, nil
}
