package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"globebench/internal/runner"
)

// eventBuffer bounds how far the view may lag behind the runner before
// events are dropped instead of blocking sample workers.
const eventBuffer = 256

// Controller feeds runner events into the live view. It implements
// runner.RunObserver; every observer method is non-blocking.
type Controller struct {
	events   chan Event
	program  *tea.Program
	finished chan struct{}
	stop     sync.Once
}

// Start launches the live view on stdout and returns its controller.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	c := &Controller{
		events:   make(chan Event, eventBuffer),
		finished: make(chan struct{}),
	}
	c.program = tea.NewProgram(NewModel(c.events, opts), tea.WithOutput(stdout), tea.WithAltScreen())
	go func() {
		defer close(c.finished)
		_, _ = c.program.Run()
	}()
	return c
}

// Close ends the event stream, which quits the view.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.stop.Do(func() { close(c.events) })
}

// Wait blocks until the view has released the terminal.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.finished
}

func (c *Controller) OnRunStart(runID string, model string, datasetPath string, total int) {
	c.send(Event{Kind: EventRunStart, RunID: runID, Model: model, DatasetPath: datasetPath, Total: total})
}

func (c *Controller) OnSampleEvent(event runner.SampleEvent) {
	c.send(Event{Kind: EventSample, Sample: event})
}

func (c *Controller) OnRunEnd(runner.Results) {
	c.send(Event{Kind: EventRunEnd})
	c.Close()
}

// send drops the event rather than block a worker on a slow terminal.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
