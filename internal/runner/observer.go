package runner

import "time"

// SampleEventType identifies a sample status update for observers.
type SampleEventType string

const (
	// SampleQueued marks a sample known but not yet dispatched.
	SampleQueued SampleEventType = "queued"
	// SampleGenerating marks an active model call.
	SampleGenerating SampleEventType = "generating"
	// SampleScoring marks comparison of the generated output.
	SampleScoring SampleEventType = "scoring"
	// SampleCorrect marks a sample whose predicted tool matched.
	SampleCorrect SampleEventType = "correct"
	// SampleIncorrect marks valid output with the wrong tool.
	SampleIncorrect SampleEventType = "incorrect"
	// SampleInvalid marks output with no extractable record.
	SampleInvalid SampleEventType = "invalid"
	// SampleError marks a generation failure.
	SampleError SampleEventType = "error"
)

// SampleEvent carries a single status update for a sample.
type SampleEvent struct {
	Index       int
	Instruction string
	Type        SampleEventType
	CoordError  *float64
	Error       string
	EmittedAt   time.Time
}

// RunObserver receives run lifecycle events for UI or logging.
type RunObserver interface {
	// OnRunStart signals the start of a run.
	OnRunStart(runID string, model string, datasetPath string, total int)
	// OnSampleEvent delivers a sample status update.
	OnSampleEvent(event SampleEvent)
	// OnRunEnd signals run completion.
	OnRunEnd(results Results)
}

// notify forwards an event when an observer is configured.
func notify(observer RunObserver, event SampleEvent) {
	if observer == nil {
		return
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now()
	}
	observer.OnSampleEvent(event)
}

// terminalEventType classifies a scored sample for observers.
func terminalEventType(toolMatch, outputValid bool) SampleEventType {
	switch {
	case toolMatch:
		return SampleCorrect
	case outputValid:
		return SampleIncorrect
	default:
		return SampleInvalid
	}
}
