// Package monitor wraps a training subprocess and turns its noisy line
// output into a stable terminal progress display.
package monitor

// ProgressState tracks training progress parsed from the child's output.
// A single reader goroutine owns it; the renderer only reads it.
type ProgressState struct {
	CurrentIter  int
	TotalIters   int
	TrainLoss    float64
	ValLoss      *float64
	ItersPerSec  float64
	TokensPerSec float64
	PeakMemory   float64
	JustSaved    bool
	SeenIter     bool
}

// NewProgressState returns the initial state for a run of totalIters.
func NewProgressState(totalIters int) ProgressState {
	return ProgressState{TotalIters: totalIters}
}
