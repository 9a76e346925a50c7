package live

import (
	"time"

	"globebench/internal/runner"
)

// SampleRow holds UI state for a single dataset sample.
type SampleRow struct {
	Index       int
	Instruction string
	Status      runner.SampleEventType
	CoordError  *float64
	Error       string
	StartedAt   time.Time
	FinishedAt  time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued     int
	Generating int
	Scoring    int
	Done       int
	Correct    int
	Incorrect  int
	Invalid    int
	Errors     int
}

// State captures the live UI state for an evaluation run.
type State struct {
	RunID       string
	Model       string
	DatasetPath string
	Total       int
	StartedAt   time.Time
	Finished    bool
	LastEvent   string
	Rows        []SampleRow
	Counts      StatusCounts
}
