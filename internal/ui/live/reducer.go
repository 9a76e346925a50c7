package live

import (
	"fmt"

	"globebench/internal/runner"
)

// Reduce applies a sample event to the UI state.
func Reduce(state State, event runner.SampleEvent) State {
	state = ensureRow(state, event)
	state = applySampleEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.SampleEvent) State {
	if event.Index < 0 {
		return state
	}
	if event.Index < len(state.Rows) {
		return state
	}
	rows := make([]SampleRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = SampleRow{Index: i, Status: runner.SampleQueued}
	}
	state.Rows = rows
	return state
}

// applySampleEvent updates a row with the given event.
func applySampleEvent(state State, event runner.SampleEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Instruction == "" {
		row.Instruction = event.Instruction
	}
	row.Status = event.Type
	if event.Type == runner.SampleGenerating && row.StartedAt.IsZero() {
		row.StartedAt = event.EmittedAt
	}
	if isTerminalStatus(event.Type) {
		if !event.EmittedAt.IsZero() {
			row.FinishedAt = event.EmittedAt
		}
		row.CoordError = event.CoordError
		row.Error = event.Error
	}
	state.Rows[event.Index] = row
	return state
}

// isTerminalStatus reports whether a status is final.
func isTerminalStatus(status runner.SampleEventType) bool {
	switch status {
	case runner.SampleCorrect,
		runner.SampleIncorrect,
		runner.SampleInvalid,
		runner.SampleError:
		return true
	default:
		return false
	}
}

// recount recomputes status counts for the current rows.
func recount(rows []SampleRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.SampleQueued:
			counts.Queued++
		case runner.SampleGenerating:
			counts.Generating++
		case runner.SampleScoring:
			counts.Scoring++
		case runner.SampleCorrect:
			counts.Done++
			counts.Correct++
		case runner.SampleIncorrect:
			counts.Done++
			counts.Incorrect++
		case runner.SampleInvalid:
			counts.Done++
			counts.Invalid++
		case runner.SampleError:
			counts.Done++
			counts.Errors++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.SampleEvent) string {
	switch event.Type {
	case runner.SampleCorrect:
		if event.CoordError != nil {
			return fmt.Sprintf("S%d correct (coord err %.2f)", event.Index+1, *event.CoordError)
		}
		return fmt.Sprintf("S%d correct", event.Index+1)
	case runner.SampleIncorrect:
		return fmt.Sprintf("S%d wrong tool", event.Index+1)
	case runner.SampleInvalid:
		return fmt.Sprintf("S%d no tool call extracted", event.Index+1)
	case runner.SampleError:
		return fmt.Sprintf("S%d error: %s", event.Index+1, event.Error)
	}
	return ""
}
