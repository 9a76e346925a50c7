package runner

import (
	"time"

	"globebench/internal/eval"
)

// Results is the persisted record of one evaluation run.
type Results struct {
	RunID      string                `json:"run_id"`
	Model      ModelInfo             `json:"model"`
	Dataset    DatasetInfo           `json:"dataset"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt time.Time             `json:"finished_at"`
	Summary    SummaryReport         `json:"summary"`
	PerTool    map[string]ToolReport `json:"per_tool"`
	Examples   []eval.Sample         `json:"examples"`
}

// ModelInfo identifies the model under evaluation.
type ModelInfo struct {
	Endpoint    string  `json:"endpoint"`
	Name        string  `json:"name"`
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}

// DatasetInfo identifies the test set the run scored.
type DatasetInfo struct {
	Path    string `json:"path"`
	Samples int    `json:"samples"`
}

// SummaryReport carries the headline rates. AvgCoordError is null when no
// sample defined a coordinate error.
type SummaryReport struct {
	Total           int      `json:"total"`
	ToolAccuracy    float64  `json:"tool_accuracy"`
	OutputValidRate float64  `json:"output_valid_rate"`
	ExactMatchRate  float64  `json:"exact_match_rate"`
	AvgCoordError   *float64 `json:"avg_coord_error"`
}

// ToolReport is the per-tool accuracy entry.
type ToolReport struct {
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

// buildResults assembles the persisted record from an aggregated summary.
func buildResults(runID string, model ModelInfo, dataset DatasetInfo, startedAt, finishedAt time.Time, summary eval.Summary, samples []eval.Sample) Results {
	perTool := make(map[string]ToolReport, len(summary.PerTool))
	for name, bucket := range summary.PerTool {
		perTool[name] = ToolReport{
			Correct:  bucket.Correct,
			Total:    bucket.Total,
			Accuracy: bucket.Accuracy(),
		}
	}
	return Results{
		RunID:      runID,
		Model:      model,
		Dataset:    dataset,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
		Summary: SummaryReport{
			Total:           summary.Total,
			ToolAccuracy:    summary.ToolAccuracy,
			OutputValidRate: summary.ValidRate,
			ExactMatchRate:  summary.ExactMatchRate,
			AvgCoordError:   summary.MeanCoordError,
		},
		PerTool:  perTool,
		Examples: samples,
	}
}
