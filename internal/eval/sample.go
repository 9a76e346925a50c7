// Package eval scores model-generated globe tool calls against ground
// truth and aggregates per-sample judgments into run-level metrics.
package eval

// Sample is the aggregate judgment for one (instruction, expected,
// predicted) triple. It is created once per evaluated sample and is
// immutable afterwards.
type Sample struct {
	Instruction string   `json:"instruction"`
	Expected    string   `json:"expected"`
	Predicted   string   `json:"predicted"`
	ToolMatch   bool     `json:"tool_match"`
	OutputValid bool     `json:"output_valid"`
	ExactMatch  bool     `json:"exact_match"`
	CoordError  *float64 `json:"coord_error"`
	SchemaValid *bool    `json:"schema_valid,omitempty"`
}

// ToolBucket holds the per-tool accuracy tally for a summary.
type ToolBucket struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// Accuracy returns the bucket's correct/total ratio, zero when empty.
func (b ToolBucket) Accuracy() float64 {
	if b.Total == 0 {
		return 0
	}
	return float64(b.Correct) / float64(b.Total)
}

// Summary aggregates a complete sample sequence.
type Summary struct {
	Total          int                   `json:"total"`
	ToolCorrect    int                   `json:"tool_correct"`
	OutputValid    int                   `json:"output_valid"`
	ExactMatches   int                   `json:"exact_matches"`
	ToolAccuracy   float64               `json:"tool_accuracy"`
	ValidRate      float64               `json:"output_valid_rate"`
	ExactMatchRate float64               `json:"exact_match_rate"`
	MeanCoordError *float64              `json:"mean_coord_error"`
	PerTool        map[string]ToolBucket `json:"per_tool"`
}
