package eval

import (
	"errors"
	"sort"

	"globebench/internal/toolcall"
)

// ErrNoSamples reports an attempt to summarize an empty sample sequence.
var ErrNoSamples = errors.New("eval: no samples to summarize")

// unknownTool buckets samples whose expected record has no resolvable tool.
const unknownTool = "unknown"

// Summarize aggregates a complete sample sequence into run-level metrics.
// All headline rates are denominated over the full sample set; the mean
// coordinate error is denominated only over samples where it is defined.
func Summarize(samples []Sample) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrNoSamples
	}
	summary := Summary{
		Total:   len(samples),
		PerTool: map[string]ToolBucket{},
	}
	coordSum := 0.0
	coordCount := 0
	for _, sample := range samples {
		if sample.ToolMatch {
			summary.ToolCorrect++
		}
		if sample.OutputValid {
			summary.OutputValid++
		}
		if sample.ExactMatch {
			summary.ExactMatches++
		}
		if sample.CoordError != nil {
			coordSum += *sample.CoordError
			coordCount++
		}
		bucket := summary.PerTool[expectedTool(sample)]
		bucket.Total++
		if sample.ToolMatch {
			bucket.Correct++
		}
		summary.PerTool[expectedTool(sample)] = bucket
	}
	total := float64(summary.Total)
	summary.ToolAccuracy = float64(summary.ToolCorrect) / total
	summary.ValidRate = float64(summary.OutputValid) / total
	summary.ExactMatchRate = float64(summary.ExactMatches) / total
	if coordCount > 0 {
		mean := coordSum / float64(coordCount)
		summary.MeanCoordError = &mean
	}
	return summary, nil
}

// ToolNames returns the summary's tool identifiers in lexicographic order
// so breakdown reporting is deterministic.
func (s Summary) ToolNames() []string {
	names := make([]string, 0, len(s.PerTool))
	for name := range s.PerTool {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// expectedTool resolves the per-tool bucket for a sample from its expected
// text. Samples whose expected record fails to extract, or extracts
// without a resolvable tool, land in the "unknown" bucket.
func expectedTool(sample Sample) string {
	record, ok := toolcall.Extract(sample.Expected)
	if !ok || !record.ToolPresent || record.Tool == "" {
		return unknownTool
	}
	return record.Tool
}
