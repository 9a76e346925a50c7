package eval

import (
	"errors"
	"testing"
)

// TestSummarizeEmptyInput verifies the empty-batch condition is explicit.
func TestSummarizeEmptyInput(t *testing.T) {
	_, err := Summarize(nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("expected ErrNoSamples, got %v", err)
	}
}

// TestSummarizeRates verifies headline rates over the full sample set.
func TestSummarizeRates(t *testing.T) {
	coordError := 2.0
	samples := []Sample{
		{Expected: `{"tool":"flyTo","arguments":{}}`, ToolMatch: true, OutputValid: true, ExactMatch: true, CoordError: &coordError},
		{Expected: `{"tool":"flyTo","arguments":{}}`, ToolMatch: false, OutputValid: true, ExactMatch: false},
		{Expected: `{"tool":"zoom","arguments":{}}`, ToolMatch: false, OutputValid: false, ExactMatch: false},
		{Expected: `{"tool":"zoom","arguments":{}}`, ToolMatch: true, OutputValid: true, ExactMatch: false},
	}
	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.Total != 4 {
		t.Fatalf("expected 4 samples, got %d", summary.Total)
	}
	if summary.ToolAccuracy != 0.5 {
		t.Fatalf("expected tool accuracy 0.5, got %v", summary.ToolAccuracy)
	}
	if summary.ValidRate != 0.75 {
		t.Fatalf("expected valid rate 0.75, got %v", summary.ValidRate)
	}
	if summary.ExactMatchRate != 0.25 {
		t.Fatalf("expected exact-match rate 0.25, got %v", summary.ExactMatchRate)
	}
}

// TestSummarizeMeanCoordErrorDenominator verifies excluded samples do not
// enter the coordinate-error denominator.
func TestSummarizeMeanCoordErrorDenominator(t *testing.T) {
	two, four := 2.0, 4.0
	samples := []Sample{
		{Expected: `{"tool":"flyTo","arguments":{}}`, CoordError: &two},
		{Expected: `{"tool":"flyTo","arguments":{}}`, CoordError: &four},
		{Expected: `{"tool":"zoom","arguments":{}}`},
	}
	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.MeanCoordError == nil || *summary.MeanCoordError != 3.0 {
		t.Fatalf("expected mean coordinate error 3.0, got %v", summary.MeanCoordError)
	}
}

// TestSummarizeNoCoordinateSamples verifies the mean stays absent when no
// sample defines a coordinate error.
func TestSummarizeNoCoordinateSamples(t *testing.T) {
	samples := []Sample{{Expected: `{"tool":"zoom","arguments":{}}`}}
	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if summary.MeanCoordError != nil {
		t.Fatalf("expected absent mean coordinate error")
	}
}

// TestSummarizePerToolBreakdown verifies bucket tallies keyed by the
// expected record's tool.
func TestSummarizePerToolBreakdown(t *testing.T) {
	samples := []Sample{
		{Expected: `{"tool":"flyTo","arguments":{}}`, ToolMatch: true},
		{Expected: `{"tool":"flyTo","arguments":{}}`, ToolMatch: false},
		{Expected: `{"tool":"zoom","arguments":{}}`, ToolMatch: false},
	}
	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	flyTo := summary.PerTool["flyTo"]
	if flyTo.Correct != 1 || flyTo.Total != 2 {
		t.Fatalf("expected flyTo 1/2, got %d/%d", flyTo.Correct, flyTo.Total)
	}
	zoom := summary.PerTool["zoom"]
	if zoom.Correct != 0 || zoom.Total != 1 {
		t.Fatalf("expected zoom 0/1, got %d/%d", zoom.Correct, zoom.Total)
	}
}

// TestSummarizeUnknownBucket verifies unextractable expected text lands in
// the unknown bucket.
func TestSummarizeUnknownBucket(t *testing.T) {
	samples := []Sample{
		{Expected: "not json"},
		{Expected: `{"arguments":{"amount":1}}`},
	}
	summary, err := Summarize(samples)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	bucket := summary.PerTool[unknownTool]
	if bucket.Total != 2 {
		t.Fatalf("expected 2 unknown samples, got %d", bucket.Total)
	}
}

// TestToolNamesDeterministicOrder verifies lexicographic breakdown order.
func TestToolNamesDeterministicOrder(t *testing.T) {
	summary := Summary{PerTool: map[string]ToolBucket{
		"zoom": {}, "addPoint": {}, "flyTo": {},
	}}
	names := summary.ToolNames()
	want := []string{"addPoint", "flyTo", "zoom"}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}
