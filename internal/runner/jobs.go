package runner

import (
	"context"
	"fmt"
	"sync"

	"globebench/internal/dataset"
	"globebench/internal/eval"
	"globebench/internal/generate"
	"globebench/internal/toolcall"
)

// sampleJobDeps bundles dependencies for executing sample jobs.
type sampleJobDeps struct {
	generator generate.Generator
	catalog   *toolcall.Catalog
	observer  RunObserver
	verbose   bool
	verboseW  verboseOutput
	total     int
}

// sampleJobResult pairs a scored sample with its dataset index so
// concurrent execution preserves dataset order in the collected output.
type sampleJobResult struct {
	index  int
	sample eval.Sample
}

// runSampleJobs evaluates every dataset sample on a bounded worker pool.
// Samples are independent; ordering is restored by index when collecting.
// A failed sample never aborts the batch.
func runSampleJobs(ctx context.Context, samples []dataset.Sample, workers int, deps sampleJobDeps) []eval.Sample {
	if workers < 1 {
		workers = 1
	}
	if deps.observer != nil {
		for index, item := range samples {
			notify(deps.observer, SampleEvent{Index: index, Instruction: item.Instruction, Type: SampleQueued})
		}
	}

	jobs := make(chan int)
	results := make(chan sampleJobResult, len(samples))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				results <- sampleJobResult{
					index:  index,
					sample: executeSampleJob(ctx, deps, index, samples[index]),
				}
			}
		}()
	}
	for index := range samples {
		jobs <- index
	}
	close(jobs)
	wg.Wait()
	close(results)

	ordered := make([]eval.Sample, len(samples))
	for result := range results {
		ordered[result.index] = result.sample
	}
	return ordered
}

// executeSampleJob generates and scores a single sample.
func executeSampleJob(ctx context.Context, deps sampleJobDeps, index int, item dataset.Sample) eval.Sample {
	notify(deps.observer, SampleEvent{Index: index, Instruction: item.Instruction, Type: SampleGenerating})
	deps.verboseW.logf(deps.verbose, styleSample, "Sample %d/%d generating: %s", index+1, deps.total, item.Instruction)

	predicted, genErr := deps.generator.Generate(ctx, item.Instruction)
	if genErr != nil {
		deps.verboseW.logf(deps.verbose, styleError, "Sample %d/%d generation error: %v", index+1, deps.total, genErr)
		notify(deps.observer, SampleEvent{Index: index, Instruction: item.Instruction, Type: SampleError, Error: genErr.Error()})
		return eval.Compare(item.Instruction, item.Output, "")
	}

	notify(deps.observer, SampleEvent{Index: index, Instruction: item.Instruction, Type: SampleScoring})
	sample := eval.Compare(item.Instruction, item.Output, predicted)
	if deps.catalog != nil {
		sample.SchemaValid = schemaAdvisory(deps.catalog, predicted)
	}

	deps.verboseW.logf(deps.verbose, styleMetrics,
		"Sample %d/%d tool_match=%v output_valid=%v exact=%v coord_err=%s",
		index+1, deps.total, sample.ToolMatch, sample.OutputValid, sample.ExactMatch, formatCoordError(sample.CoordError))
	notify(deps.observer, SampleEvent{
		Index:       index,
		Instruction: item.Instruction,
		Type:        terminalEventType(sample.ToolMatch, sample.OutputValid),
		CoordError:  sample.CoordError,
	})
	return sample
}

// schemaAdvisory validates extracted output against the tool catalog.
// The flag is advisory audit metadata; absence means no record extracted.
func schemaAdvisory(catalog *toolcall.Catalog, predicted string) *bool {
	record, ok := toolcall.Extract(predicted)
	if !ok {
		return nil
	}
	valid, _ := catalog.Validate(record)
	return &valid
}

func formatCoordError(value *float64) string {
	if value == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.4f", *value)
}
