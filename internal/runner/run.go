package runner

import (
	"context"
	"fmt"
	"io"
	"time"

	"globebench/internal/dataset"
	"globebench/internal/eval"
	"globebench/internal/generate"
	"globebench/internal/spec"
	"globebench/internal/toolcall"
)

// Params configures a single evaluation run.
type Params struct {
	Config        spec.Config
	DatasetPath   string
	Verbose       bool
	VerboseWriter io.Writer
	NoColor       bool
	Observer      RunObserver
	Deps          Deps
}

// Deps holds injectable dependencies. Zero fields get production defaults.
type Deps struct {
	Generator generate.Generator
	Catalog   *toolcall.Catalog
	NewRunID  func() (string, error)
	Now       func() time.Time
}

func (d Deps) withDefaults(cfg spec.Config) (Deps, error) {
	if d.NewRunID == nil {
		d.NewRunID = NewRunID
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Generator == nil {
		client, err := generate.NewChatClient(cfg.Model.Endpoint, cfg.Model.Name, cfg.Model.Temperature, cfg.Model.MaxTokens, nil)
		if err != nil {
			return Deps{}, fmt.Errorf("build generator: %w", err)
		}
		d.Generator = client
	}
	if d.Catalog == nil {
		catalog, err := toolcall.LoadCatalog()
		if err != nil {
			return Deps{}, fmt.Errorf("load tool catalog: %w", err)
		}
		d.Catalog = catalog
	}
	return d, nil
}

// Run evaluates the configured dataset and returns the assembled results.
func Run(ctx context.Context, params Params) (Results, error) {
	deps, err := params.Deps.withDefaults(params.Config)
	if err != nil {
		return Results{}, err
	}

	samples, err := dataset.Load(params.DatasetPath)
	if err != nil {
		return Results{}, err
	}
	samples = dataset.Truncate(samples, params.Config.Eval.MaxSamples)
	if len(samples) == 0 {
		return Results{}, fmt.Errorf("dataset %s has no samples", params.DatasetPath)
	}

	runID, err := deps.NewRunID()
	if err != nil {
		return Results{}, fmt.Errorf("create run ID: %w", err)
	}
	if params.Observer != nil {
		params.Observer.OnRunStart(runID, params.Config.Model.Name, params.DatasetPath, len(samples))
	}

	startedAt := deps.Now().UTC()
	scored := runSampleJobs(ctx, samples, params.Config.Eval.Workers, sampleJobDeps{
		generator: deps.Generator,
		catalog:   deps.Catalog,
		observer:  params.Observer,
		verbose:   params.Verbose,
		verboseW:  verboseOutput{writer: params.VerboseWriter, noColor: params.NoColor},
		total:     len(samples),
	})
	finishedAt := deps.Now().UTC()

	summary, err := eval.Summarize(scored)
	if err != nil {
		return Results{}, fmt.Errorf("summarize run: %w", err)
	}

	results := buildResults(
		runID,
		ModelInfo{
			Endpoint:    params.Config.Model.Endpoint,
			Name:        params.Config.Model.Name,
			Temperature: params.Config.Model.Temperature,
			MaxTokens:   params.Config.Model.MaxTokens,
		},
		DatasetInfo{Path: params.DatasetPath, Samples: len(samples)},
		startedAt,
		finishedAt,
		summary,
		scored,
	)
	if params.Observer != nil {
		params.Observer.OnRunEnd(results)
	}
	return results, nil
}

// RunAndWrite runs the evaluation and persists the detailed results
// document under the configured output directory.
func RunAndWrite(ctx context.Context, params Params) (Results, OutputPaths, error) {
	results, err := Run(ctx, params)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	paths, err := NewOutputPaths(params.Config.Eval.OutputDir, results.RunID)
	if err != nil {
		return Results{}, OutputPaths{}, err
	}
	if err := WriteResults(paths, results); err != nil {
		return Results{}, OutputPaths{}, err
	}
	return results, paths, nil
}
