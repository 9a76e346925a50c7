package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"globebench/internal/runner"
)

// SaveRun inserts a run with its per-tool stats and examples. Saving the
// same run twice is a no-op; a different run reusing an existing run ID
// is rejected.
func SaveRun(ctx context.Context, db *sql.DB, results runner.Results) error {
	if ctx == nil {
		return errors.New("store: context is nil")
	}
	if db == nil {
		return errors.New("store: db is nil")
	}
	if results.RunID == "" {
		return errors.New("store: run ID is empty")
	}
	runKey, err := FingerprintJSON(results)
	if err != nil {
		return fmt.Errorf("fingerprint run: %w", err)
	}

	existing, err := lookupRunKey(ctx, db, results.RunID)
	if err != nil {
		return err
	}
	if existing != "" {
		if existing != runKey {
			return fmt.Errorf("store: run %s already saved with different contents", results.RunID)
		}
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO runs (
		   run_id, run_key, model_name, model_endpoint, temperature, max_tokens,
		   dataset_path, dataset_samples, started_at, finished_at,
		   total, tool_accuracy, output_valid_rate, exact_match_rate, avg_coord_error
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		results.RunID,
		runKey,
		results.Model.Name,
		results.Model.Endpoint,
		results.Model.Temperature,
		results.Model.MaxTokens,
		results.Dataset.Path,
		results.Dataset.Samples,
		results.StartedAt,
		results.FinishedAt,
		results.Summary.Total,
		results.Summary.ToolAccuracy,
		results.Summary.OutputValidRate,
		results.Summary.ExactMatchRate,
		nullableFloat(results.Summary.AvgCoordError),
	); err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	for tool, stats := range results.PerTool {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO tool_stats (run_id, tool, correct, total, accuracy)
			 VALUES (?, ?, ?, ?, ?)`,
			results.RunID, tool, stats.Correct, stats.Total, stats.Accuracy,
		); err != nil {
			return fmt.Errorf("insert tool stats for %s: %w", tool, err)
		}
	}

	for idx, example := range results.Examples {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO examples (
			   example_id, run_id, idx, instruction, expected, predicted,
			   tool_match, output_valid, exact_match, coord_error, schema_valid
			 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(),
			results.RunID,
			idx,
			example.Instruction,
			example.Expected,
			example.Predicted,
			example.ToolMatch,
			example.OutputValid,
			example.ExactMatch,
			nullableFloat(example.CoordError),
			nullableBool(example.SchemaValid),
		); err != nil {
			return fmt.Errorf("insert example %d: %w", idx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func lookupRunKey(ctx context.Context, db *sql.DB, runID string) (string, error) {
	var key string
	err := db.QueryRowContext(ctx, `SELECT run_key FROM runs WHERE run_id = ?`, runID).Scan(&key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("lookup run: %w", err)
	}
	return key, nil
}

func nullableFloat(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableBool(value *bool) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
