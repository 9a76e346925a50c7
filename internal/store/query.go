package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RunRow is one row of the run history listing.
type RunRow struct {
	RunID           string
	ModelName       string
	DatasetPath     string
	Total           int
	ToolAccuracy    float64
	OutputValidRate float64
	ExactMatchRate  float64
	AvgCoordError   *float64
	StartedAt       time.Time
	FinishedAt      time.Time
}

// ListRuns returns saved runs, most recent first.
func ListRuns(ctx context.Context, db *sql.DB) ([]RunRow, error) {
	if db == nil {
		return nil, errors.New("store: db is nil")
	}
	rows, err := db.QueryContext(ctx, `SELECT run_id, model_name, dataset_path, total,
		tool_accuracy, output_valid_rate, exact_match_rate, avg_coord_error,
		started_at, finished_at FROM v_run_summary`)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []RunRow
	for rows.Next() {
		var row RunRow
		var avg sql.NullFloat64
		if err := rows.Scan(
			&row.RunID, &row.ModelName, &row.DatasetPath, &row.Total,
			&row.ToolAccuracy, &row.OutputValidRate, &row.ExactMatchRate, &avg,
			&row.StartedAt, &row.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		if avg.Valid {
			value := avg.Float64
			row.AvgCoordError = &value
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return out, nil
}

// CountExamples returns the number of stored examples for a run.
func CountExamples(ctx context.Context, db *sql.DB, runID string) (int, error) {
	if db == nil {
		return 0, errors.New("store: db is nil")
	}
	var count int
	if err := db.QueryRowContext(ctx, `SELECT count(*) FROM examples WHERE run_id = ?`, runID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count examples: %w", err)
	}
	return count, nil
}
