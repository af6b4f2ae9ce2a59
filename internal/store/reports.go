package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/drillquiz/drillquiz/internal/report"
)

// reportRepo implements report.FallbackStore on the reports table. The
// report is stored as a JSON payload; submitted_at is duplicated into its
// own column so listing can sort without unmarshalling.
type reportRepo struct {
	db *sql.DB
}

func (r *reportRepo) Append(ctx context.Context, tr report.TrainingReport) error {
	payload, err := json.Marshal(tr)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO reports (id, submitted_at, payload) VALUES (?, ?, ?)",
		tr.ID, tr.SubmissionDate.UTC().Format(time.RFC3339Nano), string(payload))
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *reportRepo) List(ctx context.Context) ([]report.TrainingReport, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT payload FROM reports ORDER BY submitted_at DESC")
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var reports []report.TrainingReport
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		var tr report.TrainingReport
		if err := json.Unmarshal([]byte(payload), &tr); err != nil {
			return nil, fmt.Errorf("unmarshal report: %w", err)
		}
		reports = append(reports, tr)
	}
	return reports, rows.Err()
}

func (r *reportRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM reports"); err != nil {
		return fmt.Errorf("clear reports: %w", err)
	}
	return nil
}
