package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/samridhagrawal-cpu/radius-backend/internal/visibility/domain"
)

// Archive writes completed runs to PostgreSQL for long-horizon reporting
// beyond the in-memory/Redis retention window. Writes are best-effort;
// the orchestrator logs archive failures without failing the run.
type Archive struct {
	db *sql.DB
}

func NewArchive(db *sql.DB) *Archive {
	return &Archive{db: db}
}

// Insert stores one completed run.
func (a *Archive) Insert(ctx context.Context, run *domain.AnalysisRun) error {
	report, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	query := `
		INSERT INTO visibility_run_archive (
			run_id, brand_key, visibility_pct, query_count, alert_count, report, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (run_id) DO NOTHING
	`

	_, err = a.db.ExecContext(ctx, query,
		run.RunID,
		BrandKey(run.Request.Brand),
		run.Score.Percentage,
		len(run.Queries),
		len(run.Alerts),
		report,
		run.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to archive run: %w", err)
	}
	return nil
}

// History returns archived run summaries for a brand, most recent first.
func (a *Archive) History(ctx context.Context, brand string, limit int) ([]domain.RunSummary, error) {
	if limit <= 0 {
		limit = Retention
	}

	query := `
		SELECT run_id, created_at, visibility_pct, query_count, alert_count
		FROM visibility_run_archive
		WHERE brand_key = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := a.db.QueryContext(ctx, query, BrandKey(brand), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query archive: %w", err)
	}
	defer rows.Close()

	var out []domain.RunSummary
	for rows.Next() {
		var s domain.RunSummary
		if err := rows.Scan(&s.RunID, &s.Timestamp, &s.VisibilityPercentage, &s.QueryCount, &s.AlertCount); err != nil {
			return nil, fmt.Errorf("failed to scan archive row: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
