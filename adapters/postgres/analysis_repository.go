package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"policycraft/domain/policy"
	"policycraft/internal/errors"
	"policycraft/ports"
)

// analysisRow mirrors the analyses table; the full result is stored as JSON
type analysisRow struct {
	ID             string    `db:"id"`
	DocumentName   string    `db:"document_name"`
	Classification string    `db:"classification"`
	OverallScore   float64   `db:"confidence_pct"`
	Payload        []byte    `db:"payload"`
	AnalyzedAt     time.Time `db:"analyzed_at"`
}

// AnalysisRepository persists completed analysis results
type AnalysisRepository struct {
	db *sqlx.DB
}

// NewAnalysisRepository creates an analysis repository
func NewAnalysisRepository(db *sqlx.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// StoreAnalysis inserts one completed analysis result
func (r *AnalysisRepository) StoreAnalysis(ctx context.Context, result *policy.AnalysisResult) error {
	if result == nil || result.ID == "" {
		return errors.InvalidInput("analysis result requires an ID")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return errors.Wrap(err, "failed to marshal analysis result")
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analyses (id, document_name, classification, confidence_pct, payload, analyzed_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		result.ID,
		result.DocumentName,
		string(result.Classification.Label),
		result.Confidence.OverallPct,
		payload,
		result.AnalyzedAt,
	)
	if err != nil {
		return errors.Wrap(err, "failed to insert analysis")
	}
	return nil
}

// GetAnalysis loads one stored analysis by ID
func (r *AnalysisRepository) GetAnalysis(ctx context.Context, id string) (*policy.AnalysisResult, error) {
	var row analysisRow
	err := r.db.GetContext(ctx, &row, `
		SELECT id, document_name, classification, confidence_pct, payload, analyzed_at
		FROM analyses WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("analysis")
		}
		return nil, errors.Wrap(err, "failed to load analysis")
	}

	var result policy.AnalysisResult
	if err := json.Unmarshal(row.Payload, &result); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal analysis payload")
	}
	return &result, nil
}

// ListAnalyses returns stored analyses, newest first
func (r *AnalysisRepository) ListAnalyses(ctx context.Context, filters ports.AnalysisFilters) ([]*policy.AnalysisResult, error) {
	limit := filters.Limit
	if limit <= 0 {
		limit = 50
	}

	query := `
		SELECT id, document_name, classification, confidence_pct, payload, analyzed_at
		FROM analyses`
	args := []interface{}{}
	if filters.Classification != nil {
		query += ` WHERE classification = $1`
		args = append(args, string(*filters.Classification))
	}
	query += ` ORDER BY analyzed_at DESC`
	args = append(args, limit, filters.Offset)
	if filters.Classification != nil {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}

	var rows []analysisRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "failed to list analyses")
	}

	out := make([]*policy.AnalysisResult, 0, len(rows))
	for _, row := range rows {
		var result policy.AnalysisResult
		if err := json.Unmarshal(row.Payload, &result); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal analysis payload")
		}
		out = append(out, &result)
	}
	return out, nil
}
