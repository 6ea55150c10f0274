package ports

import (
	"context"

	"policycraft/domain/policy"
)

// AnalysisFilters narrows stored-analysis queries
type AnalysisFilters struct {
	Classification *policy.ClassificationLabel
	Limit          int
	Offset         int
}

// AnalysisRepository persists completed analysis results for the dashboard
// and export surfaces.
type AnalysisRepository interface {
	StoreAnalysis(ctx context.Context, result *policy.AnalysisResult) error
	GetAnalysis(ctx context.Context, id string) (*policy.AnalysisResult, error)
	ListAnalyses(ctx context.Context, filters AnalysisFilters) ([]*policy.AnalysisResult, error)
}
