package analysis

import (
	"github.com/montanaflynn/stats"

	"policycraft/domain/policy"
)

// PortfolioSummary aggregates stored analyses for the dashboard: how the
// institution's policy corpus scores across dimensions and classifications.
type PortfolioSummary struct {
	TotalAnalyses     int                                `json:"total_analyses"`
	ByClassification  map[policy.ClassificationLabel]int `json:"by_classification"`
	DimensionAverages map[policy.Dimension]float64       `json:"dimension_averages"`
	DimensionMedians  map[policy.Dimension]float64       `json:"dimension_medians"`
	AvgConfidence     float64                            `json:"avg_confidence"`
	GapCounts         map[policy.GapType]int             `json:"gap_counts"`
}

// BuildPortfolioSummary computes summary statistics over a set of analyses.
// An empty input produces a zeroed summary, not an error.
func BuildPortfolioSummary(results []*policy.AnalysisResult) PortfolioSummary {
	summary := PortfolioSummary{
		TotalAnalyses:     len(results),
		ByClassification:  make(map[policy.ClassificationLabel]int),
		DimensionAverages: make(map[policy.Dimension]float64),
		DimensionMedians:  make(map[policy.Dimension]float64),
		GapCounts:         make(map[policy.GapType]int),
	}
	if len(results) == 0 {
		return summary
	}

	dimScores := make(map[policy.Dimension][]float64, 4)
	confidences := make([]float64, 0, len(results))

	for _, result := range results {
		if result == nil {
			continue
		}
		summary.ByClassification[result.Classification.Label]++
		confidences = append(confidences, result.Confidence.OverallPct)

		for _, dim := range policy.AllDimensions() {
			if coverage, ok := result.Coverage[dim]; ok {
				dimScores[dim] = append(dimScores[dim], coverage.Score)
			}
		}
		for _, gap := range result.Gaps {
			summary.GapCounts[gap.Type]++
		}
	}

	for dim, scores := range dimScores {
		if mean, err := stats.Mean(scores); err == nil {
			summary.DimensionAverages[dim] = mean
		}
		if median, err := stats.Median(scores); err == nil {
			summary.DimensionMedians[dim] = median
		}
	}
	if mean, err := stats.Mean(confidences); err == nil {
		summary.AvgConfidence = mean
	}

	return summary
}
