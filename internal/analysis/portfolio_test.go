package analysis

import (
	"testing"

	"policycraft/domain/policy"
)

func sampleResult(label policy.ClassificationLabel, transparency float64, confidence float64) *policy.AnalysisResult {
	coverage := make(map[policy.Dimension]policy.CoverageResult)
	for _, dim := range policy.AllDimensions() {
		coverage[dim] = policy.CoverageResult{Score: 30}
	}
	coverage[policy.DimensionTransparency] = policy.CoverageResult{Score: transparency}

	return &policy.AnalysisResult{
		Classification: policy.Classification{Label: label},
		Coverage:       coverage,
		Confidence:     policy.ConfidenceReport{OverallPct: confidence},
		Gaps: []policy.Gap{
			{Dimension: policy.DimensionTransparency, Type: policy.GapImprovement, Priority: policy.PriorityMedium, CurrentScore: transparency, Description: "below target"},
		},
	}
}

func TestBuildPortfolioSummary_Empty(t *testing.T) {
	summary := BuildPortfolioSummary(nil)

	if summary.TotalAnalyses != 0 {
		t.Errorf("Expected zero analyses, got %d", summary.TotalAnalyses)
	}
	if summary.AvgConfidence != 0 {
		t.Errorf("Expected zero confidence, got %.2f", summary.AvgConfidence)
	}
}

func TestBuildPortfolioSummary_Aggregates(t *testing.T) {
	results := []*policy.AnalysisResult{
		sampleResult(policy.ClassModerate, 20, 40),
		sampleResult(policy.ClassModerate, 40, 60),
		sampleResult(policy.ClassRestrictive, 60, 80),
	}

	summary := BuildPortfolioSummary(results)

	if summary.TotalAnalyses != 3 {
		t.Errorf("Expected 3 analyses, got %d", summary.TotalAnalyses)
	}
	if summary.ByClassification[policy.ClassModerate] != 2 {
		t.Errorf("Expected 2 Moderate analyses, got %d", summary.ByClassification[policy.ClassModerate])
	}
	if got := summary.DimensionAverages[policy.DimensionTransparency]; got != 40 {
		t.Errorf("Expected transparency average 40, got %.2f", got)
	}
	if got := summary.DimensionMedians[policy.DimensionTransparency]; got != 40 {
		t.Errorf("Expected transparency median 40, got %.2f", got)
	}
	if summary.AvgConfidence != 60 {
		t.Errorf("Expected average confidence 60, got %.2f", summary.AvgConfidence)
	}
	if summary.GapCounts[policy.GapImprovement] != 3 {
		t.Errorf("Expected 3 improvement gaps, got %d", summary.GapCounts[policy.GapImprovement])
	}
}

func TestBuildPortfolioSummary_SkipsNilResults(t *testing.T) {
	results := []*policy.AnalysisResult{nil, sampleResult(policy.ClassPermissive, 50, 50)}

	summary := BuildPortfolioSummary(results)
	if summary.ByClassification[policy.ClassPermissive] != 1 {
		t.Errorf("Expected one Permissive analysis, got %d", summary.ByClassification[policy.ClassPermissive])
	}
}
