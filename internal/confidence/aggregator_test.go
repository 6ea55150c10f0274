package confidence

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"policycraft/domain/policy"
	"policycraft/internal/config"
	"policycraft/ports"
)

// fakeLiteratureRepo is a canned literature repository for aggregator tests
type fakeLiteratureRepo struct {
	sources []ports.LiteratureSource
	err     error
}

func (f *fakeLiteratureRepo) FindSources(ctx context.Context, query string, topics []string) ([]ports.LiteratureSource, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sources, nil
}

func (f *fakeLiteratureRepo) Refresh(ctx context.Context) error { return nil }

func repoWithSources(n int) *fakeLiteratureRepo {
	sources := make([]ports.LiteratureSource, n)
	for i := range sources {
		sources[i] = ports.LiteratureSource{Title: fmt.Sprintf("Source %d", i), Authors: "Various"}
	}
	return &fakeLiteratureRepo{sources: sources}
}

func TestCalculate_AllEmptyInputIsZero(t *testing.T) {
	agg := NewAggregator(nil, config.DefaultScoringConfig().Confidence)

	report := agg.Calculate(context.Background(), nil, policy.Classification{}, 0)

	assert.Equal(t, 0.0, report.OverallPct)
	assert.Equal(t, 0.0, report.Factors.AvgThemeSupport)
	assert.Equal(t, 0.0, report.Factors.ClassificationConf)
	assert.Equal(t, 0.0, report.Factors.TextQuality)
	assert.Equal(t, 0.0, report.Factors.EvidenceDiversity)
	assert.Equal(t, 0, report.Factors.UniqueSources)
}

func TestCalculate_WeightedCombination(t *testing.T) {
	cfg := config.DefaultScoringConfig().Confidence
	agg := NewAggregator(repoWithSources(12), cfg)

	themes := []policy.Theme{
		{Name: "assessment", Score: 0.8, Confidence: 80},
		{Name: "integrity", Score: 0.6, Confidence: 60},
	}
	classification := policy.Classification{Label: policy.ClassModerate, Confidence: 75}

	report := agg.Calculate(context.Background(), themes, classification, 3000)

	// theme support: mean 70 + one corroboration bonus
	assert.InDelta(t, 72.0, report.Factors.AvgThemeSupport, 0.01)
	assert.InDelta(t, 75.0, report.Factors.ClassificationConf, 0.01)
	assert.InDelta(t, 100.0, report.Factors.TextQuality, 0.01)
	assert.InDelta(t, 100.0, report.Factors.EvidenceDiversity, 0.01)
	assert.Equal(t, 12, report.Factors.UniqueSources)

	expected := 72.0*cfg.ThemeWeight + 75.0*cfg.ClassificationWeight +
		100.0*cfg.TextWeight + 100.0*cfg.EvidenceWeight
	assert.InDelta(t, expected, report.OverallPct, 0.01)
}

func TestCalculate_FractionalClassificationConfidence(t *testing.T) {
	agg := NewAggregator(nil, config.DefaultScoringConfig().Confidence)

	// Upstream classifiers report confidence on either scale; 0.75 and 75
	// must land on the same factor.
	fractional := policy.NormalizeClassification(map[string]interface{}{
		"classification": "Moderate",
		"confidence":     0.75,
	})
	report := agg.Calculate(context.Background(), nil, fractional, 0)
	assert.InDelta(t, 75.0, report.Factors.ClassificationConf, 0.01)
}

func TestCalculate_RepositoryFailureDegradesToZero(t *testing.T) {
	agg := NewAggregator(&fakeLiteratureRepo{err: fmt.Errorf("connection refused")}, config.DefaultScoringConfig().Confidence)

	themes := []policy.Theme{{Name: "assessment", Confidence: 90}}
	report := agg.Calculate(context.Background(), themes, policy.Classification{Label: policy.ClassModerate, Confidence: 80}, 1500)

	assert.Equal(t, 0.0, report.Factors.EvidenceDiversity)
	assert.Equal(t, 0, report.Factors.UniqueSources)
	// Other factors keep contributing
	assert.Greater(t, report.OverallPct, 0.0)
}

func TestCalculate_TextQualityCapped(t *testing.T) {
	agg := NewAggregator(nil, config.DefaultScoringConfig().Confidence)

	short := agg.Calculate(context.Background(), nil, policy.Classification{}, 300)
	long := agg.Calculate(context.Background(), nil, policy.Classification{}, 300000)

	assert.InDelta(t, 10.0, short.Factors.TextQuality, 0.01)
	assert.Equal(t, 100.0, long.Factors.TextQuality)
}

func TestCalculate_CorroborationBonusCapped(t *testing.T) {
	cfg := config.DefaultScoringConfig().Confidence
	agg := NewAggregator(nil, cfg)

	themes := make([]policy.Theme, 20)
	for i := range themes {
		themes[i] = policy.Theme{Name: fmt.Sprintf("theme-%d", i), Confidence: 50}
	}

	report := agg.Calculate(context.Background(), themes, policy.Classification{}, 0)
	assert.InDelta(t, 50.0+cfg.CorroborationCap, report.Factors.AvgThemeSupport, 0.01)
}

func TestCalculate_DuplicateSourceTitlesCountOnce(t *testing.T) {
	repo := &fakeLiteratureRepo{sources: []ports.LiteratureSource{
		{Title: "AI in Education"},
		{Title: "ai in education"},
		{Title: "Trustworthy AI"},
	}}
	cfg := config.DefaultScoringConfig().Confidence
	agg := NewAggregator(repo, cfg)

	report := agg.Calculate(context.Background(), []policy.Theme{{Name: "ai", Confidence: 50}}, policy.Classification{}, 0)
	assert.Equal(t, 2, report.Factors.UniqueSources)
	assert.InDelta(t, float64(2)/float64(cfg.EvidenceCeiling)*100, report.Factors.EvidenceDiversity, 0.01)
}
