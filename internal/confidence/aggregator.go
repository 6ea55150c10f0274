package confidence

import (
	"context"
	"strings"

	"gonum.org/v1/gonum/stat"

	"policycraft/domain/policy"
	"policycraft/internal/config"
	"policycraft/ports"
)

// Aggregator combines theme support, classifier confidence, a text-length
// proxy and literature evidence diversity into one 0-100 confidence figure.
// Every input failure degrades its factor to zero; Calculate never errors.
type Aggregator struct {
	repo ports.LiteratureRepository
	cfg  config.ConfidenceConfig
}

// NewAggregator creates a confidence aggregator. repo may be nil, in which
// case evidence diversity always scores zero.
func NewAggregator(repo ports.LiteratureRepository, cfg config.ConfidenceConfig) *Aggregator {
	return &Aggregator{repo: repo, cfg: cfg}
}

// Calculate produces the confidence report for one analysis
func (a *Aggregator) Calculate(ctx context.Context, themes []policy.Theme, classification policy.Classification, textLength int) policy.ConfidenceReport {
	factors := policy.ConfidenceFactors{
		AvgThemeSupport:    a.themeSupport(themes),
		ClassificationConf: clamp(classification.Confidence),
		TextQuality:        a.textQuality(textLength),
	}
	factors.EvidenceDiversity, factors.UniqueSources = a.evidenceDiversity(ctx, themes)

	overall := factors.AvgThemeSupport*a.cfg.ThemeWeight +
		factors.ClassificationConf*a.cfg.ClassificationWeight +
		factors.TextQuality*a.cfg.TextWeight +
		factors.EvidenceDiversity*a.cfg.EvidenceWeight

	return policy.ConfidenceReport{
		OverallPct: clamp(overall),
		Factors:    factors,
	}
}

// themeSupport averages per-theme confidence and adds a capped bonus for
// corroborating themes. No themes means no support.
func (a *Aggregator) themeSupport(themes []policy.Theme) float64 {
	if len(themes) == 0 {
		return 0
	}

	confidences := make([]float64, len(themes))
	for i, theme := range themes {
		confidences[i] = clamp(theme.Confidence)
	}
	mean := stat.Mean(confidences, nil)

	bonus := float64(len(themes)-1) * a.cfg.CorroborationBonus
	if bonus > a.cfg.CorroborationCap {
		bonus = a.cfg.CorroborationCap
	}

	return clamp(mean + bonus)
}

// textQuality scales text length against the target, capped at 100
func (a *Aggregator) textQuality(textLength int) float64 {
	if textLength <= 0 {
		return 0
	}
	quality := float64(textLength) / float64(a.cfg.TargetTextLength) * 100
	return clamp(quality)
}

// evidenceDiversity counts distinct literature source titles relevant to the
// supplied themes. A missing or failing repository scores zero rather than
// propagating the error.
func (a *Aggregator) evidenceDiversity(ctx context.Context, themes []policy.Theme) (float64, int) {
	if a.repo == nil {
		return 0, 0
	}

	topics := make([]string, 0, len(themes))
	for _, theme := range themes {
		if name := strings.TrimSpace(theme.Name); name != "" {
			topics = append(topics, name)
		}
	}
	if len(topics) == 0 {
		// No analysis context means no relevant evidence, not the whole corpus
		return 0, 0
	}

	sources, err := a.repo.FindSources(ctx, "", topics)
	if err != nil {
		return 0, 0
	}

	unique := make(map[string]bool, len(sources))
	for _, src := range sources {
		title := strings.ToLower(strings.TrimSpace(src.Title))
		if title != "" {
			unique[title] = true
		}
	}

	diversity := float64(len(unique)) / float64(a.cfg.EvidenceCeiling) * 100
	return clamp(diversity), len(unique)
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
