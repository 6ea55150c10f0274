package gaps

import (
	"fmt"
	"sort"

	"policycraft/domain/policy"
	"policycraft/internal/config"
)

// Identifier converts per-dimension coverage into a prioritised gap list.
// Thresholds depend on the policy's classification: a Permissive policy is
// held to a higher transparency bar, a Restrictive one to a higher
// accountability bar. Pure and safe for concurrent use.
type Identifier struct {
	cfg config.GapConfig
}

// NewIdentifier creates a gap identifier
func NewIdentifier(cfg config.GapConfig) *Identifier {
	return &Identifier{cfg: cfg}
}

// IdentifyGaps emits at most one gap per dimension whose score falls below
// the classification-specific threshold, ordered critical first. Every gap
// carries all five fields.
func (i *Identifier) IdentifyGaps(coverage map[policy.Dimension]policy.CoverageResult, classification policy.Classification) []policy.Gap {
	out := make([]policy.Gap, 0, len(coverage))

	for _, dim := range policy.AllDimensions() {
		result, ok := coverage[dim]
		if !ok {
			continue
		}
		threshold := i.cfg.ThresholdFor(classification.Label, dim)
		if result.Score >= threshold {
			continue
		}
		out = append(out, i.buildGap(dim, result.Score, threshold, classification.Label))
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Priority.Rank() < out[b].Priority.Rank()
	})

	return out
}

// buildGap types and prioritises a single shortfall
func (i *Identifier) buildGap(dim policy.Dimension, score, threshold float64, label policy.ClassificationLabel) policy.Gap {
	nearZero := score < i.cfg.NearZero
	central := i.cfg.IsCentral(label, dim)

	var gapType policy.GapType
	var priority policy.GapPriority
	var description string

	switch {
	case nearZero && central:
		// The classification promises a safeguard the text barely mentions
		gapType = policy.GapClassificationRisk
		priority = policy.PriorityCritical
		description = fmt.Sprintf(
			"%s coverage is nearly absent (%.1f%%), which is inconsistent with a %s classification.",
			dim, score, label)
	case nearZero:
		gapType = policy.GapCoverage
		priority = policy.PriorityHigh
		description = fmt.Sprintf(
			"%s is essentially unaddressed (%.1f%% against an expected %.0f%%).",
			dim, score, threshold)
	default:
		gapType = policy.GapImprovement
		priority = i.shortfallPriority(score, threshold, central)
		description = fmt.Sprintf(
			"%s coverage of %.1f%% falls short of the %.0f%% expected for a %s policy.",
			dim, score, threshold, label)
	}

	return policy.Gap{
		Dimension:    dim,
		Type:         gapType,
		Priority:     priority,
		CurrentScore: score,
		Description:  description,
	}
}

// shortfallPriority grades a non-trivial shortfall by its magnitude
func (i *Identifier) shortfallPriority(score, threshold float64, central bool) policy.GapPriority {
	if central {
		return policy.PriorityHigh
	}
	shortfall := threshold - score
	switch {
	case shortfall >= threshold/2:
		return policy.PriorityMedium
	default:
		return policy.PriorityLow
	}
}
