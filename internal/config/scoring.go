package config

import (
	"time"

	"policycraft/domain/policy"
	"policycraft/internal/errors"
)

// ScoringConfig collects every calibration constant used by the coverage,
// gap, confidence and recommendation components. Values live here rather
// than as magic numbers inside conditionals so they stay independently
// testable and tunable.
type ScoringConfig struct {
	Coverage   CoverageConfig
	Gaps       GapConfig
	Confidence ConfidenceConfig

	// LiteratureRefreshInterval debounces literature repository refreshes
	LiteratureRefreshInterval time.Duration
}

// CoverageConfig controls raw-score normalization and status banding
type CoverageConfig struct {
	// Scale converts summed match weights into the 0-100 band. Calibrated so
	// realistic institutional policies land roughly between 10 and 60.
	Scale float64
	// Floor is the minimum score for any dimension with at least one match;
	// a dimension with real content must never report exactly 0.
	Floor float64
	// Cap bounds the score; a short document must not saturate at 100.
	Cap float64
	// WeakBelow and ModerateBelow are the monotonic status cut-offs:
	// score < WeakBelow is weak, score < ModerateBelow is moderate,
	// everything else is strong.
	WeakBelow     float64
	ModerateBelow float64
}

// GapConfig controls gap thresholds and typing
type GapConfig struct {
	// NearZero is the score below which a dimension counts as essentially
	// absent rather than merely underdeveloped.
	NearZero float64
	// Thresholds holds the minimum expected coverage per classification and
	// dimension. Permissive policies carry a higher transparency bar because
	// disclosure is their primary safeguard.
	Thresholds map[policy.ClassificationLabel]map[policy.Dimension]float64
	// DefaultThreshold applies when a classification label is unknown
	DefaultThreshold float64
	// CentralDimensions maps each classification to the dimension whose
	// absence contradicts the label itself.
	CentralDimensions map[policy.ClassificationLabel]policy.Dimension
}

// ConfidenceConfig controls the weighted confidence aggregation
type ConfidenceConfig struct {
	ThemeWeight          float64
	ClassificationWeight float64
	TextWeight           float64
	EvidenceWeight       float64

	// CorroborationBonus is added per theme beyond the first, up to
	// CorroborationCap, on top of the mean theme confidence.
	CorroborationBonus float64
	CorroborationCap   float64

	// TargetTextLength is the character count treated as full text quality
	TargetTextLength int
	// EvidenceCeiling is the distinct-source count treated as full diversity
	EvidenceCeiling int
}

// DefaultScoringConfig returns the calibrated production configuration.
// Constants were tuned against the literal scenarios in the scorer tests,
// not derived from a closed-form formula.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Coverage: CoverageConfig{
			Scale:         3.0,
			Floor:         5.0,
			Cap:           100.0,
			WeakBelow:     20.0,
			ModerateBelow: 50.0,
		},
		Gaps: GapConfig{
			NearZero:         5.0,
			DefaultThreshold: 25.0,
			Thresholds: map[policy.ClassificationLabel]map[policy.Dimension]float64{
				policy.ClassRestrictive: {
					policy.DimensionAccountability: 30.0,
					policy.DimensionTransparency:   20.0,
					policy.DimensionHumanAgency:    25.0,
					policy.DimensionInclusiveness:  15.0,
				},
				policy.ClassModerate: {
					policy.DimensionAccountability: 25.0,
					policy.DimensionTransparency:   25.0,
					policy.DimensionHumanAgency:    25.0,
					policy.DimensionInclusiveness:  20.0,
				},
				policy.ClassPermissive: {
					policy.DimensionAccountability: 20.0,
					policy.DimensionTransparency:   35.0,
					policy.DimensionHumanAgency:    25.0,
					policy.DimensionInclusiveness:  20.0,
				},
			},
			CentralDimensions: map[policy.ClassificationLabel]policy.Dimension{
				policy.ClassRestrictive: policy.DimensionAccountability,
				policy.ClassModerate:    policy.DimensionTransparency,
				policy.ClassPermissive:  policy.DimensionTransparency,
			},
		},
		Confidence: ConfidenceConfig{
			ThemeWeight:          0.45,
			ClassificationWeight: 0.25,
			TextWeight:           0.15,
			EvidenceWeight:       0.15,
			CorroborationBonus:   2.0,
			CorroborationCap:     10.0,
			TargetTextLength:     3000,
			EvidenceCeiling:      12,
		},
		LiteratureRefreshInterval: 15 * time.Minute,
	}
}

// Validate checks internal consistency of the scoring constants
func (c ScoringConfig) Validate() error {
	if c.Coverage.Scale <= 0 {
		return errors.ConfigInvalid("coverage scale must be positive")
	}
	if c.Coverage.WeakBelow >= c.Coverage.ModerateBelow {
		return errors.ConfigInvalid("coverage status cut-offs must be monotonic")
	}
	if c.Coverage.Floor < 0 || c.Coverage.Cap > 100 || c.Coverage.Floor > c.Coverage.Cap {
		return errors.ConfigInvalid("coverage floor/cap out of range")
	}
	weights := c.Confidence.ThemeWeight + c.Confidence.ClassificationWeight +
		c.Confidence.TextWeight + c.Confidence.EvidenceWeight
	if weights < 0.99 || weights > 1.01 {
		return errors.ConfigInvalid("confidence factor weights must sum to 1.0")
	}
	if c.Confidence.TargetTextLength <= 0 || c.Confidence.EvidenceCeiling <= 0 {
		return errors.ConfigInvalid("confidence targets must be positive")
	}
	return nil
}

// ThresholdFor returns the gap threshold for a classification and dimension
func (g GapConfig) ThresholdFor(label policy.ClassificationLabel, d policy.Dimension) float64 {
	if byDim, ok := g.Thresholds[label]; ok {
		if t, ok := byDim[d]; ok {
			return t
		}
	}
	return g.DefaultThreshold
}

// IsCentral reports whether d is the dimension central to the classification
func (g GapConfig) IsCentral(label policy.ClassificationLabel, d policy.Dimension) bool {
	return g.CentralDimensions[label] == d
}
