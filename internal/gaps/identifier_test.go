package gaps

import (
	"testing"

	"policycraft/domain/policy"
	"policycraft/internal/config"
)

func coverageWith(scores map[policy.Dimension]float64) map[policy.Dimension]policy.CoverageResult {
	out := make(map[policy.Dimension]policy.CoverageResult)
	for _, dim := range policy.AllDimensions() {
		score := scores[dim]
		out[dim] = policy.CoverageResult{Score: score, MatchedItems: []string{}}
	}
	return out
}

func TestIdentifyGaps_AllFieldsPopulated(t *testing.T) {
	identifier := NewIdentifier(config.DefaultScoringConfig().Gaps)

	coverage := coverageWith(map[policy.Dimension]float64{
		policy.DimensionAccountability: 2,
		policy.DimensionTransparency:   10,
		policy.DimensionHumanAgency:    18,
		policy.DimensionInclusiveness:  3,
	})

	gaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: policy.ClassRestrictive, Confidence: 80})

	if len(gaps) == 0 {
		t.Fatal("Expected gaps for low coverage scores")
	}
	for _, gap := range gaps {
		if !gap.Dimension.IsValid() {
			t.Errorf("Invalid gap dimension %q", gap.Dimension)
		}
		switch gap.Type {
		case policy.GapCoverage, policy.GapImprovement, policy.GapClassificationRisk:
		default:
			t.Errorf("Invalid gap type %q", gap.Type)
		}
		switch gap.Priority {
		case policy.PriorityCritical, policy.PriorityHigh, policy.PriorityMedium, policy.PriorityLow:
		default:
			t.Errorf("Invalid gap priority %q", gap.Priority)
		}
		if gap.Description == "" {
			t.Errorf("Gap for %s is missing a description", gap.Dimension)
		}
	}
}

func TestIdentifyGaps_ClassificationRiskForCentralDimension(t *testing.T) {
	identifier := NewIdentifier(config.DefaultScoringConfig().Gaps)

	// A Restrictive policy with near-zero accountability contradicts itself
	coverage := coverageWith(map[policy.Dimension]float64{
		policy.DimensionAccountability: 1,
		policy.DimensionTransparency:   40,
		policy.DimensionHumanAgency:    40,
		policy.DimensionInclusiveness:  40,
	})

	gaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: policy.ClassRestrictive})

	if len(gaps) != 1 {
		t.Fatalf("Expected exactly one gap, got %d", len(gaps))
	}
	gap := gaps[0]
	if gap.Dimension != policy.DimensionAccountability {
		t.Errorf("Expected accountability gap, got %s", gap.Dimension)
	}
	if gap.Type != policy.GapClassificationRisk {
		t.Errorf("Expected classification_risk, got %s", gap.Type)
	}
	if gap.Priority != policy.PriorityCritical {
		t.Errorf("Expected critical priority, got %s", gap.Priority)
	}
}

func TestIdentifyGaps_PermissiveTransparencyBar(t *testing.T) {
	cfg := config.DefaultScoringConfig().Gaps
	identifier := NewIdentifier(cfg)

	// 30% transparency passes a Restrictive policy but fails a Permissive
	// one, where disclosure is the primary safeguard.
	coverage := coverageWith(map[policy.Dimension]float64{
		policy.DimensionAccountability: 40,
		policy.DimensionTransparency:   30,
		policy.DimensionHumanAgency:    40,
		policy.DimensionInclusiveness:  40,
	})

	restrictiveGaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: policy.ClassRestrictive})
	permissiveGaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: policy.ClassPermissive})

	for _, gap := range restrictiveGaps {
		if gap.Dimension == policy.DimensionTransparency {
			t.Errorf("Did not expect a transparency gap for a Restrictive policy at 30%%")
		}
	}

	found := false
	for _, gap := range permissiveGaps {
		if gap.Dimension == policy.DimensionTransparency {
			found = true
			if gap.Type != policy.GapImprovement {
				t.Errorf("Expected improvement_opportunity for non-trivial transparency, got %s", gap.Type)
			}
		}
	}
	if !found {
		t.Error("Expected a transparency gap for a Permissive policy at 30%")
	}
}

func TestIdentifyGaps_OrderedByPriority(t *testing.T) {
	identifier := NewIdentifier(config.DefaultScoringConfig().Gaps)

	coverage := coverageWith(map[policy.Dimension]float64{
		policy.DimensionAccountability: 1,  // critical (central, near-zero)
		policy.DimensionTransparency:   2,  // high (near-zero)
		policy.DimensionHumanAgency:    20, // low-ish improvement
		policy.DimensionInclusiveness:  6,  // medium improvement
	})

	gaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: policy.ClassRestrictive})

	for i := 1; i < len(gaps); i++ {
		if gaps[i-1].Priority.Rank() > gaps[i].Priority.Rank() {
			t.Errorf("Gaps out of priority order: %s before %s", gaps[i-1].Priority, gaps[i].Priority)
		}
	}
}

func TestIdentifyGaps_NoGapsAboveThreshold(t *testing.T) {
	identifier := NewIdentifier(config.DefaultScoringConfig().Gaps)

	coverage := coverageWith(map[policy.Dimension]float64{
		policy.DimensionAccountability: 60,
		policy.DimensionTransparency:   60,
		policy.DimensionHumanAgency:    60,
		policy.DimensionInclusiveness:  60,
	})

	gaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: policy.ClassModerate})
	if len(gaps) != 0 {
		t.Errorf("Expected no gaps for strong coverage, got %d", len(gaps))
	}
}

func TestIdentifyGaps_UnknownClassificationUsesDefault(t *testing.T) {
	cfg := config.DefaultScoringConfig().Gaps
	identifier := NewIdentifier(cfg)

	coverage := coverageWith(map[policy.Dimension]float64{
		policy.DimensionAccountability: cfg.DefaultThreshold - 5,
		policy.DimensionTransparency:   cfg.DefaultThreshold + 5,
		policy.DimensionHumanAgency:    cfg.DefaultThreshold + 5,
		policy.DimensionInclusiveness:  cfg.DefaultThreshold + 5,
	})

	gaps := identifier.IdentifyGaps(coverage, policy.Classification{Label: "Experimental"})
	if len(gaps) != 1 {
		t.Fatalf("Expected one gap under the default threshold, got %d", len(gaps))
	}
	if gaps[0].Dimension != policy.DimensionAccountability {
		t.Errorf("Expected accountability gap, got %s", gaps[0].Dimension)
	}
}
