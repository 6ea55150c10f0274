package config

import (
	"testing"

	"policycraft/domain/policy"
)

func TestDefaultScoringConfig_Valid(t *testing.T) {
	if err := DefaultScoringConfig().Validate(); err != nil {
		t.Errorf("Default configuration should validate: %v", err)
	}
}

func TestValidate_RejectsBrokenConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ScoringConfig)
	}{
		{"zero scale", func(c *ScoringConfig) { c.Coverage.Scale = 0 }},
		{"inverted cut-offs", func(c *ScoringConfig) { c.Coverage.WeakBelow = 60; c.Coverage.ModerateBelow = 50 }},
		{"floor above cap", func(c *ScoringConfig) { c.Coverage.Floor = 50; c.Coverage.Cap = 40 }},
		{"weights not summing to one", func(c *ScoringConfig) { c.Confidence.ThemeWeight = 0.9 }},
		{"zero text target", func(c *ScoringConfig) { c.Confidence.TargetTextLength = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultScoringConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}

func TestThresholdFor_FallsBackToDefault(t *testing.T) {
	gaps := DefaultScoringConfig().Gaps

	if got := gaps.ThresholdFor(policy.ClassPermissive, policy.DimensionTransparency); got != 35 {
		t.Errorf("Expected permissive transparency threshold 35, got %.1f", got)
	}
	if got := gaps.ThresholdFor("Unknown", policy.DimensionTransparency); got != gaps.DefaultThreshold {
		t.Errorf("Expected default threshold for unknown label, got %.1f", got)
	}
}

func TestIsCentral(t *testing.T) {
	gaps := DefaultScoringConfig().Gaps

	if !gaps.IsCentral(policy.ClassRestrictive, policy.DimensionAccountability) {
		t.Error("Accountability should be central to Restrictive policies")
	}
	if gaps.IsCentral(policy.ClassRestrictive, policy.DimensionInclusiveness) {
		t.Error("Inclusiveness should not be central to Restrictive policies")
	}
	if gaps.IsCentral("Unknown", policy.DimensionTransparency) {
		t.Error("Unknown labels have no central dimension")
	}
}
