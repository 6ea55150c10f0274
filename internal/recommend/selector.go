package recommend

import (
	"fmt"
	"sort"

	"policycraft/domain/policy"
	"policycraft/internal/coverage"
)

// Selector maps prioritised gaps onto templated, institution-aware
// recommendations. Pure and safe for concurrent use.
type Selector struct {
	detector   *coverage.Detector
	classifier *ContextClassifier
	catalog    *Catalog
}

// NewSelector creates a recommendation selector
func NewSelector(detector *coverage.Detector, classifier *ContextClassifier, catalog *Catalog) *Selector {
	return &Selector{
		detector:   detector,
		classifier: classifier,
		catalog:    catalog,
	}
}

// ClassifyInstitution exposes the institution context used for template
// selection so callers can report it alongside the recommendations
func (s *Selector) ClassifyInstitution(themes []policy.Theme, text string) policy.InstitutionType {
	return s.classifier.Classify(themes, text)
}

// GenerateRecommendations produces one recommendation per gap, then
// deduplicates by (dimension, implementation type) and by title, keeping the
// first occurrence in gap-priority order.
func (s *Selector) GenerateRecommendations(gaps []policy.Gap, classification policy.Classification, themes []policy.Theme, text string) []policy.Recommendation {
	if len(gaps) == 0 {
		return []policy.Recommendation{}
	}

	institution := s.classifier.Classify(themes, text)
	existing := s.detector.DetectExistingPolicies(text)

	ordered := make([]policy.Gap, len(gaps))
	copy(ordered, gaps)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Priority.Rank() < ordered[b].Priority.Rank()
	})

	recs := make([]policy.Recommendation, 0, len(ordered))
	seenPair := make(map[string]bool)
	seenTitle := make(map[string]bool)

	for _, gap := range ordered {
		impl := s.implementationType(gap.Dimension, existing)

		pairKey := string(gap.Dimension) + "|" + string(impl)
		if seenPair[pairKey] {
			continue
		}

		rec, ok := s.build(gap, institution, impl)
		if !ok {
			continue
		}
		if seenTitle[rec.Title] {
			continue
		}

		seenPair[pairKey] = true
		seenTitle[rec.Title] = true
		recs = append(recs, rec)
	}

	return recs
}

// implementationType frames the recommendation as an enhancement when the
// policy already carries a mechanism relevant to the dimension
func (s *Selector) implementationType(dim policy.Dimension, existing map[string]bool) policy.ImplementationType {
	if mechanism := coverage.MechanismForDimension(dim); mechanism != "" && existing[mechanism] {
		return policy.Enhancement
	}
	return policy.NewImplementation
}

// build fills a recommendation from the catalog template
func (s *Selector) build(gap policy.Gap, institution policy.InstitutionType, impl policy.ImplementationType) (policy.Recommendation, bool) {
	tmpl, ok := s.catalog.Lookup(gap.Dimension, institution, impl)
	if !ok {
		return policy.Recommendation{}, false
	}

	source := ""
	if len(tmpl.Sources) > 0 {
		source = tmpl.Sources[0]
	}

	return policy.Recommendation{
		Title:               tmpl.Title,
		Description:         fmt.Sprintf("%s %s", tmpl.Description, gap.Description),
		Dimension:           gap.Dimension,
		ImplementationType:  impl,
		Priority:            gap.Priority,
		Source:              source,
		Sources:             tmpl.Sources,
		ImplementationSteps: tmpl.Steps,
		Timeframe:           tmpl.Timeframe,
	}, true
}

// FallbackRecommendation is the generic recommendation the engine returns
// when analysis produced no gaps worth acting on, so callers never render an
// empty result for valid input.
func FallbackRecommendation(classification policy.Classification) policy.Recommendation {
	label := classification.Label
	if label == "" {
		label = policy.ClassModerate
	}
	return policy.Recommendation{
		Title: "Schedule a Periodic AI Policy Review",
		Description: fmt.Sprintf(
			"Coverage across all ethical dimensions meets the expectations for a %s policy. "+
				"Schedule a periodic review so the policy keeps pace with new AI capabilities.", label),
		Dimension:          policy.DimensionAccountability,
		ImplementationType: policy.Enhancement,
		Priority:           policy.PriorityLow,
		Timeframe:          "annual",
	}
}
