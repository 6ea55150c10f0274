package policy

// ImplementationType says whether a recommendation proposes a brand-new
// control or strengthens one the policy already has
type ImplementationType string

const (
	NewImplementation ImplementationType = "new_implementation"
	Enhancement       ImplementationType = "enhancement"
)

// Recommendation is one templated, institution-aware suggestion derived from
// a gap. Within a single analysis no two recommendations share a Title and no
// two share the same (Dimension, ImplementationType) pair.
type Recommendation struct {
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Dimension           Dimension          `json:"dimension"`
	ImplementationType  ImplementationType `json:"implementation_type"`
	Priority            GapPriority        `json:"priority"`
	Source              string             `json:"source,omitempty"`
	Sources             []string           `json:"sources,omitempty"`
	ImplementationSteps []string           `json:"implementation_steps,omitempty"`
	Timeframe           string             `json:"timeframe,omitempty"`
}

// ConfidenceFactors breaks the overall confidence into its weighted inputs
type ConfidenceFactors struct {
	AvgThemeSupport    float64 `json:"avg_theme_support"`
	ClassificationConf float64 `json:"classification_conf"`
	TextQuality        float64 `json:"text_quality"`
	EvidenceDiversity  float64 `json:"evidence_diversity"`
	UniqueSources      int     `json:"unique_sources"`
}

// ConfidenceReport is the aggregate 0-100 trust estimate for one analysis
type ConfidenceReport struct {
	OverallPct float64           `json:"overall_pct"`
	Factors    ConfidenceFactors `json:"factors"`
}
