package policy

// Dimension identifies one of the fixed ethical-coverage categories
type Dimension string

const (
	DimensionAccountability Dimension = "accountability"
	DimensionTransparency   Dimension = "transparency"
	DimensionHumanAgency    Dimension = "human_agency"
	DimensionInclusiveness  Dimension = "inclusiveness"
)

// AllDimensions returns every dimension in stable iteration order
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionAccountability,
		DimensionTransparency,
		DimensionHumanAgency,
		DimensionInclusiveness,
	}
}

// IsValid reports whether d is one of the four known dimensions
func (d Dimension) IsValid() bool {
	switch d {
	case DimensionAccountability, DimensionTransparency, DimensionHumanAgency, DimensionInclusiveness:
		return true
	}
	return false
}

// CoverageStatus buckets a coverage score into a qualitative band
type CoverageStatus string

const (
	StatusWeak     CoverageStatus = "weak"
	StatusModerate CoverageStatus = "moderate"
	StatusStrong   CoverageStatus = "strong"
)

// CoverageResult holds the per-dimension outcome of a coverage scan
type CoverageResult struct {
	Score        float64        `json:"score"`      // 0-100
	ItemCount    int            `json:"item_count"` // distinct matched keywords + phrases
	MatchedItems []string       `json:"matched_items"`
	Status       CoverageStatus `json:"status"`
}

// Theme is a topic signal produced by the upstream NLP pipeline
type Theme struct {
	Name       string  `json:"name"`
	Score      float64 `json:"score"`
	Confidence float64 `json:"confidence"` // 0-100
}

// ClassificationLabel is the policy stance assigned by the upstream classifier
type ClassificationLabel string

const (
	ClassRestrictive ClassificationLabel = "Restrictive"
	ClassModerate    ClassificationLabel = "Moderate"
	ClassPermissive  ClassificationLabel = "Permissive"
)

// Classification is the normalized internal form of classifier output.
// Confidence is always held on the 0-100 scale.
type Classification struct {
	Label      ClassificationLabel `json:"classification"`
	Confidence float64             `json:"confidence"`
}

// InstitutionType is the rule-classified institutional context used for
// recommendation template selection
type InstitutionType string

const (
	InstitutionResearch  InstitutionType = "research_university"
	InstitutionTeaching  InstitutionType = "teaching_focused"
	InstitutionTechnical InstitutionType = "technical_institute"
)
