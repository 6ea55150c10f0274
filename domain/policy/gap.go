package policy

// GapType captures why a dimension fell short of its coverage expectation
type GapType string

const (
	GapCoverage           GapType = "coverage_gap"            // dimension essentially absent
	GapImprovement        GapType = "improvement_opportunity" // present but below target
	GapClassificationRisk GapType = "classification_risk"     // shortfall contradicts the assigned label
)

// GapPriority orders gaps for recommendation generation
type GapPriority string

const (
	PriorityCritical GapPriority = "critical"
	PriorityHigh     GapPriority = "high"
	PriorityMedium   GapPriority = "medium"
	PriorityLow      GapPriority = "low"
)

// Rank returns a sortable rank, lower is more urgent
func (p GapPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	}
	return 4
}

// Gap is one dimension whose coverage falls below the expectation for the
// policy's classification. All five fields are always populated.
type Gap struct {
	Dimension    Dimension   `json:"dimension"`
	Type         GapType     `json:"type"`
	Priority     GapPriority `json:"priority"`
	CurrentScore float64     `json:"current_score"`
	Description  string      `json:"description"`
}
