package policy

import "time"

// AnalysisResult is the full outcome of analysing one policy document.
// It is a transient value object; persistence is the caller's concern.
type AnalysisResult struct {
	ID               string                       `json:"id"`
	DocumentName     string                       `json:"document_name,omitempty"`
	Classification   Classification               `json:"classification"`
	Coverage         map[Dimension]CoverageResult `json:"coverage"`
	Gaps             []Gap                        `json:"gaps"`
	Recommendations  []Recommendation             `json:"recommendations"`
	Confidence       ConfidenceReport             `json:"confidence"`
	Institution      InstitutionType              `json:"institution_context"`
	ExistingPolicies map[string]bool              `json:"existing_policies"`
	TextLength       int                          `json:"text_length"`
	AnalyzedAt       time.Time                    `json:"analyzed_at"`
}
