package recommend

import (
	"strings"

	"policycraft/domain/policy"
	"policycraft/internal/lexicon"
)

// ContextClassifier infers the institutional context of a policy from theme
// names and document text using keyword density. Evidence below the minimum
// falls back to research_university, the original corpus majority.
type ContextClassifier struct {
	lex *lexicon.Lexicon
}

// minContextEvidence is the weighted match count required before a
// non-default institution type is assigned
const minContextEvidence = 2.0

// NewContextClassifier creates an institution context classifier
func NewContextClassifier(lex *lexicon.Lexicon) *ContextClassifier {
	return &ContextClassifier{lex: lex}
}

// Classify picks the institution type with the densest keyword evidence
func (c *ContextClassifier) Classify(themes []policy.Theme, text string) policy.InstitutionType {
	corpus := strings.TrimSpace(text)
	for _, theme := range themes {
		corpus += " " + theme.Name
	}
	if corpus == "" {
		return policy.InstitutionResearch
	}

	candidates := []policy.InstitutionType{
		policy.InstitutionResearch,
		policy.InstitutionTeaching,
		policy.InstitutionTechnical,
	}

	best := policy.InstitutionResearch
	bestScore := 0.0
	for _, inst := range candidates {
		score := 0.0
		for i := range c.lex.InstitutionMarkers(inst) {
			marker := c.lex.InstitutionMarkers(inst)[i]
			if marker.Matches(corpus) {
				score += marker.Weight
			}
		}
		if score > bestScore {
			best = inst
			bestScore = score
		}
	}

	if bestScore < minContextEvidence {
		return policy.InstitutionResearch
	}
	return best
}
