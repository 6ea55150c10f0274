package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"policycraft/domain/policy"
)

// WeightedTerm is a single keyword or multi-word phrase with its score weight
type WeightedTerm struct {
	Term   string
	Weight float64
	re     *regexp.Regexp
}

// Matches reports whether the term occurs in text. Matching is
// case-insensitive and word-bounded, so "ai" does not match "maintain".
func (t *WeightedTerm) Matches(text string) bool {
	return t.re.MatchString(text)
}

// DimensionSet holds the patterns scored for one ethical dimension
type DimensionSet struct {
	Keywords []WeightedTerm
	Phrases  []WeightedTerm
}

// Lexicon is the static pattern catalog driving coverage scoring, existing
// policy detection, and institution context classification. Construct once
// and share; all lookups are read-only.
type Lexicon struct {
	dimensions   map[policy.Dimension]DimensionSet
	mechanisms   map[string][]WeightedTerm
	institutions map[policy.InstitutionType][]WeightedTerm
}

// Mechanism names recognized by the existing-policy detector
const (
	MechanismDisclosure = "disclosure_requirements"
	MechanismApproval   = "approval_processes"
	MechanismCitation   = "citation_standards"
	MechanismMonitoring = "monitoring_procedures"
	MechanismTraining   = "training_programs"
)

// MechanismNames returns all detector mechanism names in stable order
func MechanismNames() []string {
	return []string{
		MechanismDisclosure,
		MechanismApproval,
		MechanismCitation,
		MechanismMonitoring,
		MechanismTraining,
	}
}

// Dimension returns the pattern set for one dimension
func (l *Lexicon) Dimension(d policy.Dimension) DimensionSet {
	return l.dimensions[d]
}

// MechanismTriggers returns the trigger patterns for one mechanism name
func (l *Lexicon) MechanismTriggers(name string) []WeightedTerm {
	return l.mechanisms[name]
}

// InstitutionMarkers returns the context keywords for one institution type
func (l *Lexicon) InstitutionMarkers(t policy.InstitutionType) []WeightedTerm {
	return l.institutions[t]
}

// compile builds the word-bounded case-insensitive matcher for a term
func compile(term string) *regexp.Regexp {
	escaped := regexp.QuoteMeta(strings.ToLower(term))
	// Allow flexible whitespace inside multi-word phrases
	escaped = strings.ReplaceAll(escaped, `\ `, `\s+`)
	return regexp.MustCompile(fmt.Sprintf(`(?i)\b%s\b`, escaped))
}

func terms(pairs ...interface{}) []WeightedTerm {
	out := make([]WeightedTerm, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		term := pairs[i].(string)
		weight := pairs[i+1].(float64)
		out = append(out, WeightedTerm{Term: term, Weight: weight, re: compile(term)})
	}
	return out
}

// Default returns the calibrated PolicyCraft lexicon. Weights are tuned so a
// realistic institutional policy scores in the 10-60 band per dimension.
func Default() *Lexicon {
	return &Lexicon{
		dimensions: map[policy.Dimension]DimensionSet{
			policy.DimensionAccountability: {
				Keywords: terms(
					"responsible", 2.0,
					"responsibility", 2.0,
					"accountable", 2.5,
					"accountability", 2.5,
					"consequences", 2.0,
					"sanctions", 2.0,
					"misconduct", 2.5,
					"violation", 2.0,
					"integrity", 2.0,
					"enforcement", 2.0,
					"liable", 1.5,
					"oversight", 2.0,
				),
				Phrases: terms(
					"academic integrity", 2.5,
					"disciplinary action", 2.5,
					"held accountable", 2.5,
					"academic misconduct", 2.5,
					"take responsibility", 2.0,
				),
			},
			policy.DimensionTransparency: {
				Keywords: terms(
					"disclose", 3.0,
					"disclosure", 3.0,
					"acknowledge", 2.5,
					"acknowledgement", 2.5,
					"acknowledgment", 2.5,
					"transparent", 2.5,
					"transparency", 2.5,
					"declare", 2.5,
					"cite", 2.0,
					"citation", 2.0,
					"attribution", 2.0,
					"documented", 1.5,
					"openly", 1.5,
				),
				Phrases: terms(
					"must disclose", 2.0,
					"clearly state", 2.0,
					"ai-generated content", 2.0,
					"properly cite", 2.0,
					"declare the use", 2.0,
				),
			},
			policy.DimensionHumanAgency: {
				Keywords: terms(
					"autonomy", 2.5,
					"judgment", 2.0,
					"judgement", 2.0,
					"discretion", 2.0,
					"supervision", 2.0,
					"supervised", 2.0,
					"reviewed", 1.5,
					"approval", 1.5,
					"instructor", 1.5,
					"decision", 1.5,
					"agency", 2.0,
				),
				Phrases: terms(
					"human oversight", 2.5,
					"human review", 2.5,
					"final decision", 2.0,
					"instructor discretion", 2.5,
					"critical thinking", 2.0,
					"human judgment", 2.5,
				),
			},
			policy.DimensionInclusiveness: {
				Keywords: terms(
					"accessibility", 2.5,
					"accessible", 2.0,
					"equity", 2.5,
					"equitable", 2.5,
					"inclusive", 2.5,
					"inclusion", 2.5,
					"fairness", 2.0,
					"fair", 1.5,
					"accommodation", 2.0,
					"accommodations", 2.0,
					"diverse", 1.5,
					"diversity", 1.5,
				),
				Phrases: terms(
					"equitable access", 2.5,
					"digital divide", 2.5,
					"all students", 1.5,
					"equal opportunity", 2.0,
					"students with disabilities", 2.5,
				),
			},
		},
		mechanisms: map[string][]WeightedTerm{
			MechanismDisclosure: terms(
				"must disclose", 1.0,
				"disclosure requirement", 1.0,
				"declare the use", 1.0,
				"must acknowledge", 1.0,
				"required to disclose", 1.0,
			),
			MechanismApproval: terms(
				"prior approval", 1.0,
				"instructor approval", 1.0,
				"permission from", 1.0,
				"written consent", 1.0,
				"approval process", 1.0,
			),
			MechanismCitation: terms(
				"citation format", 1.0,
				"properly cite", 1.0,
				"cite ai", 1.0,
				"reference ai", 1.0,
				"attribution standard", 1.0,
			),
			MechanismMonitoring: terms(
				"monitoring", 1.0,
				"detection software", 1.0,
				"regular review", 1.0,
				"audit", 1.0,
				"spot check", 1.0,
			),
			MechanismTraining: terms(
				"training program", 1.0,
				"workshops", 1.0,
				"professional development", 1.0,
				"ai literacy", 1.0,
				"training session", 1.0,
			),
		},
		institutions: map[policy.InstitutionType][]WeightedTerm{
			policy.InstitutionResearch: terms(
				"research", 1.0,
				"publication", 1.0,
				"thesis", 1.0,
				"dissertation", 1.0,
				"graduate", 1.0,
				"scholarly", 1.0,
				"faculty research", 1.5,
			),
			policy.InstitutionTeaching: terms(
				"teaching", 1.0,
				"classroom", 1.0,
				"coursework", 1.0,
				"assignments", 1.0,
				"undergraduate", 1.0,
				"pedagogy", 1.5,
				"learning outcomes", 1.5,
			),
			policy.InstitutionTechnical: terms(
				"engineering", 1.0,
				"technical", 1.0,
				"programming", 1.0,
				"laboratory", 1.0,
				"applied", 1.0,
				"vocational", 1.5,
				"software development", 1.5,
			),
		},
	}
}
