package coverage

import (
	"strings"

	"policycraft/domain/policy"
	"policycraft/internal/lexicon"
)

// Detector flags which policy mechanisms a document already contains, which
// drives the enhancement vs new-implementation framing of recommendations.
type Detector struct {
	lex *lexicon.Lexicon
}

// NewDetector creates an existing-policy mechanism detector
func NewDetector(lex *lexicon.Lexicon) *Detector {
	return &Detector{lex: lex}
}

// DetectExistingPolicies returns one flag per known mechanism, true iff at
// least one of its trigger patterns matches the text. Empty text means every
// flag is false. Pure.
func (d *Detector) DetectExistingPolicies(text string) map[string]bool {
	flags := make(map[string]bool, len(lexicon.MechanismNames()))

	trimmed := strings.TrimSpace(text)
	for _, name := range lexicon.MechanismNames() {
		flags[name] = false
		if trimmed == "" {
			continue
		}
		for i := range d.lex.MechanismTriggers(name) {
			trigger := d.lex.MechanismTriggers(name)[i]
			if trigger.Matches(trimmed) {
				flags[name] = true
				break
			}
		}
	}

	return flags
}

// MechanismForDimension maps an ethical dimension to the mechanism whose
// presence makes an enhancement (rather than a new control) the right framing.
func MechanismForDimension(dim policy.Dimension) string {
	switch dim {
	case policy.DimensionTransparency:
		return lexicon.MechanismDisclosure
	case policy.DimensionAccountability:
		return lexicon.MechanismMonitoring
	case policy.DimensionHumanAgency:
		return lexicon.MechanismApproval
	case policy.DimensionInclusiveness:
		return lexicon.MechanismTraining
	}
	return ""
}
