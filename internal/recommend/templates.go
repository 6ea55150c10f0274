package recommend

import (
	"fmt"
	"strings"

	"policycraft/domain/policy"
)

// Template is one fillable recommendation blueprint
type Template struct {
	Title       string
	Description string
	Steps       []string
	Sources     []string
	Timeframe   string
}

type templateKey struct {
	dim  policy.Dimension
	inst policy.InstitutionType
	impl policy.ImplementationType
}

// Catalog holds recommendation templates keyed by
// (dimension, institution type, implementation type)
type Catalog struct {
	templates map[templateKey]Template
}

// Lookup returns the template for the exact key, falling back to the
// research_university variant when no institution-specific one exists
func (c *Catalog) Lookup(dim policy.Dimension, inst policy.InstitutionType, impl policy.ImplementationType) (Template, bool) {
	if tmpl, ok := c.templates[templateKey{dim, inst, impl}]; ok {
		return tmpl, true
	}
	tmpl, ok := c.templates[templateKey{dim, policy.InstitutionResearch, impl}]
	return tmpl, ok
}

// dimensionBlueprint carries the dimension-level template content shared
// across institution variants
type dimensionBlueprint struct {
	newTitle     string
	enhanceTitle string
	newDesc      string
	enhanceDesc  string
	steps        []string
	sources      []string
}

// institutionFlavor adapts blueprint prose to an institutional context
type institutionFlavor struct {
	audience  string
	extraStep string
	timeframe string
}

var blueprints = map[policy.Dimension]dimensionBlueprint{
	policy.DimensionAccountability: {
		newTitle:     "Establish an AI Accountability Framework",
		enhanceTitle: "Strengthen Existing Accountability Mechanisms",
		newDesc: "Define **clear lines of responsibility** for AI use: who may use AI tools, " +
			"who answers for AI-assisted work, and what consequences follow misuse.",
		enhanceDesc: "The policy already monitors AI use; extend that mechanism with **explicit " +
			"responsibility assignments** and a documented escalation path for violations.",
		steps: []string{
			"Assign ownership of AI policy compliance to a named role or committee",
			"Define proportionate consequences for undisclosed or prohibited AI use",
			"Publish an escalation and appeals path for suspected violations",
		},
		sources: []string{
			"UNESCO Recommendation on the Ethics of Artificial Intelligence (2021)",
			"Jisc: AI in Tertiary Education (2023)",
		},
	},
	policy.DimensionTransparency: {
		newTitle:     "Introduce AI Disclosure Requirements",
		enhanceTitle: "Expand AI Disclosure and Citation Guidance",
		newDesc: "Require **explicit disclosure** whenever AI tools contribute to submitted work, " +
			"with a standard acknowledgement format so disclosure is cheap and unambiguous.",
		enhanceDesc: "Disclosure is already expected; add a **standard citation format** for AI " +
			"assistance and worked examples covering common tools.",
		steps: []string{
			"Adopt a standard AI acknowledgement statement for submitted work",
			"Provide citation examples for the most common AI tools",
			"Clarify which uses of AI require disclosure and which do not",
		},
		sources: []string{
			"Russell Group Principles on the Use of Generative AI (2023)",
			"EU Ethics Guidelines for Trustworthy AI (2019)",
		},
	},
	policy.DimensionHumanAgency: {
		newTitle:     "Codify Human Oversight of AI-Assisted Work",
		enhanceTitle: "Deepen Human Review Checkpoints",
		newDesc: "State that **humans retain final judgment** over AI output: assessment decisions, " +
			"feedback, and academic evaluations must not be delegated to AI alone.",
		enhanceDesc: "Approval checkpoints exist; extend them so **AI output is always reviewed** " +
			"by the responsible person before it affects grades or progression.",
		steps: []string{
			"Require human review before AI output informs any assessment decision",
			"Reserve final academic judgments explicitly for staff",
			"Document where instructor discretion overrides AI-generated results",
		},
		sources: []string{
			"EU Ethics Guidelines for Trustworthy AI (2019)",
			"OECD AI Principles (2019)",
		},
	},
	policy.DimensionInclusiveness: {
		newTitle:     "Address Equitable Access to AI Tools",
		enhanceTitle: "Broaden Inclusive AI Provisions",
		newDesc: "Commit to **equitable access**: ensure approved AI tools are available to all " +
			"students regardless of means, and that AI practices respect accessibility needs.",
		enhanceDesc: "Training provisions exist; widen them with **accessibility accommodations** " +
			"and support for students without private access to paid AI tools.",
		steps: []string{
			"Provide institutionally licensed AI tools where coursework assumes AI access",
			"Review AI requirements against accessibility and accommodation policies",
			"Monitor whether AI rules disadvantage any student group",
		},
		sources: []string{
			"UNESCO Recommendation on the Ethics of Artificial Intelligence (2021)",
		},
	},
}

var flavors = map[policy.InstitutionType]institutionFlavor{
	policy.InstitutionResearch: {
		audience:  "research supervisors and graduate programmes",
		extraStep: "Align the provision with research integrity and publication standards",
		timeframe: "one semester",
	},
	policy.InstitutionTeaching: {
		audience:  "course leaders and undergraduate teaching staff",
		extraStep: "Pilot the provision in a representative set of taught modules",
		timeframe: "6-8 weeks",
	},
	policy.InstitutionTechnical: {
		audience:  "programme directors for technical and applied courses",
		extraStep: "Cover programming assistants and lab tooling explicitly",
		timeframe: "one term",
	},
}

// DefaultCatalog builds the full template catalog from the dimension
// blueprints and institution flavors
func DefaultCatalog() *Catalog {
	templates := make(map[templateKey]Template)

	for dim, bp := range blueprints {
		for inst, flavor := range flavors {
			for _, impl := range []policy.ImplementationType{policy.NewImplementation, policy.Enhancement} {
				title := bp.newTitle
				desc := bp.newDesc
				if impl == policy.Enhancement {
					title = bp.enhanceTitle
					desc = bp.enhanceDesc
				}

				steps := make([]string, 0, len(bp.steps)+1)
				steps = append(steps, bp.steps...)
				steps = append(steps, flavor.extraStep)

				templates[templateKey{dim, inst, impl}] = Template{
					Title: title,
					Description: fmt.Sprintf("%s Aimed at %s.", strings.TrimSpace(desc), flavor.audience),
					Steps:     steps,
					Sources:   bp.sources,
					Timeframe: flavor.timeframe,
				}
			}
		}
	}

	return &Catalog{templates: templates}
}
