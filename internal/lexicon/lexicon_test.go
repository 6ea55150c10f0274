package lexicon

import (
	"testing"

	"policycraft/domain/policy"
)

func TestWeightedTerm_WordBoundedMatching(t *testing.T) {
	term := terms("ai", 1.0)[0]

	if !term.Matches("Use of AI tools is permitted.") {
		t.Error("Expected word-bounded match on 'AI'")
	}
	if term.Matches("Students must maintain academic standards.") {
		t.Error("'ai' must not match inside 'maintain'")
	}
}

func TestWeightedTerm_PhraseWhitespaceFlexibility(t *testing.T) {
	term := terms("human oversight", 2.5)[0]

	if !term.Matches("subject to human  oversight at all times") {
		t.Error("Expected phrase to match across extra whitespace")
	}
	if !term.Matches("Human\nOversight remains mandatory") {
		t.Error("Expected phrase to match across a line break")
	}
}

func TestDefault_CoversAllDimensions(t *testing.T) {
	lex := Default()

	for _, dim := range policy.AllDimensions() {
		set := lex.Dimension(dim)
		if len(set.Keywords) == 0 {
			t.Errorf("Dimension %s has no keywords", dim)
		}
		if len(set.Phrases) == 0 {
			t.Errorf("Dimension %s has no phrases", dim)
		}
	}
}

func TestDefault_CoversAllMechanisms(t *testing.T) {
	lex := Default()

	for _, name := range MechanismNames() {
		if len(lex.MechanismTriggers(name)) == 0 {
			t.Errorf("Mechanism %s has no trigger patterns", name)
		}
	}
}

func TestDefault_InstitutionMarkers(t *testing.T) {
	lex := Default()

	for _, inst := range []policy.InstitutionType{policy.InstitutionResearch, policy.InstitutionTeaching, policy.InstitutionTechnical} {
		if len(lex.InstitutionMarkers(inst)) == 0 {
			t.Errorf("Institution %s has no markers", inst)
		}
	}
}
