package coverage

import (
	"strings"

	"policycraft/domain/policy"
	"policycraft/internal/config"
	"policycraft/internal/lexicon"
)

// PhrasePrefix marks phrase-level entries in CoverageResult.MatchedItems
const PhrasePrefix = "PHRASE:"

// Scorer scans policy text against the weighted lexicon and produces a
// per-dimension coverage result. Pure and safe for concurrent use.
type Scorer struct {
	lex *lexicon.Lexicon
	cfg config.CoverageConfig
}

// NewScorer creates a coverage scorer over the given lexicon
func NewScorer(lex *lexicon.Lexicon, cfg config.CoverageConfig) *Scorer {
	return &Scorer{lex: lex, cfg: cfg}
}

// AnalyzeCoverage scores every dimension against text. Themes are accepted
// for interface symmetry with the surrounding engine; coverage itself is
// keyword-driven. Empty text yields all four dimensions with zero scores
// and no matched items, never an error.
func (s *Scorer) AnalyzeCoverage(themes []policy.Theme, text string) map[policy.Dimension]policy.CoverageResult {
	results := make(map[policy.Dimension]policy.CoverageResult, len(policy.AllDimensions()))

	trimmed := strings.TrimSpace(text)
	for _, dim := range policy.AllDimensions() {
		if trimmed == "" {
			results[dim] = policy.CoverageResult{
				Score:        0,
				ItemCount:    0,
				MatchedItems: []string{},
				Status:       policy.StatusWeak,
			}
			continue
		}
		results[dim] = s.scoreDimension(dim, trimmed)
	}

	return results
}

// scoreDimension runs one dimension's keyword and phrase patterns over text.
// Each distinct matched keyword contributes its weight once; each matched
// phrase contributes its weight as a bonus on top of whatever its constituent
// words already scored.
func (s *Scorer) scoreDimension(dim policy.Dimension, text string) policy.CoverageResult {
	set := s.lex.Dimension(dim)

	var raw float64
	matched := make([]string, 0, 8)
	seen := make(map[string]bool)

	for i := range set.Keywords {
		kw := &set.Keywords[i]
		if !kw.Matches(text) {
			continue
		}
		if seen[kw.Term] {
			continue
		}
		seen[kw.Term] = true
		raw += kw.Weight
		matched = append(matched, kw.Term)
	}

	for i := range set.Phrases {
		ph := &set.Phrases[i]
		if !ph.Matches(text) {
			continue
		}
		entry := PhrasePrefix + ph.Term
		if seen[entry] {
			continue
		}
		seen[entry] = true
		raw += ph.Weight
		matched = append(matched, entry)
	}

	score := s.normalize(raw, len(matched))

	return policy.CoverageResult{
		Score:        score,
		ItemCount:    len(matched),
		MatchedItems: matched,
		Status:       s.status(score),
	}
}

// normalize maps the summed match weight into the calibrated 0-100 band.
// Any dimension with at least one match is floored above zero.
func (s *Scorer) normalize(raw float64, matchCount int) float64 {
	if matchCount == 0 {
		return 0
	}
	score := raw * s.cfg.Scale
	if score < s.cfg.Floor {
		score = s.cfg.Floor
	}
	if score > s.cfg.Cap {
		score = s.cfg.Cap
	}
	return score
}

// status applies the monotonic score cut-offs
func (s *Scorer) status(score float64) policy.CoverageStatus {
	switch {
	case score < s.cfg.WeakBelow:
		return policy.StatusWeak
	case score < s.cfg.ModerateBelow:
		return policy.StatusModerate
	default:
		return policy.StatusStrong
	}
}
