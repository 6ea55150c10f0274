package engine

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"policycraft/domain/policy"
	"policycraft/internal/config"
	"policycraft/internal/confidence"
	"policycraft/internal/coverage"
	"policycraft/internal/gaps"
	"policycraft/internal/lexicon"
	"policycraft/internal/recommend"
	"policycraft/ports"
)

// AnalysisRequest carries everything needed to analyse one policy document.
// Classification accepts the raw upstream classifier output (string, decoded
// JSON map, or Classification) and is normalized at the boundary.
type AnalysisRequest struct {
	DocumentName   string
	Text           string
	Themes         []policy.Theme
	Classification interface{}
}

// Engine is the analysis façade chaining coverage scoring, gap
// identification, recommendation selection and confidence aggregation.
// All inner components are pure; the engine itself holds no mutable state
// and is safe for concurrent use.
type Engine struct {
	scorer     *coverage.Scorer
	detector   *coverage.Detector
	identifier *gaps.Identifier
	selector   *recommend.Selector
	aggregator *confidence.Aggregator

	// maxBatchConcurrency bounds AnalyzeBatch workers
	maxBatchConcurrency int64
}

// New wires an engine from the lexicon, scoring configuration and literature
// repository. repo may be nil; evidence diversity then scores zero.
func New(lex *lexicon.Lexicon, cfg config.ScoringConfig, repo ports.LiteratureRepository) *Engine {
	detector := coverage.NewDetector(lex)
	return &Engine{
		scorer:              coverage.NewScorer(lex, cfg.Coverage),
		detector:            detector,
		identifier:          gaps.NewIdentifier(cfg.Gaps),
		selector:            recommend.NewSelector(detector, recommend.NewContextClassifier(lex), recommend.DefaultCatalog()),
		aggregator:          confidence.NewAggregator(repo, cfg.Confidence),
		maxBatchConcurrency: 4,
	}
}

// Analyze runs the full pipeline over one document. It never returns an
// error for sparse or empty input; the result always carries at least one
// recommendation so downstream surfaces never render an empty list.
func (e *Engine) Analyze(ctx context.Context, req AnalysisRequest) *policy.AnalysisResult {
	classification := policy.NormalizeClassification(req.Classification)

	coverageMap := e.scorer.AnalyzeCoverage(req.Themes, req.Text)
	gapList := e.identifier.IdentifyGaps(coverageMap, classification)
	recommendations := e.selector.GenerateRecommendations(gapList, classification, req.Themes, req.Text)
	if len(recommendations) == 0 {
		recommendations = []policy.Recommendation{recommend.FallbackRecommendation(classification)}
	}

	report := e.aggregator.Calculate(ctx, req.Themes, classification, len(req.Text))

	return &policy.AnalysisResult{
		ID:               uuid.NewString(),
		DocumentName:     req.DocumentName,
		Classification:   classification,
		Coverage:         coverageMap,
		Gaps:             gapList,
		Recommendations:  recommendations,
		Confidence:       report,
		Institution:      e.selector.ClassifyInstitution(req.Themes, req.Text),
		ExistingPolicies: e.detector.DetectExistingPolicies(req.Text),
		TextLength:       len(req.Text),
		AnalyzedAt:       time.Now().UTC(),
	}
}

// AnalyzeBatch analyses several documents concurrently with bounded
// parallelism. Results keep request order. The only error source is a
// cancelled context while waiting for a worker slot.
func (e *Engine) AnalyzeBatch(ctx context.Context, requests []AnalysisRequest) ([]*policy.AnalysisResult, error) {
	results := make([]*policy.AnalysisResult, len(requests))
	sem := semaphore.NewWeighted(e.maxBatchConcurrency)

	for i := range requests {
		if err := sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}
		go func(idx int) {
			defer sem.Release(1)
			results[idx] = e.Analyze(ctx, requests[idx])
		}(i)
	}

	// Drain all slots so every worker has finished before returning
	if err := sem.Acquire(ctx, e.maxBatchConcurrency); err != nil {
		return nil, err
	}
	sem.Release(e.maxBatchConcurrency)

	return results, nil
}
