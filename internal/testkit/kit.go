package testkit

import (
	"context"
	"strings"
	"sync"

	"policycraft/internal/config"
	"policycraft/internal/engine"
	"policycraft/internal/lexicon"
	"policycraft/ports"
)

// TestKit bundles an engine wired with an in-memory literature repository
// and a set of realistic sample policies, for tests, demos and the CLI.
type TestKit struct {
	Engine     *engine.Engine
	Literature *MemoryLiteratureRepository
}

// NewTestKit creates a kit with default configuration and the sample corpus
func NewTestKit() *TestKit {
	repo := NewMemoryLiteratureRepository(SampleSources())
	return &TestKit{
		Engine:     engine.New(lexicon.Default(), config.DefaultScoringConfig(), repo),
		Literature: repo,
	}
}

// MemoryLiteratureRepository is an in-memory ports.LiteratureRepository
type MemoryLiteratureRepository struct {
	mu      sync.RWMutex
	sources []ports.LiteratureSource
}

// NewMemoryLiteratureRepository creates a repository over fixed sources
func NewMemoryLiteratureRepository(sources []ports.LiteratureSource) *MemoryLiteratureRepository {
	return &MemoryLiteratureRepository{sources: sources}
}

// FindSources filters the in-memory corpus by query and topics
func (r *MemoryLiteratureRepository) FindSources(ctx context.Context, query string, topics []string) ([]ports.LiteratureSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	out := make([]ports.LiteratureSource, 0, len(r.sources))
	for _, src := range r.sources {
		if query != "" && !strings.Contains(strings.ToLower(src.Title), query) {
			continue
		}
		if len(topics) > 0 && !matchesAnyTopic(src, topics) {
			continue
		}
		out = append(out, src)
	}
	return out, nil
}

// Refresh is a no-op for the in-memory corpus
func (r *MemoryLiteratureRepository) Refresh(ctx context.Context) error { return nil }

// SetSources replaces the corpus, for tests that need specific fixtures
func (r *MemoryLiteratureRepository) SetSources(sources []ports.LiteratureSource) {
	r.mu.Lock()
	r.sources = sources
	r.mu.Unlock()
}

func matchesAnyTopic(src ports.LiteratureSource, topics []string) bool {
	for _, have := range src.Topics {
		have = strings.ToLower(have)
		for _, want := range topics {
			want = strings.ToLower(strings.TrimSpace(want))
			if want == "" {
				continue
			}
			if strings.Contains(have, want) || strings.Contains(want, have) {
				return true
			}
		}
	}
	return false
}

// SampleSources returns a small literature corpus mirroring the seeded
// production table
func SampleSources() []ports.LiteratureSource {
	return []ports.LiteratureSource{
		{Title: "UNESCO Recommendation on the Ethics of Artificial Intelligence", Authors: "UNESCO", Year: 2021, Topics: []string{"ethics", "accountability", "inclusiveness"}},
		{Title: "Ethics Guidelines for Trustworthy AI", Authors: "European Commission High-Level Expert Group", Year: 2019, Topics: []string{"transparency", "human agency", "ethics"}},
		{Title: "Russell Group Principles on the Use of Generative AI in Education", Authors: "Russell Group", Year: 2023, Topics: []string{"transparency", "assessment", "education"}},
		{Title: "OECD AI Principles", Authors: "OECD", Year: 2019, Topics: []string{"accountability", "human agency"}},
		{Title: "AI in Tertiary Education: A Summary of the Current State of Play", Authors: "Jisc", Year: 2023, Topics: []string{"education", "assessment", "integrity"}},
		{Title: "Generative AI and Academic Integrity", Authors: "Sullivan, Kelly and McLaughlan", Year: 2023, Topics: []string{"integrity", "assessment", "transparency"}},
	}
}

// SamplePolicies returns named policy texts spanning the three
// classifications, useful for demos and integration-style tests
func SamplePolicies() map[string]string {
	return map[string]string{
		"restrictive": "The use of generative AI tools is strictly prohibited in all assessed coursework. " +
			"Any use of AI constitutes academic misconduct and will result in disciplinary action. " +
			"Staff are responsible for enforcement and students are held accountable for violations.",
		"moderate": "Students may use AI tools with instructor approval. All AI assistance must be disclosed " +
			"and acknowledged in submitted work using the standard citation format. Instructors retain " +
			"final decision authority over what constitutes acceptable use, and the policy guarantees " +
			"equitable access to approved tools for all students.",
		"permissive": "Students are encouraged to use AI tools to support their learning. We ask that students " +
			"acknowledge significant AI contributions and reflect on how the tools shaped their work. " +
			"Human judgment remains central to assessment.",
	}
}
