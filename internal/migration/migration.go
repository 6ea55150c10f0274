package migration

import (
	"context"

	"policycraft/internal/errors"

	"github.com/jmoiron/sqlx"
)

// Migrator defines the interface for database migration operations
type Migrator interface {
	Run(ctx context.Context, db *sqlx.DB) error
	Version() string
}

// MigrationRunner handles database schema migrations
type MigrationRunner struct {
	version string
}

// NewRunner creates a new migration runner
func NewRunner() *MigrationRunner {
	return &MigrationRunner{
		version: "1.0.0",
	}
}

// Version returns the migration version
func (r *MigrationRunner) Version() string {
	return r.version
}

// Run executes all database migrations in the correct order
func (r *MigrationRunner) Run(ctx context.Context, db *sqlx.DB) error {
	if err := r.createLiteratureSourcesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create literature_sources table")
	}

	if err := r.createAnalysesTable(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create analyses table")
	}

	if err := r.createIndexes(ctx, db); err != nil {
		return errors.Wrap(err, "failed to create indexes")
	}

	if err := r.seedLiteratureSources(ctx, db); err != nil {
		return errors.Wrap(err, "failed to seed literature sources")
	}

	return nil
}

func (r *MigrationRunner) createLiteratureSourcesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS literature_sources (
			id SERIAL PRIMARY KEY,
			title TEXT NOT NULL UNIQUE,
			authors TEXT NOT NULL DEFAULT '',
			year INT NOT NULL DEFAULT 0,
			topics TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (r *MigrationRunner) createAnalysesTable(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY,
			document_name TEXT NOT NULL DEFAULT '',
			classification TEXT NOT NULL DEFAULT '',
			confidence_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
			payload JSONB NOT NULL,
			analyzed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	return err
}

func (r *MigrationRunner) createIndexes(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE INDEX IF NOT EXISTS idx_analyses_classification ON analyses(classification)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_literature_topics ON literature_sources USING GIN(topics)`,
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// seedLiteratureSources inserts the baseline corpus on first run
func (r *MigrationRunner) seedLiteratureSources(ctx context.Context, db *sqlx.DB) error {
	seeds := []struct {
		title   string
		authors string
		year    int
		topics  string
	}{
		{"UNESCO Recommendation on the Ethics of Artificial Intelligence", "UNESCO", 2021, `{"ethics","accountability","inclusiveness"}`},
		{"Ethics Guidelines for Trustworthy AI", "European Commission High-Level Expert Group", 2019, `{"transparency","human agency","ethics"}`},
		{"Russell Group Principles on the Use of Generative AI in Education", "Russell Group", 2023, `{"transparency","assessment","education"}`},
		{"OECD AI Principles", "OECD", 2019, `{"accountability","human agency"}`},
		{"AI in Tertiary Education: A Summary of the Current State of Play", "Jisc", 2023, `{"education","assessment","integrity"}`},
		{"Generative AI and Academic Integrity", "Sullivan, Kelly and McLaughlan", 2023, `{"integrity","assessment","transparency"}`},
	}

	for _, seed := range seeds {
		_, err := db.ExecContext(ctx, `
			INSERT INTO literature_sources (title, authors, year, topics)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (title) DO NOTHING`,
			seed.title, seed.authors, seed.year, seed.topics)
		if err != nil {
			return err
		}
	}
	return nil
}
