package postgres

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"policycraft/internal/errors"
	"policycraft/ports"
)

// literatureRow mirrors the literature_sources table
type literatureRow struct {
	ID      int64          `db:"id"`
	Title   string         `db:"title"`
	Authors string         `db:"authors"`
	Year    int            `db:"year"`
	Topics  pq.StringArray `db:"topics"`
}

// LiteratureRepository is the sqlx-backed literature corpus. Reads are served
// from an in-process cache; Refresh reloads from the database and debounces
// calls that arrive inside the configured interval. The host application
// schedules refreshes explicitly.
type LiteratureRepository struct {
	db *sqlx.DB

	mu              sync.RWMutex
	cache           []ports.LiteratureSource
	lastRefresh     time.Time
	refreshInterval time.Duration
}

// NewLiteratureRepository creates the repository and performs the initial
// corpus load
func NewLiteratureRepository(ctx context.Context, db *sqlx.DB, refreshInterval time.Duration) (*LiteratureRepository, error) {
	repo := &LiteratureRepository{
		db:              db,
		refreshInterval: refreshInterval,
	}
	if err := repo.reload(ctx); err != nil {
		return nil, errors.Wrap(err, "initial literature load failed")
	}
	return repo, nil
}

// FindSources returns cached sources matching the query and/or topics.
// Empty query and nil topics return the whole corpus.
func (r *LiteratureRepository) FindSources(ctx context.Context, query string, topics []string) ([]ports.LiteratureSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(strings.TrimSpace(query))
	wanted := make([]string, 0, len(topics))
	for _, topic := range topics {
		if t := strings.ToLower(strings.TrimSpace(topic)); t != "" {
			wanted = append(wanted, t)
		}
	}

	out := make([]ports.LiteratureSource, 0, len(r.cache))
	for _, src := range r.cache {
		if query != "" && !strings.Contains(strings.ToLower(src.Title), query) {
			continue
		}
		if len(wanted) > 0 && !topicsOverlap(src.Topics, wanted) {
			continue
		}
		out = append(out, src)
	}
	return out, nil
}

// Refresh reloads the corpus unless the last reload is still fresh
func (r *LiteratureRepository) Refresh(ctx context.Context) error {
	r.mu.RLock()
	fresh := time.Since(r.lastRefresh) < r.refreshInterval
	r.mu.RUnlock()
	if fresh {
		return nil
	}
	return r.reload(ctx)
}

// reload replaces the cache from the database
func (r *LiteratureRepository) reload(ctx context.Context) error {
	var rows []literatureRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT id, title, authors, year, topics
		FROM literature_sources
		ORDER BY title`)
	if err != nil {
		return errors.Wrap(err, "failed to load literature sources")
	}

	sources := make([]ports.LiteratureSource, 0, len(rows))
	for _, row := range rows {
		sources = append(sources, ports.LiteratureSource{
			Title:   row.Title,
			Authors: row.Authors,
			Year:    row.Year,
			Topics:  row.Topics,
		})
	}

	r.mu.Lock()
	r.cache = sources
	r.lastRefresh = time.Now()
	r.mu.Unlock()
	return nil
}

// topicsOverlap reports whether any wanted topic matches a source topic.
// Matching is case-insensitive substring in either direction, so a theme
// named "assessment" finds sources tagged "assessment design".
func topicsOverlap(have []string, wanted []string) bool {
	for _, h := range have {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		for _, w := range wanted {
			if strings.Contains(h, w) || strings.Contains(w, h) {
				return true
			}
		}
	}
	return false
}
