package ports

import "context"

// LiteratureSource is one entry from the research literature corpus
type LiteratureSource struct {
	Title   string   `json:"title"`
	Authors string   `json:"authors"`
	Year    int      `json:"year,omitempty"`
	Topics  []string `json:"topics,omitempty"`
}

// LiteratureRepository provides read access to the literature corpus backing
// evidence-diversity scoring. Implementations must be safe for concurrent
// reads. Refresh is explicit: the host application decides the schedule,
// there is no hidden background timer.
type LiteratureRepository interface {
	// FindSources returns sources matching the query and/or topics; empty
	// query and nil topics return the whole corpus.
	FindSources(ctx context.Context, query string, topics []string) ([]LiteratureSource, error)

	// Refresh reloads the corpus from its backing store. Implementations may
	// debounce calls that arrive inside their configured interval.
	Refresh(ctx context.Context) error
}
