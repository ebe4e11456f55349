package driven

import (
	"context"

	"github.com/custodia-labs/scribe-cli/internal/core/domain"
)

// WebSearchService performs a web search for a query. This is an optional
// service - when nil, search-intent messages fail with the standard
// search error message.
type WebSearchService interface {
	// Search returns up to limit results ordered by rank. An empty slice
	// (not an error) is returned when nothing matches.
	Search(ctx context.Context, query string, limit int) ([]domain.WebResult, error)

	// Close releases resources.
	Close() error
}
