package enrich

import (
	"context"
	"errors"

	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// ErrProviderUnavailable indicates the enrichment/search service failed or
// timed out. Callers surface it as a retryable condition and keep the last
// cached result set usable.
var ErrProviderUnavailable = errors.New("enrichment provider unavailable")

// Provider supplies already-enriched prospect records for a filter set.
// Implementations must treat an empty result as success, not an error.
type Provider interface {
	Search(ctx context.Context, f *filters.Filters) ([]prospect.Prospect, error)
}
