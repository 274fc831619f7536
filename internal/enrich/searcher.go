package enrich

import (
	"context"
	"sync"

	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// ErrSuperseded is returned for a search whose result arrived after a newer
// search was issued. The stale result must be discarded, never rendered.
type supersededError struct{}

func (supersededError) Error() string { return "search superseded by a newer request" }

// ErrSuperseded is the sentinel for a losing search in the
// last-request-wins race.
var ErrSuperseded error = supersededError{}

// Searcher serializes searches against a Provider with last-request-wins
// semantics: issuing a new search cancels the previous in-flight request, and
// a superseded result is discarded even if its provider call completed.
type Searcher struct {
	provider Provider

	mu         sync.Mutex
	generation uint64
	cancelPrev context.CancelFunc
}

// NewSearcher wraps a provider with supersede handling
func NewSearcher(p Provider) *Searcher {
	return &Searcher{provider: p}
}

// Search runs one search action. If another Search is issued while this one
// is in flight, this one's context is cancelled and its result, should the
// provider still deliver one, is dropped with ErrSuperseded.
func (s *Searcher) Search(ctx context.Context, f *filters.Filters) ([]prospect.Prospect, error) {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	if s.cancelPrev != nil {
		s.cancelPrev()
	}
	searchCtx, cancel := context.WithCancel(ctx)
	s.cancelPrev = cancel
	s.mu.Unlock()

	pool, err := s.provider.Search(searchCtx, f)

	s.mu.Lock()
	current := gen == s.generation
	if current {
		s.cancelPrev = nil
	}
	s.mu.Unlock()
	cancel()

	if !current {
		return nil, ErrSuperseded
	}
	return pool, err
}
