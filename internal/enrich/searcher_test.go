package enrich

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/prospect"
)

// gateProvider blocks its first call until cancelled and answers the second
// immediately, simulating a slow request overtaken by a fast one
type gateProvider struct {
	firstStarted chan struct{}
	pool         []prospect.Prospect
	calls        int
}

func (g *gateProvider) Search(ctx context.Context, f *filters.Filters) ([]prospect.Prospect, error) {
	g.calls++
	if g.calls == 1 {
		close(g.firstStarted)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return g.pool, nil
}

func TestSearcherLastRequestWins(t *testing.T) {
	provider := &gateProvider{
		firstStarted: make(chan struct{}),
		pool:         []prospect.Prospect{{ID: "winner"}},
	}
	s := NewSearcher(provider)

	firstResult := make(chan error, 1)
	go func() {
		_, err := s.Search(context.Background(), &filters.Filters{})
		firstResult <- err
	}()

	// Wait until the first search is in flight, then overtake it
	<-provider.firstStarted
	pool, err := s.Search(context.Background(), &filters.Filters{})
	if err != nil {
		t.Fatalf("second Search() error: %v", err)
	}
	if len(pool) != 1 || pool[0].ID != "winner" {
		t.Errorf("second search pool = %v", pool)
	}

	select {
	case err := <-firstResult:
		if !errors.Is(err, ErrSuperseded) {
			t.Errorf("first search error = %v, want ErrSuperseded", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("first search never returned after being superseded")
	}
}

func TestSearcherSingleRequest(t *testing.T) {
	s := NewSearcher(&StaticProvider{Pool: []prospect.Prospect{{ID: "p1"}}})

	pool, err := s.Search(context.Background(), &filters.Filters{})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if len(pool) != 1 {
		t.Errorf("got %d prospects, want 1", len(pool))
	}
}

func TestSearcherPropagatesProviderError(t *testing.T) {
	s := NewSearcher(&StaticProvider{Err: ErrProviderUnavailable})

	_, err := s.Search(context.Background(), &filters.Filters{})
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("got %v, want ErrProviderUnavailable", err)
	}
}
