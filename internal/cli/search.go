package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/enrich"
	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/output"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/results"
	"github.com/asanchez-dev/prospectr/internal/scoring"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search for prospects matching the given filters",
	Long: `Run a prospect search against the enrichment provider.

Results are scored against your target profile, cached locally for list/show/
export, and the first page is rendered together with the reach estimate.

Examples:
  prospectr search --industry SaaS --title "VP of Sales"
  prospectr search --template warm-leads --location "United States"
  prospectr search --industry Software --exclude-company "Acme Corp" --limit 50`,
	RunE: runSearch,
}

var searchFilterFlags filterFlags

func init() {
	rootCmd.AddCommand(searchCmd)
	searchFilterFlags.register(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer s.Close()

	f, err := searchFilterFlags.build(ctx, s)
	if err != nil {
		return err
	}

	// Show the reach estimate up front; an unavailable estimate never blocks
	// the search itself.
	estimator := filters.Estimator{
		Baseline:  cfg.Reach.BaselinePool,
		Retention: cfg.Reach.Retention,
		Floor:     cfg.Reach.FloorValue,
	}
	if reach, err := estimator.Estimate(f); err == nil {
		fmt.Printf("Estimated reach: ~%d contacts\n", reach)
	} else {
		fmt.Println("Estimated reach: unknown")
	}

	provider := enrich.NewClient(cfg.Provider, cfg.APIKey())
	searcher := enrich.NewSearcher(provider)

	pool, err := searcher.Search(ctx, f)
	if err != nil {
		if errors.Is(err, enrich.ErrSuperseded) {
			return nil
		}
		if errors.Is(err, enrich.ErrProviderUnavailable) {
			return fmt.Errorf("%w (previously cached results remain available via 'prospectr list')", err)
		}
		return fmt.Errorf("search failed: %w", err)
	}

	// Score and annotate before caching so every later view agrees on ranks
	scorer := scoring.New(cfg.Targeting)
	now := time.Now()
	for i := range pool {
		p := &pool[i]
		ls := scorer.Score(p)

		// Provider fit scores are kept when present; otherwise the scoring
		// model's overall fills the gap.
		if p.Score == 0 {
			p.Score = ls.Overall
		}
		p.Criteria = scoring.CriteriaFlags(ls)
		if p.Status == "" {
			p.Status = prospect.StatusNew
		}
		if p.EnrichedAt.IsZero() {
			p.EnrichedAt = now
		}
	}

	if err := s.ReplaceProspects(ctx, pool); err != nil {
		return fmt.Errorf("failed to cache results: %w", err)
	}

	if len(pool) == 0 {
		fmt.Println("No prospects found for the given filters.")
		return nil
	}

	fmt.Printf("Found %d prospect(s)\n\n", len(pool))

	page := results.Apply(pool, results.DefaultView())
	return output.Output(outputFmt, page)
}
