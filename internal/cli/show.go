package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/output"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/scoring"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <prospect-id>",
	Short: "Show a prospect with its full score breakdown",
	Long: `Show one cached prospect in detail, including the per-factor lead
score and the reasoning behind the recommendation.

The ID may be abbreviated to a unique prefix, as printed by 'prospectr list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
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

	p, err := findProspect(ctx, s, args[0])
	if err != nil {
		return err
	}

	scorer := scoring.New(cfg.Targeting)
	score := scorer.Score(p)

	if outputFmt == "json" {
		return output.JSON(map[string]interface{}{
			"prospect": p,
			"score":    score,
		})
	}

	return output.ProspectDetail(os.Stdout, p, score)
}

// findProspect resolves a full ID or unique prefix against the cached pool
func findProspect(ctx context.Context, s *store.Store, id string) (*prospect.Prospect, error) {
	p, err := s.GetProspect(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to look up prospect: %w", err)
	}
	if p != nil {
		return p, nil
	}

	// Try prefix match
	pool, err := s.ListProspects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to look up prospect: %w", err)
	}

	var found *prospect.Prospect
	for i := range pool {
		if strings.HasPrefix(pool[i].ID, id) {
			if found != nil {
				return nil, fmt.Errorf("ambiguous prospect ID prefix: %s", id)
			}
			found = &pool[i]
		}
	}

	if found == nil {
		return nil, fmt.Errorf("prospect not found: %s", id)
	}
	return found, nil
}
