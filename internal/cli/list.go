package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/output"
	"github.com/asanchez-dev/prospectr/internal/results"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached prospects",
	Long: `List the prospects from the most recent search with view filters,
sorting and pagination.

Examples:
  prospectr list                            # Best scores first
  prospectr list --bucket high              # Only high-fit prospects
  prospectr list -q stripe --sort company   # Search text, sorted by company
  prospectr list --status new --page 2 --page-size 50`,
	RunE: runList,
}

var listViewFlags viewFlags

func init() {
	rootCmd.AddCommand(listCmd)
	listViewFlags.register(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
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

	view, err := listViewFlags.view(cmd)
	if err != nil {
		return err
	}

	pool, err := s.ListProspects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prospects: %w", err)
	}

	page := results.Apply(pool, view)
	return output.Output(outputFmt, page)
}
