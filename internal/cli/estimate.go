package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/output"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the reach of a filter set without searching",
	Long: `Estimate how many contacts a filter set would reach.

The estimate is a heuristic over the number of constrained dimensions, not a
live count: it narrows with every additional category you constrain but does
not depend on how many values a category holds.

Examples:
  prospectr estimate --industry SaaS --title "VP of Sales"
  prospectr estimate --template warm-leads`,
	RunE: runEstimate,
}

var estimateFilterFlags filterFlags

func init() {
	rootCmd.AddCommand(estimateCmd)
	estimateFilterFlags.register(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
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

	f, err := estimateFilterFlags.build(ctx, s)
	if err != nil {
		return err
	}

	estimator := filters.Estimator{
		Baseline:  cfg.Reach.BaselinePool,
		Retention: cfg.Reach.Retention,
		Floor:     cfg.Reach.FloorValue,
	}

	reach, err := estimator.Estimate(f)
	if err != nil {
		// Degrade to an "unknown" display; a broken heuristic must never
		// block searching.
		if outputFmt == "json" {
			return output.JSON(map[string]interface{}{"reach": nil})
		}
		fmt.Println("Estimated reach: unknown")
		return nil
	}

	if outputFmt == "json" {
		return output.JSON(map[string]interface{}{
			"reach":             reach,
			"active_dimensions": f.ActiveDimensions(),
		})
	}

	fmt.Printf("Estimated reach: ~%d contacts (%d constrained dimensions)\n", reach, f.ActiveDimensions())
	return nil
}
