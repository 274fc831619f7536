package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/output"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/results"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show pipeline statistics for the cached pool",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

// poolStats aggregates the cached pool by pipeline status and score bucket
type poolStats struct {
	Total    int                     `json:"total"`
	ByStatus map[prospect.Status]int `json:"by_status"`
	ByBucket map[results.Bucket]int  `json:"by_bucket"`
}

func runStats(cmd *cobra.Command, args []string) error {
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

	if err := s.Health(ctx); err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	byStatus, err := s.CountByStatus(ctx)
	if err != nil {
		return fmt.Errorf("failed to count by status: %w", err)
	}

	pool, err := s.ListProspects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prospects: %w", err)
	}

	stats := poolStats{
		Total:    len(pool),
		ByStatus: byStatus,
		ByBucket: make(map[results.Bucket]int),
	}
	for _, p := range pool {
		stats.ByBucket[results.BucketOf(p.Score)]++
	}

	if outputFmt == "json" {
		return output.JSON(stats)
	}

	fmt.Println("Prospect Pipeline")
	fmt.Println(strings.Repeat("-", 30))
	fmt.Printf("Total prospects:        %d\n", stats.Total)
	fmt.Printf("New:                    %d\n", stats.ByStatus[prospect.StatusNew])
	fmt.Printf("Contacted:              %d\n", stats.ByStatus[prospect.StatusContacted])
	fmt.Printf("Qualified:              %d\n", stats.ByStatus[prospect.StatusQualified])
	fmt.Printf("Unqualified:            %d\n", stats.ByStatus[prospect.StatusUnqualified])
	fmt.Println()
	fmt.Printf("High fit (80+):         %d\n", stats.ByBucket[results.BucketHigh])
	fmt.Printf("Medium fit (50-79):     %d\n", stats.ByBucket[results.BucketMedium])
	fmt.Printf("Low fit (<50):          %d\n", stats.ByBucket[results.BucketLow])

	return nil
}
