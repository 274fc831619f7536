package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status <prospect-id> <status>",
	Short: "Update a prospect's outreach status",
	Long: `Record the outcome of an outreach action on a cached prospect.

Valid statuses: new, contacted, qualified, unqualified.

Examples:
  prospectr status 3f2a91cc contacted
  prospectr status 3f2a91cc qualified`,
	Args: cobra.ExactArgs(2),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	newStatus := prospect.Status(args[1])
	if !prospect.ValidStatus(newStatus) {
		return fmt.Errorf("invalid status: %s (use new, contacted, qualified or unqualified)", args[1])
	}

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

	if err := s.UpdateStatus(ctx, p.ID, newStatus); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	fmt.Printf("%s (%s) -> %s\n", p.Person.FullName(), p.Company.Name, newStatus)
	return nil
}
