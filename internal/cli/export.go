package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/prospect"
	"github.com/asanchez-dev/prospectr/internal/results"
	"github.com/asanchez-dev/prospectr/internal/scoring"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export selected prospects to CSV or JSON",
	Long: `Export a batch of prospects, each paired with its full lead score.

The selection resolves against the whole filtered set, not just the visible
page. '--select-page' mirrors the grid's select-all control: it picks exactly
the rows on the current page.

Examples:
  prospectr export --select 3f2a91cc,7be40d12 > batch.csv
  prospectr export --bucket high --select-page --page 2 --format json
  prospectr export --status qualified --all --file qualified.csv`,
	RunE: runExport,
}

var (
	exportViewFlags  viewFlags
	exportSelect     []string
	exportSelectPage bool
	exportAll        bool
	exportFormat     string
	exportFile       string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportViewFlags.register(exportCmd)

	exportCmd.Flags().StringSliceVar(&exportSelect, "select", nil, "Prospect IDs (or unique prefixes) to export")
	exportCmd.Flags().BoolVar(&exportSelectPage, "select-page", false, "Select every prospect on the current page")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Select the entire filtered set")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "Export format (csv, json); defaults to the configured format")
	exportCmd.Flags().StringVar(&exportFile, "file", "", "Write to a file instead of stdout")
}

func runExport(cmd *cobra.Command, args []string) error {
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

	view, err := exportViewFlags.view(cmd)
	if err != nil {
		return err
	}

	pool, err := s.ListProspects(ctx)
	if err != nil {
		return fmt.Errorf("failed to load prospects: %w", err)
	}

	// The export resolves against the full filtered set at call time
	filtered := results.Filter(pool, view)
	results.Sort(filtered, view.SortField, view.SortDir)

	selection, err := buildSelection(filtered, view)
	if err != nil {
		return err
	}
	if selection.Count() == 0 {
		return fmt.Errorf("nothing selected (use --select, --select-page or --all)")
	}

	scorer := scoring.New(cfg.Targeting)
	batch := results.BuildBatch(selection, filtered, scorer)

	format := exportFormat
	if format == "" {
		format = cfg.Export.Format
	}

	var w io.Writer = os.Stdout
	if exportFile != "" {
		f, err := os.Create(exportFile)
		if err != nil {
			return fmt.Errorf("failed to create export file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "csv":
		err = results.WriteCSV(w, batch)
	case "json":
		err = results.WriteJSON(w, batch)
	default:
		return fmt.Errorf("unknown format: %s (use csv or json)", format)
	}
	if err != nil {
		return err
	}

	if exportFile != "" {
		fmt.Printf("Exported %d prospect(s) to %s\n", len(batch.Records), exportFile)
	}
	return nil
}

// buildSelection assembles the selected-ID set from the export flags
func buildSelection(filtered []prospect.Prospect, view results.View) (results.Selection, error) {
	selection := results.NewSelection()

	if exportAll {
		for _, p := range filtered {
			selection.Toggle(p.ID)
		}
		return selection, nil
	}

	if exportSelectPage {
		// Select-all covers exactly the rows visible on the current page
		page := results.Apply(filtered, view)
		selection.TogglePage(page.Items)
	}

	for _, raw := range exportSelect {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}
		full, err := resolveID(filtered, id)
		if err != nil {
			return nil, err
		}
		if !selection.Selected(full) {
			selection.Toggle(full)
		}
	}

	return selection, nil
}

// resolveID matches a full ID or unique prefix within the filtered set
func resolveID(filtered []prospect.Prospect, id string) (string, error) {
	var found string
	for _, p := range filtered {
		if p.ID == id {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, id) {
			if found != "" {
				return "", fmt.Errorf("ambiguous prospect ID prefix: %s", id)
			}
			found = p.ID
		}
	}
	if found == "" {
		return "", fmt.Errorf("prospect not in the filtered set: %s", id)
	}
	return found, nil
}
