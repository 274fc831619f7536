package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
	"github.com/asanchez-dev/prospectr/internal/filters"
	"github.com/asanchez-dev/prospectr/internal/output"
	"github.com/asanchez-dev/prospectr/internal/store"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage saved filter templates",
	Long: `Manage reusable filter templates.

A template is a named snapshot of a filter configuration. Loading one with
'--template' on search or estimate replaces the filter state wholesale.`,
}

var templatesSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the given filter flags as a named template",
	Long: `Snapshot a filter configuration under a name.

Examples:
  prospectr templates save enterprise-saas --industry SaaS --size 201-500 \
      --title "VP of Sales" --description "Mid-market SaaS sales leaders"`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplatesSave,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved templates",
	RunE:  runTemplatesList,
}

var templatesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a template's filter configuration",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesShow,
}

var templatesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a template",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesDelete,
}

var templatesDefaultCmd = &cobra.Command{
	Use:   "default <name>",
	Short: "Mark a template as the default",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplatesDefault,
}

var (
	templatesSaveDescription string
	templatesSaveFilterFlags filterFlags
)

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesSaveCmd)
	templatesCmd.AddCommand(templatesListCmd)
	templatesCmd.AddCommand(templatesShowCmd)
	templatesCmd.AddCommand(templatesDeleteCmd)
	templatesCmd.AddCommand(templatesDefaultCmd)

	templatesSaveFilterFlags.register(templatesSaveCmd)
	templatesSaveCmd.Flags().StringVar(&templatesSaveDescription, "description", "", "Template description")
}

func runTemplatesSave(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	name := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	s, err := store.Open(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer s.Close()

	f, err := templatesSaveFilterFlags.build(ctx, s)
	if err != nil {
		return err
	}

	tpl, err := store.NewTemplate(name, templatesSaveDescription, f)
	if err != nil {
		var verr *filters.ValidationError
		if errors.As(err, &verr) {
			return fmt.Errorf("invalid template: %s", verr.Message)
		}
		return err
	}

	if err := s.SaveTemplate(ctx, tpl); err != nil {
		return fmt.Errorf("failed to save template: %w", err)
	}

	fmt.Printf("Saved template %q (%d constrained dimensions)\n", tpl.Name, tpl.Filters.ActiveDimensions())
	return nil
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
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

	templates, err := s.ListTemplates(ctx)
	if err != nil {
		return fmt.Errorf("failed to list templates: %w", err)
	}

	return output.Output(outputFmt, templates)
}

func runTemplatesShow(cmd *cobra.Command, args []string) error {
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

	tpl, err := s.GetTemplate(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load template: %w", err)
	}
	if tpl == nil {
		return fmt.Errorf("template not found: %s", args[0])
	}

	return output.Output(outputFmt, tpl)
}

func runTemplatesDelete(cmd *cobra.Command, args []string) error {
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

	if err := s.DeleteTemplate(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("Deleted template %q\n", args[0])
	return nil
}

func runTemplatesDefault(cmd *cobra.Command, args []string) error {
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

	if err := s.SetDefaultTemplate(ctx, args[0]); err != nil {
		return err
	}

	fmt.Printf("Template %q is now the default\n", args[0])
	return nil
}
