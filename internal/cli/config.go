package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/asanchez-dev/prospectr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	RunE:  runConfigShow,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "prospectr")

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.toml")

	// Check if config already exists
	if _, err := os.Stat(configFile); err == nil {
		fmt.Printf("Config file already exists at %s\n", configFile)
		fmt.Println("Use 'prospectr config show' to view current configuration")
		return nil
	}

	// Write default config
	if err := os.WriteFile(configFile, []byte(defaultConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Load it back so the data directory gets created from the effective
	// database path, not a hardcoded one
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	fmt.Printf("Created config file at %s\n", configFile)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("  1. Set your provider API key: export PROSPECTR_API_KEY=...")
	fmt.Println("  2. Adjust the [targeting] section to your ideal customer profile")
	fmt.Println("  3. Run 'prospectr search --industry SaaS' to fetch prospects")

	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Println("No config file found. Run 'prospectr config init' to create one.")
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}

	fmt.Printf("# Config file: %s\n\n", configPath)
	fmt.Println(string(data))
	return nil
}

const defaultConfig = `# prospectr configuration

[provider]
base_url = "https://api.contactreach.example.com/v1"
api_key_env = "PROSPECTR_API_KEY"
timeout_seconds = 30
max_results = 100   # prospects per search
rate_per_second = 2.0
rate_burst = 4

[database]
path = "~/.local/share/prospectr/prospectr.db"

[targeting]
# The ideal customer profile prospects are scored against.
titles = [
    "VP of Sales",
    "Head of Sales",
    "Sales Director",
    "Chief Revenue Officer",
    "VP of Marketing",
]
industries = ["Software", "SaaS", "Information Technology"]
company_sizes = ["51-200", "201-500"]
seniority_levels = ["c_level", "vp", "director"]

[reach]
baseline_pool = 250000  # unconstrained audience size
retention = 0.35        # pool fraction kept per constrained dimension
floor = 50              # estimate never drops below this

[export]
format = "csv"  # csv or json
`
