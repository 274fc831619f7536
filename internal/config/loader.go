package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s (run 'prospectr config init' to create)", expandedPath)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Parse TOML over defaults so missing keys keep baseline values
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	// Provider validation
	if c.Provider.BaseURL == "" {
		errs = append(errs, errors.New("provider.base_url is required"))
	}
	if c.Provider.MaxResults < 1 || c.Provider.MaxResults > 10000 {
		errs = append(errs, errors.New("provider.max_results must be between 1 and 10000"))
	}
	if c.Provider.TimeoutSeconds < 1 {
		errs = append(errs, errors.New("provider.timeout_seconds must be at least 1"))
	}
	if c.Provider.RatePerSecond <= 0 {
		errs = append(errs, errors.New("provider.rate_per_second must be positive"))
	}
	if c.Provider.RateBurst < 1 {
		errs = append(errs, errors.New("provider.rate_burst must be at least 1"))
	}

	// Database validation
	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	// Reach heuristic validation
	if c.Reach.BaselinePool < 1 {
		errs = append(errs, errors.New("reach.baseline_pool must be at least 1"))
	}
	if c.Reach.Retention <= 0 || c.Reach.Retention > 1 {
		errs = append(errs, errors.New("reach.retention must be in (0, 1]"))
	}
	if c.Reach.FloorValue < 1 {
		errs = append(errs, errors.New("reach.floor must be at least 1"))
	}

	// Export validation
	if c.Export.Format != "csv" && c.Export.Format != "json" {
		errs = append(errs, fmt.Errorf("export.format must be 'csv' or 'json', got '%s'", c.Export.Format))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// APIKey reads the provider API key from the configured environment variable
func (c *Config) APIKey() string {
	if c.Provider.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.Provider.APIKeyEnv)
}

// EnsureDirectories creates necessary directories for the database
func (c *Config) EnsureDirectories() error {
	dir := filepath.Dir(c.Database.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}
