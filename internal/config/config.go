package config

import "time"

// Config represents the application configuration
type Config struct {
	Provider  ProviderConfig  `toml:"provider"`
	Database  DatabaseConfig  `toml:"database"`
	Targeting TargetingConfig `toml:"targeting"`
	Reach     ReachConfig     `toml:"reach"`
	Export    ExportConfig    `toml:"export"`
}

// ProviderConfig contains enrichment/search provider settings
type ProviderConfig struct {
	BaseURL        string  `toml:"base_url"`
	APIKeyEnv      string  `toml:"api_key_env"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	MaxResults     int     `toml:"max_results"`
	RatePerSecond  float64 `toml:"rate_per_second"`
	RateBurst      int     `toml:"rate_burst"`
}

// Timeout returns the per-request provider timeout
func (p ProviderConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// TargetingConfig describes the ideal customer profile the scoring model
// compares prospects against
type TargetingConfig struct {
	Titles          []string `toml:"titles"`
	Industries      []string `toml:"industries"`
	CompanySizes    []string `toml:"company_sizes"`
	SeniorityLevels []string `toml:"seniority_levels"`
}

// ReachConfig tunes the reach-estimation heuristic
type ReachConfig struct {
	BaselinePool int     `toml:"baseline_pool"`
	Retention    float64 `toml:"retention"`
	FloorValue   int     `toml:"floor"`
}

// ExportConfig contains export defaults
type ExportConfig struct {
	Format string `toml:"format"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Provider: ProviderConfig{
			BaseURL:        "https://api.contactreach.example.com/v1",
			APIKeyEnv:      "PROSPECTR_API_KEY",
			TimeoutSeconds: 30,
			MaxResults:     100,
			RatePerSecond:  2,
			RateBurst:      4,
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/prospectr/prospectr.db",
		},
		Targeting: TargetingConfig{
			Titles: []string{
				"VP of Sales",
				"Head of Sales",
				"Sales Director",
				"Chief Revenue Officer",
				"VP of Marketing",
			},
			Industries: []string{
				"Software",
				"SaaS",
				"Information Technology",
			},
			CompanySizes: []string{
				"51-200",
				"201-500",
			},
			SeniorityLevels: []string{
				"c_level",
				"vp",
				"director",
			},
		},
		Reach: ReachConfig{
			BaselinePool: 250000,
			Retention:    0.35,
			FloorValue:   50,
		},
		Export: ExportConfig{
			Format: "csv",
		},
	}
}
