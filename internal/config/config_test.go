package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Provider.MaxResults != 100 {
		t.Errorf("expected MaxResults=100, got %d", cfg.Provider.MaxResults)
	}

	if cfg.Reach.BaselinePool != 250000 {
		t.Errorf("expected BaselinePool=250000, got %d", cfg.Reach.BaselinePool)
	}

	if cfg.Reach.FloorValue != 50 {
		t.Errorf("expected FloorValue=50, got %d", cfg.Reach.FloorValue)
	}

	if cfg.Export.Format != "csv" {
		t.Errorf("expected Format=csv, got %s", cfg.Export.Format)
	}

	if len(cfg.Targeting.Titles) == 0 {
		t.Error("expected default targeting titles")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "invalid max_results",
			modify: func(c *Config) {
				c.Provider.MaxResults = 0
			},
			wantErr: true,
		},
		{
			name: "missing base_url",
			modify: func(c *Config) {
				c.Provider.BaseURL = ""
			},
			wantErr: true,
		},
		{
			name: "invalid retention",
			modify: func(c *Config) {
				c.Reach.Retention = 1.5
			},
			wantErr: true,
		},
		{
			name: "invalid reach floor",
			modify: func(c *Config) {
				c.Reach.FloorValue = 0
			},
			wantErr: true,
		},
		{
			name: "invalid export format",
			modify: func(c *Config) {
				c.Export.Format = "xml"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		result, err := expandPath(tt.input)
		if err != nil {
			t.Errorf("expandPath(%q) error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.toml")

	content := `
[provider]
base_url = "https://api.example.com/v1"
max_results = 50

[reach]
baseline_pool = 1000
retention = 0.5
floor = 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Provider.BaseURL != "https://api.example.com/v1" {
		t.Errorf("expected overridden base_url, got %s", cfg.Provider.BaseURL)
	}
	if cfg.Provider.MaxResults != 50 {
		t.Errorf("expected MaxResults=50, got %d", cfg.Provider.MaxResults)
	}
	if cfg.Reach.Retention != 0.5 {
		t.Errorf("expected Retention=0.5, got %f", cfg.Reach.Retention)
	}

	// Missing keys keep defaults
	if cfg.Export.Format != "csv" {
		t.Errorf("expected default export format, got %s", cfg.Export.Format)
	}
}

func TestEnsureDirectories(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.Database.Path = filepath.Join(tmpDir, "nested", "data", "prospectr.db")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error: %v", err)
	}

	info, err := os.Stat(filepath.Join(tmpDir, "nested", "data"))
	if err != nil {
		t.Fatalf("expected data directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("database parent path is not a directory")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}
