package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a ledger repository.
const FileName = "ledger.yaml"

// Config represents the top-level ledger.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Paths    PathsConfig    `yaml:"paths"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	View     ViewConfig     `yaml:"view"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
}

// PathsConfig locates the repository files, relative to the repo root.
type PathsConfig struct {
	Chart          string `yaml:"chart"`
	Journal        string `yaml:"journal"`
	Reconciliation string `yaml:"reconciliation_log"`
}

// ServerConfig controls `ledger serve`.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`

	// WritesPerSecond caps crossing toggles across all clients. 0 disables.
	WritesPerSecond float64 `yaml:"writes_per_second"`
	WriteBurst      int     `yaml:"write_burst"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "console"
}

// ViewConfig holds defaults applied when a caller does not pick a period.
type ViewConfig struct {
	DefaultYear int  `yaml:"default_year,omitempty"`
	ShowEmpty   bool `yaml:"show_empty"`
}

// GitConfig controls git integration. Init always creates a repository when
// git is installed; AutoCommit additionally commits every crossing toggle.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a ledger.yaml file from disk. Fields absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadRepo reads <repoRoot>/ledger.yaml, falling back to defaults when the
// file is missing, then applies <repoRoot>/.env and the process environment.
func LoadRepo(repoRoot string) (*Config, error) {
	cfg, err := Load(filepath.Join(repoRoot, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		cfg, err = Default(""), nil
	}
	if err != nil {
		return nil, err
	}
	if err := LoadEnv(repoRoot); err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:     businessName,
			Currency: "NOK",
		},
		Paths: PathsConfig{
			Chart:          "accounts/chart-of-accounts.yaml",
			Journal:        "journal/entries.csv",
			Reconciliation: "logs/crossing-log.csv",
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    30 * time.Second,
			WritesPerSecond: 20,
			WriteBurst:      40,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Ledger",
			AuthorEmail: "ledger@cleared.dev",
		},
	}
}

// LoadEnv loads <dir>/.env into the process environment. Variables that are
// already set win, and a missing file is not an error.
func LoadEnv(dir string) error {
	err := godotenv.Load(filepath.Join(dir, ".env"))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from LEDGER_* environment variables.
func (c *Config) ApplyEnv() {
	c.Server.Addr = getEnv("LEDGER_ADDR", c.Server.Addr)
	c.Log.Level = getEnv("LEDGER_LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LEDGER_LOG_FORMAT", c.Log.Format)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
