package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iamasit07/align4/internal/domain"
	"gopkg.in/yaml.v3"
)

type BoardConfig struct {
	Columns   int `env:"BOARD_COLUMNS" yaml:"columns"`
	Rows      int `env:"BOARD_ROWS" yaml:"rows"`
	WinLength int `env:"WIN_LENGTH" yaml:"win_length"`
}

func (b BoardConfig) Dimensions() domain.Dimensions {
	return domain.Dimensions{Columns: b.Columns, Rows: b.Rows, WinLength: b.WinLength}
}

// Config values come from, in increasing priority: built-in defaults, the
// optional YAML file named by ALIGN4_CONFIG, then environment variables.
type Config struct {
	File             string        `env:"ALIGN4_CONFIG" yaml:"-"`
	Port             string        `env:"PORT" yaml:"port"`
	FrontendURL      string        `env:"FRONTEND_URL" yaml:"frontend_url"`
	ExtraOrigins     []string      `env:"ALLOWED_ORIGINS" envSeparator:"," yaml:"allowed_origins"`
	TableTokenSecret string        `env:"TABLE_TOKEN_SECRET" yaml:"table_token_secret"`
	TableTokenTTL    time.Duration `env:"TABLE_TOKEN_TTL" yaml:"table_token_ttl"`
	TableIdleTimeout time.Duration `env:"TABLE_IDLE_TIMEOUT" yaml:"table_idle_timeout"`
	CleanupInterval  time.Duration `env:"CLEANUP_INTERVAL" yaml:"cleanup_interval"`
	MaxTables        int           `env:"MAX_TABLES" yaml:"max_tables"`
	LogLevel         string        `env:"LOG_LEVEL" yaml:"log_level"`
	LogPretty        bool          `env:"LOG_PRETTY" yaml:"log_pretty"`
	StaticDir        string        `env:"STATIC_DIR" yaml:"static_dir"`
	Board            BoardConfig   `yaml:"board"`

	// AllowedOrigins is FrontendURL, the local dev server and ExtraOrigins.
	AllowedOrigins []string `yaml:"-"`
}

func defaultConfig() *Config {
	d := domain.DefaultDimensions()
	return &Config{
		Port:             "8080",
		FrontendURL:      "http://localhost:5173",
		TableTokenSecret: "your-secret-key-change-this-in-production",
		TableTokenTTL:    24 * time.Hour,
		TableIdleTimeout: time.Hour,
		CleanupInterval:  10 * time.Minute,
		MaxTables:        1000,
		LogLevel:         "info",
		StaticDir:        "./static",
		Board: BoardConfig{
			Columns:   d.Columns,
			Rows:      d.Rows,
			WinLength: d.WinLength,
		},
	}
}

func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	// the file location itself can only come from the environment
	if path := os.Getenv("ALIGN4_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Board.Dimensions().Validate(); err != nil {
		return nil, fmt.Errorf("board %dx%d win %d: %w",
			cfg.Board.Columns, cfg.Board.Rows, cfg.Board.WinLength, err)
	}
	if cfg.MaxTables < 1 {
		return nil, fmt.Errorf("MAX_TABLES must be positive, got %d", cfg.MaxTables)
	}
	for name, d := range map[string]time.Duration{
		"TABLE_TOKEN_TTL":    cfg.TableTokenTTL,
		"TABLE_IDLE_TIMEOUT": cfg.TableIdleTimeout,
		"CLEANUP_INTERVAL":   cfg.CleanupInterval,
	} {
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", name, d)
		}
	}

	cfg.AllowedOrigins = buildAllowedOrigins(cfg.FrontendURL, cfg.ExtraOrigins)
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	c.File = path
	return nil
}

// Build allowed origins list (Frontend URL + Localhost + CSV values)
func buildAllowedOrigins(frontendURL string, extras []string) []string {
	origins := []string{
		frontendURL,
		"http://localhost:5173", // Local development
	}
	for _, origin := range extras {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" && !slices.Contains(origins, trimmed) {
			origins = append(origins, trimmed)
		}
	}
	if origins[0] == origins[1] {
		origins = origins[1:]
	}
	return origins
}
