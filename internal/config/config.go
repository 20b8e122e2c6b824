package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port     int    `yaml:"port"`
	DBPath   string `yaml:"db_path"`
	DataDir  string `yaml:"data_dir"`
	OutDir   string `yaml:"out_dir"`
	LogLevel string `yaml:"log_level"`
	// Focus defaults
	FocusMinutes int `yaml:"focus_minutes"`
	BreakMinutes int `yaml:"break_minutes"`
	Cycles       int `yaml:"cycles"`
	// Spotify PKCE
	SpotifyClientID    string `yaml:"spotify_client_id"`
	SpotifyRedirectURI string `yaml:"spotify_redirect_uri"`
}

// Load builds the configuration from defaults, an optional YAML file
// at WYRM_CONFIG, and environment variables. Environment wins over
// the file.
func Load() (*Config, error) {
	base, err := defaultBaseDir()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:         5123,
		DBPath:       filepath.Join(base, "wyrm.db"),
		DataDir:      filepath.Join(base, "data"),
		OutDir:       filepath.Join(base, "out"),
		LogLevel:     "info",
		FocusMinutes: 25,
		BreakMinutes: 5,
		Cycles:       4,
	}

	if path := os.Getenv("WYRM_CONFIG"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = envInt("WYRM_PORT", cfg.Port)
	cfg.DBPath = envStr("WYRM_DB_PATH", cfg.DBPath)
	cfg.DataDir = envStr("WYRM_DATA_DIR", cfg.DataDir)
	cfg.OutDir = envStr("WYRM_OUT_DIR", cfg.OutDir)
	cfg.LogLevel = envStr("WYRM_LOG_LEVEL", cfg.LogLevel)
	cfg.FocusMinutes = envInt("WYRM_FOCUS_MINUTES", cfg.FocusMinutes)
	cfg.BreakMinutes = envInt("WYRM_BREAK_MINUTES", cfg.BreakMinutes)
	cfg.Cycles = envInt("WYRM_CYCLES", cfg.Cycles)
	cfg.SpotifyClientID = envStr("WYRM_SPOTIFY_CLIENT_ID", cfg.SpotifyClientID)
	cfg.SpotifyRedirectURI = envStr("WYRM_SPOTIFY_REDIRECT_URI", cfg.SpotifyRedirectURI)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("WYRM_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.DBPath == "" {
		return fmt.Errorf("WYRM_DB_PATH must not be empty")
	}
	if c.FocusMinutes < 1 {
		return fmt.Errorf("WYRM_FOCUS_MINUTES must be positive, got %d", c.FocusMinutes)
	}
	if c.BreakMinutes < 0 {
		return fmt.Errorf("WYRM_BREAK_MINUTES must not be negative, got %d", c.BreakMinutes)
	}
	if c.Cycles < 1 {
		return fmt.Errorf("WYRM_CYCLES must be positive, got %d", c.Cycles)
	}
	return nil
}

// EnsureDirs creates the data and output directories.
func (c *Config) EnsureDirs() error {
	for _, dir := range []string{filepath.Dir(c.DBPath), c.DataDir, c.OutDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return nil
}

func defaultBaseDir() (string, error) {
	if dir := os.Getenv("WYRM_HOME"); dir != "" {
		return dir, nil
	}
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(cfgDir, "wyrm"), nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
