// Package config loads and saves nbntrack configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvBaseURL overrides api.base_url when set in the environment or a .env
// file next to the working directory.
const EnvBaseURL = "NBNTRACK_API_URL"

// ErrNoBaseURL means no API base URL was configured anywhere. Requests
// cannot be constructed without one, so this fails loudly and early.
var ErrNoBaseURL = errors.New("config: no API base URL (set api.base_url or NBNTRACK_API_URL)")

// Config holds all nbntrack configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
	General    GeneralConfig    `toml:"general"`
}

// APIConfig holds backend connection settings.
type APIConfig struct {
	BaseURL     string `toml:"base_url,omitempty"`
	TimeoutSecs int    `toml:"timeout_secs"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig holds snapshot export settings.
type ExportConfig struct {
	Dir string `toml:"dir,omitempty"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Cache bool `toml:"cache"`
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		API:        APIConfig{TimeoutSecs: 10},
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
		General:    GeneralConfig{Cache: true},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "nbntrack")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "nbntrack")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// CachePath returns the path to the SQLite snapshot cache.
func CachePath() string {
	return filepath.Join(Dir(), "snapshot.db")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides. A .env file in the working
// directory is honored for the base URL, matching how the backend's own
// tooling is configured.
func Load() (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	_ = godotenv.Load() // best-effort; absence is normal
	if url := os.Getenv(EnvBaseURL); url != "" {
		cfg.API.BaseURL = url
	}

	if cfg.API.TimeoutSecs <= 0 {
		cfg.API.TimeoutSecs = 10
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// BaseURL returns the effective API base URL or ErrNoBaseURL.
func (c Config) BaseURL() (string, error) {
	if c.API.BaseURL == "" {
		return "", ErrNoBaseURL
	}
	return c.API.BaseURL, nil
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSecs) * time.Second
}
