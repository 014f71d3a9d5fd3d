// Package config loads phawse settings from a TOML file with environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/naveenspark/phawse/internal/cooldown"
	"github.com/naveenspark/phawse/internal/timefmt"
)

// DefaultOrigin scopes the store when none is configured.
const DefaultOrigin = "file://phawse"

// Config holds every tunable setting.
type Config struct {
	Origin     string   `toml:"origin"`
	StorePath  string   `toml:"store_path"`
	Cooldown   Duration `toml:"cooldown"`
	DateLayout string   `toml:"date_layout"`
	LogFile    string   `toml:"log_file,omitempty"`
	LogLevel   string   `toml:"log_level,omitempty"`
}

// Duration decodes TOML strings like "30s".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// DefaultPath returns ~/.config/phawse/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".config", "phawse", "config.toml"), nil
}

// DefaultStorePath returns ~/.local/state/phawse/webappsstore.sqlite.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".local", "state", "phawse", "webappsstore.sqlite"), nil
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	cfg := Config{
		Origin:     DefaultOrigin,
		Cooldown:   Duration{cooldown.DefaultWindow},
		DateLayout: timefmt.DefaultDateLayout,
		LogLevel:   "info",
	}
	if p, err := DefaultStorePath(); err == nil {
		cfg.StorePath = p
	}
	return cfg
}

// Load reads path (DefaultPath when empty) over the defaults and applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Config{}, err
		}
		path = p
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	applyEnv(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PHAWSE_ORIGIN"); v != "" {
		cfg.Origin = v
	}
	if v := os.Getenv("PHAWSE_STORE"); v != "" {
		cfg.StorePath = v
	}
	if v := os.Getenv("PHAWSE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PHAWSE_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Origin) == "" {
		return errors.New("config: origin must not be empty")
	}
	if c.StorePath == "" {
		return errors.New("config: store_path must be set")
	}
	if c.Cooldown.Duration < 0 {
		return fmt.Errorf("config: cooldown must not be negative, got %s", c.Cooldown)
	}
	if c.DateLayout == "" {
		c.DateLayout = timefmt.DefaultDateLayout
	}
	return nil
}
