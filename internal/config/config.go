// Package config loads kittyhaven settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const EnvConfigPath = "KITTYHAVEN_CONFIG"

// Duration decodes TOML strings such as "90s" or "2m".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Config struct {
	DBPath   string `toml:"db_path"`
	LogLevel string `toml:"log_level"`
	// Seed fixes the random source; 0 seeds from the clock.
	Seed uint64 `toml:"seed"`

	CanvasWidth  float64 `toml:"canvas_width"`
	CanvasHeight float64 `toml:"canvas_height"`

	StartingCoins     int      `toml:"starting_coins"`
	CoinInterval      Duration `toml:"coin_interval"`
	InventoryCapacity int      `toml:"inventory_capacity"`
	MaxPets           int      `toml:"max_pets"`
	AdoptCost         int      `toml:"adopt_cost"`

	// CatalogPath names a TOML file of extra [[items]]. Empty uses the built-in catalog.
	CatalogPath string `toml:"catalog_path"`
}

func Default() Config {
	return Config{
		LogLevel:          "info",
		CanvasWidth:       750,
		CanvasHeight:      1334,
		StartingCoins:     100,
		CoinInterval:      Duration{time.Minute},
		InventoryCapacity: 100,
		MaxPets:           3,
		AdoptCost:         500,
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return Default(), fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.CatalogPath != "" && !filepath.IsAbs(cfg.CatalogPath) {
		cfg.CatalogPath = filepath.Join(filepath.Dir(path), cfg.CatalogPath)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.CanvasWidth <= 0 || c.CanvasHeight <= 0:
		return errors.New("canvas size must be positive")
	case c.StartingCoins < 0:
		return errors.New("starting_coins must not be negative")
	case c.CoinInterval.Duration <= 0:
		return errors.New("coin_interval must be positive")
	case c.InventoryCapacity < 1:
		return errors.New("inventory_capacity must be at least 1")
	case c.MaxPets < 1:
		return errors.New("max_pets must be at least 1")
	case c.AdoptCost < 0:
		return errors.New("adopt_cost must not be negative")
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ResolvePath picks the config file from the flag, $KITTYHAVEN_CONFIG or ~/.kittyhaven.toml.
func ResolvePath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(homeDir, ".kittyhaven.toml"), nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log_level %q", s)
}

// Level is the configured log level, falling back to info.
func (c Config) Level() slog.Level {
	l, _ := ParseLevel(c.LogLevel)
	return l
}
