// Package config loads xpcalc settings from .env files, an optional TOML
// file and XPCALC_* environment variables, in that order of precedence
// (environment wins).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/xpcalc/internal/domain"
	"github.com/alexanderramin/xpcalc/internal/gamedata"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config holds all runtime settings.
type Config struct {
	Defaults   DefaultsConfig   `toml:"defaults"`
	Log        LogConfig        `toml:"log"`
	Rates      map[string]int64 `toml:"rates"`
	Thresholds ThresholdsConfig `toml:"thresholds"`

	// Path is the TOML file that was loaded, if any.
	Path string `toml:"-"`
}

// DefaultsConfig pre-fills calculator inputs that the user does not pass.
type DefaultsConfig struct {
	CurrentLevel int    `toml:"current_level"`
	TargetLevel  int    `toml:"target_level"`
	LuckyEgg     bool   `toml:"lucky_egg"`
	TargetMode   string `toml:"target_mode"`
	TargetDays   int64  `toml:"target_days"`
	TargetDate   string `toml:"target_date"`
}

type LogConfig struct {
	Level string `toml:"level"`
	Dir   string `toml:"dir"`
	File  string `toml:"file"`
}

// ThresholdsConfig replaces the built-in level table when Levels is set.
type ThresholdsConfig struct {
	Levels []int64 `toml:"levels"`
}

// DefaultConfig returns a Config with sensible defaults. No log file is
// written by default.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			CurrentLevel: domain.MinLevel,
			TargetLevel:  domain.MaxLevel,
			TargetMode:   string(domain.TargetByDate),
		},
		Log: LogConfig{
			Level: "info",
			File:  "xpcalc.log",
		},
	}
}

// Load resolves the configuration. path may be empty, in which case
// XPCALC_CONFIG is consulted; with neither set only defaults and the
// environment apply.
func Load(path string) (Config, error) {
	loadDotEnv()

	cfg := DefaultConfig()

	if path == "" {
		path = os.Getenv("XPCALC_CONFIG")
	}
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
		cfg.Path = path
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotEnv() {
	if exePath, err := os.Executable(); err == nil {
		_ = godotenv.Load(filepath.Join(filepath.Dir(exePath), ".env"))
	}
	_ = godotenv.Load()
}

func decodeFile(path string, cfg *Config) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer file.Close()

	if err := toml.NewDecoder(file).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("XPCALC_CURRENT_LEVEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.CurrentLevel = n
		}
	}
	if v := os.Getenv("XPCALC_TARGET_LEVEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Defaults.TargetLevel = n
		}
	}
	if v := os.Getenv("XPCALC_LUCKY_EGG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Defaults.LuckyEgg = b
		}
	}
	if v := os.Getenv("XPCALC_TARGET_MODE"); v != "" {
		cfg.Defaults.TargetMode = v
	}
	if v := os.Getenv("XPCALC_TARGET_DAYS"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.Defaults.TargetDays = n
		}
	}
	if v := os.Getenv("XPCALC_TARGET_DATE"); v != "" {
		cfg.Defaults.TargetDate = v
	}
	if v := os.Getenv("XPCALC_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("XPCALC_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
}

// Validate checks values that would otherwise fail later, far from the file
// that set them.
func (c Config) Validate() error {
	if !domain.ValidTargetModes[domain.TargetMode(c.Defaults.TargetMode)] {
		return fmt.Errorf("defaults.target_mode must be %q or %q, got %q",
			domain.TargetByDate, domain.TargetByDays, c.Defaults.TargetMode)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := c.RateTable(); err != nil {
		return err
	}
	if _, err := c.ThresholdTable(); err != nil {
		return err
	}
	return nil
}

func (c Config) LogLevel() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// RateTable returns the built-in rates with the [rates] overrides applied.
func (c Config) RateTable() (gamedata.RateTable, error) {
	rates := gamedata.DefaultRates()
	for name, xp := range c.Rates {
		a := domain.Activity(name)
		if !a.Valid() {
			return nil, fmt.Errorf("rates: unknown activity %q", name)
		}
		if xp < 0 {
			return nil, fmt.Errorf("rates.%s must not be negative, got %d", name, xp)
		}
		if xp > gamedata.MaxRate {
			return nil, fmt.Errorf("rates.%s must be at most %d, got %d", name, gamedata.MaxRate, xp)
		}
		rates[a] = xp
	}
	return rates, nil
}

// ThresholdTable returns the configured level table, or the built-in one.
func (c Config) ThresholdTable() (gamedata.ThresholdTable, error) {
	if len(c.Thresholds.Levels) == 0 {
		return gamedata.DefaultThresholds(), nil
	}
	table, err := gamedata.NewThresholdTable(c.Thresholds.Levels)
	if err != nil {
		return table, fmt.Errorf("thresholds.levels: %w", err)
	}
	if err := table.Validate(); err != nil {
		return table, fmt.Errorf("thresholds.levels: %w", err)
	}
	return table, nil
}
