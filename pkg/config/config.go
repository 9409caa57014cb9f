// Package config loads cal's settings from .cal.yaml, CAL_* environment
// variables and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/cal/pkg/bucket"
	"tableflip.dev/cal/pkg/store"
)

const (
	DefaultPath     = "~/.cal.db"
	DefaultBackend  = store.BackendDiskv
	DefaultLogLevel = "warn"
)

// Config holds every setting cal reads.
type Config struct {
	Path       string `mapstructure:"path" json:"path" yaml:"path"`
	Backend    string `mapstructure:"backend" json:"backend" yaml:"backend"`
	MonthLimit int    `mapstructure:"month_limit" json:"month_limit" yaml:"month_limit"`
	WeekLimit  int    `mapstructure:"week_limit" json:"week_limit" yaml:"week_limit"`
	DayLimit   int    `mapstructure:"day_limit" json:"day_limit" yaml:"day_limit"`
	LogLevel   string `mapstructure:"log_level" json:"log_level" yaml:"log_level"`
}

var _ store.Config = (*Config)(nil)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	limits := bucket.DefaultLimits()
	return &Config{
		Path:       DefaultPath,
		Backend:    DefaultBackend,
		MonthLimit: limits.Month,
		WeekLimit:  limits.Week,
		DayLimit:   limits.Day,
		LogLevel:   DefaultLogLevel,
	}
}

// Normalize fills in missing values with defaults. Negative limits mean
// unlimited and become zero.
func (c *Config) Normalize() {
	if strings.TrimSpace(c.Path) == "" {
		c.Path = DefaultPath
	}
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = DefaultBackend
	}
	for _, l := range []*int{&c.MonthLimit, &c.WeekLimit, &c.DayLimit} {
		if *l < 0 {
			*l = 0
		}
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		c.LogLevel = DefaultLogLevel
	}
}

// BasePath returns the store location with ~ expanded.
func (c *Config) BasePath() string {
	p, err := homedir.Expand(c.Path)
	if err != nil {
		return c.Path
	}
	return p
}

// BackendName returns the configured store backend.
func (c *Config) BackendName() string {
	return c.Backend
}

// Limits returns the per-cell caps for each view.
func (c *Config) Limits() bucket.Limits {
	return bucket.Limits{Month: c.MonthLimit, Week: c.WeekLimit, Day: c.DayLimit}
}

// Load reads .env, then the first .cal config file found in
// $CAL_CONFIG_PATH, the working directory or $HOME, then CAL_* variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Debug("config: .env not loaded", "error", err)
	}

	v := viper.New()
	def := Default()
	v.SetDefault("path", def.Path)
	v.SetDefault("backend", def.Backend)
	v.SetDefault("month_limit", def.MonthLimit)
	v.SetDefault("week_limit", def.WeekLimit)
	v.SetDefault("day_limit", def.DayLimit)
	v.SetDefault("log_level", def.LogLevel)

	v.SetConfigName(".cal") // .yaml is implicit
	v.SetEnvPrefix("CAL")
	v.AutomaticEnv()

	if override := os.Getenv("CAL_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config: read %s: %w", v.ConfigFileUsed(), err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}
