// Package config loads typed application settings from viper.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/model"
	"github.com/shopmetrics/retailpulse/internal/normalize"
)

// Holiday is one configured holiday anchor.
type Holiday struct {
	Name  string `mapstructure:"name"`
	Month int    `mapstructure:"month"`
	Day   int    `mapstructure:"day"`
}

// Config holds all application settings.
type Config struct {
	Logging struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"logging"`
	Analysis struct {
		AmountMode string    `mapstructure:"amount_mode"`
		Holidays   []Holiday `mapstructure:"holidays"`
	} `mapstructure:"analysis"`
}

// Load reads settings from the already-initialized viper state and applies
// defaults.
func Load() (*Config, error) {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "console")
	viper.SetDefault("analysis.amount_mode", string(normalize.AmountUnitPrice))

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch normalize.AmountMode(cfg.Analysis.AmountMode) {
	case normalize.AmountUnitPrice, normalize.AmountLineTotal:
	default:
		return nil, common.NewUserError(
			fmt.Sprintf("analysis.amount_mode must be %q or %q", normalize.AmountUnitPrice, normalize.AmountLineTotal),
			common.ErrInvalidConfig,
		)
	}

	for _, h := range cfg.Analysis.Holidays {
		if h.Name == "" || h.Month < 1 || h.Month > 12 || h.Day < 1 || h.Day > 31 {
			return nil, common.NewUserError(
				fmt.Sprintf("invalid holiday entry %q (month %d, day %d)", h.Name, h.Month, h.Day),
				common.ErrInvalidConfig,
			)
		}
	}

	return &cfg, nil
}

// AmountMode returns the configured amount interpretation.
func (c *Config) AmountMode() normalize.AmountMode {
	return normalize.AmountMode(c.Analysis.AmountMode)
}

// Anchors converts configured holidays into analyzer anchors. Nil when no
// holidays are configured, letting the analyzer fall back to its built-in
// calendar.
func (c *Config) Anchors() []model.HolidayAnchor {
	if len(c.Analysis.Holidays) == 0 {
		return nil
	}
	anchors := make([]model.HolidayAnchor, 0, len(c.Analysis.Holidays))
	for _, h := range c.Analysis.Holidays {
		anchors = append(anchors, model.HolidayAnchor{
			Name:  h.Name,
			Month: time.Month(h.Month),
			Day:   h.Day,
		})
	}
	return anchors
}

// LogLevel parses the configured logging level, defaulting to info.
func (c *Config) LogLevel() slog.Level {
	switch c.Logging.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
