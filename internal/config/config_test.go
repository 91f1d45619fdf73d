package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopmetrics/retailpulse/internal/common"
	"github.com/shopmetrics/retailpulse/internal/normalize"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, normalize.AmountUnitPrice, cfg.AmountMode())
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Nil(t, cfg.Anchors(), "no configured holidays means built-in calendar")
}

func TestLoad_InvalidAmountMode(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("analysis.amount_mode", "gross")

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLoad_Holidays(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("analysis.holidays", []map[string]any{
		{"name": "Singles' Day", "month": 11, "day": 11},
	})

	cfg, err := Load()
	require.NoError(t, err)

	anchors := cfg.Anchors()
	require.Len(t, anchors, 1)
	assert.Equal(t, "Singles' Day", anchors[0].Name)
	assert.Equal(t, time.November, anchors[0].Month)
	assert.Equal(t, 11, anchors[0].Day)
}

func TestLoad_InvalidHoliday(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("analysis.holidays", []map[string]any{
		{"name": "Nope", "month": 13, "day": 1},
	})

	_, err := Load()
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestLogLevel(t *testing.T) {
	var cfg Config

	cfg.Logging.Level = "debug"
	assert.Equal(t, "DEBUG", cfg.LogLevel().String())

	cfg.Logging.Level = "mystery"
	assert.Equal(t, "INFO", cfg.LogLevel().String())
}
