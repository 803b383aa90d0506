package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":            "",
		"LOG_LEVEL":          "",
		"LOG_FORMAT":         "",
		"ARITH_DIV_SCALE":    "",
		"ARITH_MONEY_SCALE":  "",
		"DISCOUNT_THRESHOLD": "",
		"DISCOUNT_STEP":      "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 10, cfg.DivScale)
	require.Equal(t, 2, cfg.MoneyScale)
	require.Equal(t, "100", cfg.DiscountThreshold.String())
	require.Equal(t, "10", cfg.DiscountStep.String())
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := LoadForTests(map[string]string{
		"APP_ENV":            "production",
		"LOG_FORMAT":         "console",
		"ARITH_DIV_SCALE":    "4",
		"DISCOUNT_THRESHOLD": "199.99",
		"DISCOUNT_STEP":      "12.5",
	})
	require.NoError(t, err)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, "console", cfg.LogFormat)
	require.Equal(t, 4, cfg.DivScale)
	require.Equal(t, "199.99", cfg.DiscountThreshold.String())
	require.Equal(t, "12.5", cfg.DiscountStep.String())
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := LoadForTests(map[string]string{"ARITH_DIV_SCALE": "-1"})
	require.ErrorContains(t, err, "ARITH_DIV_SCALE")

	_, err = LoadForTests(map[string]string{"ARITH_MONEY_SCALE": "two"})
	require.ErrorContains(t, err, "ARITH_MONEY_SCALE")

	_, err = LoadForTests(map[string]string{"DISCOUNT_STEP": "ten"})
	require.ErrorContains(t, err, "DISCOUNT_STEP")
}
