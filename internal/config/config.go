package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	AppEnv            string
	LogLevel          string
	LogFormat         string
	DivScale          int
	MoneyScale        int
	DiscountThreshold decimal.Decimal
	DiscountStep      decimal.Decimal
}

// Load reads configuration from environment variables and optional .env files.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		AppEnv:    valueOrDefault(k.String("APP_ENV"), "development"),
		LogLevel:  valueOrDefault(k.String("LOG_LEVEL"), "info"),
		LogFormat: valueOrDefault(k.String("LOG_FORMAT"), "json"),
	}

	var err error
	if cfg.DivScale, err = parseScale("ARITH_DIV_SCALE", k.String("ARITH_DIV_SCALE"), 10); err != nil {
		return nil, err
	}
	if cfg.MoneyScale, err = parseScale("ARITH_MONEY_SCALE", k.String("ARITH_MONEY_SCALE"), 2); err != nil {
		return nil, err
	}
	if cfg.DiscountThreshold, err = parseDecimal("DISCOUNT_THRESHOLD", k.String("DISCOUNT_THRESHOLD"), "100"); err != nil {
		return nil, err
	}
	if cfg.DiscountStep, err = parseDecimal("DISCOUNT_STEP", k.String("DISCOUNT_STEP"), "10"); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the app runs in the development environment.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(strings.TrimSpace(c.AppEnv), "development")
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseScale(key, value string, fallback int) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s must be zero or greater, got %d", key, n)
	}
	return n, nil
}

func parseDecimal(key, value, fallback string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(valueOrDefault(strings.TrimSpace(value), fallback))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

// MustLoad behaves like Load but panics on error. Useful for tests and command entrypoints.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// LoadForTests allows tests to override environment variables without touching the real environment.
func LoadForTests(env map[string]string) (*Config, error) {
	original := make(map[string]string, len(env))
	for key := range env {
		original[key] = os.Getenv(key)
		if err := setEnvVar(key, env[key]); err != nil {
			return nil, err
		}
	}
	cfg, err := Load()
	restoreErr := restoreEnv(original)
	if err != nil {
		return nil, err
	}
	return cfg, restoreErr
}

func setEnvVar(key, value string) error {
	if value == "" {
		return os.Unsetenv(key)
	}
	return os.Setenv(key, value)
}

func restoreEnv(values map[string]string) error {
	var errs []string
	for key, value := range values {
		if err := setEnvVar(key, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("restore env: %s", strings.Join(errs, "; "))
	}
	return nil
}
