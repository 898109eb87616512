package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"azmedical/internal/pricing"
)

// Config is the whole application configuration. Everything has a default
// because the app is a self-contained mock; set the variables to override.
type Config struct {
	Port       string // content server port
	ContentDir string // directory holding the static JSON documents
	StoreFile  string // file-backed store path; empty keeps state in memory

	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal

	PaymentDelay  time.Duration // simulated payment latency
	LoginDelay    time.Duration // simulated login latency
	RegisterDelay time.Duration // simulated registration latency
}

// Load reads the environment. Absent variables take defaults; present but
// malformed ones are errors.
func Load() (Config, error) {
	p := pricing.DefaultConfig()

	cfg := Config{
		Port:       envString("PORT", "8080"),
		ContentDir: envString("CONTENT_DIR", "./content"),
		StoreFile:  os.Getenv("STORE_FILE"),

		FreeShippingThreshold: p.FreeShippingThreshold,
		FlatShippingFee:       p.FlatShippingFee,
		TaxRate:               p.TaxRate,
	}

	var err error
	if cfg.FreeShippingThreshold, err = envDecimal("FREE_SHIPPING_THRESHOLD", cfg.FreeShippingThreshold); err != nil {
		return Config{}, err
	}
	if cfg.FlatShippingFee, err = envDecimal("FLAT_SHIPPING_FEE", cfg.FlatShippingFee); err != nil {
		return Config{}, err
	}
	if cfg.TaxRate, err = envDecimal("TAX_RATE", cfg.TaxRate); err != nil {
		return Config{}, err
	}

	if cfg.PaymentDelay, err = envMillis("PAYMENT_DELAY_MS", 3000*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.LoginDelay, err = envMillis("LOGIN_DELAY_MS", 1000*time.Millisecond); err != nil {
		return Config{}, err
	}
	if cfg.RegisterDelay, err = envMillis("REGISTER_DELAY_MS", 1500*time.Millisecond); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Pricing bundles the checkout constants for the calculator.
func (c Config) Pricing() pricing.Config {
	return pricing.Config{
		FreeShippingThreshold: c.FreeShippingThreshold,
		FlatShippingFee:       c.FlatShippingFee,
		TaxRate:               c.TaxRate,
	}
}

func envString(key string, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDecimal(key string, def decimal.Decimal) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s must be a decimal number: %w", key, err)
	}
	return d, nil
}

func envMillis(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}

	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("%s must be a non-negative number of milliseconds", key)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
