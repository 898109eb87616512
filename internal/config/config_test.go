package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"azmedical/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./content", cfg.ContentDir)
	assert.Equal(t, "100", cfg.FreeShippingThreshold.String())
	assert.Equal(t, "15", cfg.FlatShippingFee.String())
	assert.Equal(t, "0.18", cfg.TaxRate.String())
	assert.Equal(t, 3*time.Second, cfg.PaymentDelay)
	assert.Equal(t, time.Second, cfg.LoginDelay)
	assert.Equal(t, 1500*time.Millisecond, cfg.RegisterDelay)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TAX_RATE", "0.2")
	t.Setenv("FLAT_SHIPPING_FEE", "10")
	t.Setenv("PAYMENT_DELAY_MS", "0")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "0.2", cfg.TaxRate.String())
	assert.Equal(t, "10", cfg.FlatShippingFee.String())
	assert.Equal(t, time.Duration(0), cfg.PaymentDelay)

	p := cfg.Pricing()
	assert.Equal(t, "0.2", p.TaxRate.String())
}

func TestLoad_MalformedValues(t *testing.T) {
	t.Setenv("TAX_RATE", "eighteen percent")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_NegativeDelayRejected(t *testing.T) {
	t.Setenv("LOGIN_DELAY_MS", "-5")

	_, err := config.Load()
	assert.Error(t, err)
}
