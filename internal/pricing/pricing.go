// Package pricing derives display totals from a cart snapshot. Everything
// here is pure: safe to call on every render, no store access.
package pricing

import (
	"github.com/shopspring/decimal"

	"azmedical/internal/domain/model"
)

// Config carries the checkout constants. Shipping is free above the
// threshold, otherwise the flat fee applies; tax is charged on the
// subtotal only.
type Config struct {
	FreeShippingThreshold decimal.Decimal
	FlatShippingFee       decimal.Decimal
	TaxRate               decimal.Decimal
}

// DefaultConfig returns the production constants: free shipping above 100,
// flat fee 15, 18% tax.
func DefaultConfig() Config {
	return Config{
		FreeShippingThreshold: decimal.NewFromInt(100),
		FlatShippingFee:       decimal.NewFromInt(15),
		TaxRate:               decimal.NewFromFloat(0.18),
	}
}

// Totals holds exact amounts. Rounding happens only at presentation,
// through Format.
type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals sums price times quantity over the lines and applies
// shipping and tax per cfg. Intermediate values are never rounded.
func ComputeTotals(items []model.CartLineItem, cfg Config) Totals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}

	shipping := cfg.FlatShippingFee
	if subtotal.GreaterThan(cfg.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(cfg.TaxRate)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// Format renders an amount for display with two fraction digits.
func Format(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
