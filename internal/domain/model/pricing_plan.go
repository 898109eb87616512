package model

import "github.com/shopspring/decimal"

type PricingPlan struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Monthly  decimal.Decimal `json:"monthly"`
	Yearly   decimal.Decimal `json:"yearly"`
	Features []string        `json:"features"`
}
