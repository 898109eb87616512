package model

import "github.com/shopspring/decimal"

// Product is a catalog entry loaded from the static content documents.
// The catalog is read-only; nothing in this module writes products.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Slug        string          `json:"slug"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Rating      float64         `json:"rating"`
	Images      []string        `json:"images"`
	Tags        []string        `json:"tags"`
	Description string          `json:"description"`
}
