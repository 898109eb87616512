package model

import "github.com/shopspring/decimal"

// CartLineItem is one entry in the cart, keyed by product ID. The cart
// holds at most one line per product; repeat adds bump the quantity.
// Price is the amount at add time and is not re-read from the catalog.
type CartLineItem struct {
	ID       int64           `json:"id"`
	Title    string          `json:"title"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
	Image    string          `json:"image"`
}
