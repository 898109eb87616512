package repository

import (
	"github.com/shopspring/decimal"

	"azmedical/internal/domain/model"
)

// AddItem is the product-side payload for Add; quantity always starts at 1.
type AddItem struct {
	ID    int64
	Title string
	Price decimal.Decimal
	Image string
}

// CartRepository owns the serialized cart collection. Every call is a
// whole-collection read-modify-write against one store key; absence and
// unparsable state both read as the empty cart.
type CartRepository interface {
	// Get returns the persisted lines, never nil.
	Get() []model.CartLineItem
	// Add appends a new line with quantity 1, or bumps the quantity of an
	// existing line with the same product ID.
	Add(item AddItem)
	// UpdateQuantity overwrites the line's quantity. A quantity of zero or
	// less removes the line. An unknown ID writes nothing.
	UpdateQuantity(id int64, quantity int64)
	// Remove drops the line with the given product ID.
	Remove(id int64)
	// Clear deletes the cart key entirely.
	Clear()
	// Total is the sum of price times quantity over all lines.
	Total() decimal.Decimal
	// Count is the sum of quantities over all lines.
	Count() int64
}
