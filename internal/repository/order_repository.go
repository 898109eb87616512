package repository

import "azmedical/internal/domain/model"

// OrderRepository owns the append-only order history. Orders are never
// updated or pruned once recorded.
type OrderRepository interface {
	// List returns all recorded orders, oldest first, never nil.
	List() []model.Order
	// Record appends the order to the persisted history.
	Record(order model.Order)
}
