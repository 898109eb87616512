package repository

import (
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	"azmedical/internal/store"
)

type OrderStoreRepository struct {
	store store.Store
	log   *zap.Logger
}

// DI
func NewOrderStoreRepository(s store.Store, log *zap.Logger) *OrderStoreRepository {
	return &OrderStoreRepository{store: s, log: log}
}

func (r *OrderStoreRepository) List() []model.Order {
	raw, ok := r.store.Get(store.KeyOrders)
	if !ok {
		return []model.Order{}
	}

	var orders []model.Order
	if !decodeStored(r.log, store.KeyOrders, raw, &orders) || orders == nil {
		return []model.Order{}
	}
	return orders
}

// Record appends; the history is never rewritten or pruned.
func (r *OrderStoreRepository) Record(order model.Order) {
	orders := append(r.List(), order)
	r.store.Set(store.KeyOrders, encodeStored(orders))
}
