package repository

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	repo "azmedical/internal/repository"
	"azmedical/internal/store"
)

type CartStoreRepository struct {
	store store.Store
	log   *zap.Logger
}

// DI
func NewCartStoreRepository(s store.Store, log *zap.Logger) *CartStoreRepository {
	return &CartStoreRepository{store: s, log: log}
}

func (r *CartStoreRepository) Get() []model.CartLineItem {
	raw, ok := r.store.Get(store.KeyCart)
	if !ok {
		return []model.CartLineItem{}
	}

	var items []model.CartLineItem
	if !decodeStored(r.log, store.KeyCart, raw, &items) || items == nil {
		return []model.CartLineItem{}
	}
	return items
}

// Add bumps the quantity when the product is already in the cart, otherwise
// appends a fresh line with quantity 1.
func (r *CartStoreRepository) Add(in repo.AddItem) {
	items := r.Get()

	for i := range items {
		if items[i].ID == in.ID {
			items[i].Quantity++
			r.persist(items)
			return
		}
	}

	items = append(items, model.CartLineItem{
		ID:       in.ID,
		Title:    in.Title,
		Price:    in.Price,
		Quantity: 1,
		Image:    in.Image,
	})
	r.persist(items)
}

// UpdateQuantity overwrites the line's quantity. Zero or negative delegates
// to Remove so a non-positive quantity is never persisted. An unknown ID
// writes nothing.
func (r *CartStoreRepository) UpdateQuantity(id int64, quantity int64) {
	if quantity <= 0 {
		r.Remove(id)
		return
	}

	items := r.Get()
	for i := range items {
		if items[i].ID == id {
			items[i].Quantity = quantity
			r.persist(items)
			return
		}
	}
}

func (r *CartStoreRepository) Remove(id int64) {
	items := r.Get()

	kept := make([]model.CartLineItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	r.persist(kept)
}

// Clear deletes the key outright rather than persisting an empty list.
func (r *CartStoreRepository) Clear() {
	r.store.Remove(store.KeyCart)
}

func (r *CartStoreRepository) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range r.Get() {
		total = total.Add(it.Price.Mul(decimal.NewFromInt(it.Quantity)))
	}
	return total
}

func (r *CartStoreRepository) Count() int64 {
	var count int64
	for _, it := range r.Get() {
		count += it.Quantity
	}
	return count
}

func (r *CartStoreRepository) persist(items []model.CartLineItem) {
	r.store.Set(store.KeyCart, encodeStored(items))
}
