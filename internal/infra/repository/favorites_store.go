package repository

import (
	"go.uber.org/zap"

	"azmedical/internal/store"
)

type FavoritesStoreRepository struct {
	store store.Store
	log   *zap.Logger
}

// DI
func NewFavoritesStoreRepository(s store.Store, log *zap.Logger) *FavoritesStoreRepository {
	return &FavoritesStoreRepository{store: s, log: log}
}

func (r *FavoritesStoreRepository) List() []int64 {
	raw, ok := r.store.Get(store.KeyFavorites)
	if !ok {
		return []int64{}
	}

	var ids []int64
	if !decodeStored(r.log, store.KeyFavorites, raw, &ids) || ids == nil {
		return []int64{}
	}
	return ids
}

func (r *FavoritesStoreRepository) Toggle(id int64) {
	ids := r.List()

	for i, v := range ids {
		if v == id {
			ids = append(ids[:i], ids[i+1:]...)
			r.store.Set(store.KeyFavorites, encodeStored(ids))
			return
		}
	}

	ids = append(ids, id)
	r.store.Set(store.KeyFavorites, encodeStored(ids))
}

func (r *FavoritesStoreRepository) Has(id int64) bool {
	for _, v := range r.List() {
		if v == id {
			return true
		}
	}
	return false
}
