package repository

import (
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	repo "azmedical/internal/repository"
	"azmedical/internal/store"
)

type SessionStoreRepository struct {
	store store.Store
	log   *zap.Logger
}

// DI
func NewSessionStoreRepository(s store.Store, log *zap.Logger) *SessionStoreRepository {
	return &SessionStoreRepository{store: s, log: log}
}

// Get reads both keys. Authentication is decided by token presence alone;
// a corrupt profile reads as nil without touching the token.
func (r *SessionStoreRepository) Get() repo.Session {
	token, ok := r.store.Get(store.KeyAuthToken)

	var user *model.UserProfile
	if raw, found := r.store.Get(store.KeyUser); found {
		var u model.UserProfile
		if decodeStored(r.log, store.KeyUser, raw, &u) {
			user = &u
		}
	}

	return repo.Session{
		IsAuthenticated: ok && token != "",
		User:            user,
		Token:           token,
	}
}

// Set writes token and profile together. There is no partial write path.
func (r *SessionStoreRepository) Set(user model.UserProfile, token string) {
	r.store.Set(store.KeyAuthToken, token)
	r.store.Set(store.KeyUser, encodeStored(user))
}

// Clear removes both keys together.
func (r *SessionStoreRepository) Clear() {
	r.store.Remove(store.KeyAuthToken)
	r.store.Remove(store.KeyUser)
}
