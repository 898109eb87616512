package repository

import (
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	"azmedical/internal/store"
)

type PreferencesStoreRepository struct {
	store store.Store
	log   *zap.Logger
}

// DI
func NewPreferencesStoreRepository(s store.Store, log *zap.Logger) *PreferencesStoreRepository {
	return &PreferencesStoreRepository{store: s, log: log}
}

// Theme defaults to dark; anything but the two known values reads as dark.
func (r *PreferencesStoreRepository) Theme() model.Theme {
	raw, ok := r.store.Get(store.KeyTheme)
	if !ok {
		return model.ThemeDark
	}
	if t := model.Theme(raw); t == model.ThemeLight || t == model.ThemeDark {
		return t
	}
	return model.ThemeDark
}

func (r *PreferencesStoreRepository) SetTheme(t model.Theme) {
	r.store.Set(store.KeyTheme, string(t))
}

// Language defaults to Azerbaijani.
func (r *PreferencesStoreRepository) Language() model.Language {
	raw, ok := r.store.Get(store.KeyLanguage)
	if !ok {
		return model.LanguageAZ
	}
	if l := model.Language(raw); l == model.LanguageAZ || l == model.LanguageEN {
		return l
	}
	return model.LanguageAZ
}

func (r *PreferencesStoreRepository) SetLanguage(l model.Language) {
	r.store.Set(store.KeyLanguage, string(l))
}
