package repository

import "azmedical/internal/domain/model"

// PreferencesRepository owns the theme and language keys. Missing or
// unrecognized stored values fall back to the defaults: dark, az.
type PreferencesRepository interface {
	Theme() model.Theme
	SetTheme(t model.Theme)
	Language() model.Language
	SetLanguage(l model.Language)
}
