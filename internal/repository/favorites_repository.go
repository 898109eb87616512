package repository

// FavoritesRepository owns the favorited product ID list.
type FavoritesRepository interface {
	// List returns the favorited IDs in toggle order, never nil.
	List() []int64
	// Toggle adds the ID if absent, removes it if present.
	Toggle(id int64)
	Has(id int64) bool
}
