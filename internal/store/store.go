package store

// Keys under which the client state lives. These mirror the layout the
// web front-end keeps in the browser's local storage, so a persisted
// store file is interchangeable with an exported browser session.
const (
	KeyAuthToken = "authToken"
	KeyUser      = "user"
	KeyCart      = "cart"
	KeyOrders    = "orders"
	KeyTheme     = "theme"
	KeyLanguage  = "language"
	KeyFavorites = "favorites"
)

// Store is the origin-scoped string key-value table the repositories
// persist into. It matches the browser localStorage contract: synchronous,
// string-only, and never failing at the call site.
type Store interface {
	Get(key string) (string, bool)
	Set(key string, value string)
	Remove(key string)
}
