package usecase

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"azmedical/internal/domain/model"
	repo "azmedical/internal/repository"
)

type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceLow  SortOrder = "price-low"
	SortPriceHigh SortOrder = "price-high"
	SortRating    SortOrder = "rating"
)

// ProductFilter narrows the catalog view. Category "all" or empty matches
// everything; a zero MaxPrice means no upper bound.
type ProductFilter struct {
	Query    string
	Category string
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Sort     SortOrder
}

// CatalogUsecase filters and sorts the loaded product list and bridges
// products into the cart and favorites. The list itself is read-only
// static content.
type CatalogUsecase struct {
	products  []model.Product
	favorites repo.FavoritesRepository
	cart      repo.CartRepository
}

func NewCatalogUsecase(products []model.Product, favorites repo.FavoritesRepository, cart repo.CartRepository) *CatalogUsecase {
	return &CatalogUsecase{products: products, favorites: favorites, cart: cart}
}

func (u *CatalogUsecase) List(f ProductFilter) []model.Product {
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]model.Product, 0, len(u.products))
	for _, p := range u.products {
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		if f.Category != "" && f.Category != "all" && p.Category != f.Category {
			continue
		}
		if p.Price.LessThan(f.MinPrice) {
			continue
		}
		if f.MaxPrice.IsPositive() && p.Price.GreaterThan(f.MaxPrice) {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case SortRating:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}

	return out
}

// Categories returns the distinct categories in catalog order.
func (u *CatalogUsecase) Categories() []string {
	seen := make(map[string]bool, len(u.products))
	out := make([]string, 0, len(u.products))
	for _, p := range u.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}

func (u *CatalogUsecase) Find(id int64) (model.Product, error) {
	for _, p := range u.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// AddToCart puts the product's add-time snapshot into the cart.
func (u *CatalogUsecase) AddToCart(id int64) error {
	p, err := u.Find(id)
	if err != nil {
		return err
	}

	image := ""
	if len(p.Images) > 0 {
		image = p.Images[0]
	}

	u.cart.Add(repo.AddItem{
		ID:    p.ID,
		Title: p.Title,
		Price: p.Price,
		Image: image,
	})
	return nil
}

func (u *CatalogUsecase) ToggleFavorite(id int64) { u.favorites.Toggle(id) }

func (u *CatalogUsecase) Favorites() []int64 { return u.favorites.List() }

func (u *CatalogUsecase) IsFavorite(id int64) bool { return u.favorites.Has(id) }

func matchesQuery(p model.Product, q string) bool {
	if strings.Contains(strings.ToLower(p.Title), q) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
