package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"azmedical/internal/domain/model"
	infra "azmedical/internal/infra/repository"
	repo "azmedical/internal/repository"
	"azmedical/internal/store"
	"azmedical/internal/usecase"
)

func demoProducts() []model.Product {
	return []model.Product{
		{ID: 1, Title: "Qan təzyiqi cihazı", Slug: "tonometr", Price: dec("85"), Category: "devices", Rating: 4.7, Tags: []string{"tonometr", "cihaz"}, Images: []string{"/img/tonometr.jpg"}},
		{ID: 2, Title: "Vitamin D3", Slug: "vitamin-d3", Price: dec("12.5"), Category: "vitamins", Rating: 4.9, Tags: []string{"vitamin"}},
		{ID: 3, Title: "Termometr", Slug: "termometr", Price: dec("25"), Category: "devices", Rating: 4.2, Tags: []string{"cihaz"}},
	}
}

func newCatalogFixture() (*usecase.CatalogUsecase, *infra.CartStoreRepository) {
	s := store.NewMemoryStore()
	log := zap.NewNop()
	cart := infra.NewCartStoreRepository(s, log)
	favs := infra.NewFavoritesStoreRepository(s, log)
	return usecase.NewCatalogUsecase(demoProducts(), favs, cart), cart
}

func TestCatalog_FilterByQueryMatchesTitleAndTags(t *testing.T) {
	uc, _ := newCatalogFixture()

	byTitle := uc.List(usecase.ProductFilter{Query: "vitamin"})
	require.Len(t, byTitle, 1)
	assert.Equal(t, int64(2), byTitle[0].ID)

	byTag := uc.List(usecase.ProductFilter{Query: "cihaz"})
	assert.Len(t, byTag, 2)
}

func TestCatalog_FilterByCategory(t *testing.T) {
	uc, _ := newCatalogFixture()

	assert.Len(t, uc.List(usecase.ProductFilter{Category: "devices"}), 2)
	assert.Len(t, uc.List(usecase.ProductFilter{Category: "all"}), 3)
	assert.Len(t, uc.List(usecase.ProductFilter{}), 3)
}

func TestCatalog_FilterByPriceRange(t *testing.T) {
	uc, _ := newCatalogFixture()

	got := uc.List(usecase.ProductFilter{MinPrice: dec("20"), MaxPrice: dec("90")})
	require.Len(t, got, 2)
	for _, p := range got {
		assert.True(t, p.Price.GreaterThanOrEqual(dec("20")))
		assert.True(t, p.Price.LessThanOrEqual(dec("90")))
	}
}

func TestCatalog_SortOrders(t *testing.T) {
	uc, _ := newCatalogFixture()

	low := uc.List(usecase.ProductFilter{Sort: usecase.SortPriceLow})
	assert.Equal(t, []int64{2, 3, 1}, ids(low))

	high := uc.List(usecase.ProductFilter{Sort: usecase.SortPriceHigh})
	assert.Equal(t, []int64{1, 3, 2}, ids(high))

	rated := uc.List(usecase.ProductFilter{Sort: usecase.SortRating})
	assert.Equal(t, []int64{2, 1, 3}, ids(rated))
}

func TestCatalog_Categories(t *testing.T) {
	uc, _ := newCatalogFixture()
	assert.Equal(t, []string{"devices", "vitamins"}, uc.Categories())
}

func TestCatalog_AddToCartSnapshotsTheProduct(t *testing.T) {
	uc, cart := newCatalogFixture()

	require.NoError(t, uc.AddToCart(1))
	require.NoError(t, uc.AddToCart(1))

	items := cart.Get()
	require.Len(t, items, 1)
	assert.Equal(t, "Qan təzyiqi cihazı", items[0].Title)
	assert.Equal(t, "85", items[0].Price.String())
	assert.Equal(t, int64(2), items[0].Quantity)
	assert.Equal(t, "/img/tonometr.jpg", items[0].Image)
}

func TestCatalog_AddToCartUnknownProduct(t *testing.T) {
	uc, _ := newCatalogFixture()
	assert.ErrorIs(t, uc.AddToCart(999), repo.ErrNotFound)
}

func TestCatalog_FavoriteToggle(t *testing.T) {
	uc, _ := newCatalogFixture()

	uc.ToggleFavorite(2)
	assert.True(t, uc.IsFavorite(2))
	assert.Equal(t, []int64{2}, uc.Favorites())

	uc.ToggleFavorite(2)
	assert.False(t, uc.IsFavorite(2))
}

func ids(products []model.Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}
