package service

import (
	"context"
	"testing"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var catalogProducts = []domain.Product{
	{ID: "p1", Name: "Biển hiệu", CategoryID: "c1"},
	{ID: "p2", Name: "Hộp đèn", CategoryID: "c2"},
	{ID: "p3", Name: "Chữ nổi Mica", Category: "Chữ nổi"},
	{ID: "p4", Name: "Biển quảng cáo LED", CategoryID: "c2"},
}

func productIDs(products []domain.Product) []string {
	ids := make([]string, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProducts(t *testing.T) {
	testCases := []struct {
		Name     string
		Filter   CatalogFilter
		Expected []string
	}{
		{Name: "all categories", Filter: CatalogFilter{CategoryID: AllCategories}, Expected: []string{"p1", "p2", "p3", "p4"}},
		{Name: "empty filter", Filter: CatalogFilter{}, Expected: []string{"p1", "p2", "p3", "p4"}},
		{Name: "by category id", Filter: CatalogFilter{CategoryID: "c2"}, Expected: []string{"p2", "p4"}},
		{Name: "legacy category name", Filter: CatalogFilter{CategoryID: "c3", CategoryName: "Chữ nổi"}, Expected: []string{"p3"}},
		{Name: "search ignores case", Filter: CatalogFilter{CategoryID: AllCategories, Search: "biển hiệu"}, Expected: []string{"p1"}},
		{Name: "search within category", Filter: CatalogFilter{CategoryID: "c2", Search: "LED"}, Expected: []string{"p4"}},
		{Name: "no match", Filter: CatalogFilter{Search: "zzz"}, Expected: []string{}},
		{Name: "search keeps inner spaces", Filter: CatalogFilter{Search: "biển "}, Expected: []string{"p1", "p4"}},
		{Name: "search is not trimmed", Filter: CatalogFilter{Search: "hộp đèn "}, Expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, productIDs(FilterProducts(catalogProducts, tc.Filter)))
		})
	}
}

func TestFilterProductsDoesNotMutateInput(t *testing.T) {
	in := append([]domain.Product{}, catalogProducts...)
	FilterProducts(in, CatalogFilter{CategoryID: "c1"})
	assert.Equal(t, catalogProducts, in)
}

func TestShopServiceBrowseResolvesLegacyName(t *testing.T) {
	catalog := &fakeCatalog{
		products:   catalogProducts,
		categories: []domain.Category{{ID: "c3", Name: "Chữ nổi"}},
	}
	svc := CreateShopService(catalog, CreateCartService(repository.CreateNewMemoryRepository()))

	products, err := svc.Browse(context.Background(), CatalogFilter{CategoryID: "c3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p3"}, productIDs(products))
}

func TestShopServiceQuickAddUsesConfiguredPrice(t *testing.T) {
	catalog := &fakeCatalog{products: []domain.Product{{
		ID:     "p9",
		Name:   "Neon sign",
		Price:  500000,
		Images: []string{"https://img/cover.jpg", "https://img/2.jpg"},
		Type:   domain.ProductTypeCustom,
		Options: []domain.OptionGroup{
			{Name: "Size", Choices: []domain.OptionChoice{{Label: "S"}, {Label: "L", PriceModifier: 200000}}},
			{Name: "Color", Choices: []domain.OptionChoice{{Label: "Red", PriceModifier: 10000}}},
		},
	}}}
	svc := CreateShopService(catalog, CreateCartService(repository.CreateNewMemoryRepository()))

	cfg, err := svc.Quote(context.Background(), "p9", nil)
	require.NoError(t, err)
	assert.Equal(t, 510000.0, cfg.Total())

	cart, err := svc.QuickAdd(context.Background(), "s1", "p9", map[string]string{"Size": "L"})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, domain.CartProduct{ID: "p9", Name: "Neon sign", Price: 710000, ImageURL: "https://img/cover.jpg"}, cart.Items[0].Product)

	_, err = svc.QuickAdd(context.Background(), "s1", "p9", map[string]string{"Size": "XXL"})
	assert.Error(t, err)
}
