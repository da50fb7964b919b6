package usecase

import (
	"context"
	"testing"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductRepo struct {
	products []domain.Product
}

func (f *fakeProductRepo) Products(_ context.Context) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) ProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	for _, p := range f.products {
		if p.Slug == slug {
			return &p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Slug: "battery-module", Title: "Battery Module", ShortDesc: "High-density pack", Categories: []string{"batteries"}, Featured: true},
		{ID: "p2", Slug: "traction-motor", Title: "Traction Motor", ShortDesc: "Compact PMSM", Categories: []string{"motors"}},
		{ID: "p3", Slug: "dc-charger", Title: "DC Fast Charger", ShortDesc: "150 kW charging station", Categories: []string{"charging"}, Featured: true},
	}
}

func TestCatalogUC_ListProducts_NoFilters(t *testing.T) {
	uc := NewCatalogUC(&fakeProductRepo{products: testProducts()}, logger.NewSlogLogger())

	res, err := uc.ListProducts(context.Background(), &ListProductsReq{})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	// порядок фикстур сохраняется
	assert.Equal(t, "p1", res.Products[0].ID)
	assert.Equal(t, "p3", res.Products[2].ID)
}

func TestCatalogUC_ListProducts_ByCategory(t *testing.T) {
	uc := NewCatalogUC(&fakeProductRepo{products: testProducts()}, logger.NewSlogLogger())

	res, err := uc.ListProducts(context.Background(), &ListProductsReq{Category: "motors"})

	require.NoError(t, err)
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "p2", res.Products[0].ID)
}

func TestCatalogUC_ListProducts_Featured(t *testing.T) {
	uc := NewCatalogUC(&fakeProductRepo{products: testProducts()}, logger.NewSlogLogger())

	res, err := uc.ListProducts(context.Background(), &ListProductsReq{Featured: true})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestCatalogUC_ListProducts_SearchIsCaseInsensitive(t *testing.T) {
	uc := NewCatalogUC(&fakeProductRepo{products: testProducts()}, logger.NewSlogLogger())

	res, err := uc.ListProducts(context.Background(), &ListProductsReq{Search: "CHARG"})

	require.NoError(t, err)
	// совпадение по названию, описанию или категории
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "p3", res.Products[0].ID)
}

func TestCatalogUC_ListProducts_Limit(t *testing.T) {
	uc := NewCatalogUC(&fakeProductRepo{products: testProducts()}, logger.NewSlogLogger())

	res, err := uc.ListProducts(context.Background(), &ListProductsReq{Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestCatalogUC_GetProductBySlug_NotFound(t *testing.T) {
	uc := NewCatalogUC(&fakeProductRepo{products: testProducts()}, logger.NewSlogLogger())

	_, err := uc.GetProductBySlug(context.Background(), "unknown")

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}
