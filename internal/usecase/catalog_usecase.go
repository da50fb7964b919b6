package usecase

import (
	"context"
	"strings"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

// CatalogUseCase реализует чтение каталога товаров поверх статических фикстур.
type CatalogUseCase struct {
	productRepo ProductRepository
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// ListProducts возвращает товары с учетом фильтров категории, признака
// featured и поисковой строки. Порядок фикстур сохраняется.
func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.Products(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if req.Category != "" && !product.HasCategory(req.Category) {
			continue
		}
		if req.Featured && !product.Featured {
			continue
		}
		if req.Search != "" && !productMatches(&product, req.Search) {
			continue
		}
		filtered = append(filtered, product)
	}

	if req.Limit > 0 && req.Limit < len(filtered) {
		filtered = filtered[:req.Limit]
	}

	return NewListProductsRes(filtered), nil
}

// GetProductBySlug возвращает товар по слагу.
func (c *CatalogUseCase) GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProductBySlug"

	product, err := c.productRepo.ProductBySlug(ctx, slug)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// productMatches проверяет вхождение поисковой строки в название,
// краткое описание или категории товара без учета регистра.
func productMatches(product *domain.Product, search string) bool {
	search = strings.ToLower(search)

	if strings.Contains(strings.ToLower(product.Title), search) {
		return true
	}
	if strings.Contains(strings.ToLower(product.ShortDesc), search) {
		return true
	}
	for _, category := range product.Categories {
		if strings.Contains(strings.ToLower(category), search) {
			return true
		}
	}

	return false
}
