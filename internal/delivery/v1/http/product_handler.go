package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listProducts
//
//	@Summary		Каталог товаров
//	@Description	Список товаров с фильтрами по категории, поиску и признаку featured
//	@Tags			products
//	@Produce		json
//	@Param			category	query		string	false	"Фильтр по категории"
//	@Param			featured	query		bool	false	"Только рекомендуемые"
//	@Param			search		query		string	false	"Поиск по названию и описанию"
//	@Param			limit		query		int		false	"Максимум записей"
//	@Success		200			{object}	SuccessResponse
//	@Router			/products [get]
func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	req := &usecase.ListProductsReq{
		Category: q.Get("category"),
		Featured: q.Get("featured") == "true",
		Search:   q.Get("search"),
		Limit:    limit,
	}

	res, err := h.catalogUsecase.ListProducts(r.Context(), req)
	if err != nil {
		h.logger.Errorf(err, "list products failed")
		WriteError(w, err)
		return
	}

	WriteList(w, http.StatusOK, toProductListResponse(res.Products), res.Total)
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		slug	path		string	true	"Слаг товара"
//	@Success	200		{object}	SuccessResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/products/{slug} [get]
func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	product, err := h.catalogUsecase.GetProductBySlug(r.Context(), slug)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}
