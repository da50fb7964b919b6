package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// getCart
//
//	@Summary		Текущее состояние корзины
//	@Description	Возвращает строки корзины, итоговое количество и сумму
//	@Tags			cart
//	@Produce		json
//	@Success		200	{object}	SuccessResponse
//	@Router			/cart [get]
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.GetCart(r.Context(), cartID)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// addItem
//
//	@Summary		Добавление товара в корзину
//	@Description	Добавляет строку или увеличивает количество в существующей
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			item	body		addItemRequest	true	"Добавляемый товар"
//	@Success		200		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/cart/items [post]
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if req.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}
	if req.PriceCents < 0 {
		WriteError(w, e.ErrInvalidPrice)
		return
	}

	addReq := &usecase.AddItemReq{
		ProductID:  req.ProductID,
		Title:      req.Title,
		PriceCents: req.PriceCents,
		Quantity:   req.Quantity,
		Image:      req.Image,
	}
	if req.Variant != nil {
		addReq.Variant = &usecase.VariantReq{
			ID:         req.Variant.ID,
			Name:       req.Variant.Name,
			PriceCents: req.Variant.PriceCents,
		}
	}

	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.AddItem(r.Context(), cartID, addReq)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// updateQuantity
//
//	@Summary		Изменение количества строки
//	@Description	Устанавливает количество; ноль и меньше удаляет строку
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			lineID		path		string					true	"Идентификатор строки"
//	@Param			quantity	body		updateQuantityRequest	true	"Новое количество"
//	@Success		200			{object}	SuccessResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/cart/items/{lineID} [patch]
func (h *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	lineID := chi.URLParam(r, "lineID")
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.UpdateQuantity(r.Context(), cartID, lineID, req.Quantity)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// removeItem
//
//	@Summary	Удаление строки из корзины
//	@Tags		cart
//	@Produce	json
//	@Param		lineID	path		string	true	"Идентификатор строки"
//	@Success	200		{object}	SuccessResponse
//	@Router		/cart/items/{lineID} [delete]
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "lineID")
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.RemoveItem(r.Context(), cartID, lineID)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// clearCart
//
//	@Summary	Очистка корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/cart [delete]
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.ClearCart(r.Context(), cartID)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// openCart
//
//	@Summary	Открытие панели корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/cart/open [post]
func (h *CartHandler) openCart(w http.ResponseWriter, r *http.Request) {
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.OpenCart(r.Context(), cartID)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// closeCart
//
//	@Summary	Закрытие панели корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/cart/close [post]
func (h *CartHandler) closeCart(w http.ResponseWriter, r *http.Request) {
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.CloseCart(r.Context(), cartID)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}

// toggleCart
//
//	@Summary	Переключение панели корзины
//	@Tags		cart
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/cart/toggle [post]
func (h *CartHandler) toggleCart(w http.ResponseWriter, r *http.Request) {
	cartID := cartIDFromRequest(w, r)
	snapshot := h.cartUsecase.ToggleCart(r.Context(), cartID)
	WriteSuccess(w, http.StatusOK, toCartResponse(snapshot))
}
