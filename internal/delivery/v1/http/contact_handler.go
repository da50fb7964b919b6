package http

import (
	"encoding/json"
	"net/http"

	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUC
	logger         logger.Logger
}

func NewContactHandler(contactUsecase usecase.ContactUC, logger logger.Logger) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase, logger: logger}
}

// submitContact
//
//	@Summary		Отправка контактной формы
//	@Description	Валидирует и сохраняет заявку, ставит уведомление в очередь
//	@Tags			contact
//	@Accept			json
//	@Produce		json
//	@Param			form	body		contactRequest	true	"Поля формы"
//	@Success		201		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации с разбивкой по полям"
//	@Router			/contact [post]
func (h *ContactHandler) submitContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	res, err := h.contactUsecase.SubmitContact(r.Context(), &usecase.SubmitContactReq{
		Name:    req.Name,
		Email:   req.Email,
		Company: req.Company,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, &submissionResponse{
		ID:        res.ID,
		Timestamp: res.Timestamp,
	})
}
