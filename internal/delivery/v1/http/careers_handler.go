package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type CareersHandler struct {
	careersUsecase usecase.CareersUC
	cfg            *cfg.MinIOCfg
	logger         logger.Logger
}

func NewCareersHandler(careersUsecase usecase.CareersUC, cfg *cfg.MinIOCfg, logger logger.Logger) *CareersHandler {
	return &CareersHandler{careersUsecase: careersUsecase, cfg: cfg, logger: logger}
}

// apply
//
//	@Summary		Отклик на вакансию
//	@Description	Принимает multipart-форму с полями кандидата и файлом резюме
//	@Tags			careers
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			slug	path		string	true	"Слаг вакансии"
//	@Param			name	formData	string	true	"Имя кандидата"
//	@Param			email	formData	string	true	"Email кандидата"
//	@Param			message	formData	string	false	"Сопроводительное письмо"
//	@Param			resume	formData	file	true	"Файл резюме (pdf, doc, docx)"
//	@Success		201		{object}	SuccessResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		404		{object}	ErrorResponse	"Вакансия не найдена"
//	@Router			/careers/{slug}/apply [post]
func (h *CareersHandler) apply(w http.ResponseWriter, r *http.Request) {
	const maxMemory = 32 << 20

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxResumeSize+maxMemory)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	resume, err := parseResume(r.MultipartForm.File["resume"], h.cfg.MaxResumeSize)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.careersUsecase.Apply(r.Context(), &usecase.ApplyReq{
		VacancySlug: chi.URLParam(r, "slug"),
		Name:        r.FormValue("name"),
		Email:       r.FormValue("email"),
		Message:     r.FormValue("message"),
		Resume:      resume,
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
