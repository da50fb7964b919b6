package http

import (
	"net/http"

	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type ContentHandler struct {
	contentUsecase usecase.ContentUC
	logger         logger.Logger
}

func NewContentHandler(contentUsecase usecase.ContentUC, logger logger.Logger) *ContentHandler {
	return &ContentHandler{contentUsecase: contentUsecase, logger: logger}
}

// getTeam
//
//	@Summary	Команда компании
//	@Tags		content
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/team [get]
func (h *ContentHandler) getTeam(w http.ResponseWriter, r *http.Request) {
	team, err := h.contentUsecase.Team(r.Context())
	if err != nil {
		h.logger.Errorf(err, "get team failed")
		WriteError(w, err)
		return
	}

	WriteList(w, http.StatusOK, toTeamResponse(team), len(team))
}

// getPartners
//
//	@Summary	Партнеры компании
//	@Tags		content
//	@Produce	json
//	@Success	200	{object}	SuccessResponse
//	@Router		/partners [get]
func (h *ContentHandler) getPartners(w http.ResponseWriter, r *http.Request) {
	partners, err := h.contentUsecase.Partners(r.Context())
	if err != nil {
		h.logger.Errorf(err, "get partners failed")
		WriteError(w, err)
		return
	}

	WriteList(w, http.StatusOK, toPartnersResponse(partners), len(partners))
}

// listVacancies
//
//	@Summary		Открытые вакансии
//	@Description	Список вакансий с фильтрами по локации, типу занятости и поиску
//	@Tags			careers
//	@Produce		json
//	@Param			location	query		string	false	"Фильтр по локации"
//	@Param			type		query		string	false	"Фильтр по типу занятости"
//	@Param			search		query		string	false	"Поиск по названию и описанию"
//	@Success		200			{object}	SuccessResponse
//	@Router			/vacancies [get]
func (h *ContentHandler) listVacancies(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := &usecase.ListVacanciesReq{
		Location: q.Get("location"),
		Type:     q.Get("type"),
		Search:   q.Get("search"),
	}

	res, err := h.contentUsecase.ListVacancies(r.Context(), req)
	if err != nil {
		h.logger.Errorf(err, "list vacancies failed")
		WriteError(w, err)
		return
	}

	WriteList(w, http.StatusOK, toVacanciesResponse(res.Vacancies), res.Total)
}
