package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

type PostHandler struct {
	blogUsecase usecase.BlogUC
	logger      logger.Logger
}

func NewPostHandler(blogUsecase usecase.BlogUC, logger logger.Logger) *PostHandler {
	return &PostHandler{blogUsecase: blogUsecase, logger: logger}
}

// listPosts
//
//	@Summary		Статьи блога
//	@Description	Список статей, отсортированный по дате публикации (новые первыми)
//	@Tags			posts
//	@Produce		json
//	@Param			featured	query		bool	false	"Только рекомендуемые"
//	@Param			tag			query		string	false	"Фильтр по тегу"
//	@Param			search		query		string	false	"Поиск по заголовку и анонсу"
//	@Param			limit		query		int		false	"Максимум записей"
//	@Success		200			{object}	SuccessResponse
//	@Router			/posts [get]
func (h *PostHandler) listPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))

	req := &usecase.ListPostsReq{
		Featured: q.Get("featured") == "true",
		Tag:      q.Get("tag"),
		Search:   q.Get("search"),
		Limit:    limit,
	}

	res, err := h.blogUsecase.ListPosts(r.Context(), req)
	if err != nil {
		h.logger.Errorf(err, "list posts failed")
		WriteError(w, err)
		return
	}

	WriteList(w, http.StatusOK, toPostListResponse(res.Posts), res.Total)
}

// getPost
//
//	@Summary	Статья блога с полным текстом
//	@Tags		posts
//	@Produce	json
//	@Param		slug	path		string	true	"Слаг статьи"
//	@Success	200		{object}	SuccessResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/posts/{slug} [get]
func (h *PostHandler) getPost(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.blogUsecase.GetPostBySlug(r.Context(), slug)
	if err != nil {
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toPostResponse(post, true))
}
