package http

import (
	_ "github.com/enertrics/storefront-backend/docs" // Импорт сгенерированных файлов
	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/usecase"
	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

type Usecases struct {
	Cart    usecase.CartUC
	Catalog usecase.CatalogUC
	Blog    usecase.BlogUC
	Content usecase.ContentUC
	Contact usecase.ContactUC
	Careers usecase.CareersUC
}

func (r *Router) Init(uc Usecases, minioCfg *cfg.MinIOCfg) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCartRoutes(v1, NewCartHandler(uc.Cart, r.logger))
		registerProductRoutes(v1, NewProductHandler(uc.Catalog, r.logger))
		registerPostRoutes(v1, NewPostHandler(uc.Blog, r.logger))
		registerContentRoutes(v1, NewContentHandler(uc.Content, r.logger))
		registerContactRoutes(v1, NewContactHandler(uc.Contact, r.logger))
		registerCareersRoutes(v1, NewCareersHandler(uc.Careers, minioCfg, r.logger))
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Delete("/", h.clearCart)
		cart.Post("/open", h.openCart)
		cart.Post("/close", h.closeCart)
		cart.Post("/toggle", h.toggleCart)
		cart.Route("/items", func(items chi.Router) {
			items.Post("/", h.addItem)
			items.Patch("/{lineID}", h.updateQuantity)
			items.Delete("/{lineID}", h.removeItem)
		})
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/{slug}", h.getProduct)
	})
}

func registerPostRoutes(router chi.Router, h *PostHandler) {
	router.Route("/posts", func(posts chi.Router) {
		posts.Get("/", h.listPosts)
		posts.Get("/{slug}", h.getPost)
	})
}

func registerContentRoutes(router chi.Router, h *ContentHandler) {
	router.Get("/team", h.getTeam)
	router.Get("/partners", h.getPartners)
	router.Get("/vacancies", h.listVacancies)
}

func registerContactRoutes(router chi.Router, h *ContactHandler) {
	router.Post("/contact", h.submitContact)
}

func registerCareersRoutes(router chi.Router, h *CareersHandler) {
	router.Post("/careers/{slug}/apply", h.apply)
}
