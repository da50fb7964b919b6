package usecase

import (
	"context"

	"github.com/enertrics/storefront-backend/internal/domain"
)

// CartUC — операции хранилища корзины. Все операции тотальны: неизвестные
// идентификаторы строк и ошибки сохранения не приводят к ошибке для вызывающего.
type CartUC interface {
	GetCart(ctx context.Context, cartID string) *CartSnapshot
	AddItem(ctx context.Context, cartID string, req *AddItemReq) *CartSnapshot
	RemoveItem(ctx context.Context, cartID string, lineID string) *CartSnapshot
	UpdateQuantity(ctx context.Context, cartID string, lineID string, quantity int) *CartSnapshot
	ClearCart(ctx context.Context, cartID string) *CartSnapshot
	OpenCart(ctx context.Context, cartID string) *CartSnapshot
	CloseCart(ctx context.Context, cartID string) *CartSnapshot
	ToggleCart(ctx context.Context, cartID string) *CartSnapshot
}

type CatalogUC interface {
	ListProducts(ctx context.Context, req *ListProductsReq) (*ListProductsRes, error)
	GetProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type BlogUC interface {
	ListPosts(ctx context.Context, req *ListPostsReq) (*ListPostsRes, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

type ContentUC interface {
	Team(ctx context.Context) ([]domain.TeamMember, error)
	Partners(ctx context.Context) ([]domain.Partner, error)
	ListVacancies(ctx context.Context, req *ListVacanciesReq) (*ListVacanciesRes, error)
}

type ContactUC interface {
	SubmitContact(ctx context.Context, req *SubmitContactReq) (*SubmitContactRes, error)
}

type CareersUC interface {
	Apply(ctx context.Context, req *ApplyReq) (*ApplyRes, error)
}
