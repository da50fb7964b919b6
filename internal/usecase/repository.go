package usecase

import (
	"context"

	"github.com/enertrics/storefront-backend/internal/domain"
)

// CartStorage — долговременное KV-хранилище корзин. Сохраняется только список
// строк: флаг открытости панели не переживает перезагрузку намеренно.
type CartStorage interface {
	Load(ctx context.Context, cartID string) ([]domain.LineItem, error)
	Save(ctx context.Context, cartID string, items []domain.LineItem) error
}

type ProductRepository interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductBySlug(ctx context.Context, slug string) (*domain.Product, error)
}

type PostRepository interface {
	Posts(ctx context.Context) ([]domain.Post, error)
	PostBySlug(ctx context.Context, slug string) (*domain.Post, error)
}

type ContentRepository interface {
	Team(ctx context.Context) ([]domain.TeamMember, error)
	Partners(ctx context.Context) ([]domain.Partner, error)
	Vacancies(ctx context.Context) ([]domain.Vacancy, error)
	VacancyBySlug(ctx context.Context, slug string) (*domain.Vacancy, error)
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error)
}

type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.JobApplication) (*domain.JobApplication, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type ResumeRepository interface {
	Upload(ctx context.Context, resume *domain.Resume) (string, error)
	Delete(ctx context.Context, key string) error
}
