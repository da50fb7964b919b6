package pgdb

import (
	"context"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/repository/pgdb/converter"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ApplicationRepo хранит отклики на вакансии в PostgreSQL.
type ApplicationRepo struct {
	pool *pgxpool.Pool
	conv converter.JobApplicationConverter
}

func NewApplicationRepo(pool *pgxpool.Pool, conv converter.JobApplicationConverter) *ApplicationRepo {
	return &ApplicationRepo{
		pool: pool,
		conv: conv,
	}
}

func (a *ApplicationRepo) Create(ctx context.Context, application *domain.JobApplication) (*domain.JobApplication, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := a.conv.ToModel(application)
	query := `
		INSERT INTO job_applications (
			id,
			vacancy_slug,
			name,
			email,
			message,
			resume_key
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID,
		model.VacancySlug,
		model.Name,
		model.Email,
		model.Message,
		model.ResumeKey,
	).Scan(&model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return a.conv.ToEntity(model), nil
}
