package pgdb

import (
	"context"
	"errors"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/repository/pgdb/converter"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/tr"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// SubmissionRepo хранит заявки контактной формы в PostgreSQL.
type SubmissionRepo struct {
	pool *pgxpool.Pool
	conv converter.ContactSubmissionConverter
}

func NewSubmissionRepo(pool *pgxpool.Pool, conv converter.ContactSubmissionConverter) *SubmissionRepo {
	return &SubmissionRepo{
		pool: pool,
		conv: conv,
	}
}

func (s *SubmissionRepo) Create(ctx context.Context, submission *domain.ContactSubmission) (*domain.ContactSubmission, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := s.conv.ToModel(submission)
	query := `
		INSERT INTO contact_submissions (
			id,
			name,
			email,
			company,
			phone,
			subject,
			message
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at;
	`

	if err := tx.QueryRow(ctx, query,
		model.ID,
		model.Name,
		model.Email,
		model.Company,
		model.Phone,
		model.Subject,
		model.Message,
	).Scan(&model.CreatedAt); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return s.conv.ToEntity(model), nil
}

// postgresDuplicate распознаёт нарушение уникального ограничения (SQLSTATE 23505).
func postgresDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
