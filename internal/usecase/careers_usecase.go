package usecase

import (
	"context"
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CareersUseCase обрабатывает отклики на вакансии: валидация, загрузка резюме
// в S3, запись отклика и события outbox в одной транзакции БД.
type CareersUseCase struct {
	applicationRepo ApplicationRepository
	outboxRepo      OutboxRepository
	contentRepo     ContentRepository
	resumesInfra    ResumesInfra
	dbPool          transaction.Transactional
	logger          logger.Logger
}

func NewCareersUC(
	applicationRepo ApplicationRepository,
	outboxRepo OutboxRepository,
	contentRepo ContentRepository,
	resumesInfra ResumesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *CareersUseCase {
	return &CareersUseCase{
		applicationRepo: applicationRepo,
		outboxRepo:      outboxRepo,
		contentRepo:     contentRepo,
		resumesInfra:    resumesInfra,
		dbPool:          dbPool,
		logger:          logger,
	}
}

// applicationNotification — payload события outbox для Kafka.
type applicationNotification struct {
	ApplicationID string    `json:"application_id"`
	VacancySlug   string    `json:"vacancy_slug"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	ResumeKey     string    `json:"resume_key"`
	SubmittedAt   time.Time `json:"submitted_at"`
}

// Apply обрабатывает отклик на вакансию. Если транзакция не фиксируется,
// уже загруженное резюме удаляется фоновой очисткой.
func (c *CareersUseCase) Apply(ctx context.Context, req *ApplyReq) (*ApplyRes, error) {
	const op = "CareersUseCase.Apply"

	var err error
	if err = c.validateApplication(req); err != nil {
		return nil, err
	}

	if _, err = c.contentRepo.VacancyBySlug(ctx, req.VacancySlug); err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		resumeRes *UploadResumeRes
		uploaded  bool
	)

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	// Если произошла ошибка, происходит Rollback транзакции и очистка загруженного резюме
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}

			if uploaded && resumeRes != nil {
				c.logger.Warnf(
					"Cleaning up orphaned resume after transaction failure. vacancy: %s, error: %v",
					req.VacancySlug,
					e.Wrap(op, err),
				)

				c.resumesInfra.CleanupResume(resumeRes.ResumeKey)
			}
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	resumeRes, err = c.resumesInfra.UploadResume(ctx, NewUploadResumeReq(req.VacancySlug, req.Resume))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	uploaded = true

	application, err := c.applicationRepo.Create(ctx, domain.NewJobApplication(
		uuid.NewString(),
		req.VacancySlug,
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Message),
		resumeRes.ResumeKey,
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(applicationNotification{
		ApplicationID: application.ID,
		VacancySlug:   application.VacancySlug,
		Name:          application.Name,
		Email:         application.Email,
		ResumeKey:     application.ResumeKey,
		SubmittedAt:   application.CreatedAt,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = c.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: ApplicationSubmitted,
		EntityID:  application.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return NewApplyRes(application.ID, application.CreatedAt), nil
}

// validateApplication проверяет корректность полей отклика и файла резюме.
func (c *CareersUseCase) validateApplication(req *ApplyReq) error {
	v := NewValidationError()

	if len(strings.TrimSpace(req.Name)) < 2 {
		v.Add("name", "name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		v.Add("email", "invalid email address")
	}

	if req.Resume == nil || len(req.Resume.Data) == 0 {
		v.Add("resume", e.ErrNoResume.Error())
	}

	if v.Empty() {
		return nil
	}

	return v
}
