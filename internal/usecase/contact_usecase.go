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

// ContactUseCase обрабатывает заявки контактной формы: валидация, сохранение
// в БД и постановка уведомления в транзакционный outbox.
type ContactUseCase struct {
	submissionRepo SubmissionRepository
	outboxRepo     OutboxRepository
	dbPool         transaction.Transactional
	logger         logger.Logger
}

func NewContactUC(
	submissionRepo SubmissionRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *ContactUseCase {
	return &ContactUseCase{
		submissionRepo: submissionRepo,
		outboxRepo:     outboxRepo,
		dbPool:         dbPool,
		logger:         logger,
	}
}

// contactNotification — payload события outbox для Kafka.
type contactNotification struct {
	SubmissionID string    `json:"submission_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Subject      string    `json:"subject"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

// SubmitContact валидирует заявку и в одной транзакции сохраняет ее вместе
// с событием outbox. Уведомление уйдет в Kafka после коммита.
func (c *ContactUseCase) SubmitContact(ctx context.Context, req *SubmitContactReq) (*SubmitContactRes, error) {
	const op = "ContactUseCase.SubmitContact"

	if err := c.validateContact(req); err != nil {
		return nil, err
	}

	var err error
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	submission, err := c.submissionRepo.Create(ctx, domain.NewContactSubmission(
		uuid.NewString(),
		strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Email),
		strings.TrimSpace(req.Company),
		strings.TrimSpace(req.Phone),
		strings.TrimSpace(req.Subject),
		strings.TrimSpace(req.Message),
	))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	payload, err := json.Marshal(contactNotification{
		SubmissionID: submission.ID,
		Name:         submission.Name,
		Email:        submission.Email,
		Subject:      submission.Subject,
		SubmittedAt:  submission.CreatedAt,
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	_, err = c.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   uuid.NewString(),
		EventType: ContactSubmitted,
		EntityID:  submission.ID,
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

	return NewSubmitContactRes(submission.ID, submission.CreatedAt), nil
}

// validateContact проверяет поля формы по правилам исходной формы сайта.
func (c *ContactUseCase) validateContact(req *SubmitContactReq) error {
	v := NewValidationError()

	if len(strings.TrimSpace(req.Name)) < 2 {
		v.Add("name", "name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		v.Add("email", "invalid email address")
	}
	if len(strings.TrimSpace(req.Subject)) < 5 {
		v.Add("subject", "subject must be at least 5 characters")
	}
	if len(strings.TrimSpace(req.Message)) < 10 {
		v.Add("message", "message must be at least 10 characters")
	}

	if v.Empty() {
		return nil
	}

	return v
}
