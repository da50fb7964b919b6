package converter

import (
	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/usecase"
)

// ContactSubmissionConverter преобразует заявки контактной формы между domain и моделью PostgreSQL.
type ContactSubmissionConverter interface {
	ToModel(entity *domain.ContactSubmission) *ContactSubmissionModel
	ToEntity(model *ContactSubmissionModel) *domain.ContactSubmission
}

// JobApplicationConverter преобразует отклики на вакансии между domain и моделью PostgreSQL.
type JobApplicationConverter interface {
	ToModel(entity *domain.JobApplication) *JobApplicationModel
	ToEntity(model *JobApplicationModel) *domain.JobApplication
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

type ContactSubmissionConverterImpl struct{}

func NewContactSubmissionConverterImpl() *ContactSubmissionConverterImpl {
	return &ContactSubmissionConverterImpl{}
}

func (c *ContactSubmissionConverterImpl) ToModel(entity *domain.ContactSubmission) *ContactSubmissionModel {
	return &ContactSubmissionModel{
		ID:        entity.ID,
		Name:      entity.Name,
		Email:     entity.Email,
		Company:   entity.Company,
		Phone:     entity.Phone,
		Subject:   entity.Subject,
		Message:   entity.Message,
		CreatedAt: entity.CreatedAt,
	}
}

func (c *ContactSubmissionConverterImpl) ToEntity(model *ContactSubmissionModel) *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Company:   model.Company,
		Phone:     model.Phone,
		Subject:   model.Subject,
		Message:   model.Message,
		CreatedAt: model.CreatedAt,
	}
}

type JobApplicationConverterImpl struct{}

func NewJobApplicationConverterImpl() *JobApplicationConverterImpl {
	return &JobApplicationConverterImpl{}
}

func (c *JobApplicationConverterImpl) ToModel(entity *domain.JobApplication) *JobApplicationModel {
	return &JobApplicationModel{
		ID:          entity.ID,
		VacancySlug: entity.VacancySlug,
		Name:        entity.Name,
		Email:       entity.Email,
		Message:     entity.Message,
		ResumeKey:   entity.ResumeKey,
		CreatedAt:   entity.CreatedAt,
	}
}

func (c *JobApplicationConverterImpl) ToEntity(model *JobApplicationModel) *domain.JobApplication {
	return &domain.JobApplication{
		ID:          model.ID,
		VacancySlug: model.VacancySlug,
		Name:        model.Name,
		Email:       model.Email,
		Message:     model.Message,
		ResumeKey:   model.ResumeKey,
		CreatedAt:   model.CreatedAt,
	}
}

type OutboxEventConverterImpl struct{}

func NewOutboxEventConverterImpl() *OutboxEventConverterImpl {
	return &OutboxEventConverterImpl{}
}

func (c *OutboxEventConverterImpl) ToModel(entity *usecase.OutboxEvent) *OutboxEventModel {
	return &OutboxEventModel{
		ID:          entity.ID,
		EventID:     entity.EventID,
		EventType:   string(entity.EventType),
		EntityID:    entity.EntityID,
		Payload:     entity.Payload,
		Status:      string(entity.Status),
		CreatedAt:   entity.CreatedAt,
		ProcessedAt: entity.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToEntity(model *OutboxEventModel) *usecase.OutboxEvent {
	return &usecase.OutboxEvent{
		ID:          model.ID,
		EventID:     model.EventID,
		EventType:   usecase.OutboxEventType(model.EventType),
		EntityID:    model.EntityID,
		Payload:     model.Payload,
		Status:      usecase.OutboxStatus(model.Status),
		CreatedAt:   model.CreatedAt,
		ProcessedAt: model.ProcessedAt,
	}
}

func (c *OutboxEventConverterImpl) ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent {
	entities := make([]*usecase.OutboxEvent, 0, len(models))
	for _, model := range models {
		entities = append(entities, c.ToEntity(model))
	}

	return entities
}
