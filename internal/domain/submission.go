package domain

import "time"

// ContactSubmission — принятая заявка контактной формы.
type ContactSubmission struct {
	ID        string // uuid
	Name      string
	Email     string
	Company   string
	Phone     string
	Subject   string
	Message   string
	CreatedAt time.Time
}

func NewContactSubmission(id, name, email, company, phone, subject, message string) *ContactSubmission {
	return &ContactSubmission{
		ID:      id,
		Name:    name,
		Email:   email,
		Company: company,
		Phone:   phone,
		Subject: subject,
		Message: message,
	}
}

// JobApplication — отклик кандидата на вакансию.
type JobApplication struct {
	ID          string // uuid
	VacancySlug string
	Name        string
	Email       string
	Message     string
	ResumeKey   string // ключ объекта резюме в S3
	CreatedAt   time.Time
}

func NewJobApplication(id, vacancySlug, name, email, message, resumeKey string) *JobApplication {
	return &JobApplication{
		ID:          id,
		VacancySlug: vacancySlug,
		Name:        name,
		Email:       email,
		Message:     message,
		ResumeKey:   resumeKey,
	}
}
