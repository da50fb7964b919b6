package usecase

import (
	"context"
	"strings"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
)

// ContentUseCase отдает маркетинговый контент: команду, партнеров, вакансии.
type ContentUseCase struct {
	contentRepo ContentRepository
	logger      logger.Logger
}

func NewContentUC(contentRepo ContentRepository, logger logger.Logger) *ContentUseCase {
	return &ContentUseCase{
		contentRepo: contentRepo,
		logger:      logger,
	}
}

func (c *ContentUseCase) Team(ctx context.Context) ([]domain.TeamMember, error) {
	const op = "ContentUseCase.Team"

	team, err := c.contentRepo.Team(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return team, nil
}

func (c *ContentUseCase) Partners(ctx context.Context) ([]domain.Partner, error) {
	const op = "ContentUseCase.Partners"

	partners, err := c.contentRepo.Partners(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return partners, nil
}

// ListVacancies возвращает вакансии с фильтрами страницы карьеры:
// локация, тип занятости и поиск по заголовку/описанию.
func (c *ContentUseCase) ListVacancies(ctx context.Context, req *ListVacanciesReq) (*ListVacanciesRes, error) {
	const op = "ContentUseCase.ListVacancies"

	vacancies, err := c.contentRepo.Vacancies(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	filtered := make([]domain.Vacancy, 0, len(vacancies))
	for _, vacancy := range vacancies {
		if req.Location != "" && vacancy.Location != req.Location {
			continue
		}
		if req.Type != "" && vacancy.Type != req.Type {
			continue
		}
		if req.Search != "" && !vacancyMatches(&vacancy, req.Search) {
			continue
		}
		filtered = append(filtered, vacancy)
	}

	return NewListVacanciesRes(filtered), nil
}

func vacancyMatches(vacancy *domain.Vacancy, search string) bool {
	search = strings.ToLower(search)

	return strings.Contains(strings.ToLower(vacancy.Title), search) ||
		strings.Contains(strings.ToLower(vacancy.Description), search)
}
