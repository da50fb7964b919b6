package fixtures

import (
	"context"
	"embed"
	"encoding/json"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/repository/fixtures/converter"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/jimlawless/whereami"
)

//go:embed data/*.json
var dataFS embed.FS

// Store отдает статический контент витрины из вшитых JSON-фикстур.
// Фикстуры разбираются один раз при создании; дальше все чтения идут из памяти.
type Store struct {
	products  []domain.Product
	posts     []domain.Post
	team      []domain.TeamMember
	partners  []domain.Partner
	vacancies []domain.Vacancy

	productsBySlug  map[string]int
	postsBySlug     map[string]int
	vacanciesBySlug map[string]int
}

func NewStore(conv converter.FixtureConverter) (*Store, error) {
	var (
		productModels []converter.ProductModel
		postModels    []converter.PostModel
		teamModels    []converter.TeamMemberModel
		partnerModels []converter.PartnerModel
		vacancyModels []converter.VacancyModel
	)

	files := map[string]any{
		"data/products.json":  &productModels,
		"data/posts.json":     &postModels,
		"data/team.json":      &teamModels,
		"data/partners.json":  &partnerModels,
		"data/vacancies.json": &vacancyModels,
	}
	for name, dst := range files {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		if err := json.Unmarshal(raw, dst); err != nil {
			return nil, e.Wrap(name, err)
		}
	}

	products, err := conv.ToDomainProducts(productModels)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	posts, err := conv.ToDomainPosts(postModels)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	s := &Store{
		products:        products,
		posts:           posts,
		team:            conv.ToDomainTeam(teamModels),
		partners:        conv.ToDomainPartners(partnerModels),
		vacancies:       conv.ToDomainVacancies(vacancyModels),
		productsBySlug:  make(map[string]int, len(products)),
		postsBySlug:     make(map[string]int, len(posts)),
		vacanciesBySlug: make(map[string]int, len(vacancyModels)),
	}

	for i, p := range s.products {
		s.productsBySlug[p.Slug] = i
	}
	for i, p := range s.posts {
		s.postsBySlug[p.Slug] = i
	}
	for i, v := range s.vacancies {
		s.vacanciesBySlug[v.Slug] = i
	}

	return s, nil
}

// Products возвращает все товары в порядке фикстуры.
func (s *Store) Products(_ context.Context) ([]domain.Product, error) {
	return s.products, nil
}

// ProductBySlug возвращает товар по слагу.
func (s *Store) ProductBySlug(_ context.Context, slug string) (*domain.Product, error) {
	i, ok := s.productsBySlug[slug]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	product := s.products[i]
	return &product, nil
}

func (s *Store) Posts(_ context.Context) ([]domain.Post, error) {
	return s.posts, nil
}

func (s *Store) PostBySlug(_ context.Context, slug string) (*domain.Post, error) {
	i, ok := s.postsBySlug[slug]
	if !ok {
		return nil, e.ErrPostNotFound
	}

	post := s.posts[i]
	return &post, nil
}

func (s *Store) Team(_ context.Context) ([]domain.TeamMember, error) {
	return s.team, nil
}

func (s *Store) Partners(_ context.Context) ([]domain.Partner, error) {
	return s.partners, nil
}

func (s *Store) Vacancies(_ context.Context) ([]domain.Vacancy, error) {
	return s.vacancies, nil
}

func (s *Store) VacancyBySlug(_ context.Context, slug string) (*domain.Vacancy, error) {
	i, ok := s.vacanciesBySlug[slug]
	if !ok {
		return nil, e.ErrVacancyNotFound
	}

	vacancy := s.vacancies[i]
	return &vacancy, nil
}
