package converter

import (
	"encoding/json"
	"time"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// FixtureConverter преобразует записи фикстур в domain-сущности.
type FixtureConverter interface {
	ToDomainProducts(models []ProductModel) ([]domain.Product, error)
	ToDomainPosts(models []PostModel) ([]domain.Post, error)
	ToDomainTeam(models []TeamMemberModel) []domain.TeamMember
	ToDomainPartners(models []PartnerModel) []domain.Partner
	ToDomainVacancies(models []VacancyModel) []domain.Vacancy
}

type FixtureConverterImpl struct{}

func NewFixtureConverterImpl() *FixtureConverterImpl {
	return &FixtureConverterImpl{}
}

func (c *FixtureConverterImpl) ToDomainProducts(models []ProductModel) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(models))
	for _, model := range models {
		priceCents, err := PriceToCents(model.Price)
		if err != nil {
			return nil, e.Wrap("product "+model.Slug, err)
		}

		variants := make([]domain.ProductVariant, 0, len(model.Variants))
		for _, v := range model.Variants {
			variantCents, err := PriceToCents(v.Price)
			if err != nil {
				return nil, e.Wrap("product "+model.Slug+" variant "+v.ID, err)
			}
			variants = append(variants, domain.ProductVariant{
				ID:         v.ID,
				Name:       v.Name,
				PriceCents: variantCents,
			})
		}

		products = append(products, domain.Product{
			ID:         model.ID,
			Slug:       model.Slug,
			Title:      model.Title,
			ShortDesc:  model.ShortDesc,
			LongDesc:   model.LongDesc,
			PriceCents: priceCents,
			Currency:   model.Currency,
			Images:     model.Images,
			Categories: model.Categories,
			Specs:      model.Specs,
			Variants:   variants,
			InStock:    model.InStock,
			Featured:   model.Featured,
		})
	}

	return products, nil
}

func (c *FixtureConverterImpl) ToDomainPosts(models []PostModel) ([]domain.Post, error) {
	const dateLayout = "2006-01-02"

	posts := make([]domain.Post, 0, len(models))
	for _, model := range models {
		date, err := time.Parse(dateLayout, model.Date)
		if err != nil {
			return nil, e.Wrap("post "+model.Slug, err)
		}

		posts = append(posts, domain.Post{
			Slug:     model.Slug,
			Title:    model.Title,
			Excerpt:  model.Excerpt,
			Content:  model.Content,
			Author:   model.Author,
			Image:    model.Image,
			Date:     date,
			Tags:     model.Tags,
			Featured: model.Featured,
		})
	}

	return posts, nil
}

func (c *FixtureConverterImpl) ToDomainTeam(models []TeamMemberModel) []domain.TeamMember {
	team := make([]domain.TeamMember, 0, len(models))
	for _, model := range models {
		team = append(team, domain.TeamMember(model))
	}

	return team
}

func (c *FixtureConverterImpl) ToDomainPartners(models []PartnerModel) []domain.Partner {
	partners := make([]domain.Partner, 0, len(models))
	for _, model := range models {
		partners = append(partners, domain.Partner(model))
	}

	return partners
}

func (c *FixtureConverterImpl) ToDomainVacancies(models []VacancyModel) []domain.Vacancy {
	vacancies := make([]domain.Vacancy, 0, len(models))
	for _, model := range models {
		vacancies = append(vacancies, domain.Vacancy(model))
	}

	return vacancies
}

// PriceToCents переводит десятичную цену фикстуры в int64-центы.
// Отклоняет отрицательные значения и больше двух знаков после запятой.
func PriceToCents(price json.Number) (int64, error) {
	d, err := decimal.NewFromString(price.String())
	if err != nil {
		return 0, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return 0, e.ErrInvalidPrice
	}

	if d.Exponent() < -2 {
		return 0, e.ErrPricePrecision
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
