package converter

import (
	"github.com/enertrics/storefront-backend/internal/domain"
)

// CartConverter преобразует строки корзины между domain и моделью Redis.
type CartConverter interface {
	ToRedisModel(items []domain.LineItem) []CartLineRedisModel
	ToDomain(models []CartLineRedisModel) []domain.LineItem
}

type CartConverterImpl struct{}

func NewCartConverterImpl() *CartConverterImpl {
	return &CartConverterImpl{}
}

func (c *CartConverterImpl) ToRedisModel(items []domain.LineItem) []CartLineRedisModel {
	models := make([]CartLineRedisModel, 0, len(items))
	for _, item := range items {
		model := CartLineRedisModel{
			ID:         item.ID,
			ProductID:  item.ProductID,
			Title:      item.Title,
			PriceCents: item.PriceCents,
			Quantity:   item.Quantity,
			Image:      item.Image,
		}
		if item.Variant != nil {
			model.Variant = &CartVariantRedisModel{
				ID:         item.Variant.ID,
				Name:       item.Variant.Name,
				PriceCents: item.Variant.PriceCents,
			}
		}
		models = append(models, model)
	}

	return models
}

func (c *CartConverterImpl) ToDomain(models []CartLineRedisModel) []domain.LineItem {
	items := make([]domain.LineItem, 0, len(models))
	for _, model := range models {
		item := domain.LineItem{
			ID:         model.ID,
			ProductID:  model.ProductID,
			Title:      model.Title,
			PriceCents: model.PriceCents,
			Quantity:   model.Quantity,
			Image:      model.Image,
		}
		if model.Variant != nil {
			item.Variant = &domain.LineVariant{
				ID:         model.Variant.ID,
				Name:       model.Variant.Name,
				PriceCents: model.Variant.PriceCents,
			}
		}
		items = append(items, item)
	}

	return items
}
