package converter

// CartVariantRedisModel — выбранный вариант товара в сохраненной строке корзины.
type CartVariantRedisModel struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// CartLineRedisModel — строка корзины в Redis.
type CartLineRedisModel struct {
	ID         string                 `json:"id"`
	ProductID  string                 `json:"product_id"`
	Title      string                 `json:"title"`
	PriceCents int64                  `json:"price_cents"`
	Quantity   int                    `json:"quantity"`
	Image      string                 `json:"image,omitempty"`
	Variant    *CartVariantRedisModel `json:"variant,omitempty"`
}

// CartRedisModel — сохраняемое состояние корзины: только строки.
// Флаг открытости панели сюда не попадает. Отсутствие поля version
// трактуется как версия 0.
type CartRedisModel struct {
	Version int                  `json:"version"`
	Items   []CartLineRedisModel `json:"items"`
}
