package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/repository/redis/converter"
	"github.com/enertrics/storefront-backend/pkg/clients"
	"github.com/enertrics/storefront-backend/pkg/e"
	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// cartSchemaVersion пишется в каждый сохраненный blob. Отсутствие поля
// version в старых данных читается как 0 и не считается ошибкой.
const cartSchemaVersion = 1

// CartRepo хранит корзины в Redis: один JSON-blob на корзину.
// Это долговременное хранилище (аналог localStorage браузера), а не кэш.
type CartRepo struct {
	client *clients.RedisClient
	conv   converter.CartConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCartRepo(client *clients.RedisClient, conv converter.CartConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CartRepo {
	return &CartRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// Load возвращает сохраненные строки корзины. Отсутствие ключа — это
// (nil, nil). Непарсящийся payload трактуется так же: ключ удаляется,
// корзина начинается заново (fail open, ошибки наружу не отдаются).
func (c *CartRepo) Load(ctx context.Context, cartID string) ([]domain.LineItem, error) {
	key := c.cartKey(cartID)

	data, err := c.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CartRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Corrupted cart payload, resetting. cart_id: %s, error: %v",
			cartID, e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(context.Background(), key).Err(); err != nil {
			c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil
	}

	return c.conv.ToDomain(model.Items), nil
}

// Save перезаписывает blob корзины целиком и продлевает TTL.
func (c *CartRepo) Save(ctx context.Context, cartID string, items []domain.LineItem) error {
	model := converter.CartRedisModel{
		Version: cartSchemaVersion,
		Items:   c.conv.ToRedisModel(items),
	}

	data, err := json.Marshal(model)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, c.cartKey(cartID), data, c.cfg.CartTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// cartKey возвращает Redis-ключ для одной корзины
func (c *CartRepo) cartKey(cartID string) string {
	return fmt.Sprintf("cart:%s", cartID)
}
