package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/enertrics/storefront-backend/internal/cfg"
	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/internal/repository/redis/converter"
	"github.com/enertrics/storefront-backend/pkg/clients"
	"github.com/enertrics/storefront-backend/pkg/logger"
	r "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*CartRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := &clients.RedisClient{Client: r.NewClient(&r.Options{Addr: mr.Addr()})}

	repo := NewCartRepo(
		client,
		converter.NewCartConverterImpl(),
		&cfg.RedisCfg{CartTTL: time.Hour},
		logger.NewSlogLogger(),
	)

	return repo, mr
}

func testItems() []domain.LineItem {
	return []domain.LineItem{
		{
			ID:         "p1",
			ProductID:  "p1",
			Title:      "Battery Module",
			PriceCents: 59999,
			Quantity:   2,
			Image:      "https://cdn.example/p1.webp",
		},
		{
			ID:         "p2-v1",
			ProductID:  "p2",
			Title:      "Traction Motor",
			PriceCents: 120000,
			Quantity:   1,
			Variant:    &domain.LineVariant{ID: "v1", Name: "Compact", PriceCents: 110000},
		},
	}
}

func TestCartRepo_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "c1", testItems()))

	loaded, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, testItems(), loaded)
}

func TestCartRepo_LoadAbsentCart(t *testing.T) {
	repo, _ := newTestRepo(t)

	loaded, err := repo.Load(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCartRepo_LoadCorruptedPayloadFailsOpen(t *testing.T) {
	repo, mr := newTestRepo(t)
	require.NoError(t, mr.Set("cart:c1", "{not json"))

	loaded, err := repo.Load(context.Background(), "c1")

	require.NoError(t, err)
	assert.Nil(t, loaded)
	// испорченный ключ удален, следующая запись начнет с чистого листа
	assert.False(t, mr.Exists("cart:c1"))
}

func TestCartRepo_PersistedPayloadHasNoOpenFlag(t *testing.T) {
	repo, mr := newTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), "c1", testItems()))

	raw, err := mr.Get("cart:c1")
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))
	assert.Contains(t, payload, "items")
	assert.Contains(t, payload, "version")
	assert.NotContains(t, payload, "isOpen")
	assert.NotContains(t, payload, "is_open")
}

func TestCartRepo_SaveSetsTTL(t *testing.T) {
	repo, mr := newTestRepo(t)

	require.NoError(t, repo.Save(context.Background(), "c1", testItems()))

	assert.Equal(t, time.Hour, mr.TTL("cart:c1"))
}

func TestCartRepo_SaveEmptyListOverwrites(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "c1", testItems()))
	require.NoError(t, repo.Save(ctx, "c1", []domain.LineItem{}))

	loaded, err := repo.Load(ctx, "c1")
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
