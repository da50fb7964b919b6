package fixtures

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enertrics/storefront-backend/internal/repository/fixtures/converter"
	"github.com/enertrics/storefront-backend/pkg/e"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(converter.NewFixtureConverterImpl())
	require.NoError(t, err)

	return store
}

func TestStore_Products(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	products, err := store.Products(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, products)

	// Порядок фикстуры сохраняется.
	assert.Equal(t, "volt-core-72v-battery-module", products[0].Slug)

	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Title)
		assert.NotEmpty(t, p.Categories)
		assert.Positive(t, p.PriceCents)
	}
}

func TestStore_ProductBySlug(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	product, err := store.ProductBySlug(ctx, "volt-core-48v-battery-module")
	require.NoError(t, err)

	// 749.50 USD из фикстуры — это 74950 центов.
	assert.Equal(t, int64(74950), product.PriceCents)
	assert.Equal(t, "USD", product.Currency)

	_, err = store.ProductBySlug(ctx, "no-such-product")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestStore_ProductVariantPrices(t *testing.T) {
	store := newTestStore(t)

	product, err := store.ProductBySlug(context.Background(), "torqmax-ax7-hub-motor")
	require.NoError(t, err)
	require.Len(t, product.Variants, 2)

	assert.Equal(t, "front", product.Variants[0].ID)
	assert.Equal(t, int64(124900), product.Variants[0].PriceCents)
	assert.Equal(t, int64(128900), product.Variants[1].PriceCents)
}

func TestStore_Posts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	posts, err := store.Posts(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, posts)

	for _, p := range posts {
		assert.NotEmpty(t, p.Slug)
		assert.False(t, p.Date.IsZero())
	}

	post, err := store.PostBySlug(ctx, "lfp-vs-nmc-for-light-evs")
	require.NoError(t, err)
	assert.True(t, post.Featured)

	_, err = store.PostBySlug(ctx, "no-such-post")
	assert.ErrorIs(t, err, e.ErrPostNotFound)
}

func TestStore_Content(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	team, err := store.Team(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, team)

	partners, err := store.Partners(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, partners)

	vacancies, err := store.Vacancies(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, vacancies)

	vacancy, err := store.VacancyBySlug(ctx, "senior-software-engineer")
	require.NoError(t, err)
	assert.Equal(t, "Full-time", vacancy.Type)
	assert.NotEmpty(t, vacancy.Requirements)

	_, err = store.VacancyBySlug(ctx, "no-such-vacancy")
	assert.ErrorIs(t, err, e.ErrVacancyNotFound)
}
